package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/shaderlab/internal/config"
	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/frame"
	"github.com/san-kum/shaderlab/internal/gallery"
)

const (
	headerHeight = 2
	unitGap      = 1
)

type TickMsg time.Time

// Model is the bubbletea model of the terminal gallery.
type Model struct {
	ctrl    *gallery.Controller
	loop    *frame.Loop
	cfg     *config.Config
	theme   Theme
	styles  styles
	cols    int
	rows    int
	focus   int
	hovered int
	start   time.Time
	fps     float64
	last    time.Time
}

// NewModel builds a mounted gallery for every effect of reg.
func NewModel(cfg *config.Config, reg *effect.Registry) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	loop := frame.NewLoop()
	ctrl := gallery.New(reg, loop, cfg.Width, cfg.Height)
	ctrl.MountAll()

	cols := cfg.Cells.Columns
	if cols <= 0 {
		cols = config.DefaultColumns
	}
	theme := GetTheme(cfg.Theme)
	return Model{
		ctrl:   ctrl,
		loop:   loop,
		cfg:    cfg,
		theme:  theme,
		styles: newStyles(theme),
		cols:   cols,
		rows:   cfg.CellRows(),
	}
}

// Controller exposes the gallery for inspection.
func (m Model) Controller() *gallery.Controller { return m.ctrl }

func (m Model) Theme() Theme { return m.theme }

func (m Model) Focus() int { return m.focus }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.FrameMillis()*float64(time.Millisecond)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and pumps the frame loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case TickMsg:
		now := time.Time(msg)
		if m.start.IsZero() {
			m.start = now
		}
		if !m.last.IsZero() {
			if dt := now.Sub(m.last).Seconds(); dt > 0 {
				m.fps = 0.9*m.fps + 0.1/dt
			}
		}
		m.last = now
		m.loop.Pump(float64(now.Sub(m.start)) / float64(time.Millisecond))
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	units := m.ctrl.Units()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.ctrl.Close()
		return m, tea.Quit
	}
	if len(units) == 0 {
		return m, nil
	}
	switch msg.String() {
	case "left", "h":
		if m.focus > 0 {
			m.focus--
		}
		m.hover(units[m.focus].Effect.ID)
	case "right", "l", "tab":
		if m.focus < len(units)-1 {
			m.focus++
		} else if msg.String() == "tab" {
			m.focus = 0
		}
		m.hover(units[m.focus].Effect.ID)
	case "enter":
		_ = m.ctrl.Click(units[m.focus].Effect.ID)
	case " ":
		m.ctrl.Toggle()
	case "m":
		u := units[m.focus]
		if u.Mounted() {
			_ = m.ctrl.Unmount(u.Effect.ID)
		} else {
			_ = m.ctrl.Mount(u.Effect.ID)
		}
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
	}
	return m, nil
}

// hover moves the pointer onto id, leaving the previously hovered unit.
func (m *Model) hover(id int) {
	if m.hovered == id {
		return
	}
	if m.hovered != 0 {
		_ = m.ctrl.Leave(m.hovered)
	}
	m.hovered = id
	_ = m.ctrl.Hover(id)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	i, onButton, ok := m.hitTest(msg.X, msg.Y)
	if !ok {
		if m.hovered != 0 {
			_ = m.ctrl.Leave(m.hovered)
			m.hovered = 0
		}
		return
	}
	id := m.ctrl.Units()[i].Effect.ID
	m.focus = i

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.hover(id)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if onButton && m.ctrl.CanToggle(id) {
			m.ctrl.Toggle()
			return
		}
		_ = m.ctrl.Click(id)
	}
}

// unitWidth is the outer width of a unit including border and gap.
func (m Model) unitWidth() int { return m.cols + 2 + unitGap }

// unitHeight is the outer height: border, name, cells, button, border.
func (m Model) unitHeight() int { return m.rows + 4 }

// hitTest maps a terminal cell to a unit index and reports whether the
// cell is on the unit's button row.
func (m Model) hitTest(x, y int) (index int, onButton, ok bool) {
	if x < 0 || y < headerHeight || y >= headerHeight+m.unitHeight() {
		return 0, false, false
	}
	index = x / m.unitWidth()
	if index >= len(m.ctrl.Units()) || x%m.unitWidth() >= m.cols+2 {
		return 0, false, false
	}
	onButton = y == headerHeight+m.rows+2
	return index, onButton, true
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("shaderlab"))
	b.WriteString("  ")
	b.WriteString(m.styles.help.Render("hover to animate"))
	b.WriteString("\n\n")

	units := m.ctrl.Units()
	boxes := make([]string, len(units))
	for i, u := range units {
		boxes[i] = m.viewUnit(u)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	b.WriteString("\n")
	b.WriteString(m.viewStats())
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render("←/→ hover · enter click · space pause/play · m mount · t theme · q quit"))
	return b.String()
}

func (m Model) viewUnit(u *gallery.Unit) string {
	id := u.Effect.ID
	selected := id == m.ctrl.Selected()

	name := m.styles.name.Render(fit(u.Effect.Name, m.cols))
	if selected {
		name = m.styles.nameActive.Render(fit(u.Effect.Name, m.cols))
	}

	var body string
	if s := u.Surface(); s != nil {
		body = Cells(s, m.cols, m.rows)
	} else {
		body = m.styles.placeholder.Width(m.cols).Height(m.rows).Render("Loading shader...")
	}

	button := strings.Repeat(" ", m.cols)
	if m.ctrl.CanToggle(id) {
		label := "❚❚ Pause"
		if !u.Playing() {
			label = "▶ Play"
		}
		button = lipgloss.PlaceHorizontal(m.cols, lipgloss.Center, m.styles.button.Render(" "+label+" "))
	}

	box := m.styles.unit
	if selected {
		box = m.styles.selected
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, name, body, button))
}

func (m Model) viewStats() string {
	var b strings.Builder
	for _, u := range m.ctrl.Units() {
		state := m.styles.paused.Render(u.State().String())
		if u.Playing() {
			state = m.styles.playing.Render(u.State().String())
		}
		b.WriteString(m.styles.label.Render(u.Effect.Name))
		b.WriteString(m.styles.value.Render(fmt.Sprintf("%8.2fs  ", u.Elapsed())))
		b.WriteString(state)
		b.WriteString("\n")
	}
	b.WriteString(m.styles.label.Render("fps"))
	b.WriteString(m.styles.value.Render(fmt.Sprintf("%8.1f  theme %s", m.fps, m.theme.Name)))
	b.WriteString("\n")
	return b.String()
}

// Run starts the terminal gallery.
func Run(cfg *config.Config, reg *effect.Registry) error {
	p := tea.NewProgram(NewModel(cfg, reg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
