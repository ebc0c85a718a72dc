// Package automation replays scripted gallery sessions.
//
// A scenario is a YAML list of timed pointer actions:
//
//	name: tour
//	fps: 60
//	duration: 6
//	steps:
//	  - {at: 1.0, action: hover, effect: plasma}
//	  - {at: 2.5, action: leave, effect: plasma}
//	  - {at: 3.0, action: click, effect: 3}
//	  - {at: 4.0, action: toggle}
//
// The runner drives a real gallery controller on a synthetic frame clock and
// checks after every frame that at most the selected effect advanced.
package automation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/shaderlab/internal/effect"
	"github.com/san-kum/shaderlab/internal/frame"
	"github.com/san-kum/shaderlab/internal/gallery"
	"github.com/san-kum/shaderlab/internal/logging"
	"gopkg.in/yaml.v3"
)

// ErrUnknownAction indicates a step action other than hover, leave, click
// or toggle.
var ErrUnknownAction = errors.New("automation: unknown action")

// stepTolerance absorbs float error when a step lands exactly on a frame.
const stepTolerance = 1e-6

const (
	ActionHover  = "hover"
	ActionLeave  = "leave"
	ActionClick  = "click"
	ActionToggle = "toggle"
)

// Scenario defines a scripted session.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	FPS         int     `yaml:"fps"`
	Duration    float64 `yaml:"duration"`
	Steps       []Step  `yaml:"steps"`
}

// Step is a single timed action. Effect is a name, slug or id; toggle
// ignores it.
type Step struct {
	At     float64 `yaml:"at"`
	Action string  `yaml:"action"`
	Effect string  `yaml:"effect"`
}

// Event records an applied step.
type Event struct {
	At       float64
	Action   string
	Effect   int
	Selected int
}

// Result summarises a run.
type Result struct {
	Frames     int
	Selected   int
	Held       bool
	Elapsed    map[int]float64
	Events     []Event
	Violations int
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if scenario.FPS <= 0 {
		scenario.FPS = 60
	}
	for i, s := range scenario.Steps {
		switch s.Action {
		case ActionHover, ActionLeave, ActionClick, ActionToggle:
		default:
			return nil, fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownAction, s.Action)
		}
		if s.At > scenario.Duration {
			scenario.Duration = s.At
		}
	}
	sort.SliceStable(scenario.Steps, func(i, j int) bool {
		return scenario.Steps[i].At < scenario.Steps[j].At
	})
	return &scenario, nil
}

// RunScenario executes sc against a fresh gallery built from reg.
func RunScenario(ctx context.Context, sc *Scenario, reg *effect.Registry, width, height int) (*Result, error) {
	loop := frame.NewLoop()
	ctrl := gallery.New(reg, loop, width, height)
	ctrl.MountAll()
	defer ctrl.Close()

	fps := sc.FPS
	if fps <= 0 {
		fps = 60
	}
	result := &Result{}
	period := 1000 / float64(fps)
	frames := int(math.Round(sc.Duration * float64(fps)))
	next := 0
	prev := ctrl.Snapshot().Elapsed

	for i := 0; i <= frames; i++ {
		ts := float64(i) * period
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for next < len(sc.Steps) && sc.Steps[next].At*1000 <= ts+stepTolerance {
			ev, err := apply(ctrl, reg, sc.Steps[next])
			if err != nil {
				return result, fmt.Errorf("step %d: %w", next+1, err)
			}
			result.Events = append(result.Events, ev)
			next++
		}

		loop.Pump(ts)
		result.Frames++

		cur := ctrl.Snapshot().Elapsed
		if !advancedOnlySelected(prev, cur, ctrl.Selected()) {
			result.Violations++
			logging.Logger().Warn("more than the selected effect advanced", "frame", result.Frames)
		}
		prev = cur
	}

	snap := ctrl.Snapshot()
	result.Selected = snap.Selected
	result.Held = snap.Held
	result.Elapsed = snap.Elapsed
	return result, nil
}

func apply(ctrl *gallery.Controller, reg *effect.Registry, s Step) (Event, error) {
	ev := Event{At: s.At, Action: s.Action}
	if s.Action == ActionToggle {
		ctrl.Toggle()
		ev.Selected = ctrl.Selected()
		ev.Effect = ctrl.Selected()
		return ev, nil
	}

	e, err := reg.ByName(s.Effect)
	if err != nil {
		return ev, err
	}
	ev.Effect = e.ID

	switch s.Action {
	case ActionHover:
		err = ctrl.Hover(e.ID)
	case ActionLeave:
		err = ctrl.Leave(e.ID)
	case ActionClick:
		err = ctrl.Click(e.ID)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAction, s.Action)
	}
	ev.Selected = ctrl.Selected()
	return ev, err
}

func advancedOnlySelected(prev, cur map[int]float64, selected int) bool {
	for id, v := range cur {
		if v < prev[id] {
			return false
		}
		if v != prev[id] && id != selected {
			return false
		}
	}
	return true
}

// RandomScenario builds a reproducible session of n random actions over
// duration seconds. A zero seed uses the clock.
func RandomScenario(reg *effect.Registry, seed int64, n int, duration float64) *Scenario {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	actions := []string{ActionHover, ActionLeave, ActionClick, ActionToggle}
	effects := reg.All()

	sc := &Scenario{
		Name:     "random-" + strconv.FormatInt(seed, 10),
		FPS:      60,
		Duration: duration,
		Steps:    make([]Step, 0, n),
	}
	for i := 0; i < n && len(effects) > 0; i++ {
		e := effects[rng.Intn(len(effects))]
		sc.Steps = append(sc.Steps, Step{
			At:     rng.Float64() * duration,
			Action: actions[rng.Intn(len(actions))],
			Effect: e.Slug,
		})
	}
	sort.SliceStable(sc.Steps, func(i, j int) bool { return sc.Steps[i].At < sc.Steps[j].At })
	return sc
}
