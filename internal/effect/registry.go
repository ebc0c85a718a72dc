package effect

import (
	"fmt"
	"strings"
)

// Registry holds effects in registration order.
type Registry struct {
	effects []Effect
	byID    map[int]int
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[int]int)}
}

// Register appends e. IDs must be unique.
func (r *Registry) Register(e Effect) error {
	if _, ok := r.byID[e.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateEffect, e.ID)
	}
	if e.Slug == "" {
		e.Slug = slugify(e)
	}
	r.byID[e.ID] = len(r.effects)
	r.effects = append(r.effects, e)
	return nil
}

// All returns the registered effects in order. The slice is a copy.
func (r *Registry) All() []Effect {
	out := make([]Effect, len(r.effects))
	copy(out, r.effects)
	return out
}

func (r *Registry) Len() int { return len(r.effects) }

// First returns the first registered effect.
func (r *Registry) First() (Effect, bool) {
	if len(r.effects) == 0 {
		return Effect{}, false
	}
	return r.effects[0], true
}

func (r *Registry) ByID(id int) (Effect, error) {
	i, ok := r.byID[id]
	if !ok {
		return Effect{}, fmt.Errorf("%w: id %d", ErrUnknownEffect, id)
	}
	return r.effects[i], nil
}

// ByName matches the full name or the slug, ignoring case. A decimal id is
// accepted too so CLI arguments can use either form.
func (r *Registry) ByName(name string) (Effect, error) {
	for _, e := range r.effects {
		if strings.EqualFold(e.Name, name) || strings.EqualFold(e.Slug, name) {
			return e, nil
		}
	}
	var id int
	if _, err := fmt.Sscanf(name, "%d", &id); err == nil && fmt.Sprint(id) == name {
		return r.ByID(id)
	}
	return Effect{}, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// Default returns the static gallery registry.
func Default() *Registry {
	r := NewRegistry()
	for _, e := range []Effect{
		{ID: 1, Name: "Ripple Effect", Slug: "ripple", Render: Ripple},
		{ID: 2, Name: "Plasma Wave", Slug: "plasma", Render: PlasmaWave},
		{ID: 3, Name: "Fractal Noise", Slug: "fractal", Render: FractalNoise},
	} {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
	return r
}

func slugify(e Effect) string {
	fields := strings.Fields(e.Name)
	if len(fields) == 0 {
		return fmt.Sprint(e.ID)
	}
	return strings.ToLower(fields[0])
}
