package effect

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/san-kum/shaderlab/internal/surface"
)

func TestChannel(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{127.5, 128},
		{127.49, 127},
		{0.4, 0},
		{-3, 0},
		{255.2, 255},
		{300, 255},
		{237.98, 238},
	}

	for _, tt := range tests {
		if got := Channel(tt.in); got != tt.want {
			t.Errorf("Channel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRipple_CenterAtZero(t *testing.T) {
	s := surface.NewDefault()
	Ripple(s, 0)

	want := color.RGBA{R: 128, G: 128, B: 255, A: 255}
	if got := s.Pixel(200, 150); got != want {
		t.Errorf("center pixel = %v, want %v", got, want)
	}
}

func TestRipple_BlueAlwaysSaturated(t *testing.T) {
	s := surface.New(40, 30)
	Ripple(s, 1.7)
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if b := s.Pixel(x, y).B; b != 255 {
				t.Fatalf("pixel (%d,%d) blue = %d, want 255", x, y, b)
			}
		}
	}
}

func TestPlasmaWave_Origin(t *testing.T) {
	s := surface.New(10, 10)
	PlasmaWave(s, 0)

	want := color.RGBA{R: 128, G: 238, B: 18, A: 255}
	if got := s.Pixel(0, 0); got != want {
		t.Errorf("origin pixel = %v, want %v", got, want)
	}

	r, g, b := PlasmaColor(0, 0, 0)
	if math.Abs(r-128) > 1e-9 || math.Abs(g-237.985) > 1e-3 || math.Abs(b-18.015) > 1e-3 {
		t.Errorf("PlasmaColor(0,0,0) = (%f,%f,%f)", r, g, b)
	}
}

func TestFractalNoise_Origin(t *testing.T) {
	if v := FractalIntensity(0, 0, 0); v != 127.5 {
		t.Errorf("FractalIntensity(0,0,0) = %f, want 127.5", v)
	}

	s := surface.New(5, 5)
	FractalNoise(s, 0)
	want := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	if got := s.Pixel(0, 0); got != want {
		t.Errorf("origin pixel = %v, want %v", got, want)
	}
}

func TestEffects_Deterministic(t *testing.T) {
	for _, e := range Default().All() {
		t.Run(e.Slug, func(t *testing.T) {
			a := surface.New(64, 48)
			b := surface.New(64, 48)
			e.Render(a, 2.25)
			e.Render(b, 2.25)
			if !a.Equal(b) {
				t.Error("two renders at the same time differ")
			}
		})
	}
}

func TestEffects_Idempotent(t *testing.T) {
	for _, e := range Default().All() {
		t.Run(e.Slug, func(t *testing.T) {
			once := surface.New(64, 48)
			e.Render(once, 0.8)

			twice := surface.New(64, 48)
			e.Render(twice, 3.1)
			e.Render(twice, 0.8)
			e.Render(twice, 0.8)

			if !once.Equal(twice) {
				t.Error("render depends on previous surface contents")
			}
		})
	}
}

func TestEffects_CoverEveryPixel(t *testing.T) {
	magenta := color.RGBA{R: 255, B: 255, A: 0}
	for _, e := range Default().All() {
		t.Run(e.Slug, func(t *testing.T) {
			s := surface.New(16, 12)
			s.Clear(magenta)
			e.Render(s, 0.5)
			for y := 0; y < 12; y++ {
				for x := 0; x < 16; x++ {
					if s.Pixel(x, y).A != 255 {
						t.Fatalf("pixel (%d,%d) not written", x, y)
					}
				}
			}
		})
	}
}

func TestEffects_TimeChangesOutput(t *testing.T) {
	for _, e := range Default().All() {
		t.Run(e.Slug, func(t *testing.T) {
			a := surface.New(32, 24)
			b := surface.New(32, 24)
			e.Render(a, 0)
			e.Render(b, 1)
			if a.Equal(b) {
				t.Error("expected different frames for different times")
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	all := r.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 effects, got %d", len(all))
	}

	wantNames := []string{"Ripple Effect", "Plasma Wave", "Fractal Noise"}
	for i, e := range all {
		if e.ID != i+1 {
			t.Errorf("effect %d has id %d", i, e.ID)
		}
		if e.Name != wantNames[i] {
			t.Errorf("effect %d name = %q, want %q", i, e.Name, wantNames[i])
		}
	}

	first, ok := r.First()
	if !ok || first.ID != 1 {
		t.Errorf("expected first effect id 1, got %d", first.ID)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := Default()

	tests := []struct {
		name string
		want int
	}{
		{"ripple", 1},
		{"Plasma Wave", 2},
		{"FRACTAL", 3},
		{"2", 2},
	}
	for _, tt := range tests {
		e, err := r.ByName(tt.name)
		if err != nil {
			t.Errorf("ByName(%q) failed: %v", tt.name, err)
			continue
		}
		if e.ID != tt.want {
			t.Errorf("ByName(%q) = %d, want %d", tt.name, e.ID, tt.want)
		}
	}

	if _, err := r.ByName("mandelbrot"); !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("expected ErrUnknownEffect, got %v", err)
	}
	if _, err := r.ByID(99); !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("expected ErrUnknownEffect, got %v", err)
	}
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Effect{ID: 7, Name: "Seven", Render: Ripple}); err != nil {
		t.Fatal(err)
	}
	err := r.Register(Effect{ID: 7, Name: "Other", Render: Ripple})
	if !errors.Is(err, ErrDuplicateEffect) {
		t.Errorf("expected ErrDuplicateEffect, got %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 effect, got %d", r.Len())
	}

	e, _ := r.ByID(7)
	if e.Slug != "seven" {
		t.Errorf("expected derived slug seven, got %q", e.Slug)
	}
}
