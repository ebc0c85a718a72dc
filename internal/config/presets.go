package config

import "sort"

var Presets = map[string]*Config{
	"gallery": {
		Width: 400, Height: 300, FPS: 60, Theme: "mono",
		Cells:  CellConfig{Columns: 40},
		Export: ExportConfig{Duration: 3, FPS: 20, Dir: "."},
	},
	"thumb": {
		Width: 160, Height: 120, FPS: 30, Theme: "mono",
		Cells:  CellConfig{Columns: 24},
		Export: ExportConfig{Duration: 2, FPS: 15, Dir: "."},
	},
	"hd": {
		Width: 800, Height: 600, FPS: 60, Theme: "ocean",
		Cells:  CellConfig{Columns: 60},
		Export: ExportConfig{Duration: 4, FPS: 30, Dir: "."},
	},
	"eco": {
		Width: 400, Height: 300, FPS: 24, Theme: "retro",
		Cells:  CellConfig{Columns: 32},
		Export: ExportConfig{Duration: 3, FPS: 12, Dir: "."},
	},
}

// GetPreset returns a copy of the named preset with default colors, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Colors == (ColorConfig{}) {
		cfg.Colors = DefaultConfig().Colors
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
