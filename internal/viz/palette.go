package viz

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is a named color scheme. Colors are hex strings so they can be
// shared with lipgloss and written to config files.
type Palette struct {
	Name       string `yaml:"name"`
	Head       string `yaml:"head"` // newest trail point
	Tail       string `yaml:"tail"` // oldest trail point
	Background string `yaml:"background"`
	AxisX      string `yaml:"axis_x"`
	AxisY      string `yaml:"axis_y"`
	AxisZ      string `yaml:"axis_z"`
	Grid       string `yaml:"grid"`
	Text       string `yaml:"text"`
}

var (
	PaletteMono = Palette{
		Name: "mono", Head: "#ffffff", Tail: "#3c3c3c", Background: "#0a0a0a",
		AxisX: "#b4b4b4", AxisY: "#b4b4b4", AxisZ: "#b4b4b4", Grid: "#1e1e1e", Text: "#8c8c8c",
	}
	PaletteCyberpunk = Palette{
		Name: "cyberpunk", Head: "#00ffff", Tail: "#ff00ff", Background: "#0a0a0a",
		AxisX: "#ff4444", AxisY: "#00ff88", AxisZ: "#0088ff", Grid: "#222233", Text: "#ffffff",
	}
	PaletteRetro = Palette{
		Name: "retro", Head: "#88ff88", Tail: "#005500", Background: "#001100",
		AxisX: "#00cc00", AxisY: "#00cc00", AxisZ: "#00cc00", Grid: "#003300", Text: "#00ff00",
	}
	PaletteOcean = Palette{
		Name: "ocean", Head: "#ffd700", Tail: "#0077be", Background: "#001a33",
		AxisX: "#ff4444", AxisY: "#00ff88", AxisZ: "#00a8cc", Grid: "#0d2b4a", Text: "#e0f0ff",
	}
	PaletteSunset = Palette{
		Name: "sunset", Head: "#feca57", Tail: "#ff6b6b", Background: "#2d1b2e",
		AxisX: "#ff4757", AxisY: "#5fd068", AxisZ: "#ff9ff3", Grid: "#3f2a40", Text: "#fff5f5",
	}

	Palettes = []Palette{PaletteMono, PaletteCyberpunk, PaletteRetro, PaletteOcean, PaletteSunset}
)

// GetPalette returns a palette by name, falling back to mono.
func GetPalette(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return PaletteMono
}

// NextPalette returns the palette after name, wrapping around.
func NextPalette(name string) Palette {
	for i, p := range Palettes {
		if p.Name == name {
			return Palettes[(i+1)%len(Palettes)]
		}
	}
	return Palettes[0]
}

func PaletteNames() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// RGBA parses a hex color. Unparseable input yields opaque white.
func RGBA(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// Gradient returns n colors blended from Tail to Head in CIE-Lab.
func (p Palette) Gradient(n int) []color.RGBA {
	if n < 1 {
		n = 1
	}
	tail, err := colorful.Hex(p.Tail)
	if err != nil {
		tail = colorful.Color{R: 1, G: 1, B: 1}
	}
	head, err := colorful.Hex(p.Head)
	if err != nil {
		head = colorful.Color{R: 1, G: 1, B: 1}
	}
	out := make([]color.RGBA, n)
	for i := range out {
		t := 1.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r, g, b := tail.BlendLab(head, t).Clamped().RGB255()
		out[i] = color.RGBA{r, g, b, 255}
	}
	return out
}
