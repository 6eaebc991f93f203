package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/san-kum/trailviz/internal/viz"
)

// SVG is a viz.Surface that records drawing calls as SVG elements.
type SVG struct {
	vp    viz.Viewport
	bg    color.RGBA
	body  strings.Builder
	Elems int
}

func NewSVG(vp viz.Viewport) *SVG {
	return &SVG{vp: vp}
}

func (s *SVG) Viewport() viz.Viewport { return s.vp }

// Clear drops everything drawn so far.
func (s *SVG) Clear(bg color.RGBA) {
	s.bg = bg
	s.body.Reset()
	s.Elems = 0
}

func (s *SVG) Line(a, b viz.ScreenPoint, c color.RGBA) {
	if !finite(a) || !finite(b) {
		return
	}
	fmt.Fprintf(&s.body, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
		a.X, a.Y, b.X, b.Y, hex(c))
	s.Elems++
}

func (s *SVG) Dot(p viz.ScreenPoint, radius float64, c color.RGBA) {
	if !finite(p) {
		return
	}
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s"/>`+"\n",
		p.X, p.Y, radius, hex(c))
	s.Elems++
}

func (s *SVG) String() string {
	var sb strings.Builder
	header(&sb, s.vp.W, s.vp.H, s.bg)
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// Braille dot-to-bit mapping
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CanvasToSVG converts a Braille canvas to SVG, one circle per lit
// sub-pixel in the color of its cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4
	dotRadius := scale * 0.4

	var sb strings.Builder
	header(&sb, width, height, canvas.Background)

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := hex(canvas.Colors[row][col])

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", cx, cy, dotRadius, fill)
					}
				}
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func header(sb *strings.Builder, w, h float64, bg color.RGBA) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, hex(bg))
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func finite(p viz.ScreenPoint) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
