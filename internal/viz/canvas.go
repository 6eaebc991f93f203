package viz

import (
	"image/color"
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a terminal Surface made of braille cells. Each cell holds 2x4
// sub-pixels and one color: the last color drawn into it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.RGBA
	Background    color.RGBA
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.RGBA, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.RGBA, w)
	}
	c.Clear(color.RGBA{})
	return c
}

// Viewport is the canvas size in sub-pixels.
func (c *Canvas) Viewport() Viewport {
	return Viewport{W: float64(c.Width * 2), H: float64(c.Height * 4)}
}

// Set lights the sub-pixel (x, y). The canvas is (Width*2) x (Height*4)
// sub-pixels; anything outside is dropped.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}

	col0 := x / 2
	row := y / 4
	if col0 >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col0] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col0] = col
}

func (c *Canvas) Clear(bg color.RGBA) {
	c.Background = bg
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Colors[i][j] = bg
		}
	}
}

// Line draws a line using Bresenham's algorithm.
func (c *Canvas) Line(a, b ScreenPoint, col color.RGBA) {
	if !finite(a) || !finite(b) {
		return
	}
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Dot sets a single sub-pixel; braille cells are too coarse for radii.
func (c *Canvas) Dot(p ScreenPoint, _ float64, col color.RGBA) {
	if !finite(p) {
		return
	}
	c.Set(int(math.Round(p.X)), int(math.Round(p.Y)), col)
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func finite(p ScreenPoint) bool {
	const limit = 1 << 16 // bounds Bresenham walks
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && math.Abs(p.X) < limit && math.Abs(p.Y) < limit
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
