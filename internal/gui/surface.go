package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/trailviz/internal/viz"
)

// Surface draws onto the raylib backbuffer between BeginDrawing and
// EndDrawing.
type Surface struct{}

func toRL(c color.RGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

func vec(p viz.ScreenPoint) rl.Vector2 { return rl.NewVector2(float32(p.X), float32(p.Y)) }

func (Surface) Clear(c color.RGBA) { rl.ClearBackground(toRL(c)) }

func (Surface) Line(a, b viz.ScreenPoint, c color.RGBA) {
	rl.DrawLineV(vec(a), vec(b), toRL(c))
}

// Dot draws a filled circle of the given radius centered on p.
func (Surface) Dot(p viz.ScreenPoint, radius float64, c color.RGBA) {
	rl.DrawCircleV(vec(p), float32(radius), toRL(c))
}
