package control

import (
	"github.com/san-kum/trailviz/internal/config"
	"github.com/san-kum/trailviz/internal/viz"
)

const (
	// DefaultPanStep is the pan distance in pixels per frame a pan key is held.
	DefaultPanStep = 5.0

	PointSizeStep = 0.5
	TrailStep     = 5000
)

// Actions are requests the controller cannot carry out itself.
type Actions struct {
	ClearTrail bool
	Screenshot bool
	Quit       bool
}

// Controller maps one frame of input onto the camera and render config.
type Controller struct {
	PanStep float64
}

func New() *Controller {
	return &Controller{PanStep: DefaultPanStep}
}

// Apply mutates cam and r according to in. Panning moves a fixed step per
// frame, so its speed follows the display refresh rate. Left and up move the
// scene toward the right and bottom of the screen.
func (c *Controller) Apply(in Input, cam *viz.Camera, r *config.Render) Actions {
	if in.DragX != 0 || in.DragY != 0 {
		cam.Orbit(in.DragX, in.DragY)
	}
	if in.Wheel != 0 {
		cam.Wheel(in.Wheel)
	}

	var dx, dy float64
	if in.Held.Has(KeyPanLeft) {
		dx += c.PanStep
	}
	if in.Held.Has(KeyPanRight) {
		dx -= c.PanStep
	}
	if in.Held.Has(KeyPanUp) {
		dy += c.PanStep
	}
	if in.Held.Has(KeyPanDown) {
		dy -= c.PanStep
	}
	if dx != 0 || dy != 0 {
		cam.Pan(dx, dy)
	}

	p := in.Pressed
	if p.Has(KeyResetView) {
		cam.Reset()
	}
	if p.Has(KeyDepthSort) {
		cam.ToggleDepthSort()
	}
	if p.Has(KeyAxes) {
		r.ShowAxes = !r.ShowAxes
	}
	if p.Has(KeyGrid) {
		r.ShowGrid = !r.ShowGrid
	}
	if p.Has(KeyHUD) {
		r.ShowHUD = !r.ShowHUD
	}
	if p.Has(KeyPause) {
		r.Paused = !r.Paused
	}
	if p.Has(KeyPalette) {
		r.Palette = viz.NextPalette(r.Palette).Name
	}
	if p.Has(KeyPointBigger) {
		r.SetPointSize(r.PointSize + PointSizeStep)
	}
	if p.Has(KeyPointSmaller) {
		r.SetPointSize(r.PointSize - PointSizeStep)
	}
	if p.Has(KeyTrailLonger) {
		r.SetMaxPoints(r.MaxPoints + TrailStep)
	}
	if p.Has(KeyTrailShorter) {
		r.SetMaxPoints(r.MaxPoints - TrailStep)
	}

	return Actions{
		ClearTrail: p.Has(KeyClearTrail),
		Screenshot: p.Has(KeyScreenshot),
		Quit:       p.Has(KeyQuit) || in.Close,
	}
}
