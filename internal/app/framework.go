package app

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/san-kum/trailviz/internal/config"
	"github.com/san-kum/trailviz/internal/control"
	"github.com/san-kum/trailviz/internal/dynamo"
	"github.com/san-kum/trailviz/internal/sim"
	"github.com/san-kum/trailviz/internal/trail"
	"github.com/san-kum/trailviz/internal/viz"
)

// Options are the user-facing knobs of Configure. Zero values keep the
// current setting.
type Options struct {
	Width, Height int
	MaxPoints     int
	PointSize     float64
	Palette       string
	Title         string
}

// Framework ties a Source, the trail and the camera together and drives
// them one frame at a time.
type Framework struct {
	cfg   *config.Config
	src   sim.Source
	cam   *viz.Camera
	trail *trail.Buffer
	ctrl  *control.Controller
	rend  *viz.Renderer

	batch   []dynamo.Vec3
	elapsed float64 // wall time in seconds, unclamped
	lastDt  float64
}

func New(cfg *config.Config, src sim.Source) *Framework {
	cfg.Clamp()
	cam := viz.NewCamera()
	cam.DepthSort = cfg.Render.DepthSort
	return &Framework{
		cfg:   cfg,
		src:   src,
		cam:   cam,
		trail: trail.New(cfg.Render.MaxPoints),
		ctrl:  control.New(),
		rend:  viz.NewRenderer(),
	}
}

func (f *Framework) Configure(o Options) {
	if o.Width > 0 {
		f.cfg.Window.Width = o.Width
	}
	if o.Height > 0 {
		f.cfg.Window.Height = o.Height
	}
	if o.Title != "" {
		f.cfg.Window.Title = o.Title
	}
	if o.MaxPoints > 0 {
		f.cfg.Render.MaxPoints = o.MaxPoints
	}
	if o.PointSize > 0 {
		f.cfg.Render.PointSize = o.PointSize
	}
	if o.Palette != "" {
		f.cfg.Render.Palette = o.Palette
	}
	f.cfg.Clamp()
	f.trail.SetCap(f.cfg.Render.MaxPoints)
}

func (f *Framework) ResetView()  { f.cam.Reset() }
func (f *Framework) ClearTrail() { f.trail.Clear() }

func (f *Framework) Config() *config.Config { return f.cfg }
func (f *Framework) Camera() *viz.Camera    { return f.cam }
func (f *Framework) Trail() *trail.Buffer   { return f.trail }

// Update runs the input and simulation half of a frame: apply input, clamp
// the frame time, advance the source and append to the trail.
func (f *Framework) Update(frameDt float64, in control.Input) control.Actions {
	act := f.ctrl.Apply(in, f.cam, &f.cfg.Render)
	if act.ClearTrail {
		f.ClearTrail()
	}

	dt := math.Max(0, math.Min(frameDt, f.cfg.Sim.MaxFrameDt))
	if f.cfg.Render.Paused {
		dt = 0
	}
	f.batch = f.src.Advance(dt, f.batch[:0])
	f.trail.SetCap(f.cfg.Render.MaxPoints)
	if len(f.batch) > 0 {
		f.trail.Append(f.batch)
	}

	f.elapsed += math.Max(0, frameDt)
	f.lastDt = frameDt
	return act
}

// Render draws grid, axes and trail onto s.
func (f *Framework) Render(s viz.Surface, vp viz.Viewport) {
	f.rend.Draw(s, f.trail.Points(), f.cam, vp, f.Style())
}

func (f *Framework) Style() viz.Style {
	r := f.cfg.Render
	return viz.Style{
		PointSize: r.PointSize,
		ShowAxes:  r.ShowAxes,
		ShowGrid:  r.ShowGrid,
		Palette:   viz.GetPalette(r.Palette),
	}
}

// Status is the one-line HUD text.
func (f *Framework) Status() string {
	parts := []string{
		f.cfg.Model,
		fmt.Sprintf("%d/%d pts", f.trail.Len(), f.cfg.Render.MaxPoints),
	}
	if t, ok := f.src.(interface{ Time() float64 }); ok {
		parts = append(parts, fmt.Sprintf("t=%.2f", t.Time()))
	}
	if f.cam.DepthSort {
		parts = append(parts, "sorted")
	}
	if f.cfg.Render.Paused {
		parts = append(parts, "PAUSED")
	}
	if f.lastDt > 0 {
		parts = append(parts, fmt.Sprintf("%.0f fps", 1/f.lastDt))
	}
	return strings.Join(parts, "  |  ")
}

// ScreenshotName is the elapsed wall time in milliseconds. Two captures in
// the same millisecond share a name.
func (f *Framework) ScreenshotName() string {
	return fmt.Sprintf("%d.png", int64(f.elapsed*1000))
}

// Run drives frames until the window asks to close or a quit key is
// pressed. The current frame always completes first.
func (f *Framework) Run(win Window) {
	for !win.ShouldClose() {
		act := f.Update(win.FrameTime(), win.Poll())

		s := win.Begin()
		f.Render(s, win.Viewport())
		if f.cfg.Render.ShowHUD {
			win.Text(f.Status())
		}
		win.End()

		if act.Screenshot {
			if err := win.Screenshot(f.ScreenshotName()); err != nil {
				log.Printf("screenshot skipped: %v", err)
			}
		}
		if act.Quit {
			return
		}
	}
}
