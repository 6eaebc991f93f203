package app_test

import (
	"errors"
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trailviz/internal/app"
	"github.com/san-kum/trailviz/internal/config"
	"github.com/san-kum/trailviz/internal/control"
	"github.com/san-kum/trailviz/internal/dynamo"
	"github.com/san-kum/trailviz/internal/integrators"
	"github.com/san-kum/trailviz/internal/sim"
	"github.com/san-kum/trailviz/internal/viz"
)

type nullSurface struct{ dots int }

func (n *nullSurface) Clear(color.RGBA)                         {}
func (n *nullSurface) Line(_, _ viz.ScreenPoint, _ color.RGBA)  {}
func (n *nullSurface) Dot(viz.ScreenPoint, float64, color.RGBA) { n.dots++ }

// fakeWindow plays back a scripted list of inputs, then asks to close.
type fakeWindow struct {
	inputs      []control.Input
	frame       int
	dt          float64
	surface     nullSurface
	texts       []string
	ended       int
	screenshots []string
	shotErr     error
}

func (w *fakeWindow) ShouldClose() bool  { return w.frame >= len(w.inputs) }
func (w *fakeWindow) FrameTime() float64 { return w.dt }
func (w *fakeWindow) Poll() control.Input {
	in := w.inputs[w.frame]
	w.frame++
	return in
}
func (w *fakeWindow) Viewport() viz.Viewport { return viz.Viewport{W: 640, H: 480} }
func (w *fakeWindow) Begin() viz.Surface     { return &w.surface }
func (w *fakeWindow) Text(line string)       { w.texts = append(w.texts, line) }
func (w *fakeWindow) End()                   { w.ended++ }
func (w *fakeWindow) Screenshot(name string) error {
	w.screenshots = append(w.screenshots, name)
	return w.shotErr
}

var drift = dynamo.DeriveFunc(func(dynamo.Vec3) dynamo.Vec3 { return dynamo.Vec3{X: 1} })

var _ = Describe("Framework", func() {
	var (
		cfg *config.Config
		src *sim.Stepper
		fw  *app.Framework
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		src = sim.NewStepper(drift, integrators.NewRK4(), dynamo.Vec3{}, 0.005)
		fw = app.New(cfg, src)
	})

	Describe("Update", func() {
		It("appends one point per sub-step", func() {
			fw.Update(0.02, control.Input{})
			Expect(fw.Trail().Len()).To(Equal(4))
		})

		It("clamps a stalled frame to the frame time ceiling", func() {
			fw.Update(2.0, control.Input{})
			Expect(fw.Trail().Len()).To(Equal(src.Steps(0.033)))
		})

		It("shows exactly one point when started paused", func() {
			cfg.Render.Paused = true
			fw.Update(0.016, control.Input{})
			fw.Update(0.016, control.Input{})
			Expect(fw.Trail().Len()).To(Equal(1))
			Expect(src.Time()).To(BeZero())
		})

		It("adds nothing while paused after running", func() {
			fw.Update(0.02, control.Input{})
			fw.Update(0.02, control.Input{Pressed: control.Keys(control.KeyPause)})
			fw.Update(0.02, control.Input{})
			Expect(fw.Trail().Len()).To(Equal(4))
		})

		It("clears the trail on request before adding new points", func() {
			fw.Update(0.02, control.Input{})
			fw.Update(0.01, control.Input{Pressed: control.Keys(control.KeyClearTrail)})
			Expect(fw.Trail().Len()).To(Equal(2))
		})

		It("follows capacity changes from the keyboard", func() {
			fw.Update(0.01, control.Input{Pressed: control.Keys(control.KeyTrailShorter)})
			Expect(fw.Trail().Cap()).To(Equal(config.DefaultMaxPoints - 5000))
		})

		It("keeps an oversized batch whole across empty frames", func() {
			burst := true
			cfg.Render.MaxPoints = 2000
			fw = app.New(cfg, sim.SourceFunc(func(_ float64, dst []dynamo.Vec3) []dynamo.Vec3 {
				if burst {
					burst = false
					for i := 0; i < 3000; i++ {
						dst = append(dst, dynamo.Vec3{X: float64(i)})
					}
				}
				return dst
			}))

			fw.Update(0.02, control.Input{})
			Expect(fw.Trail().Len()).To(Equal(3000))

			fw.Update(0.02, control.Input{Pressed: control.Keys(control.KeyPause)})
			fw.Update(0.02, control.Input{})
			Expect(fw.Trail().Cap()).To(Equal(2000))
			Expect(fw.Trail().Len()).To(Equal(3000))
		})
	})

	Describe("Configure", func() {
		It("clamps values and resizes the trail", func() {
			fw.Configure(app.Options{Width: 800, Height: 600, MaxPoints: 10, PointSize: 99, Palette: "ocean", Title: "demo"})
			Expect(cfg.Window.Width).To(Equal(800))
			Expect(cfg.Window.Title).To(Equal("demo"))
			Expect(cfg.Render.PointSize).To(Equal(config.MaxPointSize))
			Expect(fw.Trail().Cap()).To(Equal(config.MinMaxPoints))
			Expect(fw.Style().Palette.Name).To(Equal("ocean"))
		})

		It("keeps settings for zero options", func() {
			fw.Configure(app.Options{})
			Expect(cfg.Window.Width).To(Equal(config.DefaultWidth))
			Expect(cfg.Render.MaxPoints).To(Equal(config.DefaultMaxPoints))
		})
	})

	It("restores the default camera on ResetView", func() {
		cfg.Render.DepthSort = true
		fw = app.New(cfg, src)
		Expect(fw.Camera().DepthSort).To(BeTrue())

		fw.Update(0.01, control.Input{DragX: 50, DragY: 20, Wheel: 3, Held: control.Keys(control.KeyPanLeft)})
		fw.ResetView()
		Expect(*fw.Camera()).To(Equal(viz.Camera{Yaw: 0.8, Pitch: 0.35, Zoom: 130}))
	})

	Describe("Run", func() {
		It("renders every frame and stops when the window closes", func() {
			win := &fakeWindow{dt: 0.01, inputs: make([]control.Input, 5)}
			fw.Run(win)
			Expect(win.ended).To(Equal(5))
			Expect(win.texts).To(HaveLen(5))
			Expect(win.texts[4]).To(ContainSubstring("lorenz"))
			Expect(win.surface.dots).To(Equal(2 + 4 + 6 + 8 + 10))
		})

		It("finishes the current frame then stops on quit", func() {
			inputs := make([]control.Input, 5)
			inputs[1].Pressed = control.Keys(control.KeyQuit)
			win := &fakeWindow{dt: 0.01, inputs: inputs}
			fw.Run(win)
			Expect(win.ended).To(Equal(2))
		})

		It("skips the status line when the HUD is hidden", func() {
			cfg.Render.ShowHUD = false
			win := &fakeWindow{dt: 0.01, inputs: make([]control.Input, 2)}
			fw.Run(win)
			Expect(win.texts).To(BeEmpty())
		})

		It("names screenshots by elapsed milliseconds and survives failures", func() {
			inputs := make([]control.Input, 3)
			inputs[2].Pressed = control.Keys(control.KeyScreenshot)
			win := &fakeWindow{dt: 0.25, inputs: inputs, shotErr: errors.New("read-only")}
			fw.Run(win)
			Expect(win.screenshots).To(Equal([]string{"750.png"}))
			Expect(win.ended).To(Equal(3))
		})
	})
})
