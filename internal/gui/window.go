package gui

import (
	"errors"
	"fmt"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/trailviz/internal/app"
	"github.com/san-kum/trailviz/internal/config"
	"github.com/san-kum/trailviz/internal/control"
	"github.com/san-kum/trailviz/internal/dynamo"
	"github.com/san-kum/trailviz/internal/viz"
)

const (
	fontSize    = 18
	textMargin  = 12
	textSpacing = 1
)

// Window is the raylib frontend: one resizable, vsync-paced window.
type Window struct {
	surface Surface
	font    rl.Font
	hasFont bool
	text    rl.Color
}

// initWindow opens the raylib window described by cfg with vsync pacing and
// no exit key, so Esc reaches the input mapping.
func initWindow(cfg config.WindowConfig) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	rl.SetExitKey(0)
}

// loadFont loads the status-line font. A missing file yields ErrNoFont.
func loadFont(path string) (rl.Font, error) {
	if path == "" {
		return rl.Font{}, dynamo.ErrNoFont
	}
	if _, err := os.Stat(path); err != nil {
		return rl.Font{}, fmt.Errorf("%w: %v", dynamo.ErrNoFont, err)
	}
	font := rl.LoadFontEx(path, fontSize*2, nil, 0)
	if font.Texture.ID == 0 {
		return rl.Font{}, fmt.Errorf("%w: %s", dynamo.ErrNoFont, path)
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, nil
}

// Open creates the window. It must be paired with Close.
func Open(cfg config.WindowConfig, palette viz.Palette) *Window {
	initWindow(cfg)
	w := &Window{text: toRL(viz.RGBA(palette.Text))}
	font, err := loadFont(cfg.Font)
	if err != nil {
		log.Printf("status line disabled: %v", err)
	} else {
		w.font, w.hasFont = font, true
	}
	return w
}

func (w *Window) Close() {
	if w.hasFont {
		rl.UnloadFont(w.font)
	}
	rl.CloseWindow()
}

func (w *Window) ShouldClose() bool  { return rl.WindowShouldClose() }
func (w *Window) FrameTime() float64 { return float64(rl.GetFrameTime()) }

func (w *Window) Viewport() viz.Viewport {
	return viz.Viewport{W: float64(rl.GetScreenWidth()), H: float64(rl.GetScreenHeight())}
}

func (w *Window) Poll() control.Input {
	in := control.Input{
		Wheel:   float64(rl.GetMouseWheelMove()),
		Pressed: pressedKeys(),
		Held:    heldKeys(),
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		in.DragX, in.DragY = float64(d.X), float64(d.Y)
	}
	return in
}

func (w *Window) Begin() viz.Surface {
	rl.BeginDrawing()
	return &w.surface
}

func (w *Window) Text(line string) {
	if !w.hasFont {
		return
	}
	rl.DrawTextEx(w.font, line, rl.NewVector2(textMargin, textMargin), fontSize, textSpacing, w.text)
}

func (w *Window) End() { rl.EndDrawing() }

// Screenshot writes the current framebuffer to name in the working
// directory, overwriting any existing file.
func (w *Window) Screenshot(name string) error {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)
	if !rl.ExportImage(*img, name) {
		return errors.New("gui: could not write " + name)
	}
	return nil
}

// Run opens a window for fw, drives it until closed and tears it down.
func Run(fw *app.Framework) {
	cfg := fw.Config()
	w := Open(cfg.Window, viz.GetPalette(cfg.Render.Palette))
	defer w.Close()
	fw.Run(w)
}
