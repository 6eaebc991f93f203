package app

import (
	"github.com/san-kum/trailviz/internal/control"
	"github.com/san-kum/trailviz/internal/viz"
)

// Window is the windowing and drawing service a frontend provides.
//
// Begin and End bracket one frame; End presents it and may block on vsync.
// Text draws the status line over the current frame and may be a no-op when
// no font is available.
type Window interface {
	ShouldClose() bool
	FrameTime() float64
	Poll() control.Input
	Viewport() viz.Viewport
	Begin() viz.Surface
	Text(line string)
	End()
	Screenshot(name string) error
}
