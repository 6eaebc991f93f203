// Package control translates per-frame user input into camera and render
// configuration changes.
//
// Backends (raylib window, terminal) fill an [Input] each frame using the
// semantic [Key] values; [Controller.Apply] does the rest.
//
// # Key Bindings
//
//	drag   - Orbit (yaw/pitch)
//	wheel  - Zoom
//	arrows - Pan (held)
//	WASD   - Pan (held)
//	R      - Reset view
//	1 / 2  - Toggle axes / grid
//	3      - Toggle depth sorting
//	= / -  - Point size +/- 0.5
//	] / [  - Trail length +/- 5000
//	C      - Clear trail
//	Space  - Pause/Resume
//	T      - Cycle palette
//	H      - Toggle status line
//	P      - Screenshot
//	Q, Esc - Quit
package control
