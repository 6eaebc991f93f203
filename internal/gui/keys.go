package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/trailviz/internal/control"
)

var pressBindings = []struct {
	keys []int32
	key  control.Key
}{
	{[]int32{rl.KeyR}, control.KeyResetView},
	{[]int32{rl.KeyOne, rl.KeyKp1}, control.KeyAxes},
	{[]int32{rl.KeyTwo, rl.KeyKp2}, control.KeyGrid},
	{[]int32{rl.KeyThree, rl.KeyKp3}, control.KeyDepthSort},
	{[]int32{rl.KeyEqual, rl.KeyKpAdd}, control.KeyPointBigger},
	{[]int32{rl.KeyMinus, rl.KeyKpSubtract}, control.KeyPointSmaller},
	{[]int32{rl.KeyRightBracket}, control.KeyTrailLonger},
	{[]int32{rl.KeyLeftBracket}, control.KeyTrailShorter},
	{[]int32{rl.KeyC}, control.KeyClearTrail},
	{[]int32{rl.KeySpace}, control.KeyPause},
	{[]int32{rl.KeyT}, control.KeyPalette},
	{[]int32{rl.KeyH}, control.KeyHUD},
	{[]int32{rl.KeyP}, control.KeyScreenshot},
	{[]int32{rl.KeyQ, rl.KeyEscape}, control.KeyQuit},
}

var holdBindings = []struct {
	keys []int32
	key  control.Key
}{
	{[]int32{rl.KeyUp, rl.KeyW}, control.KeyPanUp},
	{[]int32{rl.KeyDown, rl.KeyS}, control.KeyPanDown},
	{[]int32{rl.KeyLeft, rl.KeyA}, control.KeyPanLeft},
	{[]int32{rl.KeyRight, rl.KeyD}, control.KeyPanRight},
}

func pressedKeys() (s control.KeySet) {
	for _, b := range pressBindings {
		for _, k := range b.keys {
			if rl.IsKeyPressed(k) {
				s = s.With(b.key)
			}
		}
	}
	return s
}

func heldKeys() (s control.KeySet) {
	for _, b := range holdBindings {
		for _, k := range b.keys {
			if rl.IsKeyDown(k) {
				s = s.With(b.key)
			}
		}
	}
	return s
}
