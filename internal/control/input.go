package control

// Key is a backend-neutral command key. Window backends map their physical
// keys onto these.
type Key uint8

const (
	KeyPanUp Key = iota
	KeyPanDown
	KeyPanLeft
	KeyPanRight
	KeyResetView
	KeyDepthSort
	KeyAxes
	KeyGrid
	KeyPointBigger
	KeyPointSmaller
	KeyTrailLonger
	KeyTrailShorter
	KeyClearTrail
	KeyPause
	KeyPalette
	KeyHUD
	KeyScreenshot
	KeyQuit
)

// KeySet is a set of keys.
type KeySet uint32

func (s KeySet) Has(k Key) bool    { return s&(1<<k) != 0 }
func (s KeySet) With(k Key) KeySet { return s | 1<<k }

func Keys(keys ...Key) (s KeySet) {
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Input is everything a backend observed during one frame.
type Input struct {
	DragX, DragY float64 // pointer motion while the orbit button is held
	Wheel        float64 // notches, positive zooms in
	Pressed      KeySet  // keys that went down this frame
	Held         KeySet  // keys currently down
	Close        bool    // the window asked to close
}
