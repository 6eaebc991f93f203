package viz

import (
	"image/color"
	"sort"

	"github.com/san-kum/trailviz/internal/dynamo"
)

const (
	gridLines   = 12
	gridSpacing = 1.0
	axisHalf    = 2
	tickHalf    = 0.05
	gradientLUT = 256
)

// Surface is a 2D drawing target.
type Surface interface {
	Clear(c color.RGBA)
	Line(a, b ScreenPoint, c color.RGBA)
	Dot(p ScreenPoint, radius float64, c color.RGBA)
}

// Style holds the render-time toggles.
type Style struct {
	PointSize float64
	ShowAxes  bool
	ShowGrid  bool
	Palette   Palette
}

// Projected is a trail point on screen together with its position in the
// trail (0 is oldest).
type Projected struct {
	ScreenPoint
	Index int
}

type segment struct {
	a, b dynamo.Vec3
	c    color.RGBA
}

// Renderer draws the grid, axes and trail through a camera. It keeps
// scratch space between frames and is not safe for concurrent use.
type Renderer struct {
	order   []Projected
	lut     []color.RGBA
	lutName string
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw paints one frame onto s. The trail is drawn oldest-first, or
// farthest-first when the camera has depth sorting enabled.
func (r *Renderer) Draw(s Surface, pts []dynamo.Vec3, cam *Camera, vp Viewport, st Style) {
	s.Clear(RGBA(st.Palette.Background))

	for _, seg := range guides(st) {
		s.Line(cam.Project(seg.a, vp), cam.Project(seg.b, vp), seg.c)
	}

	lut := r.gradient(st.Palette)
	n := len(pts)
	for _, p := range r.Order(pts, cam, vp) {
		s.Dot(p.ScreenPoint, st.PointSize, lut[ageIndex(p.Index, n, len(lut))])
	}
}

// Order projects pts and returns them in draw order. The returned slice is
// reused by the next call.
func (r *Renderer) Order(pts []dynamo.Vec3, cam *Camera, vp Viewport) []Projected {
	r.order = r.order[:0]
	for i, p := range pts {
		r.order = append(r.order, Projected{ScreenPoint: cam.Project(p, vp), Index: i})
	}
	if cam.DepthSort {
		sort.SliceStable(r.order, func(i, j int) bool {
			return r.order[i].Depth > r.order[j].Depth
		})
	}
	return r.order
}

func (r *Renderer) gradient(p Palette) []color.RGBA {
	key := p.Name + p.Tail + p.Head
	if r.lut == nil || r.lutName != key {
		r.lut = p.Gradient(gradientLUT)
		r.lutName = key
	}
	return r.lut
}

func ageIndex(i, n, size int) int {
	if n <= 1 {
		return size - 1
	}
	return i * (size - 1) / (n - 1)
}

// guides returns the ground grid and axis segments enabled by st. The grid
// lies on the y=0 plane. Each axis spans -axisHalf..axisHalf with a tick at
// every nonzero integer.
func guides(st Style) []segment {
	var segs []segment
	if st.ShowGrid {
		gc := RGBA(st.Palette.Grid)
		edge := gridLines * gridSpacing
		for i := -gridLines; i <= gridLines; i++ {
			v := float64(i) * gridSpacing
			segs = append(segs,
				segment{dynamo.Vec3{X: -edge, Z: v}, dynamo.Vec3{X: edge, Z: v}, gc},
				segment{dynamo.Vec3{X: v, Z: -edge}, dynamo.Vec3{X: v, Z: edge}, gc},
			)
		}
	}
	if st.ShowAxes {
		xc, yc, zc := RGBA(st.Palette.AxisX), RGBA(st.Palette.AxisY), RGBA(st.Palette.AxisZ)
		segs = append(segs,
			segment{dynamo.Vec3{X: -axisHalf}, dynamo.Vec3{X: axisHalf}, xc},
			segment{dynamo.Vec3{Y: -axisHalf}, dynamo.Vec3{Y: axisHalf}, yc},
			segment{dynamo.Vec3{Z: -axisHalf}, dynamo.Vec3{Z: axisHalf}, zc},
		)
		for i := -axisHalf; i <= axisHalf; i++ {
			if i == 0 {
				continue
			}
			v := float64(i)
			segs = append(segs,
				segment{dynamo.Vec3{X: v, Y: -tickHalf}, dynamo.Vec3{X: v, Y: tickHalf}, xc},
				segment{dynamo.Vec3{X: -tickHalf, Y: v}, dynamo.Vec3{X: tickHalf, Y: v}, yc},
				segment{dynamo.Vec3{Y: -tickHalf, Z: v}, dynamo.Vec3{Y: tickHalf, Z: v}, zc},
			)
		}
	}
	return segs
}
