package viz

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/trailviz/internal/dynamo"
)

type recordSurface struct {
	cleared int
	lines   int
	dots    []ScreenPoint
	colors  []color.RGBA
}

func (r *recordSurface) Clear(color.RGBA)                    { r.cleared++ }
func (r *recordSurface) Line(_, _ ScreenPoint, _ color.RGBA) { r.lines++ }
func (r *recordSurface) Dot(p ScreenPoint, _ float64, c color.RGBA) {
	r.dots = append(r.dots, p)
	r.colors = append(r.colors, c)
}

func randomPoints(n int, seed int64) []dynamo.Vec3 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]dynamo.Vec3, n)
	for i := range pts {
		pts[i] = dynamo.Vec3{X: rng.Float64()*4 - 2, Y: rng.Float64()*4 - 2, Z: rng.Float64()*4 - 2}
	}
	return pts
}

func TestOrderUnsortedKeepsInsertionOrder(t *testing.T) {
	r := NewRenderer()
	pts := randomPoints(50, 3)
	order := r.Order(pts, NewCamera(), vp)
	for i, p := range order {
		if p.Index != i {
			t.Fatalf("position %d holds index %d", i, p.Index)
		}
	}
}

func TestOrderDepthSortedIsFarthestFirst(t *testing.T) {
	r := NewRenderer()
	cam := NewCamera()
	cam.DepthSort = true
	for seed := int64(0); seed < 20; seed++ {
		order := r.Order(randomPoints(500, seed), cam, vp)
		for i := 1; i < len(order); i++ {
			if order[i].Depth > order[i-1].Depth {
				t.Fatalf("seed %d: depth increases at %d (%f > %f)", seed, i, order[i].Depth, order[i-1].Depth)
			}
		}
	}
}

func TestDrawGuides(t *testing.T) {
	tests := []struct {
		name      string
		axes      bool
		grid      bool
		wantLines int
	}{
		{"none", false, false, 0},
		{"axes", true, false, 3 + 4*3},
		{"grid", false, true, 2 * 25},
		{"both", true, true, 15 + 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &recordSurface{}
			NewRenderer().Draw(s, nil, NewCamera(), vp, Style{ShowAxes: tt.axes, ShowGrid: tt.grid, Palette: PaletteMono})
			if s.lines != tt.wantLines {
				t.Errorf("lines = %d, want %d", s.lines, tt.wantLines)
			}
			if s.cleared != 1 {
				t.Errorf("expected one clear, got %d", s.cleared)
			}
		})
	}
}

func TestGuideExtents(t *testing.T) {
	segs := guides(Style{ShowAxes: true, ShowGrid: true, Palette: PaletteMono})
	var maxGrid, maxAxis float64
	for _, sg := range segs[:50] {
		if sg.a.Y != 0 || sg.b.Y != 0 {
			t.Fatalf("grid segment off the ground plane: %+v", sg)
		}
		maxGrid = max(maxGrid, math.Abs(sg.a.X), math.Abs(sg.b.Z))
	}
	for _, sg := range segs[50:53] {
		maxAxis = max(maxAxis, math.Abs(sg.a.X+sg.a.Y+sg.a.Z), math.Abs(sg.b.X+sg.b.Y+sg.b.Z))
	}
	if maxGrid != 12 || maxAxis != 2 {
		t.Errorf("grid extent = %v, axis extent = %v, want 12 and 2", maxGrid, maxAxis)
	}
	// First X tick sits at x=-2.
	if tick := segs[53]; tick.a.X != -2 || tick.b.X != -2 || tick.b.Y-tick.a.Y != 0.1 {
		t.Errorf("unexpected tick %+v", tick)
	}
}

func TestDrawColorsByAge(t *testing.T) {
	s := &recordSurface{}
	pts := randomPoints(10, 1)
	NewRenderer().Draw(s, pts, NewCamera(), vp, Style{PointSize: 2, Palette: PaletteCyberpunk})
	if len(s.dots) != 10 {
		t.Fatalf("expected 10 dots, got %d", len(s.dots))
	}
	if s.colors[0] != RGBA(PaletteCyberpunk.Tail) {
		t.Errorf("oldest point color %v, want tail %v", s.colors[0], RGBA(PaletteCyberpunk.Tail))
	}
	if s.colors[9] != RGBA(PaletteCyberpunk.Head) {
		t.Errorf("newest point color %v, want head %v", s.colors[9], RGBA(PaletteCyberpunk.Head))
	}
}

func TestDrawSortedDrawsNearestLast(t *testing.T) {
	near := dynamo.Vec3{Z: -2}
	far := dynamo.Vec3{Z: 2}
	cam := &Camera{Zoom: 100, DepthSort: true}

	s := &recordSurface{}
	NewRenderer().Draw(s, []dynamo.Vec3{near, far}, cam, vp, Style{Palette: PaletteMono})
	if s.dots[len(s.dots)-1].Depth != 3 {
		t.Errorf("expected the near point (depth 3) drawn last, got depth %f", s.dots[len(s.dots)-1].Depth)
	}

	cam.DepthSort = false
	s = &recordSurface{}
	NewRenderer().Draw(s, []dynamo.Vec3{near, far}, cam, vp, Style{Palette: PaletteMono})
	if s.dots[len(s.dots)-1].Depth != 7 {
		t.Errorf("unsorted mode should keep insertion order, got last depth %f", s.dots[len(s.dots)-1].Depth)
	}
}

func TestPalettes(t *testing.T) {
	if GetPalette("nope").Name != "mono" {
		t.Error("unknown palette should fall back to mono")
	}
	if NextPalette(Palettes[len(Palettes)-1].Name).Name != Palettes[0].Name {
		t.Error("NextPalette should wrap")
	}
	if got := RGBA("not-a-color"); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("bad hex should give white, got %v", got)
	}
	g := PaletteOcean.Gradient(3)
	if len(g) != 3 || g[0] != RGBA(PaletteOcean.Tail) || g[2] != RGBA(PaletteOcean.Head) {
		t.Errorf("gradient endpoints wrong: %v", g)
	}
}

func TestCanvasSurface(t *testing.T) {
	c := NewCanvas(10, 5)
	if got := c.Viewport(); got != (Viewport{W: 20, H: 20}) {
		t.Fatalf("viewport = %v", got)
	}
	red := color.RGBA{255, 0, 0, 255}
	c.Dot(ScreenPoint{X: 1, Y: 0}, 1, red)
	if c.Grid[0][0] != brailleBlank|0x8 {
		t.Errorf("cell = %U, want %U", c.Grid[0][0], brailleBlank|0x8)
	}
	if c.Colors[0][0] != red {
		t.Errorf("cell color = %v, want red", c.Colors[0][0])
	}

	c.Line(ScreenPoint{X: 0, Y: 19}, ScreenPoint{X: 19, Y: 19}, red)
	for col := 0; col < 10; col++ {
		if c.Grid[4][col] == brailleBlank {
			t.Errorf("bottom row cell %d not drawn", col)
		}
	}

	// Far off-canvas and out-of-range input is ignored.
	c.Dot(ScreenPoint{X: -5, Y: 3}, 1, red)
	c.Line(ScreenPoint{X: 0, Y: 0}, ScreenPoint{X: 1e12, Y: 0}, red)

	c.Clear(color.RGBA{})
	if c.Grid[0][0] != brailleBlank {
		t.Error("clear should blank the canvas")
	}
}
