package trail_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trailviz/internal/dynamo"
	"github.com/san-kum/trailviz/internal/trail"
)

// seq returns n points whose X runs from start upward, so order is visible.
func seq(start, n int) []dynamo.Vec3 {
	out := make([]dynamo.Vec3, n)
	for i := range out {
		out[i] = dynamo.Vec3{X: float64(start + i)}
	}
	return out
}

func xs(pts []dynamo.Vec3) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.X
	}
	return out
}

var _ = Describe("Buffer", func() {
	var buf *trail.Buffer

	BeforeEach(func() {
		buf = trail.New(5)
	})

	It("starts empty", func() {
		Expect(buf.Len()).To(Equal(0))
		Expect(buf.Cap()).To(Equal(5))
		Expect(buf.Points()).To(BeEmpty())
	})

	It("keeps the last five of eight points across batches of two", func() {
		var sizes []int
		for i := 0; i < 4; i++ {
			buf.Append(seq(i*2, 2))
			sizes = append(sizes, buf.Len())
		}
		Expect(sizes).To(Equal([]int{2, 4, 5, 5}))
		Expect(xs(buf.Points())).To(Equal([]float64{3, 4, 5, 6, 7}))
	})

	It("evicts oldest points one batch at a time", func() {
		for i := 0; i < 7; i++ {
			buf.Append(seq(i, 1))
		}
		Expect(xs(buf.Points())).To(Equal([]float64{2, 3, 4, 5, 6}))
	})

	It("clears when the overflow reaches the current size", func() {
		buf.Append(seq(0, 3))
		buf.Append(seq(10, 5))
		Expect(xs(buf.Points())).To(Equal([]float64{10, 11, 12, 13, 14}))
	})

	Context("when a batch is larger than the capacity", func() {
		It("holds the whole batch until the next append trims it", func() {
			buf.Append(seq(0, 2))
			buf.Append(seq(100, 8))
			Expect(buf.Len()).To(Equal(8))
			Expect(xs(buf.Points())).To(Equal(xs(seq(100, 8))))

			buf.Append(seq(200, 1))
			Expect(buf.Len()).To(Equal(5))
			Expect(xs(buf.Points())).To(Equal([]float64{104, 105, 106, 107, 200}))

			buf.Append(seq(300, 2))
			Expect(xs(buf.Points())).To(Equal([]float64{106, 107, 200, 300, 301}))
		})

		It("is left alone by empty batches", func() {
			buf.Append(seq(100, 8))
			buf.Append(nil)
			buf.Append(seq(0, 0))
			Expect(buf.Len()).To(Equal(8))
			Expect(xs(buf.Points())).To(Equal(xs(seq(100, 8))))
		})
	})

	It("empties on Clear", func() {
		buf.Append(seq(0, 4))
		buf.Clear()
		Expect(buf.Len()).To(Equal(0))
		buf.Append(seq(9, 1))
		Expect(xs(buf.Points())).To(Equal([]float64{9}))
	})

	It("trims to a lowered capacity on the next append", func() {
		buf.Append(seq(0, 5))
		buf.SetCap(3)
		Expect(buf.Len()).To(Equal(5))
		buf.Append(seq(5, 1))
		Expect(xs(buf.Points())).To(Equal([]float64{3, 4, 5}))
	})

	It("never exceeds max(capacity, last non-empty batch) for random batch sizes", func() {
		rng := rand.New(rand.NewSource(7))
		for c := 1; c <= 20; c++ {
			b := trail.New(c)
			last := 0
			for i := 0; i < 200; i++ {
				n := rng.Intn(2*c + 1)
				b.Append(seq(i*100, n))
				if n > 0 {
					last = n
				}
				Expect(b.Len()).To(BeNumerically("<=", max(c, last)))
				if last <= c {
					Expect(b.Len()).To(BeNumerically("<=", c))
				}
			}
		}
	})
})
