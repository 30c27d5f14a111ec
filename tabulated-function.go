package tabulatedfunction

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Function is the read-only surface of a one-dimensional function defined
// on a closed domain.
type Function interface {
	LeftBorder() float64
	RightBorder() float64
	ValueAt(x float64) float64
	PointCount() int
}

var _ Function = (*TabulatedFunction)(nil)

// TabulatedFunction is a function sampled at strictly increasing x values
// and evaluated by linear interpolation between neighbouring samples.
//
// len(p) is the number of points, cap(p) the backing capacity. The x values
// of p are strictly ascending and no two of them are within epsilon of each
// other. There are always at least two points.
//
// A TabulatedFunction is not safe for concurrent use.
type TabulatedFunction struct {
	p       []Point
	epsilon float64
}

// NewFromPoints creates a table holding copies of points, which must be at
// least two and strictly ascending in x.
func NewFromPoints(points []Point, opts ...Option) (*TabulatedFunction, error) {
	c, err := newConfig(pointsSlack, opts)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidArgument, len(points))
	}
	if err := checkAscending(points, c.epsilon); err != nil {
		return nil, err
	}

	p := make([]Point, len(points), len(points)+c.slack)
	copy(p, points)
	return &TabulatedFunction{p: p, epsilon: c.epsilon}, nil
}

// NewUniform creates a table of pointCount points evenly spaced over
// [leftX, rightX] with all y values zero.
func NewUniform(leftX, rightX float64, pointCount int, opts ...Option) (*TabulatedFunction, error) {
	if pointCount < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrInvalidArgument, pointCount)
	}
	return newGrid(leftX, rightX, make([]float64, pointCount), opts)
}

// NewFromValues creates a table with x values evenly spaced over
// [leftX, rightX] and y values taken from values.
func NewFromValues(leftX, rightX float64, values []float64, opts ...Option) (*TabulatedFunction, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: values must not be empty", ErrInvalidArgument)
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 values, got %d", ErrInvalidArgument, len(values))
	}
	return newGrid(leftX, rightX, values, opts)
}

func newGrid(leftX, rightX float64, values []float64, opts []Option) (*TabulatedFunction, error) {
	c, err := newConfig(gridSlack, opts)
	if err != nil {
		return nil, err
	}
	if !(leftX < rightX) || math.IsInf(leftX, 0) || math.IsInf(rightX, 0) {
		return nil, fmt.Errorf("%w: left border %v must be finite and less than right border %v",
			ErrInvalidArgument, leftX, rightX)
	}

	xs := floats.Span(make([]float64, len(values)), leftX, rightX)
	p := make([]Point, len(values), len(values)+c.slack)
	for i := range p {
		p[i] = Point{X: xs[i], Y: values[i]}
	}
	if err := checkAscending(p, c.epsilon); err != nil {
		return nil, err
	}
	return &TabulatedFunction{p: p, epsilon: c.epsilon}, nil
}

func checkAscending(points []Point, epsilon float64) error {
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1].X, points[i].X
		if !(cur > prev) || scalar.EqualWithinAbs(cur, prev, epsilon) {
			return fmt.Errorf("%w: points %d (x=%v) and %d (x=%v) are not strictly ascending",
				ErrInvalidArgument, i-1, prev, i, cur)
		}
	}
	return nil
}

func (f *TabulatedFunction) LeftBorder() float64 {
	return f.p[0].X
}

func (f *TabulatedFunction) RightBorder() float64 {
	return f.p[len(f.p)-1].X
}

func (f *TabulatedFunction) PointCount() int {
	return len(f.p)
}

// Capacity returns the number of points the table can hold before its
// storage has to grow.
func (f *TabulatedFunction) Capacity() int {
	return cap(f.p)
}

// Epsilon returns the tolerance under which two x values are the same.
func (f *TabulatedFunction) Epsilon() float64 {
	return f.epsilon
}

// ValueAt returns the value of the function at x, or NaN if x lies outside
// [LeftBorder, RightBorder]. If x is within epsilon of a stored x, the
// stored y is returned unchanged.
func (f *TabulatedFunction) ValueAt(x float64) float64 {
	if math.IsNaN(x) || x < f.LeftBorder() || x > f.RightBorder() {
		return math.NaN()
	}

	// k is the first index with p[k].X >= x; x <= RightBorder keeps it in range.
	k := f.search(x)
	if f.same(f.p[k].X, x) {
		return f.p[k].Y
	}
	if k > 0 && f.same(f.p[k-1].X, x) {
		return f.p[k-1].Y
	}
	// k == 0 means x == LeftBorder, caught above.
	return interpolate(f.p[k-1], f.p[k], x)
}

func interpolate(a, b Point, x float64) float64 {
	return a.Y + (b.Y-a.Y)*(x-a.X)/(b.X-a.X)
}

// search returns the first index whose x is not less than x.
func (f *TabulatedFunction) search(x float64) int {
	k, _ := slices.BinarySearchFunc(f.p, x, func(p Point, x float64) int {
		return cmp.Compare(p.X, x)
	})
	return k
}

func (f *TabulatedFunction) same(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, f.epsilon)
}

func (f *TabulatedFunction) checkIndex(i int) error {
	if i < 0 || i >= len(f.p) {
		return &IndexError{Index: i, Count: len(f.p)}
	}
	return nil
}

// Point returns a copy of the i-th point.
func (f *TabulatedFunction) Point(i int) (Point, error) {
	if err := f.checkIndex(i); err != nil {
		return Point{}, err
	}
	return f.p[i], nil
}

func (f *TabulatedFunction) X(i int) (float64, error) {
	if err := f.checkIndex(i); err != nil {
		return 0, err
	}
	return f.p[i].X, nil
}

func (f *TabulatedFunction) Y(i int) (float64, error) {
	if err := f.checkIndex(i); err != nil {
		return 0, err
	}
	return f.p[i].Y, nil
}

// Points returns a copy of all points in ascending x order.
func (f *TabulatedFunction) Points() []Point {
	return slices.Clone(f.p)
}

// fits reports whether x can replace the x of point i without breaking the
// order. The first point has no lower bound and the last no upper bound.
func (f *TabulatedFunction) fits(i int, x float64) bool {
	lo, hi := math.Inf(-1), math.Inf(1)
	if i > 0 {
		lo = f.p[i-1].X
	}
	if i < len(f.p)-1 {
		hi = f.p[i+1].X
	}
	if !(x > lo && x < hi) {
		return false
	}
	return !f.same(x, lo) && !f.same(x, hi)
}

// SetPoint replaces the i-th point with a copy of p. If p.X does not fit
// strictly between the neighbouring points, the table is left unchanged and
// no error is returned.
func (f *TabulatedFunction) SetPoint(i int, p Point) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	if !f.fits(i, p.X) {
		if glog.V(3) {
			glog.Infof("tabulatedfunction: ignoring point %v at index %d", p, i)
		}
		return nil
	}
	f.p[i] = p
	return nil
}

// SetX moves the i-th point to x, keeping its y. Unlike SetPoint it fails
// with ErrInvalidPointPlacement if x does not fit between the neighbours.
func (f *TabulatedFunction) SetX(i int, x float64) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	if !f.fits(i, x) {
		return fmt.Errorf("%w: x=%v does not fit at index %d", ErrInvalidPointPlacement, x, i)
	}
	f.p[i].X = x
	return nil
}

func (f *TabulatedFunction) SetY(i int, y float64) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.p[i].Y = y
	return nil
}

// DeletePoint removes the i-th point. At least three points must be
// present. The capacity is not reduced.
func (f *TabulatedFunction) DeletePoint(i int) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	if len(f.p) < 3 {
		return fmt.Errorf("%w: cannot delete from a table of %d points", ErrInvalidState, len(f.p))
	}
	// slices.Delete zeroes the vacated tail slot.
	f.p = slices.Delete(f.p, i, i+1)
	return nil
}

// AddPoint inserts a copy of p at its place in x order. It fails with
// ErrInvalidPointPlacement if p.X is NaN or within epsilon of a stored x.
func (f *TabulatedFunction) AddPoint(p Point) error {
	if math.IsNaN(p.X) {
		return fmt.Errorf("%w: x is NaN", ErrInvalidPointPlacement)
	}
	i := f.search(p.X)
	if i < len(f.p) && f.same(f.p[i].X, p.X) {
		return fmt.Errorf("%w: x=%v duplicates point %d", ErrInvalidPointPlacement, p.X, i)
	}
	if i > 0 && f.same(f.p[i-1].X, p.X) {
		return fmt.Errorf("%w: x=%v duplicates point %d", ErrInvalidPointPlacement, p.X, i-1)
	}

	if len(f.p) == cap(f.p) {
		f.grow()
	}
	f.p = slices.Insert(f.p, i, p)
	return nil
}

// grow doubles the backing capacity.
func (f *TabulatedFunction) grow() {
	n := 2 * cap(f.p)
	if n == 0 {
		n = 2
	}
	if glog.V(2) {
		glog.Infof("tabulatedfunction: growing capacity %d -> %d", cap(f.p), n)
	}
	p := make([]Point, len(f.p), n)
	copy(p, f.p)
	f.p = p
}
