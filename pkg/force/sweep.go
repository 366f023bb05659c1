package force

import (
	"math"

	"github.com/sstucker/particles/pkg/errors"
)

// MaxSweepPoints bounds the number of samples a single [Sweep] may produce.
const MaxSweepPoints = 1 << 20

// Point is one sample of a profile sweep.
type Point struct {
	Distance float64 `json:"distance"`
	Force    float64 `json:"force"`
	Zone     Zone    `json:"-"`
}

// Sweep evaluates p at from, from+step, ... up to and including to.
// Samples are returned in ascending distance order.
func Sweep(p Params, from, to, step float64) ([]Point, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("from", from); err != nil {
		return nil, err
	}
	if err := errors.ValidateFinite("to", to); err != nil {
		return nil, err
	}
	if err := errors.ValidateFinite("step", step); err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "step must be > 0, got %g", step)
	}
	if to < from {
		return nil, errors.New(errors.ErrCodeInvalidInput, "sweep end %g is before start %g", to, from)
	}

	// The epsilon keeps an exact multiple of step from being lost to rounding.
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	if n > MaxSweepPoints {
		return nil, errors.New(errors.ErrCodeInvalidInput, "sweep of %d points exceeds limit of %d", n, MaxSweepPoints)
	}

	pts := make([]Point, n)
	for i := range pts {
		d := from + float64(i)*step
		pts[i] = Point{Distance: d, Force: p.eval(d), Zone: p.ZoneOf(d)}
	}
	return pts, nil
}

// Extent returns the smallest and largest force values in pts.
// It returns zeros for an empty slice.
func Extent(pts []Point) (lo, hi float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	lo, hi = pts[0].Force, pts[0].Force
	for _, pt := range pts[1:] {
		lo = min(lo, pt.Force)
		hi = max(hi, pt.Force)
	}
	return lo, hi
}
