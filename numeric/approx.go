package numeric

import (
	"fmt"
	"math"
)

const (
	// DefaultEpsilon is the tolerance used by ApproximateFloat.
	DefaultEpsilon = 1e-10

	// DefaultMaxIterations bounds the Stern–Brocot search, counted in runs
	// of steps that move the same bound. Bounds grow at least as fast as
	// Fibonacci numbers from run to run, so int64 overflow comes first for
	// any input that needs more than about 90 runs.
	DefaultMaxIterations = 1 << 10
)

// Approximator finds a fraction within Epsilon of a float by Stern–Brocot
// search.
type Approximator struct {
	Epsilon       float64 // Maximum absolute error; 0 demands an exact hit
	MaxIterations int     // Cap on direction changes; <= 0 means DefaultMaxIterations
}

// Approximation is the outcome of a search.
type Approximation struct {
	Ratio      Ratio
	Error      float64 // |Ratio - x| as float64
	Iterations int     // Mediant steps taken
}

// DefaultApproximator returns an Approximator with DefaultEpsilon and
// DefaultMaxIterations.
func DefaultApproximator() Approximator {
	return Approximator{Epsilon: DefaultEpsilon, MaxIterations: DefaultMaxIterations}
}

// ApproximateFloat is FromFloat with DefaultEpsilon.
func ApproximateFloat(x float64) (Ratio, error) {
	return FromFloat(x, DefaultEpsilon)
}

// FromFloat returns a reduced fraction within epsilon of x.
func FromFloat(x, epsilon float64) (Ratio, error) {
	a, err := Approximator{Epsilon: epsilon}.Approximate(x)
	if err != nil {
		return Ratio{}, err
	}
	return a.Ratio, nil
}

// Approximate runs the search on |x| and reapplies the sign at the end.
//
// The search keeps a left bound (initially 0/1) and a right bound
// (initially 1/0). Each step forms their mediant, moves the bound on the
// side x lies on, and remembers the mediant with the smallest error seen.
// It stops once that error is at most Epsilon.
//
// Consecutive steps that move the same bound form a run: the j-th mediant
// of a run is bound + j*other. A run is taken at once, its length found by
// doubling and bisection. Mediants within a run close in on x, so the last
// one is the best of the run and the first one within Epsilon is found by
// bisection too. MaxIterations bounds the number of runs; Iterations
// reports the mediant steps.
func (a Approximator) Approximate(x float64) (Approximation, error) {
	if !isFinite(x) {
		return Approximation{}, fmt.Errorf("%w: %v", ErrNotFinite, x)
	}
	if math.IsNaN(a.Epsilon) || a.Epsilon < 0 {
		return Approximation{}, fmt.Errorf("%w: %v", ErrInvalidEpsilon, a.Epsilon)
	}
	limit := a.MaxIterations
	if limit <= 0 {
		limit = DefaultMaxIterations
	}

	xAbs := math.Abs(x)
	left, right := fraction{0, 1}, fraction{1, 0}
	best, bestErr := fraction{0, 1}, xAbs

	steps, runs := 0, 0
	for bestErr > a.Epsilon {
		if runs == limit {
			return Approximation{}, fmt.Errorf("%w: %v within %v after %d runs (best %d/%d)",
				ErrNoConvergence, x, a.Epsilon, runs, best.num, best.den)
		}
		runs++

		first, ok := left.plus(right, 1)
		if !ok {
			return Approximation{}, fmt.Errorf("%w: approximating %v", ErrArithmeticOverflow, x)
		}
		r := run{x: xAbs, from: left, step: right, moveLeft: !(xAbs < first.float())}
		if !r.moveLeft {
			r.from, r.step = right, left
		}

		k := r.length()
		end, _ := r.at(k)
		if e := math.Abs(end.float() - xAbs); e <= a.Epsilon {
			j := r.firstWithin(k, a.Epsilon)
			best, _ = r.at(j)
			bestErr = math.Abs(best.float() - xAbs)
			steps += int(j)
			break
		} else if e < bestErr {
			best, bestErr = end, e
		}
		steps += int(k)

		if r.moveLeft {
			left = end
		} else {
			right = end
		}
		if _, ok := r.at(k + 1); !ok {
			return Approximation{}, fmt.Errorf("%w: approximating %v", ErrArithmeticOverflow, x)
		}
	}

	if x < 0 {
		best.num = -best.num
	}
	r, err := NewRatio(best.num, best.den)
	if err != nil {
		return Approximation{}, err
	}
	return Approximation{Ratio: r, Error: bestErr, Iterations: steps}, nil
}

// fraction is an unreduced search bound; den may be 0 for 1/0.
type fraction struct{ num, den int64 }

func (f fraction) float() float64 { return float64(f.num) / float64(f.den) }

// plus returns f + k*g componentwise.
func (f fraction) plus(g fraction, k int64) (fraction, bool) {
	gn, ok1 := mulInt64(g.num, k)
	gd, ok2 := mulInt64(g.den, k)
	n, ok3 := addInt64(f.num, gn)
	d, ok4 := addInt64(f.den, gd)
	return fraction{n, d}, ok1 && ok2 && ok3 && ok4
}

// run is a sequence of steps that all move the same bound.
type run struct {
	x        float64
	from     fraction // the bound being moved
	step     fraction // the bound added on each step
	moveLeft bool
}

func (r run) at(j int64) (fraction, bool) { return r.from.plus(r.step, j) }

// onSide reports whether the j-th mediant still moves the same bound.
func (r run) onSide(j int64) bool {
	m, ok := r.at(j)
	if !ok {
		return false
	}
	if r.moveLeft {
		return !(r.x < m.float())
	}
	return r.x < m.float()
}

// length returns the number of steps in the run. The first step is known
// to be on side.
func (r run) length() int64 {
	lo, hi := int64(1), int64(2)
	for r.onSide(hi) {
		lo = hi
		if hi > math.MaxInt64/2 {
			hi = math.MaxInt64
			if r.onSide(hi) {
				return hi
			}
			break
		}
		hi *= 2
	}
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if r.onSide(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// firstWithin returns the smallest j in [1, k] whose mediant is within eps
// of x. The k-th mediant must be.
func (r run) firstWithin(k int64, eps float64) int64 {
	lo, hi := int64(1), k
	for lo < hi {
		mid := lo + (hi-lo)/2
		m, _ := r.at(mid)
		if math.Abs(m.float()-r.x) <= eps {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
