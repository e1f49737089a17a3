package mesh

import (
	"fmt"
	"math"
)

// Newton-Raphson defaults for the stretching ratio solve.
const (
	DefaultInitialRatio  = 1.1
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 1000
)

// ConvergenceError reports that the ratio solve exhausted its iteration
// budget without meeting tolerance. Callers must treat it as fatal for the
// axis rather than substitute a default ratio.
type ConvergenceError struct {
	DxMin      float64
	N          int
	Delta      float64
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("stretching ratio for dx_min=%v, n=%d, delta=%v failed to converge within %d iterations",
		e.DxMin, e.N, e.Delta, e.Iterations)
}

// SingularDerivativeError reports that the residual derivative collapsed
// during iteration, which usually means a degenerate parameter set: n too
// small, or delta too close to n*dx_min.
type SingularDerivativeError struct {
	Ratio float64
}

func (e *SingularDerivativeError) Error() string {
	return fmt.Sprintf("derivative too small at r=%v, iteration may not converge", e.Ratio)
}

// FindStretchRatio solves dx_min*(1-r^n)/(1-r) = delta for the common
// ratio r of a geometric run of n cell widths starting at dx_min and
// summing to delta, using Newton-Raphson from the default initial guess.
func FindStretchRatio(dxMin float64, n int, delta float64) (float64, error) {
	return findStretchRatio(dxMin, n, delta, DefaultInitialRatio, DefaultTolerance, DefaultMaxIterations)
}

// stretchResidual is the root function: the geometric sum of n widths
// starting at dxMin with ratio r, less the target length. The closed form
// has a removable singularity at r = 1; inside that band the residual is
// treated as infinite instead of dividing by a vanishing 1-r.
func stretchResidual(dxMin float64, n int, delta, r float64) float64 {
	if math.Abs(r-1) < 1e-10 {
		return math.Inf(1)
	}
	return dxMin*(1-math.Pow(r, float64(n)))/(1-r) - delta
}

// stretchResidualPrime is the analytic derivative of stretchResidual with
// respect to r, with the same singularity guard.
func stretchResidualPrime(dxMin float64, n int, r float64) float64 {
	if math.Abs(r-1) < 1e-10 {
		return math.Inf(1)
	}
	term1 := -dxMin * float64(n) * math.Pow(r, float64(n-1)) / (1 - r)
	term2 := dxMin * (1 - math.Pow(r, float64(n))) / ((1 - r) * (1 - r))
	return term1 + term2
}

func findStretchRatio(dxMin float64, n int, delta, r0, tol float64, maxIter int) (float64, error) {
	r := r0
	for i := 0; i < maxIter; i++ {
		fr := stretchResidual(dxMin, n, delta, r)
		if math.Abs(fr) < tol {
			return r, nil
		}
		fpr := stretchResidualPrime(dxMin, n, r)
		if math.Abs(fpr) < 1e-10 {
			return 0, &SingularDerivativeError{Ratio: r}
		}
		r -= fr / fpr
		// An iterate landing on the singularity is nudged past it so the
		// next evaluation stays finite.
		if math.Abs(r-1) < 1e-10 {
			r = 1 + 1e-5
		}
	}
	return 0, &ConvergenceError{DxMin: dxMin, N: n, Delta: delta, Iterations: maxIter}
}
