package umd

import "math"

const (
	// KeplerTolerance is the default absolute convergence tolerance on the
	// eccentric anomaly correction.
	KeplerTolerance = 1e-6
	// KeplerMaxIter is the default Newton-Raphson iteration cap.
	KeplerMaxIter = 30
)

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E with the default tolerance and iteration cap.
func SolveKepler(M, e float64) (E float64, converged bool) {
	return SolveKeplerTol(M, e, KeplerTolerance, KeplerMaxIter)
}

// SolveKeplerTol solves Kepler's equation via Newton-Raphson starting from
// E₀ = M. The denominator 1 - e·cos(E) stays bounded away from zero for
// e < 1, so the iteration cannot diverge on valid inputs. If the cap is hit
// the best estimate is returned with converged set to false; this is degraded
// accuracy, not a failure.
func SolveKeplerTol(M, e, tol float64, maxIter int) (E float64, converged bool) {
	E = M
	for iter := 0; iter < maxIter; iter++ {
		ΔE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= ΔE
		if math.Abs(ΔE) < tol {
			return E, true
		}
	}
	return E, false
}
