package umd

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSolveKeplerResidual(t *testing.T) {
	// The returned E must satisfy Kepler's equation across the whole closed
	// eccentricity range and a full turn of mean anomaly.
	for e := 0.0; e <= 0.99; e += 0.03 {
		for M := 0.0; M < 2*math.Pi; M += 0.1 {
			E, _ := SolveKepler(M, e)
			residual := math.Abs(E - e*math.Sin(E) - M)
			if residual >= 1e-5 {
				t.Fatalf("e=%.2f M=%.2f: residual %.2e too large", e, M, residual)
			}
		}
	}
}

func TestSolveKeplerCircular(t *testing.T) {
	// With e = 0 Kepler's equation reduces to E = M.
	for _, M := range []float64{0, 0.5, math.Pi, 5.5} {
		E, converged := SolveKepler(M, 0)
		if !converged {
			t.Fatalf("M=%.2f: did not converge for e=0", M)
		}
		if !floats.EqualWithinAbs(E, M, 1e-12) {
			t.Fatalf("M=%.2f: expected E=M, got E=%.12f", M, E)
		}
	}
}

func TestSolveKeplerUnnormalizedInput(t *testing.T) {
	// Results must be invariant modulo 2π: no pre-normalization required.
	e := 0.3
	E0, _ := SolveKepler(1.2, e)
	E1, _ := SolveKepler(1.2+2*math.Pi, e)
	if !floats.EqualWithinAbs(E0+2*math.Pi, E1, 1e-9) {
		t.Fatalf("expected E(M+2π)=E(M)+2π, got %.12f and %.12f", E0, E1)
	}
	En, _ := SolveKepler(-1.2, e)
	if !floats.EqualWithinAbs(En, -E0, 1e-9) {
		t.Fatalf("expected odd symmetry, E(-M)=%.12f E(M)=%.12f", En, E0)
	}
}

func TestSolveKeplerCapIsBestEstimate(t *testing.T) {
	// A single iteration cannot converge at high eccentricity; the solver
	// must still return a usable estimate and report non-convergence.
	E, converged := SolveKeplerTol(3.0, 0.95, 1e-14, 1)
	if converged {
		t.Fatal("one iteration at e=0.95 should not converge to 1e-14")
	}
	if math.IsNaN(E) || math.IsInf(E, 0) {
		t.Fatalf("best estimate unusable: %f", E)
	}
	// And with the default cap it does converge.
	if _, converged = SolveKepler(3.0, 0.95); !converged {
		t.Fatal("expected convergence within the default cap")
	}
}
