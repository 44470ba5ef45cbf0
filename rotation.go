package umd

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// PQW2System converts a given vector from the perifocal frame to the
// Uranus-centric system frame via the 3-1-3 composition R3(-Ω)·R1(-i)·R3(-ω).
// From Schaub and Junkins.
func PQW2System(i, ω, Ω float64, vI []float64) []float64 {
	var m mat64.Dense
	m.Mul(R3(-Ω), R1(-i))
	m.Mul(&m, R3(-ω))
	return MxV33(&m, vI)
}
