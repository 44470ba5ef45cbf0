package umd

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(Cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(Cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(Cross([]float64{2, 3, 4}, []float64{5, 6, 7}), []float64{-3, 6, -3}) {
		t.Fatal("cross incorrect")
	}
}

func TestNormUnit(t *testing.T) {
	v := []float64{3, 4, 0}
	if !floats.EqualWithinAbs(Norm(v), 5, 1e-12) {
		t.Fatal("|.|")
	}
	if !vectorsEqual(Unit(v), []float64{0.6, 0.8, 0}) {
		t.Fatal("unit vector incorrect")
	}
	if !vectorsEqual(Unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of the null vector must be the null vector")
	}
}

func TestDotSign(t *testing.T) {
	if d := Dot([]float64{1, 2, 3}, []float64{4, -5, 6}); !floats.EqualWithinAbs(d, 12, 1e-12) {
		t.Fatalf("dot %f", d)
	}
	if Sign(-0.1) != -1 || Sign(0.1) != 1 || Sign(0) != 1 {
		t.Fatal("sign incorrect")
	}
}

func TestAngleConversions(t *testing.T) {
	for deg := 0.1; deg < 360; deg += 19.7 {
		if ok, err := anglesEqual(Deg2rad(deg), deg*math.Pi/180); !ok {
			t.Fatalf("%f deg: %s", deg, err)
		}
		if got := Rad2deg(Deg2rad(deg)); !floats.EqualWithinAbs(got, deg, 1e-9) {
			t.Fatalf("%f deg round-trips to %f", deg, got)
		}
	}
	if ok, _ := anglesEqual(Deg2rad(-90), 3*math.Pi/2); !ok {
		t.Fatal("negative degrees must wrap positive")
	}
}

func TestNormalizeAngle(t *testing.T) {
	for _, a := range []float64{-7.1, -math.Pi, 0, 1.2, 2 * math.Pi, 9.99} {
		n := normalizeAngle(a)
		if n < 0 || n >= 2*math.Pi {
			t.Fatalf("normalizeAngle(%f)=%f outside [0, 2π)", a, n)
		}
		if s, c := math.Sincos(a); !floats.EqualWithinAbs(s, math.Sin(n), 1e-12) || !floats.EqualWithinAbs(c, math.Cos(n), 1e-12) {
			t.Fatalf("normalizeAngle(%f)=%f is not the same angle", a, n)
		}
	}
}

func TestClampAcosArg(t *testing.T) {
	if v := clampAcosArg(1 + 1e-15); v != 1 {
		t.Fatalf("clamp high: %f", v)
	}
	if v := clampAcosArg(-1 - 1e-15); v != -1 {
		t.Fatalf("clamp low: %f", v)
	}
	if v := clampAcosArg(0.5); v != 0.5 {
		t.Fatalf("clamp must not touch in-range values: %f", v)
	}
	if math.IsNaN(math.Acos(clampAcosArg(1.0000000000000002))) {
		t.Fatal("overshoot still produced NaN")
	}
}
