package umd

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 2e1                          // 20 km
)

// Elements defines an orbit about the system primary via its classical
// orbital elements. The period is signed: a negative period encodes a
// retrograde orbit and flows through the mean motion, reversing the sense of
// rotation without any special-casing downstream.
type Elements struct {
	a, T, e, i, ω, Ω, M0 float64
}

// NewElements validates and returns the orbital elements of a body.
// Angles are in radians, the semi-major axis in the catalog distance unit and
// the period in the catalog time unit. Validation happens here, once, so the
// per-frame position queries never have to.
func NewElements(a, period, e, i, ω, Ω, M0 float64) (*Elements, error) {
	if a <= 0 {
		return nil, fmt.Errorf("semi-major axis must be strictly positive (got %f)", a)
	}
	if e < 0 || e >= 1 {
		return nil, fmt.Errorf("only closed orbits supported: eccentricity must be in [0,1) (got %f)", e)
	}
	if period == 0 {
		return nil, fmt.Errorf("orbital period must be non-zero")
	}
	return &Elements{a, period, e, i, ω, Ω, M0}, nil
}

// SemiMajorAxis returns the semi-major axis a.
func (o Elements) SemiMajorAxis() float64 {
	return o.a
}

// Period returns the signed orbital period.
func (o Elements) Period() float64 {
	return o.T
}

// Eccentricity returns the eccentricity e.
func (o Elements) Eccentricity() float64 {
	return o.e
}

// Inclination returns the inclination i.
func (o Elements) Inclination() float64 {
	return o.i
}

// Retrograde returns whether this orbit runs against the system's sense of
// rotation.
func (o Elements) Retrograde() bool {
	return o.T < 0
}

// MeanMotion returns the signed mean motion n = 2π/T.
func (o Elements) MeanMotion() float64 {
	return 2 * math.Pi / o.T
}

// GM returns the standard gravitational parameter μ implied by Kepler's third
// law, μ = 4π²a³/T². The catalog works in scaled display units rather than SI,
// so μ is derived instead of supplied.
func (o Elements) GM() float64 {
	return 4 * math.Pi * math.Pi * math.Pow(o.a, 3) / (o.T * o.T)
}

// SemiParameter returns the semi-latus rectum p = a(1-e²).
func (o Elements) SemiParameter() float64 {
	return o.a * (1 - o.e*o.e)
}

// Apoapsis returns the apoapsis radius.
func (o Elements) Apoapsis() float64 {
	return o.a * (1 + o.e)
}

// Periapsis returns the periapsis radius.
func (o Elements) Periapsis() float64 {
	return o.a * (1 - o.e)
}

// MeanAnomalyAt returns the mean anomaly at the given simulation time,
// folded into [0, 2π).
func (o Elements) MeanAnomalyAt(t float64) float64 {
	return normalizeAngle(o.MeanMotion()*t + o.M0)
}

// TrueAnomalyAt returns the true anomaly at the given simulation time via
// Kepler's equation and the half-angle form, which is quadrant-safe.
func (o Elements) TrueAnomalyAt(t float64) float64 {
	E, _ := SolveKepler(o.MeanAnomalyAt(t), o.e)
	sinE2, cosE2 := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+o.e)*sinE2, math.Sqrt(1-o.e)*cosE2)
}

// RadiusAt returns the orbital radius at the provided true anomaly.
func (o Elements) RadiusAt(ν float64) float64 {
	return o.SemiParameter() / (1 + o.e*math.Cos(ν))
}

// PositionAt returns the Cartesian position at the given simulation time, in
// catalog distance units. The display scale belongs to the caller (the scene
// layer), not to this function.
func (o Elements) PositionAt(t float64) []float64 {
	ν := o.TrueAnomalyAt(t)
	sinν, cosν := math.Sincos(ν)
	r := o.RadiusAt(ν)
	return PQW2System(o.i, o.ω, o.Ω, []float64{r * cosν, r * sinν, 0})
}

// StateAt returns the Cartesian position and velocity at the given simulation
// time. The perifocal velocity is √(μ/p)·(-sin ν, e+cos ν, 0) (Vallado COE2RV)
// rotated through the same 3-1-3 composition as the position; the sign of the
// period carries the retrograde direction.
func (o Elements) StateAt(t float64) (R, V []float64) {
	ν := o.TrueAnomalyAt(t)
	sinν, cosν := math.Sincos(ν)
	p := o.SemiParameter()
	r := p / (1 + o.e*cosν)
	R = PQW2System(o.i, o.ω, o.Ω, []float64{r * cosν, r * sinν, 0})
	vs := Sign(o.T) * math.Sqrt(o.GM()/p)
	V = PQW2System(o.i, o.ω, o.Ω, []float64{-vs * sinν, vs * (o.e + cosν), 0})
	return
}

// Velocity is the vis-viva decomposition of the orbital speed at a point.
type Velocity struct {
	Magnitude  float64 // total speed
	Radial     float64 // along the radius vector
	Tangential float64 // normal to the radius vector, in-plane
}

// VelocityAt returns the speed and its radial/tangential split at the
// provided true anomaly. The angular momentum h = √(μ·a·(1-e²)) gives the
// tangential component h/r directly and the radial one as (μ/h)·e·sin ν.
func (o Elements) VelocityAt(ν float64) Velocity {
	μ := o.GM()
	r := o.RadiusAt(ν)
	h := math.Sqrt(μ * o.a * (1 - o.e*o.e))
	vR := μ / h * o.e * math.Sin(ν)
	vT := h / r
	return Velocity{
		Magnitude:  math.Sqrt(μ * (2/r - 1/o.a)),
		Radial:     vR,
		Tangential: vT,
	}
}

// String implements the stringer interface.
func (o Elements) String() string {
	return fmt.Sprintf("a=%.1f T=%.3f e=%.4f i=%.3f Ω=%.3f ω=%.3f M₀=%.3f",
		o.a, o.T, o.e, Rad2deg(o.i), Rad2deg(o.Ω), Rad2deg(o.ω), o.M0)
}

// StateVectorElements holds the classical elements recovered from a Cartesian
// state vector. For near-circular orbits the argument of periapsis is
// undefined by convention, and for near-equatorial orbits so is the node;
// rather than silently returning an arbitrary angle, the corresponding
// ill-defined flag is raised and the angle zeroed.
type StateVectorElements struct {
	a, e, i, Ω, ω, ν      float64
	nodeIll, periapsisIll bool
}

// Elements returns the six recovered classical elements.
func (s StateVectorElements) Elements() (a, e, i, Ω, ω, ν float64) {
	return s.a, s.e, s.i, s.Ω, s.ω, s.ν
}

// NodeIllDefined returns whether the longitude of the ascending node is
// undefined (near-equatorial geometry).
func (s StateVectorElements) NodeIllDefined() bool {
	return s.nodeIll
}

// PeriapsisIllDefined returns whether the argument of periapsis is undefined
// (near-circular geometry).
func (s StateVectorElements) PeriapsisIllDefined() bool {
	return s.periapsisIll
}

// ElementsFromRV recovers the classical orbital elements from a position and
// velocity vector and the gravitational parameter μ. From Vallado's RV2COE,
// page 113. All acos arguments are clamped to [-1, 1]: floating point
// overshoot of the order of 1e-18 on edge-case states otherwise produces NaN.
func ElementsFromRV(R, V []float64, μ float64) (StateVectorElements, error) {
	r := Norm(R)
	v := Norm(V)
	if floats.EqualWithinAbs(r, 0, 1e-12) {
		return StateVectorElements{}, fmt.Errorf("cannot recover elements from a zero radius vector")
	}
	hVec := Cross(R, V)
	n := Cross([]float64{0, 0, 1}, hVec)
	ξ := (v*v)/2 - μ/r
	if ξ >= 0 {
		return StateVectorElements{}, fmt.Errorf("state is not a closed orbit (ξ=%f)", ξ)
	}
	a := -μ / (2 * ξ)
	eVec := make([]float64, 3)
	rv := Dot(R, V)
	for j := 0; j < 3; j++ {
		eVec[j] = ((v*v-μ/r)*R[j] - rv*V[j]) / μ
	}
	e := Norm(eVec)
	if e >= 1 {
		return StateVectorElements{}, fmt.Errorf("parabolic and hyperbolic orbits not supported (e=%f)", e)
	}
	i := math.Acos(clampAcosArg(hVec[2] / Norm(hVec)))

	el := StateVectorElements{a: a, e: e, i: i}
	el.nodeIll = i < angleε || math.Pi-i < angleε
	el.periapsisIll = e < eccentricityε

	if !el.nodeIll {
		el.Ω = math.Acos(clampAcosArg(n[0] / Norm(n)))
		if n[1] < 0 {
			el.Ω = 2*math.Pi - el.Ω
		}
	}
	if !el.nodeIll && !el.periapsisIll {
		el.ω = math.Acos(clampAcosArg(Dot(n, eVec) / (Norm(n) * e)))
		if eVec[2] < 0 {
			el.ω = 2*math.Pi - el.ω
		}
	}
	if !el.periapsisIll {
		el.ν = math.Acos(clampAcosArg(Dot(eVec, R) / (e * r)))
		if rv < 0 {
			el.ν = 2*math.Pi - el.ν
		}
	}

	// Fix rounding errors.
	el.i = math.Mod(el.i, 2*math.Pi)
	el.Ω = math.Mod(el.Ω, 2*math.Pi)
	el.ω = math.Mod(el.ω, 2*math.Pi)
	el.ν = math.Mod(el.ν, 2*math.Pi)
	return el, nil
}
