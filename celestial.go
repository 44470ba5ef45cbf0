package umd

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/soniakeys/meeus/planetposition"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// SunGM is the heliocentric gravitational parameter in km³/s².
	SunGM = 1.32712440017987e11
)

// Epoch is the simulation time origin (J2000). Simulation time is measured
// in hours from this instant.
var Epoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// SimTime converts a civil time to simulation hours past the epoch.
func SimTime(dt time.Time) float64 {
	return dt.Sub(Epoch).Hours()
}

// CelestialObject defines a primary body.
type CelestialObject struct {
	Name    string
	Radius  float64 // km
	Mass    float64 // kg
	Density float64 // g/cm³
	a       float64 // heliocentric semi-major axis, km
	tilt    float64 // axial tilt, degrees
	pp      *planetposition.V87Planet
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Tilt returns the axial tilt in radians.
func (c CelestialObject) Tilt() float64 {
	return Deg2rad(c.tilt)
}

// HelioOrbit returns the heliocentric position and velocity of this planet at
// a given time in equatorial coordinates, via the VSOP87 theory. The scene
// layer uses this for the sun direction; it is not needed for moon dynamics.
// Requires the VSOP87 data files configured in conf.toml.
func (c *CelestialObject) HelioOrbit(dt time.Time) (R, V []float64, err error) {
	if !umdConfig().VSOP87 {
		return nil, nil, fmt.Errorf("VSOP87 is disabled in the configuration")
	}
	if c.pp == nil {
		var vsopPosition int
		switch c.Name {
		case "Uranus":
			vsopPosition = 7
		case "Neptune":
			vsopPosition = 8
		default:
			return nil, nil, fmt.Errorf("unknown object: %s", c.Name)
		}
		planet, lerr := planetposition.LoadPlanetPath(vsopPosition-1, umdConfig().VSOP87Dir)
		if lerr != nil {
			return nil, nil, fmt.Errorf("could not load planet number %d: %s", vsopPosition, lerr)
		}
		c.pp = planet
	}
	l, b, r := c.pp.Position2000(julian.TimeToJD(dt))
	r *= AU
	v := math.Sqrt(2*SunGM/r - SunGM/c.a)
	R, V = make([]float64, 3), make([]float64, 3)
	sB, cB := math.Sincos(b.Rad())
	sL, cL := math.Sincos(l.Rad())
	R[0] = r * cB * cL
	R[1] = r * cB * sL
	R[2] = r * sB
	// The velocity direction is normal to the radius in the orbital plane.
	vDir := Unit(Cross(R, []float64{0, 0, -1}))
	for i := 0; i < 3; i++ {
		V[i] = v * vDir[i]
	}
	return R, V, nil
}

// Uranus is the system primary: third-largest planet, sideways.
var Uranus = CelestialObject{"Uranus", 25362, 8.6810e25, 1.27, 2870971632, 97.77, nil}

// Neptune perturbs nothing here, but the scene likes to know where it is.
var Neptune = CelestialObject{"Neptune", 24622, 1.02409e26, 1.64, 4498396441, 28.32, nil}

// Body is a catalog entry: a satellite of the primary with its physical
// parameters and validated orbital elements.
type Body struct {
	Name    string
	Radius  float64 // mean radius, km
	Mass    float64 // kg
	Density float64 // g/cm³
	Orbit   *Elements
}

func (b Body) String() string {
	return fmt.Sprintf("%s [%s]", b.Name, b.Orbit)
}

// Ring is a ring edge of the primary, for Roche-zone diagnostics.
type Ring struct {
	Name   string
	Radius float64 // km
}

// Rings are the main rings of Uranus, innermost first.
var Rings = []Ring{
	{"6", 41837},
	{"5", 42234},
	{"4", 42570},
	{"α", 44718},
	{"β", 45661},
	{"η", 47175},
	{"γ", 47627},
	{"δ", 48300},
	{"λ", 50023},
	{"ε", 51149},
}

// moonDef is a raw catalog row before validation: distances in km, periods in
// days (converted to hours at catalog construction), angles in degrees.
type moonDef struct {
	name           string
	radius         float64 // km
	mass           float64 // kg
	density        float64 // g/cm³
	a              float64 // km
	periodDays     float64
	e              float64
	inclinationDeg float64
}

// uranianMoons lists the regular satellites, innermost first. Elements are
// relative to Uranus's equatorial plane. Inner-moon masses are estimates from
// assumed density.
var uranianMoons = []moonDef{
	{"Cordelia", 20.1, 4.4e16, 1.3, 49770, 0.335034, 0.00026, 0.08479},
	{"Ophelia", 21.4, 5.3e16, 1.3, 53790, 0.376400, 0.00992, 0.1036},
	{"Bianca", 25.7, 9.2e16, 1.3, 59170, 0.434579, 0.00092, 0.193},
	{"Cressida", 39.8, 3.4e17, 1.3, 61780, 0.463570, 0.00036, 0.006},
	{"Desdemona", 32.0, 1.8e17, 1.3, 62680, 0.473650, 0.00013, 0.11125},
	{"Juliet", 46.8, 5.6e17, 1.3, 64350, 0.493065, 0.00066, 0.065},
	{"Portia", 67.6, 1.7e18, 1.3, 66090, 0.513196, 0.00005, 0.059},
	{"Rosalind", 36.0, 2.5e17, 1.3, 69940, 0.558460, 0.00011, 0.279},
	{"Belinda", 40.3, 3.6e17, 1.3, 75260, 0.623527, 0.00007, 0.031},
	{"Puck", 81.0, 2.9e18, 1.3, 86010, 0.761833, 0.00012, 0.3192},
	{"Miranda", 235.8, 6.59e19, 1.20, 129390, 1.413479, 0.0013, 4.232},
	{"Ariel", 578.9, 1.353e21, 1.67, 191020, 2.520379, 0.0012, 0.260},
	{"Umbriel", 584.7, 1.172e21, 1.40, 266300, 4.144177, 0.0039, 0.205},
	{"Titania", 788.4, 3.527e21, 1.71, 435910, 8.705872, 0.0011, 0.340},
	{"Oberon", 761.4, 3.014e21, 1.63, 583520, 13.463239, 0.0014, 0.058},
}
