package umd

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestRocheLimits(t *testing.T) {
	// Equal densities: the density term drops out.
	if r := RocheLimitRigid(25362, 1.27, 1.27); !floats.EqualWithinAbs(r, 2.456*25362, 1e-9) {
		t.Fatalf("rigid limit %f", r)
	}
	if r := RocheLimitFluid(25362, 1.27, 1.27); !floats.EqualWithinAbs(r, 2.88*25362, 1e-9) {
		t.Fatalf("fluid limit %f", r)
	}
	// The fluid limit is always the looser bound.
	if RocheLimitFluid(25362, 1.27, 1.5) <= RocheLimitRigid(25362, 1.27, 1.5) {
		t.Fatal("fluid limit must exceed the rigid limit")
	}
	// A denser moon survives closer in.
	if RocheLimitRigid(25362, 1.27, 2.0) >= RocheLimitRigid(25362, 1.27, 1.0) {
		t.Fatal("Roche limit must shrink with moon density")
	}
}

func TestHillRadius(t *testing.T) {
	hill := HillRadius(6.59e19, 129390, 8.6810e25)
	expected := 129390 * math.Cbrt(6.59e19/(3*8.6810e25))
	if !floats.EqualWithinAbs(hill, expected, 1e-6) {
		t.Fatalf("hill %f, expected %f", hill, expected)
	}
}

func TestCheckStabilityBoundary(t *testing.T) {
	planet := CelestialObject{Name: "primary", Radius: 25362, Mass: 8.681e25, Density: 1.27}
	roche := RocheLimitRigid(planet.Radius, planet.Density, 1.27)

	// Comfortably beyond the Roche limit with a Hill sphere at the 3x-radius
	// threshold: stable.
	distance := 2.456 * roche
	hill := HillRadius(1e20, distance, planet.Mass)
	o, err := NewElements(distance, 24, 0, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	moon := &Body{Name: "probe", Radius: hill / 3.0000001, Mass: 1e20, Density: 1.27, Orbit: o}
	result := CheckStability(planet, moon)
	if !result.Stable {
		t.Fatalf("moon beyond the Roche limit with hill=3r must be stable: %+v", result)
	}
	if !floats.EqualWithinAbs(result.RocheLimitRigid, roche, 1e-9) {
		t.Fatalf("intermediate Roche limit %f not reported", result.RocheLimitRigid)
	}
	if !floats.EqualWithinRel(result.StabilityFactor, 3, 1e-3) {
		t.Fatalf("stability factor %f, expected ~3", result.StabilityFactor)
	}

	// Inside the Roche limit: unstable no matter the Hill sphere.
	oClose, err := NewElements(0.9*roche, 8, 0, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	moon.Orbit = oClose
	moon.Radius = 1 // tiny body, Hill condition passes easily
	if result := CheckStability(planet, moon); result.Stable {
		t.Fatalf("moon at 0.9x the Roche limit must be unstable: %+v", result)
	}

	// Beyond the Roche limit but with a Hill sphere smaller than 3 radii:
	// both conditions are required, so still unstable.
	moon.Orbit = o
	moon.Radius = hill // 3r = 3*hill > hill
	if result := CheckStability(planet, moon); result.Stable {
		t.Fatalf("moon with hill < 3r must be unstable: %+v", result)
	}
}

func TestCheckStabilityCatalog(t *testing.T) {
	cat, err := NewCatalog(nil)
	if err != nil {
		t.Fatal(err)
	}
	// Only the five major moons clear both thresholds; the inner moonlets sit
	// near or inside the Roche zone with Hill spheres under 3 radii. (The real
	// ones hold together by material strength, which the rigid-body model
	// deliberately ignores.)
	major := map[string]bool{"Miranda": true, "Ariel": true, "Umbriel": true, "Titania": true, "Oberon": true}
	for _, b := range cat.Bodies() {
		result := CheckStability(cat.Primary(), b)
		if result.Stable != major[b.Name] {
			t.Errorf("%s: stable=%v, expected %v (%+v)", b.Name, result.Stable, major[b.Name], result)
		}
		if result.RocheLimitFluid <= result.RocheLimitRigid {
			t.Errorf("%s: fluid limit below rigid limit", b.Name)
		}
	}
}
