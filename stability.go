package umd

import "math"

const (
	rocheRigidCoeff = 2.456
	rocheFluidCoeff = 2.88
)

// RocheLimitRigid returns the rigid-body Roche limit for a satellite of
// density ρMoon about a primary of radius R and density ρPlanet:
// 2.456·R·(ρ_p/ρ_m)^(1/3).
func RocheLimitRigid(planetRadius, ρPlanet, ρMoon float64) float64 {
	return rocheRigidCoeff * planetRadius * math.Cbrt(ρPlanet/ρMoon)
}

// RocheLimitFluid returns the fluid-body Roche limit, the looser bound for a
// satellite with no tensile strength: 2.88·R·(ρ_p/ρ_m)^(1/3).
func RocheLimitFluid(planetRadius, ρPlanet, ρMoon float64) float64 {
	return rocheFluidCoeff * planetRadius * math.Cbrt(ρPlanet/ρMoon)
}

// HillRadius returns the radius of the sphere within which the moon's own
// gravity dominates the primary's: d·(m/3M)^(1/3).
func HillRadius(moonMass, moonDistance, planetMass float64) float64 {
	return moonDistance * math.Cbrt(moonMass/(3*planetMass))
}

// StabilityResult is the verdict of CheckStability together with every
// intermediate value, for diagnostics panels.
type StabilityResult struct {
	Stable          bool
	HillRadius      float64
	RocheLimitRigid float64
	RocheLimitFluid float64
	StabilityFactor float64 // hill radius over body radius
}

// CheckStability evaluates whether a moon survives where it orbits: its
// distance must clear the rigid Roche limit AND its Hill sphere must reach at
// least three times its own radius. Both conditions are required, neither
// suffices alone. The distance used is the orbit's semi-major axis.
func CheckStability(primary CelestialObject, moon *Body) StabilityResult {
	d := moon.Orbit.SemiMajorAxis()
	rocheRigid := RocheLimitRigid(primary.Radius, primary.Density, moon.Density)
	rocheFluid := RocheLimitFluid(primary.Radius, primary.Density, moon.Density)
	hill := HillRadius(moon.Mass, d, primary.Mass)
	return StabilityResult{
		Stable:          d > rocheRigid && hill >= 3*moon.Radius,
		HillRadius:      hill,
		RocheLimitRigid: rocheRigid,
		RocheLimitFluid: rocheFluid,
		StabilityFactor: hill / moon.Radius,
	}
}
