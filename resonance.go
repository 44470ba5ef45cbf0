package umd

import (
	"fmt"
	"math"
)

// ResonanceTolerance is the default admissible distance between a period
// ratio and an exact commensurability (5%).
const ResonanceTolerance = 0.05

// commensurabilities lists the canonical low-order mean-motion ratios checked
// for, as (q, p) pairs: body B completes p orbits per q orbits of body A.
var commensurabilities = [][2]int{
	{1, 2}, {2, 3}, {3, 4}, {3, 5}, {4, 5}, {5, 6},
}

// Resonance records a near-commensurability between two bodies.
type Resonance struct {
	BodyA, BodyB   string
	P, Q           int
	Ratio          float64 // |T_B / T_A|
	Strength       float64 // 1/|ratio - p/q|; +Inf at exact commensurability
	Classification string
}

// Label returns the conventional q:p form, e.g. "1:2".
func (r Resonance) Label() string {
	return fmt.Sprintf("%d:%d", r.Q, r.P)
}

func (r Resonance) String() string {
	return fmt.Sprintf("%s %s:%s %s (Δ⁻¹=%.1f)", r.Classification, r.BodyA, r.BodyB, r.Label(), r.Strength)
}

// FindResonances checks every unordered pair of bodies against the canonical
// commensurability table. The output preserves discovery order (outer loop
// over A by ascending catalog index, inner over B) so repeated runs list
// identical pairs identically; the order carries no physical meaning.
func FindResonances(bodies []*Body, tolerance float64) []Resonance {
	var found []Resonance
	for ia := 0; ia < len(bodies); ia++ {
		for ib := ia + 1; ib < len(bodies); ib++ {
			A, B := bodies[ia], bodies[ib]
			ratio := math.Abs(B.Orbit.Period() / A.Orbit.Period())
			for _, qp := range commensurabilities {
				q, p := qp[0], qp[1]
				Δ := math.Abs(ratio - float64(p)/float64(q))
				if Δ >= tolerance {
					continue
				}
				strength := math.Inf(1)
				if Δ > 0 {
					strength = 1 / Δ
				}
				found = append(found, Resonance{
					BodyA:          A.Name,
					BodyB:          B.Name,
					P:              p,
					Q:              q,
					Ratio:          ratio,
					Strength:       strength,
					Classification: "mean-motion",
				})
			}
		}
	}
	return found
}
