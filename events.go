package umd

import (
	"math"
)

// SynodicPeriod returns the time between successive alignments of two bodies
// with the given orbital periods, |1/(1/T₁ - 1/T₂)|. Equal periods never
// realign, so the sentinel +Inf is returned.
func SynodicPeriod(T1, T2 float64) float64 {
	if T1 == T2 {
		return math.Inf(1)
	}
	return math.Abs(1 / (1/T1 - 1/T2))
}

// PhaseAngle returns the angular separation of body A ahead of body B as seen
// from the primary, in [0, 2π). Both positions are projected onto the
// equatorial reference plane before taking the difference.
func PhaseAngle(a, b *Elements, t float64) float64 {
	Ra := a.PositionAt(t)
	Rb := b.PositionAt(t)
	θa := math.Atan2(Ra[1], Ra[0])
	θb := math.Atan2(Rb[1], Rb[0])
	return normalizeAngle(θa - θb)
}

// AlignmentKind tags a detected alignment event.
type AlignmentKind uint8

const (
	// Conjunction is a 0/2π phase crossing: both bodies on the same side.
	Conjunction AlignmentKind = iota
	// Opposition is a π phase crossing: bodies on opposite sides.
	Opposition
)

func (k AlignmentKind) String() string {
	switch k {
	case Conjunction:
		return "conjunction"
	case Opposition:
		return "opposition"
	default:
		return "unknown"
	}
}

// Alignment is a detected conjunction or opposition.
type Alignment struct {
	Kind  AlignmentKind
	Time  float64 // simulation time of the detecting step
	Phase float64 // phase angle at that step
}

// FindAlignments scans [start, end] at fixed stepSize and records a
// conjunction whenever the phase angle wraps through 0/2π between two
// consecutive samples, and an opposition whenever it crosses π ascending.
//
// This is a coarse zero-crossing detector, not a root finder: event times are
// accurate to within stepSize, and events spaced closer than a few steps
// (synodic period comparable to stepSize) will be missed. Callers pick the
// step to trade accuracy against cost.
//
// Note the single-crossing opposition condition: a mere phase decrease near π
// is not an event. Firing on any decrease double-counts oppositions at some
// step sizes.
func FindAlignments(a, b *Elements, start, end, stepSize float64) []Alignment {
	if stepSize <= 0 || end <= start {
		return nil
	}
	var events []Alignment
	prev := PhaseAngle(a, b, start)
	steps := int(math.Floor((end - start) / stepSize))
	for k := 1; k <= steps; k++ {
		t := start + float64(k)*stepSize
		φ := PhaseAngle(a, b, t)
		if math.Abs(φ-prev) > math.Pi {
			// Wrapped through 0/2π between samples.
			events = append(events, Alignment{Conjunction, t, φ})
		} else if prev < math.Pi && φ >= math.Pi {
			events = append(events, Alignment{Opposition, t, φ})
		}
		prev = φ
	}
	return events
}
