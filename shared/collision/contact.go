package collision

import (
	"fmt"

	"github.com/automoto/ninja/shared/gamemath"
)

// Contact is the outcome of one sweep: when the body first touches a solid
// surface during the step, in seconds from the start of the step, and the
// outward normal of that surface. Exactly one normal axis is non-zero.
type Contact struct {
	TimeToImpact float64
	Normal       gamemath.Vec
}

// NoContact is the value returned when nothing is hit.
func NoContact() Contact {
	return Contact{TimeToImpact: gamemath.NoHit}
}

// Found reports a real hit: a non-negative time and a surface normal.
func (c Contact) Found() bool { return c.TimeToImpact >= 0 && !c.Normal.IsZero() }

// OnFloor reports a floor directly beneath the body: an upward facing
// surface reached within eps seconds.
func (c Contact) OnFloor(eps float64) bool {
	return c.Found() && c.TimeToImpact <= eps && c.Normal == gamemath.NormalUp
}

func (c Contact) String() string {
	if !c.Found() {
		return "none"
	}
	return fmt.Sprintf("toi=%.4f n=(%g,%g)", c.TimeToImpact, c.Normal.X, c.Normal.Y)
}

// Contacts holds the contacts found by the passes of ResolveAll in order.
type Contacts []Contact

// OnFloor reports whether any contact is a floor contact.
func (cs Contacts) OnFloor(eps float64) bool {
	for _, c := range cs {
		if c.OnFloor(eps) {
			return true
		}
	}
	return false
}

// Has reports whether any contact has the given normal.
func (cs Contacts) Has(normal gamemath.Vec) bool {
	for _, c := range cs {
		if c.Found() && c.Normal == normal {
			return true
		}
	}
	return false
}

// First returns the earliest pass's contact, or NoContact.
func (cs Contacts) First() Contact {
	if len(cs) == 0 {
		return NoContact()
	}
	return cs[0]
}
