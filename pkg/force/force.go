package force

import (
	"math"

	"github.com/sstucker/particles/pkg/errors"
)

// Zone identifies which piece of the profile a distance falls into.
type Zone int

const (
	ZoneRepulsion Zone = iota
	ZoneForce
	ZoneFar
)

// String returns the lowercase zone name.
func (z Zone) String() string {
	switch z {
	case ZoneRepulsion:
		return "repulsion"
	case ZoneForce:
		return "force"
	case ZoneFar:
		return "far"
	default:
		return "unknown"
	}
}

// Params holds the four shape parameters of a force profile.
type Params struct {
	// RepulsionRange is the width of the repulsion zone. Must be > 0.
	RepulsionRange float64 `json:"repulsion_range" toml:"repulsion_range" yaml:"repulsion_range" validate:"gt=0"`

	// RepulsionStrength is the profile value at distance 0.
	RepulsionStrength float64 `json:"repulsion_strength" toml:"repulsion_strength" yaml:"repulsion_strength"`

	// ForceRange is the width of the force zone. Must be >= 0.
	ForceRange float64 `json:"force_range" toml:"force_range" yaml:"force_range" validate:"gte=0"`

	// ForceStrength is the profile value at the force-zone midpoint.
	ForceStrength float64 `json:"force_strength" toml:"force_strength" yaml:"force_strength"`
}

// Validate checks the shape invariants.
func (p Params) Validate() error {
	if err := errors.ValidateDivisor("repulsion_range", p.RepulsionRange); err != nil {
		return err
	}
	if err := errors.ValidateFinite("repulsion_strength", p.RepulsionStrength); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("force_range", p.ForceRange); err != nil {
		return err
	}
	return errors.ValidateFinite("force_strength", p.ForceStrength)
}

// Reach returns the distance beyond which the profile is zero.
func (p Params) Reach() float64 {
	return p.RepulsionRange + p.ForceRange
}

// Peak returns the distance at which the force zone reaches ForceStrength.
// With a zero ForceRange there is no force zone and Peak equals RepulsionRange.
func (p Params) Peak() float64 {
	return p.RepulsionRange + p.ForceRange/2
}

// ZoneOf reports which zone d falls into. It does not validate p.
func (p Params) ZoneOf(d float64) Zone {
	switch {
	case d > p.Reach():
		return ZoneFar
	case d > p.RepulsionRange:
		return ZoneForce
	default:
		return ZoneRepulsion
	}
}

// Eval returns the signed force at distance d.
// It fails if p violates its invariants or d is negative or not finite.
func (p Params) Eval(d float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := errors.ValidateNonNegative("distance", d); err != nil {
		return 0, err
	}
	return p.eval(d), nil
}

// eval computes the profile for validated inputs.
func (p Params) eval(d float64) float64 {
	switch p.ZoneOf(d) {
	case ZoneFar:
		return 0
	case ZoneForce:
		// Reachable only when ForceRange > 0.
		half := p.ForceRange / 2
		return p.ForceStrength * (1 - math.Abs(p.RepulsionRange+half-d)/half)
	default:
		return p.RepulsionStrength * (p.RepulsionRange - d) / p.RepulsionRange
	}
}

// Evaluate is the flat-argument form of [Params.Eval].
func Evaluate(distance, repulsionRange, repulsionStrength, forceRange, forceStrength float64) (float64, error) {
	p := Params{
		RepulsionRange:    repulsionRange,
		RepulsionStrength: repulsionStrength,
		ForceRange:        forceRange,
		ForceStrength:     forceStrength,
	}
	return p.Eval(distance)
}
