// Package force implements the distance-dependent force profile that drives
// particle layout.
//
// A profile is defined by four shape [Params] and splits the distance axis
// into three zones, tested in order:
//
//	far:        d > RepulsionRange + ForceRange          → 0
//	force:      d > RepulsionRange                       → tent peaking at the zone midpoint
//	repulsion:  d <= RepulsionRange                      → linear ramp from RepulsionStrength to 0
//
// The profile is continuous: it is zero at d = RepulsionRange and at
// d = RepulsionRange + ForceRange. The force zone peaks at ForceStrength
// (usually negative, i.e. attractive) at d = RepulsionRange + ForceRange/2.
//
// # Degenerate shapes
//
// RepulsionRange is a divisor and must be strictly positive; zero or negative
// values fail with errors.ErrCodeDivisionByZero. ForceRange may be zero, in
// which case the force zone has no width: every distance beyond the repulsion
// zone is in the far zone and the tent formula is never evaluated.
//
// # Usage
//
//	p := force.Params{RepulsionRange: 100, RepulsionStrength: 100, ForceRange: 500, ForceStrength: -40}
//	f, err := p.Eval(350) // -40, the force-zone peak
//
//	pts, err := force.Sweep(p, 0, 1000, 1) // 1001 samples for plotting
//
// All functions are pure and safe for concurrent use.
package force
