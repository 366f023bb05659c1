// Package gene stores force-profile parameters as byte codes.
//
// Each of the four shape parameters of a force.Params is quantized into one
// byte against its own [quant.Range]. A [Bounds] value holds those ranges and
// converts between byte [Genes] and decoded parameters.
package gene

import (
	"fmt"

	"github.com/sstucker/particles/pkg/errors"
	"github.com/sstucker/particles/pkg/force"
	"github.com/sstucker/particles/pkg/quant"
)

// Genes holds one byte code per force-profile parameter.
type Genes struct {
	RepulsionRange    uint8 `json:"repulsion_range"`
	RepulsionStrength uint8 `json:"repulsion_strength"`
	ForceRange        uint8 `json:"force_range"`
	ForceStrength     uint8 `json:"force_strength"`
}

// Bounds maps each gene onto the value range of its parameter.
type Bounds struct {
	RepulsionRange    quant.Range `json:"repulsion_range" toml:"repulsion_range" yaml:"repulsion_range"`
	RepulsionStrength quant.Range `json:"repulsion_strength" toml:"repulsion_strength" yaml:"repulsion_strength"`
	ForceRange        quant.Range `json:"force_range" toml:"force_range" yaml:"force_range"`
	ForceStrength     quant.Range `json:"force_strength" toml:"force_strength" yaml:"force_strength"`
}

// DefaultBounds returns the stock parameter ranges. The repulsion strength
// range runs from 78 down to 8, so higher codes repel more weakly.
func DefaultBounds() Bounds {
	return Bounds{
		RepulsionRange:    quant.Range{Min: 8, Max: 10},
		RepulsionStrength: quant.Range{Min: 78, Max: 8},
		ForceRange:        quant.Range{Min: 50, Max: 1000},
		ForceStrength:     quant.Range{Min: -0.2, Max: 0.2},
	}
}

// Validate checks every range.
func (b Bounds) Validate() error {
	for _, f := range b.fields() {
		if err := f.r.Validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "%s bounds", f.name)
		}
	}
	return nil
}

// Decode converts genes into force parameters. The decoded parameters are
// validated, so a range that can decode to a non-positive repulsion range
// fails for those codes.
func (b Bounds) Decode(g Genes) (force.Params, error) {
	codes := [4]uint8{g.RepulsionRange, g.RepulsionStrength, g.ForceRange, g.ForceStrength}
	var values [4]float64
	for i, f := range b.fields() {
		v, err := f.r.DecodeByte(codes[i])
		if err != nil {
			return force.Params{}, errors.Wrap(errors.GetCode(err), err, "decode %s", f.name)
		}
		values[i] = v
	}

	p := force.Params{
		RepulsionRange:    values[0],
		RepulsionStrength: values[1],
		ForceRange:        values[2],
		ForceStrength:     values[3],
	}
	if err := p.Validate(); err != nil {
		return force.Params{}, fmt.Errorf("decoded %+v: %w", g, err)
	}
	return p, nil
}

// Encode quantizes force parameters into genes. Values outside a range
// saturate at the nearest end.
func (b Bounds) Encode(p force.Params) (Genes, error) {
	values := [4]float64{p.RepulsionRange, p.RepulsionStrength, p.ForceRange, p.ForceStrength}
	var codes [4]uint8
	for i, f := range b.fields() {
		c, err := f.r.EncodeByte(values[i])
		if err != nil {
			return Genes{}, errors.Wrap(errors.GetCode(err), err, "encode %s", f.name)
		}
		codes[i] = c
	}
	return Genes{
		RepulsionRange:    codes[0],
		RepulsionStrength: codes[1],
		ForceRange:        codes[2],
		ForceStrength:     codes[3],
	}, nil
}

// Midpoint returns the genes for parameters at the middle of every range.
func (b Bounds) Midpoint() (Genes, error) {
	return b.Encode(force.Params{
		RepulsionRange:    b.RepulsionRange.Mid(),
		RepulsionStrength: b.RepulsionStrength.Mid(),
		ForceRange:        b.ForceRange.Mid(),
		ForceStrength:     b.ForceStrength.Mid(),
	})
}

type field struct {
	name string
	r    quant.Range
}

// fields lists the ranges in parameter order.
func (b Bounds) fields() [4]field {
	return [4]field{
		{"repulsion_range", b.RepulsionRange},
		{"repulsion_strength", b.RepulsionStrength},
		{"force_range", b.ForceRange},
		{"force_strength", b.ForceStrength},
	}
}
