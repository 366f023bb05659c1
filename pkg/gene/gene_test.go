package gene

import (
	"math"
	"testing"

	"github.com/sstucker/particles/pkg/errors"
	"github.com/sstucker/particles/pkg/force"
	"github.com/sstucker/particles/pkg/quant"
)

func TestDefaultBoundsValid(t *testing.T) {
	if err := DefaultBounds().Validate(); err != nil {
		t.Fatalf("DefaultBounds().Validate() = %v", err)
	}
}

func TestDecodeExtremes(t *testing.T) {
	b := DefaultBounds()

	tests := []struct {
		name  string
		genes Genes
		want  force.Params
	}{
		{
			name:  "all zero",
			genes: Genes{},
			want:  force.Params{RepulsionRange: 8, RepulsionStrength: 78, ForceRange: 50, ForceStrength: -0.2},
		},
		{
			name:  "all max",
			genes: Genes{255, 255, 255, 255},
			want:  force.Params{RepulsionRange: 10, RepulsionStrength: 8, ForceRange: 1000, ForceStrength: 0.2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Decode(tt.genes)
			if err != nil {
				t.Fatalf("Decode(%+v) error: %v", tt.genes, err)
			}
			assertParams(t, got, tt.want, 1e-9)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b := DefaultBounds()
	p := force.Params{RepulsionRange: 9.2, RepulsionStrength: 40, ForceRange: 300, ForceStrength: -0.05}

	g, err := b.Encode(p)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	back, err := b.Decode(g)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	assertWithin(t, "repulsion_range", back.RepulsionRange, p.RepulsionRange, b.RepulsionRange.Step()/2)
	assertWithin(t, "repulsion_strength", back.RepulsionStrength, p.RepulsionStrength, b.RepulsionStrength.Step()/2)
	assertWithin(t, "force_range", back.ForceRange, p.ForceRange, b.ForceRange.Step()/2)
	assertWithin(t, "force_strength", back.ForceStrength, p.ForceStrength, b.ForceStrength.Step()/2)
}

func TestMidpoint(t *testing.T) {
	g, err := DefaultBounds().Midpoint()
	if err != nil {
		t.Fatalf("Midpoint error: %v", err)
	}
	// 127.5 rounds away from zero.
	want := Genes{128, 128, 128, 128}
	if g != want {
		t.Errorf("Midpoint() = %+v, want %+v", g, want)
	}
}

func TestEncodeSaturates(t *testing.T) {
	g, err := DefaultBounds().Encode(force.Params{RepulsionRange: 50, RepulsionStrength: 500, ForceRange: 0, ForceStrength: 1})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := Genes{RepulsionRange: 255, RepulsionStrength: 0, ForceRange: 0, ForceStrength: 255}
	if g != want {
		t.Errorf("Encode() = %+v, want %+v", g, want)
	}
}

func TestDecodeRejectsDegenerateBounds(t *testing.T) {
	b := DefaultBounds()
	b.ForceRange = quant.Range{Min: 5, Max: 5}

	if _, err := b.Decode(Genes{}); !errors.Is(err, errors.ErrCodeDegenerateRange) {
		t.Errorf("Decode error = %v, want %s", err, errors.ErrCodeDegenerateRange)
	}
	if err := b.Validate(); !errors.Is(err, errors.ErrCodeDegenerateRange) {
		t.Errorf("Validate error = %v, want %s", err, errors.ErrCodeDegenerateRange)
	}
}

func TestDecodeRejectsNonPositiveRepulsionRange(t *testing.T) {
	b := DefaultBounds()
	b.RepulsionRange = quant.Range{Min: 0, Max: 10}

	if _, err := b.Decode(Genes{RepulsionRange: 0}); !errors.Is(err, errors.ErrCodeDivisionByZero) {
		t.Errorf("Decode error = %v, want %s", err, errors.ErrCodeDivisionByZero)
	}
	if _, err := b.Decode(Genes{RepulsionRange: 1}); err != nil {
		t.Errorf("Decode with positive range error = %v", err)
	}
}

func assertParams(t *testing.T, got, want force.Params, tol float64) {
	t.Helper()
	assertWithin(t, "repulsion_range", got.RepulsionRange, want.RepulsionRange, tol)
	assertWithin(t, "repulsion_strength", got.RepulsionStrength, want.RepulsionStrength, tol)
	assertWithin(t, "force_range", got.ForceRange, want.ForceRange, tol)
	assertWithin(t, "force_strength", got.ForceStrength, want.ForceStrength, tol)
}

func assertWithin(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol+1e-12 {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}
