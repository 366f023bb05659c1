package force

import (
	"testing"

	"github.com/sstucker/particles/pkg/errors"
)

func TestSweep(t *testing.T) {
	pts, err := Sweep(calibration, 0, 1000, 1)
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if len(pts) != 1001 {
		t.Fatalf("len(pts) = %d, want 1001", len(pts))
	}

	for i, pt := range pts {
		if pt.Distance != float64(i) {
			t.Fatalf("pts[%d].Distance = %v, want %d", i, pt.Distance, i)
		}
		want, _ := calibration.Eval(pt.Distance)
		if pt.Force != want {
			t.Errorf("pts[%d].Force = %v, want %v", i, pt.Force, want)
		}
		if pt.Zone != calibration.ZoneOf(pt.Distance) {
			t.Errorf("pts[%d].Zone = %v, want %v", i, pt.Zone, calibration.ZoneOf(pt.Distance))
		}
	}

	lo, hi := Extent(pts)
	if lo != -40 || hi != 100 {
		t.Errorf("Extent = (%v, %v), want (-40, 100)", lo, hi)
	}
}

func TestSweepIncludesEndpoint(t *testing.T) {
	pts, err := Sweep(calibration, 0, 1, 0.1)
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if len(pts) != 11 {
		t.Fatalf("len(pts) = %d, want 11", len(pts))
	}
	if last := pts[len(pts)-1].Distance; last < 0.999 || last > 1.001 {
		t.Errorf("last distance = %v, want 1", last)
	}
}

func TestSweepSinglePoint(t *testing.T) {
	pts, err := Sweep(calibration, 350, 350, 1)
	if err != nil {
		t.Fatalf("Sweep error: %v", err)
	}
	if len(pts) != 1 || pts[0].Force != -40 {
		t.Errorf("Sweep(350, 350) = %+v, want one point at -40", pts)
	}
}

func TestSweepErrors(t *testing.T) {
	tests := []struct {
		name           string
		params         Params
		from, to, step float64
		wantCode       errors.Code
	}{
		{"zero step", calibration, 0, 10, 0, errors.ErrCodeInvalidInput},
		{"negative step", calibration, 0, 10, -1, errors.ErrCodeInvalidInput},
		{"reversed", calibration, 10, 0, 1, errors.ErrCodeInvalidInput},
		{"negative start", calibration, -1, 10, 1, errors.ErrCodeInvalidInput},
		{"too many points", calibration, 0, 1e9, 1, errors.ErrCodeInvalidInput},
		{"bad params", Params{}, 0, 10, 1, errors.ErrCodeDivisionByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := Sweep(tt.params, tt.from, tt.to, tt.step)
			if err == nil {
				t.Fatalf("Sweep = %d points, want error", len(pts))
			}
			if pts != nil {
				t.Error("Sweep should not return partial results")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestExtentEmpty(t *testing.T) {
	if lo, hi := Extent(nil); lo != 0 || hi != 0 {
		t.Errorf("Extent(nil) = (%v, %v), want (0, 0)", lo, hi)
	}
}
