package force_test

import (
	"fmt"

	"github.com/sstucker/particles/pkg/force"
)

func ExampleParams_Eval() {
	p := force.Params{
		RepulsionRange:    100,
		RepulsionStrength: 100,
		ForceRange:        500,
		ForceStrength:     -40,
	}

	for _, d := range []float64{50, 350, 700} {
		f, err := p.Eval(d)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Printf("%g: %g (%s)\n", d, f, p.ZoneOf(d))
	}
	// Output:
	// 50: 50 (repulsion)
	// 350: -40 (force)
	// 700: 0 (far)
}

func ExampleSweep() {
	p := force.Params{RepulsionRange: 1, RepulsionStrength: 2, ForceRange: 4, ForceStrength: -1}

	pts, err := force.Sweep(p, 0, 4, 1)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, pt := range pts {
		fmt.Printf("%g %g\n", pt.Distance, pt.Force)
	}
	// Output:
	// 0 2
	// 1 0
	// 2 -0.5
	// 3 -1
	// 4 -0.5
}
