package ramp_test

import (
	"fmt"

	"github.com/sstucker/particles/pkg/ramp"
)

func ExampleSampleRamp() {
	table, err := ramp.SampleRamp(ramp.Greys, 5)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, s := range table {
		fmt.Println(s.Hex())
	}
	// Output:
	// #ffffff
	// #d9d9d9
	// #969696
	// #525252
	// #000000
}

func ExampleGradientFunc() {
	red := ramp.GradientFunc(func(t float64) ramp.Sample {
		return ramp.Sample{R: t, A: 1}
	})

	table, err := ramp.SampleRamp(red, 3)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(table.Lookup(0).Hex(), table.Lookup(1).Hex(), table.Lookup(2).Hex())
	// Output:
	// #000000 #800000 #ff0000
}
