package quant_test

import (
	"fmt"

	"github.com/sstucker/particles/pkg/quant"
)

func ExampleEncode() {
	code, err := quant.Encode(6, 1, 11)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	value, err := quant.Decode(code, 1, 11)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("code: %g\n", code)
	fmt.Printf("value: %.6f\n", value)
	// Output:
	// code: 127.5
	// value: 6.000000
}

func ExampleRange_EncodeByte() {
	r := quant.Range{Min: -0.2, Max: 0.2}

	b, _ := r.EncodeByte(0.1)
	v, _ := r.DecodeByte(b)
	fmt.Println(b)
	fmt.Printf("%.4f\n", v)
	// Output:
	// 191
	// 0.0996
}

func ExampleEncode_degenerate() {
	_, err := quant.Encode(1, 5, 5)
	fmt.Println(err)
	// Output:
	// DEGENERATE_RANGE: minimum equals maximum (5)
}
