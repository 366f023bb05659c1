package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sstucker/particles/pkg/quant"
	"github.com/sstucker/particles/pkg/render"
)

// quantCommand creates the quant command group.
func (c *CLI) quantCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quant",
		Short: "Map values to and from the 0..255 code scale",
		Long: `Map values to and from the 0..255 code scale.

Encoding maps [min, max] linearly onto [0, 255] and decoding maps it back.
Values outside the range are not clamped unless --byte is given, which rounds
to the nearest code and saturates at 0 and 255. A range with min greater than
max is allowed and flips the direction of the mapping.`,
	}

	cmd.AddCommand(c.quantEncodeCommand())
	cmd.AddCommand(c.quantDecodeCommand())
	cmd.AddCommand(c.quantPlotCommand())
	return cmd
}

// rangeFlags registers the required --min and --max flags.
func rangeFlags(cmd *cobra.Command, r *quant.Range) {
	cmd.Flags().Float64Var(&r.Min, "min", 0, "value mapped to code 0")
	cmd.Flags().Float64Var(&r.Max, "max", 0, "value mapped to code 255")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")
}

func (c *CLI) quantEncodeCommand() *cobra.Command {
	var (
		r      quant.Range
		asByte bool
	)

	cmd := &cobra.Command{
		Use:   "encode VALUE...",
		Short: "Encode values onto the code scale",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("range: %w", err)
			}
			for _, arg := range args {
				v, err := parseFloatArg("value", arg)
				if err != nil {
					return err
				}
				if asByte {
					code, err := r.EncodeByte(v)
					if err != nil {
						return err
					}
					printKeyValue(formatFloat(v), StyleNumber.Render(fmt.Sprint(code)))
					if !r.Contains(v) {
						printWarning("%s is outside [%s, %s]; code saturated", formatFloat(v), formatFloat(r.Min), formatFloat(r.Max))
					}
					continue
				}
				code, err := r.Encode(v)
				if err != nil {
					return err
				}
				printNumber(formatFloat(v), code)
			}
			return nil
		},
	}

	rangeFlags(cmd, &r)
	cmd.Flags().BoolVar(&asByte, "byte", false, "round to the nearest code and saturate to [0, 255]")
	return cmd
}

func (c *CLI) quantDecodeCommand() *cobra.Command {
	var r quant.Range

	cmd := &cobra.Command{
		Use:   "decode CODE...",
		Short: "Decode codes back onto the value scale",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("range: %w", err)
			}
			for _, arg := range args {
				code, err := parseFloatArg("code", arg)
				if err != nil {
					return err
				}
				v, err := r.Decode(code)
				if err != nil {
					return err
				}
				printNumber(formatFloat(code), v)
			}
			printDetail("step %s per code", formatFloat(r.Step()))
			return nil
		},
	}

	rangeFlags(cmd, &r)
	return cmd
}

func (c *CLI) quantPlotCommand() *cobra.Command {
	var (
		r       quant.Range
		output  string
		scale   float64
		samples int
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the byte round-trip of a range",
		Long: `Plot the byte round-trip of a range.

Draws the identity line next to decode(encode(v)) with byte rounding, so the
staircase shows the reconstruction error of storing values as 8-bit codes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := roundTripSeries(r, samples)
			if err != nil {
				return err
			}
			svg, err := render.RenderChartSVG(series,
				render.WithTitle(fmt.Sprintf("Byte round-trip over [%s, %s]", formatFloat(r.Min), formatFloat(r.Max))),
				render.WithAxisLabels("value", "decoded"),
			)
			if err != nil {
				return fmt.Errorf("render chart: %w", err)
			}
			if err := c.writeImage(cmd.Context(), svg, output, scale); err != nil {
				return err
			}
			printSuccess("Plot complete")
			printFile(output)
			printDetail("max error %s", formatFloat(r.Step()/2))
			return nil
		},
	}

	rangeFlags(cmd, &r)
	cmd.Flags().StringVarP(&output, "output", "o", "quant.svg", "output file (.svg, .png, or .pdf)")
	cmd.Flags().Float64Var(&scale, "scale", defaultScale, "PNG scale factor")
	cmd.Flags().IntVar(&samples, "samples", 1024, "number of values sampled across the range")
	return cmd
}

// roundTripSeries samples n values across r and returns the identity and
// byte round-trip curves.
func roundTripSeries(r quant.Range, n int) ([]render.Series, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("range: %w", err)
	}
	if n < 2 {
		return nil, fmt.Errorf("samples must be at least 2, got %d", n)
	}

	ident := render.Series{Name: "value", X: make([]float64, n), Y: make([]float64, n), Color: "#999999"}
	round := render.Series{Name: "round trip", X: make([]float64, n), Y: make([]float64, n)}
	for i := range n {
		v := r.Min + (r.Max-r.Min)*float64(i)/float64(n-1)
		code, err := r.EncodeByte(v)
		if err != nil {
			return nil, err
		}
		back, err := r.DecodeByte(code)
		if err != nil {
			return nil, err
		}
		ident.X[i], ident.Y[i] = v, v
		round.X[i], round.Y[i] = v, back
	}
	return []render.Series{ident, round}, nil
}
