package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sstucker/particles/pkg/io"
	"github.com/sstucker/particles/pkg/ramp"
	"github.com/sstucker/particles/pkg/render"
)

const swatchWidth = 48

// rampFlags holds the gradient selection shared by the ramp subcommands.
// Flags left unset fall back to the [ramp] section of the config file.
type rampFlags struct {
	gradient string
	count    int
	space    string
}

func (f *rampFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.gradient, "gradient", "g", "", "gradient name; append _r to reverse (see 'ramp list')")
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "number of samples")
	cmd.Flags().StringVar(&f.space, "space", "", "stop blend space: rgb, lab, hcl")
	_ = cmd.RegisterFlagCompletionFunc("gradient", completeGradients)
	_ = cmd.RegisterFlagCompletionFunc("space", completeFixed("rgb", "lab", "hcl"))
}

// table resolves the flags against the config and samples the ramp.
func (c *CLI) table(cmd *cobra.Command, f *rampFlags) (ramp.Table, string, error) {
	cfg := c.cfg
	fl := cmd.Flags()
	if fl.Changed("gradient") {
		cfg.Ramp.Gradient = f.gradient
	}
	if fl.Changed("count") {
		cfg.Ramp.Count = f.count
	}
	if fl.Changed("space") {
		cfg.Ramp.Space = f.space
	}

	g, err := cfg.Gradient()
	if err != nil {
		return nil, "", err
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("sampling ramp", "gradient", cfg.Ramp.Gradient, "count", cfg.Ramp.Count, "space", cfg.Ramp.Space)
	prog := newProgress(logger)
	table, err := ramp.SampleRamp(g, cfg.Ramp.Count)
	if err != nil {
		return nil, "", fmt.Errorf("sample %s: %w", cfg.Ramp.Gradient, err)
	}
	prog.done(fmt.Sprintf("Sampled %d colors", len(table)))
	return table, cfg.Ramp.Gradient, nil
}

// rampCommand creates the ramp command group.
func (c *CLI) rampCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ramp",
		Short: "Sample color gradients into lookup tables",
		Long: `Sample color gradients into lookup tables.

A ramp samples a gradient at evenly spaced points over [0, 1], both ends
included. The default 255-entry table is indexed directly by an 8-bit code.`,
	}

	cmd.AddCommand(c.rampListCommand())
	cmd.AddCommand(c.rampSampleCommand())
	cmd.AddCommand(c.rampPlotCommand())
	return cmd
}

func (c *CLI) rampListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the named gradients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range ramp.Names() {
				g, err := ramp.Lookup(name)
				if err != nil {
					return err
				}
				table, err := ramp.SampleRamp(g, swatchWidth)
				if err != nil {
					return err
				}
				printKeyValue(name, swatch(table, swatchWidth))
			}
			printNewline()
			printNextStep("Sample one", appName+" ramp sample -g viridis -o cmap.csv")
			return nil
		},
	}
}

func (c *CLI) rampSampleCommand() *cobra.Command {
	var (
		flags  rampFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sampled ramp as r,g,b,a CSV",
		Long: `Write a sampled ramp as r,g,b,a CSV.

One row per sample in table order, four components in [0, 1], no header.
Writes to stdout unless --output is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, name, err := c.table(cmd, &flags)
			if err != nil {
				return err
			}
			if output == "" {
				return io.WriteRampCSV(cmd.OutOrStdout(), table)
			}
			if err := io.ExportRampCSV(table, output); err != nil {
				return err
			}
			printSuccess("Sampled %s", name)
			printFile(output)
			printDetail("%d colors", len(table))
			fmt.Println("  " + swatch(table, swatchWidth))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file (default: stdout)")
	return cmd
}

func (c *CLI) rampPlotCommand() *cobra.Command {
	var (
		flags         rampFlags
		input         string
		output        string
		width, height float64
		scale         float64
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw a ramp as an SVG, PNG, or PDF swatch",
		Long: `Draw a ramp as an SVG, PNG, or PDF swatch.

The ramp is sampled from the selected gradient, or read from a CSV file
written by 'ramp sample' when --input is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				table ramp.Table
				err   error
			)
			if input != "" {
				table, err = io.ImportRampCSV(input)
			} else {
				table, _, err = c.table(cmd, &flags)
			}
			if err != nil {
				return err
			}

			svg, err := render.RenderRampSVG(table, width, height)
			if err != nil {
				return fmt.Errorf("render swatch: %w", err)
			}
			if err := c.writeImage(cmd.Context(), svg, output, scale); err != nil {
				return err
			}
			printSuccess("Swatch complete")
			printFile(output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "", "read the ramp from a CSV file instead of sampling")
	cmd.Flags().StringVarP(&output, "output", "o", "ramp.svg", "output file (.svg, .png, or .pdf)")
	cmd.Flags().Float64Var(&width, "width", 510, "swatch width")
	cmd.Flags().Float64Var(&height, "height", 48, "swatch height")
	cmd.Flags().Float64Var(&scale, "scale", defaultScale, "PNG scale factor")
	return cmd
}
