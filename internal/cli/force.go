package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sstucker/particles/pkg/config"
	"github.com/sstucker/particles/pkg/force"
	"github.com/sstucker/particles/pkg/io"
	"github.com/sstucker/particles/pkg/render"
)

// forceFlags holds the profile and sweep flags shared by the force
// subcommands. Flags left unset fall back to the config file.
type forceFlags struct {
	params         force.Params
	from, to, step float64
	withSweep      bool
}

func (f *forceFlags) register(cmd *cobra.Command, withSweep bool) {
	fl := cmd.Flags()
	fl.Float64Var(&f.params.RepulsionRange, "repulsion-range", 0, "width of the repulsion zone (> 0)")
	fl.Float64Var(&f.params.RepulsionStrength, "repulsion-strength", 0, "force at distance 0")
	fl.Float64Var(&f.params.ForceRange, "force-range", 0, "width of the force zone (>= 0)")
	fl.Float64Var(&f.params.ForceStrength, "force-strength", 0, "force at the force-zone midpoint")
	if withSweep {
		f.withSweep = true
		fl.Float64Var(&f.from, "from", 0, "first sweep distance")
		fl.Float64Var(&f.to, "to", 0, "last sweep distance")
		fl.Float64Var(&f.step, "step", 0, "sweep increment (> 0)")
	}
}

// resolve merges explicitly set flags over cfg.
func (f *forceFlags) resolve(cmd *cobra.Command, cfg config.Config) (force.Params, config.Sweep) {
	p, s := cfg.Force, cfg.Sweep
	fl := cmd.Flags()
	override := func(name string, dst *float64, v float64) {
		if fl.Changed(name) {
			*dst = v
		}
	}
	override("repulsion-range", &p.RepulsionRange, f.params.RepulsionRange)
	override("repulsion-strength", &p.RepulsionStrength, f.params.RepulsionStrength)
	override("force-range", &p.ForceRange, f.params.ForceRange)
	override("force-strength", &p.ForceStrength, f.params.ForceStrength)
	if f.withSweep {
		override("from", &s.From, f.from)
		override("to", &s.To, f.to)
		override("step", &s.Step, f.step)
	}
	return p, s
}

// forceCommand creates the force command group.
func (c *CLI) forceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force",
		Short: "Evaluate the pairwise force profile",
		Long: `Evaluate the pairwise force profile.

The profile is piecewise linear in distance: it falls from the repulsion
strength at distance 0 to zero at the repulsion range, then forms a triangle
over the force range that peaks at the force strength, and is zero beyond.

Profile parameters default to the [force] section of the config file and can
be overridden with flags.`,
	}

	cmd.AddCommand(c.forceEvalCommand())
	cmd.AddCommand(c.forceSweepCommand())
	cmd.AddCommand(c.forcePlotCommand())
	return cmd
}

func (c *CLI) forceEvalCommand() *cobra.Command {
	var flags forceFlags

	cmd := &cobra.Command{
		Use:   "eval DISTANCE...",
		Short: "Evaluate the profile at one or more distances",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := flags.resolve(cmd, c.cfg)
			logParams(loggerFromContext(cmd.Context()), p)

			for _, arg := range args {
				d, err := parseFloatArg("distance", arg)
				if err != nil {
					return err
				}
				v, err := p.Eval(d)
				if err != nil {
					return fmt.Errorf("evaluate at %s: %w", arg, err)
				}
				printKeyValue(fmt.Sprintf("force(%s)", formatFloat(d)),
					StyleNumber.Render(formatFloat(v))+" "+zoneLabel(p.ZoneOf(d).String()))
			}
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}

func (c *CLI) forceSweepCommand() *cobra.Command {
	var (
		flags  forceFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sample the profile over a distance range",
		Long: `Sample the profile over a distance range.

Writes "distance,force" CSV to stdout, or to --output. An output path ending
in .json writes a JSON array that also names each point's zone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := c.sweep(cmd, &flags)
			if err != nil {
				return err
			}
			if output == "" {
				return io.WriteSweepCSV(cmd.OutOrStdout(), pts)
			}
			if err := io.ExportSweep(pts, output); err != nil {
				return err
			}
			printSuccess("Sweep complete")
			printFile(output)
			printDetail("%d points", len(pts))
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.csv or .json; default: stdout)")
	return cmd
}

func (c *CLI) forcePlotCommand() *cobra.Command {
	var (
		flags  forceFlags
		output string
		scale  float64
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the profile as SVG, PNG, or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := c.sweep(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runForcePlot(cmd.Context(), pts, output, scale)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "force.svg", "output file (.svg, .png, or .pdf)")
	cmd.Flags().Float64Var(&scale, "scale", defaultScale, "PNG scale factor")
	return cmd
}

// sweep resolves flags and samples the profile.
func (c *CLI) sweep(cmd *cobra.Command, flags *forceFlags) ([]force.Point, error) {
	logger := loggerFromContext(cmd.Context())
	p, s := flags.resolve(cmd, c.cfg)
	logParams(logger, p)

	prog := newProgress(logger)
	pts, err := force.Sweep(p, s.From, s.To, s.Step)
	if err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	prog.done(fmt.Sprintf("Sampled %d distances", len(pts)))

	lo, hi := force.Extent(pts)
	logger.Debug("sweep extent", "min", lo, "max", hi)
	return pts, nil
}

func (c *CLI) runForcePlot(ctx context.Context, pts []force.Point, output string, scale float64) error {
	svg, err := render.RenderChartSVG(
		[]render.Series{render.SweepSeries("force", pts)},
		render.WithTitle("Force profile"),
		render.WithAxisLabels("distance", "force"),
	)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if err := c.writeImage(ctx, svg, output, scale); err != nil {
		return err
	}

	printSuccess("Plot complete")
	printFile(output)
	return nil
}
