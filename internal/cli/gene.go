package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sstucker/particles/pkg/force"
	"github.com/sstucker/particles/pkg/gene"
)

// geneCommand creates the gene command group.
func (c *CLI) geneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gene",
		Short: "Convert between byte genes and force parameters",
		Long: `Convert between byte genes and force parameters.

A genome stores the four profile parameters as one byte each. Every byte is
decoded through its own range from the [bounds] section of the config file.`,
	}

	cmd.AddCommand(c.geneDecodeCommand())
	cmd.AddCommand(c.geneEncodeCommand())
	cmd.AddCommand(c.geneMidpointCommand())
	return cmd
}

func (c *CLI) geneDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode RR RS FR FS",
		Short: "Decode four gene bytes into force parameters",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var codes [4]uint8
			for i, arg := range args {
				b, err := parseByteArg(fmt.Sprintf("gene %d", i+1), arg)
				if err != nil {
					return err
				}
				codes[i] = b
			}
			g := gene.Genes{RepulsionRange: codes[0], RepulsionStrength: codes[1], ForceRange: codes[2], ForceStrength: codes[3]}

			p, err := c.cfg.Bounds.Decode(g)
			if err != nil {
				return fmt.Errorf("decode genes: %w", err)
			}
			printParams(p)
			return nil
		},
	}
}

func (c *CLI) geneEncodeCommand() *cobra.Command {
	var flags forceFlags

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode force parameters into gene bytes",
		Long: `Encode force parameters into gene bytes.

Parameters default to the [force] section of the config file. Values outside
their bounds saturate at 0 or 255.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := flags.resolve(cmd, c.cfg)
			g, err := c.cfg.Bounds.Encode(p)
			if err != nil {
				return fmt.Errorf("encode genes: %w", err)
			}
			printGenes(g)
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}

func (c *CLI) geneMidpointCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "midpoint",
		Short: "Print the genes at the middle of every bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.cfg.Bounds.Midpoint()
			if err != nil {
				return err
			}
			printGenes(g)
			return nil
		},
	}
}

func printParams(p force.Params) {
	printNumber("repulsion_range", p.RepulsionRange)
	printNumber("repulsion_strength", p.RepulsionStrength)
	printNumber("force_range", p.ForceRange)
	printNumber("force_strength", p.ForceStrength)
	printDetail("reach %s, peak at %s", formatFloat(p.Reach()), formatFloat(p.Peak()))
}

func printGenes(g gene.Genes) {
	printKeyValue("repulsion_range", StyleNumber.Render(fmt.Sprint(g.RepulsionRange)))
	printKeyValue("repulsion_strength", StyleNumber.Render(fmt.Sprint(g.RepulsionStrength)))
	printKeyValue("force_range", StyleNumber.Render(fmt.Sprint(g.ForceRange)))
	printKeyValue("force_strength", StyleNumber.Render(fmt.Sprint(g.ForceStrength)))
}
