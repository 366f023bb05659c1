package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sstucker/particles/pkg/config"
	"github.com/sstucker/particles/pkg/errors"
)

// configCommand creates the config command group.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create configuration files",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.cfg.Encode(config.Format(format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatTOML), "output format: toml, yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFixed(string(config.FormatTOML), string(config.FormatYAML)))
	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to a file",
		Long: `Write the default configuration to a file.

Without a path the file is created in the user config directory, where it is
picked up automatically. The format follows the extension (.toml, .yaml).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := initPath(args)
			if err != nil {
				return err
			}
			return runConfigInit(path, overwrite)
		},
	}

	cmd.Flags().BoolVar(&overwrite, "force", false, "overwrite an existing file")
	return cmd
}

func initPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return defaultConfigPath()
}

func runConfigInit(path string, overwrite bool) error {
	format, err := config.FormatOf(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
	}

	data, err := config.Default().Encode(format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}

	printSuccess("Config written")
	printFile(path)
	printNewline()
	printNextStep("Use it", fmt.Sprintf("%s --config %s force plot", appName, path))
	return nil
}
