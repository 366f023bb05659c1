package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/sstucker/particles/pkg/config"
)

// preRun attaches the logger to the command context and resolves the
// effective configuration.
//
// An explicit --config file must exist. Without the flag the file in the
// user config directory is used when present, and built-in defaults
// otherwise.
func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	cfg, source, err := c.resolveConfig()
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("config resolved", "source", source)
	return nil
}

// resolveConfig returns the configuration and a description of where it
// came from.
func (c *CLI) resolveConfig() (config.Config, string, error) {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return config.Config{}, "", fmt.Errorf("load config: %w", err)
		}
		return cfg, c.configPath, nil
	}

	path, err := defaultConfigPath()
	if err != nil {
		return config.Default(), "defaults", nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Default(), "defaults", nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("load config: %w", err)
	}
	return cfg, path, nil
}
