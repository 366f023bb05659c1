// Package cli implements the particles command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sstucker/particles/pkg/buildinfo"
	"github.com/sstucker/particles/pkg/cache"
	"github.com/sstucker/particles/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "particles"

	// configFileName is the file looked up in the config directory when
	// --config is not given.
	configFileName = "config.toml"

	// defaultScale is the PNG scale factor for image output.
	defaultScale = 2.0

	// artifactTTL bounds how long converted images stay in the cache.
	artifactTTL = 30 * 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag value.
	configPath string

	// cfg is the effective configuration, resolved before any command runs.
	cfg config.Config

	// noCache is the --no-cache flag value.
	noCache bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Particles evaluates force profiles, byte codes, and color ramps",
		Long: `Particles is a toolkit for the pieces of a particle simulation that are
worth inspecting on their own: the piecewise-linear force profile between two
particles, the 8-bit codec used to store parameters as genes, and the color
ramp used to paint particles by type.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.preRun,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (.toml, .yaml); default "+defaultConfigHint())
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "convert images without reading or writing the cache")

	// Register all subcommands
	root.AddCommand(c.forceCommand())
	root.AddCommand(c.quantCommand())
	root.AddCommand(c.rampCommand())
	root.AddCommand(c.geneCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/particles/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/particles/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the config file used when --config is not set.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func defaultConfigHint() string {
	if p, err := defaultConfigPath(); err == nil {
		return p
	}
	return "none"
}
