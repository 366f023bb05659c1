// Package config loads default parameters for the particles tools.
//
// A config file is optional. When present it is decoded on top of
// [Default], so a file only needs the keys it changes:
//
//	[force]
//	repulsion_range = 10
//	force_range = 200
//
//	[ramp]
//	gradient = "viridis"
//	space = "lab"
//
// The format is chosen by extension: ".toml", ".yaml", or ".yml".
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sstucker/particles/pkg/errors"
	"github.com/sstucker/particles/pkg/force"
	"github.com/sstucker/particles/pkg/gene"
	"github.com/sstucker/particles/pkg/ramp"
)

// Format is a config file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Config holds defaults for every command.
type Config struct {
	Force  force.Params `json:"force" toml:"force" yaml:"force"`
	Sweep  Sweep        `json:"sweep" toml:"sweep" yaml:"sweep"`
	Ramp   Ramp         `json:"ramp" toml:"ramp" yaml:"ramp"`
	Bounds gene.Bounds  `json:"bounds" toml:"bounds" yaml:"bounds"`
}

// Sweep is the distance interval sampled by "force sweep" and "force plot".
type Sweep struct {
	From float64 `json:"from" toml:"from" yaml:"from" validate:"gte=0"`
	To   float64 `json:"to" toml:"to" yaml:"to" validate:"gtefield=From"`
	Step float64 `json:"step" toml:"step" yaml:"step" validate:"gt=0"`
}

// Ramp selects the gradient sampled by the ramp commands.
type Ramp struct {
	Gradient string `json:"gradient" toml:"gradient" yaml:"gradient" validate:"required"`
	Count    int    `json:"count" toml:"count" yaml:"count" validate:"gt=0,lte=65536"`
	Space    string `json:"space" toml:"space" yaml:"space"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Force: force.Params{
			RepulsionRange:    10,
			RepulsionStrength: 40,
			ForceRange:        200,
			ForceStrength:     -0.1,
		},
		Sweep: Sweep{From: 0, To: 250, Step: 1},
		Ramp: Ramp{
			Gradient: "purd",
			Count:    ramp.DefaultCount,
			Space:    "rgb",
		},
		Bounds: gene.DefaultBounds(),
	}
}

// Load reads the config file at path on top of [Default] and validates it.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes data on top of [Default] and validates the result.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document leaves the defaults in place.
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}
	default:
		return Config{}, errors.New(errors.ErrCodeUnsupported, "unsupported config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FormatOf returns the config format implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported config extension %q (must be .toml, .yaml, or .yml)", filepath.Ext(path))
	}
}

// Encode writes cfg in the given format.
func (c Config) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported config format %q", format)
	}
	return buf.Bytes(), nil
}

// Validate checks struct constraints, then the domain invariants that tags
// cannot express: finite values, non-degenerate bounds, and a known
// gradient and blend space.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if err := c.Force.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "force")
	}
	if err := c.Bounds.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "bounds")
	}
	if _, err := c.Gradient(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "ramp")
	}
	return nil
}

// BlendSpace returns the parsed ramp blend space, defaulting to RGB.
func (c Config) BlendSpace() (ramp.BlendSpace, error) {
	if c.Ramp.Space == "" {
		return ramp.BlendRGB, nil
	}
	return ramp.ParseBlendSpace(c.Ramp.Space)
}

// Gradient resolves the configured gradient name in the configured space.
func (c Config) Gradient() (ramp.Gradient, error) {
	space, err := c.BlendSpace()
	if err != nil {
		return nil, err
	}
	return ramp.LookupIn(c.Ramp.Gradient, space)
}

var validate = newValidator()

// newValidator reports field paths with config key names rather than Go
// field names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formatValidationError converts the first validator failure into an
// INVALID_CONFIG error.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "validate")
	}

	e := verrs[0]
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "required":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: field is required", field)
	case "gt":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must be greater than %s, got %v", field, e.Param(), e.Value())
	case "gte":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must be at least %s, got %v", field, e.Param(), e.Value())
	case "lte":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must not exceed %s, got %v", field, e.Param(), e.Value())
	case "gtefield":
		return errors.New(errors.ErrCodeInvalidConfig, "%s: must not be less than %s", field, strings.ToLower(e.Param()))
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: validation failed (%s)", field, e.Tag())
	}
}
