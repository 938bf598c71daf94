// Package config loads board settings from an HCL file.
//
//	map_file  = "maps/level1.txt"
//	level     = 1
//	renderer  = "ascii"
//	log_level = "info"
//
//	layout {
//	  cell_width  = 1
//	  cell_height = 1
//	  padding     = 1
//	}
//
// Environment variables are available as env.NAME, e.g.
// map_file = "${env.HOME}/maps/level1.txt".
package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Renderer names
const (
	RendererASCII  = "ascii"
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Layout holds the world-space sizing of board cells.
type Layout struct {
	CellWidth  float64 `hcl:"cell_width,optional"`
	CellHeight float64 `hcl:"cell_height,optional"`
	Padding    float64 `hcl:"padding,optional"`
}

// Config is the decoded configuration file.
type Config struct {
	MapFile  string  `hcl:"map_file,optional"`
	Level    int     `hcl:"level,optional"`
	Renderer string  `hcl:"renderer,optional"`
	LogLevel string  `hcl:"log_level,optional"`
	Layout   *Layout `hcl:"layout,block"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Level:    1,
		Renderer: RendererASCII,
		LogLevel: "info",
		Layout:   &Layout{CellWidth: 1, CellHeight: 1, Padding: 1},
	}
}

// Load decodes the file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	decoded := &Config{}
	if err := hclsimple.DecodeFile(path, evalContext(os.Environ()), decoded); err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", path)
	}
	cfg.merge(decoded)
	return cfg, cfg.Validate()
}

// Parse decodes HCL source; filename is used in diagnostics and must end
// in ".hcl".
func Parse(filename string, src []byte) (*Config, error) {
	cfg := Default()
	decoded := &Config{}
	if err := hclsimple.Decode(filename, src, evalContext(os.Environ()), decoded); err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", filename)
	}
	cfg.merge(decoded)
	return cfg, cfg.Validate()
}

// evalContext exposes environ ("KEY=value" pairs) as the env object.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

func (c *Config) merge(o *Config) {
	if o.MapFile != "" {
		c.MapFile = o.MapFile
	}
	if o.Level != 0 {
		c.Level = o.Level
	}
	if o.Renderer != "" {
		c.Renderer = o.Renderer
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Layout != nil {
		if o.Layout.CellWidth != 0 {
			c.Layout.CellWidth = o.Layout.CellWidth
		}
		if o.Layout.CellHeight != 0 {
			c.Layout.CellHeight = o.Layout.CellHeight
		}
		// zero padding is meaningful, so it always wins when the block is present
		c.Layout.Padding = o.Layout.Padding
	}
}

// Validate checks ranges and enum values
func (c *Config) Validate() error {
	if c.Level < 1 {
		return errors.Wrapf(ErrInvalid, "level must be >= 1, got %d", c.Level)
	}
	switch c.Renderer {
	case RendererASCII, RendererTUI, RendererEbiten:
	default:
		return errors.Wrapf(ErrInvalid, "unknown renderer %q", c.Renderer)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}
	if c.Layout == nil {
		return errors.Wrap(ErrInvalid, "missing layout")
	}
	if c.Layout.CellWidth <= 0 || c.Layout.CellHeight <= 0 || c.Layout.Padding < 0 {
		return errors.Wrapf(ErrInvalid, "layout sizes must be positive (padding non-negative): %+v", *c.Layout)
	}
	return nil
}
