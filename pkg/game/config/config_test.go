package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Full(t *testing.T) {
	src := []byte(`
map_file  = "maps/level2.txt"
level     = 2
renderer  = "tui"
log_level = "debug"

layout {
  cell_width  = 2
  cell_height = 3
  padding     = 0
}
`)
	cfg, err := Parse("board.hcl", src)
	require.NoError(t, err)
	assert.Equal(t, "maps/level2.txt", cfg.MapFile)
	assert.Equal(t, 2, cfg.Level)
	assert.Equal(t, RendererTUI, cfg.Renderer)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, &Layout{CellWidth: 2, CellHeight: 3, Padding: 0}, cfg.Layout)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse("board.hcl", []byte(`map_file = "a.txt"`))
	require.NoError(t, err)
	assert.Equal(t, "a.txt", cfg.MapFile)
	assert.Equal(t, 1, cfg.Level)
	assert.Equal(t, RendererASCII, cfg.Renderer)
	assert.Equal(t, 1.0, cfg.Layout.Padding)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"renderer":  `renderer = "svg"`,
		"log level": `log_level = "loud"`,
		"width":     "layout {\n  cell_width = -1\n}",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse("board.hcl", []byte(src))
			assert.True(t, errors.Is(err, ErrInvalid), "err = %v", err)
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse("board.hcl", []byte(`level = `))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`level = 4`), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Level)
}

func TestParse_EnvVariables(t *testing.T) {
	t.Setenv("BOARD_MAPS", "/srv/maps")
	cfg, err := Parse("board.hcl", []byte(`map_file = "${env.BOARD_MAPS}/level3.txt"`))
	require.NoError(t, err)
	assert.Equal(t, "/srv/maps/level3.txt", cfg.MapFile)

	_, err = Parse("board.hcl", []byte(`map_file = env.BOARD_MISSING_VARIABLE_XYZ`))
	assert.Error(t, err)
}

func TestEvalContext_SkipsMalformedPairs(t *testing.T) {
	ctx := evalContext([]string{"A=1", "broken", "=x", "B=two=2"})
	env := ctx.Variables["env"].AsValueMap()
	assert.Len(t, env, 2)
	assert.Equal(t, "two=2", env["B"].AsString())

	empty := evalContext(nil)
	assert.True(t, empty.Variables["env"].Type().IsObjectType())
}
