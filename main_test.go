package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardmap/pkg/game/config"
	"boardmap/pkg/game/generator"
	"boardmap/pkg/game/setup"
	"boardmap/pkg/game/state"
)

func TestBuildMap_DefaultGeneratorWithoutMapFile(t *testing.T) {
	cfg := config.Default()
	m, err := buildMap(cfg, "", setup.Options{})
	require.NoError(t, err)

	want := generator.DefaultGenerator.Generate(cfg.Level).String()
	assert.Equal(t, want, m.Description.String())
}

func TestBuildMap_UnknownGenerator(t *testing.T) {
	_, err := buildMap(config.Default(), "bsp", setup.Options{})
	assert.Error(t, err)
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "Level 3", statusLine(3, nil))

	m, err := setup.Build("1,2\nNormalCell,1\nNormalCell,0", setup.Options{})
	require.NoError(t, err)
	game, err := state.NewGame(m.Board, state.FirstWalkable(m.Board), nil)
	require.NoError(t, err)
	assert.Equal(t, "Level 1  Turn 1  Moves left: 1", statusLine(1, game))
}
