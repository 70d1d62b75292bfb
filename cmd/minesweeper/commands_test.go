package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsafonkin/minesweeper/internal/mines"
)

func newTestGame(t *testing.T) *mines.Game {
	t.Helper()
	g, err := mines.NewGameWithMines(3, 3, []mines.Cell{{X: 1, Y: 1}})
	require.NoError(t, err)
	return g
}

func TestParseXY(t *testing.T) {
	x, y, err := parseXY([]string{"4", "7"})
	require.NoError(t, err)
	assert.Equal(t, 4, x)
	assert.Equal(t, 7, y)

	_, _, err = parseXY([]string{"a", "7"})
	assert.EqualError(t, err, "first argument must be an int")

	_, _, err = parseXY([]string{"4", "b"})
	assert.EqualError(t, err, "second argument must be an int")
}

func TestExecuteCommandRejectsMalformedInput(t *testing.T) {
	g := newTestGame(t)

	tests := []struct {
		name, command, message string
	}{
		{"unknown command", "x 1 2", "unknown command"},
		{"too few arguments", "o 1", "invalid number of arguments"},
		{"too many arguments", "r 1 2", "invalid number of arguments"},
		{"non-numeric argument", "o one 2", "first argument must be an int"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.EqualError(t, executeCommand(g, test.command), test.message)
		})
	}

	// Malformed input must leave the board untouched.
	assert.Equal(t, mines.NotStarted, g.Status())
	assert.Equal(t, 0, g.OpenedCount())
}

func TestExecuteCommandOpenFlagChord(t *testing.T) {
	g := newTestGame(t)

	require.NoError(t, executeCommand(g, "o 0 0"))
	assert.Equal(t, 1, g.OpenedCount())

	require.NoError(t, executeCommand(g, "f 1 1"))
	assert.Equal(t, 1, g.FlaggedCount())

	require.NoError(t, executeCommand(g, "c 0 0"))
	assert.Equal(t, 3, g.OpenedCount())
}

func TestExecuteCommandPropagatesBoundsError(t *testing.T) {
	g := newTestGame(t)

	var be mines.BoundsError
	require.ErrorAs(t, executeCommand(g, "o 9 9"), &be)
	assert.Equal(t, mines.Cell{X: 9, Y: 9}, be.Cell)
}

func TestExecuteCommandResignAndNewGame(t *testing.T) {
	g := newTestGame(t)

	require.NoError(t, executeCommand(g, "r"))
	assert.Equal(t, mines.Defeat, g.Status())

	require.NoError(t, executeCommand(g, "n"))
	assert.Equal(t, mines.NotStarted, g.Status())
	assert.Equal(t, 0, g.OpenedCount())
}
