package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsafonkin/minesweeper/internal/mines"
)

func TestReplPlaysAScriptedGame(t *testing.T) {
	g, err := mines.NewGameWithMines(3, 3, []mines.Cell{{X: 2, Y: 2}})
	require.NoError(t, err)

	var out bytes.Buffer
	r := &repl{
		game: g,
		in:   strings.NewReader("o 0 0\nq\n"),
		out:  &out,
	}
	require.NoError(t, r.run())

	assert.Equal(t, mines.Victory, g.Status())
	assert.Contains(t, out.String(), "status: victory")
	assert.Contains(t, out.String(), "you won in")
}

func TestReplReportsBadCommands(t *testing.T) {
	g, err := mines.NewGameWithMines(2, 2, []mines.Cell{{X: 0, Y: 0}})
	require.NoError(t, err)

	var out bytes.Buffer
	r := &repl{
		game: g,
		in:   strings.NewReader("derp\no 5 5\nq\n"),
		out:  &out,
	}
	require.NoError(t, r.run())

	assert.Contains(t, out.String(), "unknown command")
	assert.Contains(t, out.String(), "outside the field boundary")
	assert.Equal(t, mines.NotStarted, g.Status())
}

func TestReplQuitsOnEOF(t *testing.T) {
	g, err := mines.NewGameWithMines(2, 2, nil)
	require.NoError(t, err)

	r := &repl{game: g, in: strings.NewReader(""), out: &bytes.Buffer{}}
	require.NoError(t, r.run())
}
