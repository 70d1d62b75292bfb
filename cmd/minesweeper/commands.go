package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vsafonkin/minesweeper/internal/mines"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2, // open
	"f": 2, // flag
	"c": 2, // chord
	"n": 0, // new game
	"r": 0, // resign
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func executeCommand(g *mines.Game, c string) (err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "o":
		if x, y, err := parseXY(parts[1:]); err != nil {
			return err
		} else {
			return g.OpenCell(mines.Cell{X: x, Y: y})
		}
	case "f":
		if x, y, err := parseXY(parts[1:]); err != nil {
			return err
		} else {
			return g.MarkCell(mines.Cell{X: x, Y: y})
		}
	case "c":
		if x, y, err := parseXY(parts[1:]); err != nil {
			return err
		} else {
			return g.ChordCell(mines.Cell{X: x, Y: y})
		}
	case "n":
		return g.Reset(g.GameParams)
	case "r":
		g.Forfeit()
		return nil
	}
	return errors.New("invalid command")
}
