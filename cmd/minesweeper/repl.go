package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vsafonkin/minesweeper/internal/mines"
)

const helpText = `commands:
  o x y    open the cell at x:y
  f x y    flag or unflag the cell at x:y
  c x y    chord an opened cell at x:y
  n        start a new game
  r        resign the current game
  h        show this help
  q        quit
`

type repl struct {
	game *mines.Game
	in   io.Reader
	out  io.Writer
}

func (r *repl) printField() {
	for _, row := range r.game.RenderField() {
		fmt.Fprintln(r.out, row)
	}
	fmt.Fprintf(r.out, "status: %s, flags: %d/%d, time: %s\n",
		r.game.Status(), r.game.FlaggedCount(), r.game.MineCount,
		r.game.ElapsedTime(),
	)
}

func (r *repl) run() error {
	fmt.Fprint(r.out, helpText)
	r.printField()

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Debug("command: ", line)
		switch line {
		case "q":
			return nil
		case "h":
			fmt.Fprint(r.out, helpText)
			continue
		}
		if err := executeCommand(r.game, line); err != nil {
			fmt.Fprintln(r.out, err)
			continue
		}
		r.printField()
		switch r.game.Status() {
		case mines.Victory:
			fmt.Fprintf(r.out, "you won in %s! type n to play again\n", r.game.ElapsedTime())
		case mines.Defeat:
			fmt.Fprintln(r.out, "boom! type n to play again")
		}
	}
}
