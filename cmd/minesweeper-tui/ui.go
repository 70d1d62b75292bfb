package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/vsafonkin/minesweeper/internal/mines"
)

// eventQuit is posted as interrupt data to wake PollEvent on shutdown.
type eventQuit struct{}

const (
	fieldTop  = 2 // rows above the field: header + blank line
	fieldLeft = 1
)

type ui struct {
	screen tcell.Screen
	game   *mines.Game
	curX   int
	curY   int
}

func (u *ui) run() {
	u.draw()
	for {
		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if u.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(eventQuit); ok {
				return
			}
		case nil: // screen finalized
			return
		}
		u.draw()
	}
}

func (u *ui) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		u.move(0, -1)
	case tcell.KeyDown:
		u.move(0, 1)
	case tcell.KeyLeft:
		u.move(-1, 0)
	case tcell.KeyRight:
		u.move(1, 0)
	case tcell.KeyEnter:
		u.open()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'h':
			u.move(-1, 0)
		case 'j':
			u.move(0, 1)
		case 'k':
			u.move(0, -1)
		case 'l':
			u.move(1, 0)
		case ' ':
			u.open()
		case 'f':
			u.flag()
		case 'c':
			u.chord()
		case 'n':
			u.newGame()
		case 'r':
			u.game.Forfeit()
		}
	}
	return false
}

func (u *ui) move(dx, dy int) {
	if u.game.ValidatePoint(u.curX+dx, u.curY+dy) {
		u.curX += dx
		u.curY += dy
	}
}

func (u *ui) open() {
	if err := u.game.OpenCell(mines.Cell{X: u.curX, Y: u.curY}); err != nil {
		log.Error(err)
	}
}

func (u *ui) flag() {
	if err := u.game.MarkCell(mines.Cell{X: u.curX, Y: u.curY}); err != nil {
		log.Error(err)
	}
}

func (u *ui) chord() {
	if err := u.game.ChordCell(mines.Cell{X: u.curX, Y: u.curY}); err != nil {
		log.Error(err)
	}
}

func (u *ui) newGame() {
	if err := u.game.Reset(u.game.GameParams); err != nil {
		log.Error(err)
		return
	}
	u.curX, u.curY = 0, 0
}

var (
	styleHeader = tcell.StyleDefault.Bold(true)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func cellStyle(ch byte) tcell.Style {
	switch ch {
	case '*':
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case '?':
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case '-':
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case '.':
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case '1':
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case '2':
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case '3':
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorPurple)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func (u *ui) header() string {
	g := u.game
	status := g.Status().String()
	switch g.Status() {
	case mines.Victory:
		status = "you won!"
	case mines.Defeat:
		status = "boom!"
	}
	return fmt.Sprintf("flags %d/%d · %s · %s",
		g.FlaggedCount(), g.MineCount, status, g.ElapsedTime())
}

func (u *ui) draw() {
	s := u.screen
	s.Clear()

	drawText(s, fieldLeft, 0, styleHeader, u.header())

	rows := u.game.RenderField()
	for y, row := range rows {
		for x := range len(row) {
			ch := row[x]
			style := cellStyle(ch)
			if x == u.curX && y == u.curY {
				style = style.Reverse(true)
			}
			// Double horizontal spacing so the field reads as a square.
			s.SetContent(fieldLeft+x*2, fieldTop+y, rune(ch), nil, style)
		}
	}

	drawText(s, fieldLeft, fieldTop+len(rows)+1, styleHelp,
		"arrows/hjkl move · space open · f flag · c chord · n new · r resign · q quit")

	s.Show()
}
