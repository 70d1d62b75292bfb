package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type GameStatus int

const (
	NotStarted GameStatus = iota
	InProgress
	Victory
	Defeat
)

func (s GameStatus) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return fmt.Sprintf("GameStatus(%d)", int(s))
	}
}

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) ValidatePoint(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// Game holds the whole state of one minesweeper board. A Game is not safe
// for concurrent use; the caller owns it exclusively.
type Game struct {
	GameParams
	mines      cellSet
	flagged    cellSet
	closed     cellSet
	status     GameStatus
	startedAt  time.Time
	finishedAt time.Time
	rnd        *rand.Rand
}

// NewGame creates a board with MineCount mines placed uniformly at random
// (a shuffle of every cell, taking the prefix). A nil r is seeded from a
// non-deterministic source; pass a seeded [rand.Rand] for reproducible
// layouts.
func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	g := &Game{rnd: r}
	if err := g.Reset(params); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGameWithMines creates a board with mines at exactly the given cells.
// Duplicates collapse since mines are a set.
func NewGameWithMines(width, height int, cells []Cell) (*Game, error) {
	g := &Game{}
	if err := g.ResetWithMines(width, height, cells); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset discards all state and starts a fresh game with random mine
// placement. On error the previous state is kept intact.
func (g *Game) Reset(params GameParams) error {
	if params.MineCount > params.Width*params.Height {
		return ConfigError{"too many mines"}
	}
	g.reset(params)
	g.fillMines(params.MineCount)
	g.fillClosed()
	return nil
}

// ResetWithMines discards all state and starts a fresh game with the given
// mine cells. On error the previous state is kept intact.
func (g *Game) ResetWithMines(width, height int, cells []Cell) error {
	params := GameParams{Width: width, Height: height}
	if len(cells) > width*height {
		return ConfigError{"too many mines"}
	}
	for _, c := range cells {
		if !params.ValidatePoint(c.X, c.Y) {
			return ConfigError{fmt.Sprintf(
				"mine at %d:%d is outside the field boundary", c.X, c.Y,
			)}
		}
	}
	g.reset(params)
	for _, c := range cells {
		g.mines.add(c)
	}
	g.MineCount = len(g.mines)
	g.fillClosed()
	return nil
}

func (g *Game) reset(params GameParams) {
	g.GameParams = params
	g.status = NotStarted
	g.startedAt = time.Time{}
	g.finishedAt = time.Time{}
	g.mines = make(cellSet, params.MineCount)
	g.flagged = make(cellSet)
	g.closed = make(cellSet, params.Width*params.Height)
}

func (g *Game) fillMines(count int) {
	if count == 0 {
		return
	}
	cells := make([]Cell, 0, g.Width*g.Height)
	for y := range g.Height {
		for x := range g.Width {
			cells = append(cells, Cell{x, y})
		}
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(),
			new(maphash.Hash).Sum64(),
		))
	}
	g.rnd.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	for _, c := range cells[:count] {
		g.mines.add(c)
	}
}

func (g *Game) fillClosed() {
	for y := range g.Height {
		for x := range g.Width {
			g.closed.add(Cell{x, y})
		}
	}
}

func (g *Game) inBounds(c Cell) bool {
	return g.ValidatePoint(c.X, c.Y)
}

func (g *Game) isMine(c Cell) bool {
	return g.mines.has(c)
}

func (g *Game) isFlagged(c Cell) bool {
	return g.flagged.has(c)
}

func (g *Game) isClosed(c Cell) bool {
	return g.closed.has(c)
}

func (g *Game) isOpened(c Cell) bool {
	return !g.isClosed(c)
}

func (g *Game) isFinished() bool {
	return g.status == Victory || g.status == Defeat
}

// minesNear counts mines among the up-to-8 in-bounds neighbors of c.
func (g *Game) minesNear(c Cell) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nb := Cell{c.X + dx, c.Y + dy}
			if g.inBounds(nb) && g.isMine(nb) {
				n++
			}
		}
	}
	return n
}

func (g *Game) start() {
	g.status = InProgress
	g.startedAt = time.Now()
}

func (g *Game) defeat() {
	g.status = Defeat
	g.finishedAt = time.Now()
	Log.WithFields(logrus.Fields{
		"closed": len(g.closed), "mines": len(g.mines),
	}).Debug("game lost")
}

func (g *Game) victoryCheck() {
	if len(g.closed) != len(g.mines) {
		return
	}
	g.status = Victory
	g.finishedAt = time.Now()
	Log.WithField("time", g.ElapsedTime()).Debug("game won")
}

// MarkCell toggles the flag on a cell. The first mark of a fresh board
// starts the game clock. Marking is a no-op once the game is over.
func (g *Game) MarkCell(c Cell) error {
	if !g.inBounds(c) {
		return BoundsError{c}
	}
	if g.isFinished() {
		return nil
	}
	if g.status == NotStarted {
		g.start()
	}
	if g.isFlagged(c) {
		g.flagged.remove(c)
	} else {
		g.flagged.add(c)
	}
	return nil
}

// OpenCell reveals a cell. Opening a mine loses the game; opening a safe
// cell with no neighboring mines cascades over the connected zero-count
// region. Finished games, flagged cells and already-open cells are silent
// no-ops that do not start the clock.
func (g *Game) OpenCell(c Cell) error {
	if !g.inBounds(c) {
		return BoundsError{c}
	}
	if g.isFinished() || g.isFlagged(c) || g.isOpened(c) {
		return nil
	}
	if g.status == NotStarted {
		g.start()
	}
	if g.isMine(c) {
		g.defeat()
		return nil
	}
	g.floodOpen(c)
	g.victoryCheck()
	return nil
}

// floodOpen runs a breadth-first reveal from c. Cells leave the closed set
// the moment they are queued, so no cell is queued twice. Cells with a
// non-zero mine count open without propagating further.
func (g *Game) floodOpen(c Cell) {
	queue := make([]Cell, 0, len(g.closed))
	queue = append(queue, c)
	g.closed.remove(c)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if g.minesNear(cur) != 0 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nb := Cell{cur.X + dx, cur.Y + dy}
				if g.inBounds(nb) && g.isClosed(nb) && !g.isFlagged(nb) {
					queue = append(queue, nb)
					g.closed.remove(nb)
				}
			}
		}
	}
}

// ChordCell opens every closed unflagged neighbor of an opened cell whose
// flagged-neighbor count matches its mine count. Anything else is a silent
// no-op.
func (g *Game) ChordCell(c Cell) error {
	if !g.inBounds(c) {
		return BoundsError{c}
	}
	if g.isFinished() || g.isClosed(c) {
		return nil
	}
	var (
		flags   int
		targets []Cell
	)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nb := Cell{c.X + dx, c.Y + dy}
			if !g.inBounds(nb) {
				continue
			}
			if g.isFlagged(nb) {
				flags++
			} else if g.isClosed(nb) {
				targets = append(targets, nb)
			}
		}
	}
	if flags != g.minesNear(c) {
		return nil
	}
	for _, nb := range targets {
		if err := g.OpenCell(nb); err != nil {
			return err
		}
		if g.isFinished() {
			return nil
		}
	}
	return nil
}

// Forfeit concedes an unfinished game.
func (g *Game) Forfeit() {
	if g.isFinished() {
		return
	}
	if g.status == NotStarted {
		g.start()
	}
	g.defeat()
}

func (g *Game) Status() GameStatus {
	return g.status
}

// ElapsedTime reports the game duration with whole-second resolution: zero
// before the first move, running while in progress, frozen once the game
// is over.
func (g *Game) ElapsedTime() time.Duration {
	switch g.status {
	case NotStarted:
		return 0
	case InProgress:
		return time.Since(g.startedAt).Truncate(time.Second)
	default:
		return g.finishedAt.Sub(g.startedAt).Truncate(time.Second)
	}
}

// OpenedCount reports how many cells have been revealed.
func (g *Game) OpenedCount() int {
	return g.Width*g.Height - len(g.closed)
}

// FlaggedCount reports how many cells carry a flag.
func (g *Game) FlaggedCount() int {
	return len(g.flagged)
}
