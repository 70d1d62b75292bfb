package main

import (
	"context"
	"flag"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vsafonkin/minesweeper/internal/mines"
)

var log = logrus.New()

var (
	width     int
	height    int
	mineCount int
	seed      uint64
	logPath   string
)

func init() {
	flag.IntVar(&width, "width", 9, "field width")
	flag.IntVar(&width, "w", 9, "field width (shorthand)")
	flag.IntVar(&height, "height", 9, "field height")
	flag.IntVar(&mineCount, "mines", 10, "number of mines")
	flag.IntVar(&mineCount, "m", 10, "number of mines (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, "mine placement seed, 0 picks a random one")
	flag.StringVar(&logPath, "log", "minesweeper-tui.log", "diagnostics file")
}

// The terminal is in raw mode while we run, so nothing may write to
// stderr; diagnostics go to a rotating file only.
func setupLogging() {
	log.SetOutput(io.Discard)
	mines.Log.SetOutput(io.Discard)
	if logPath == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return
	}
	log.AddHook(hook)
	mines.Log.AddHook(hook)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(),
			new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func fatal(args ...any) {
	logrus.New().Error(args...)
	os.Exit(1)
}

func main() {
	flag.Parse()
	setupLogging()

	params := mines.GameParams{Width: width, Height: height, MineCount: mineCount}
	game, err := mines.NewGame(params, newRand(seed))
	if err != nil {
		fatal("unable to start game: ", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal("unable to create screen: ", err)
	}
	if err := screen.Init(); err != nil {
		fatal("unable to init screen: ", err)
	}
	defer screen.Fini()

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	u := &ui{screen: screen, game: game}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		// Redraw once a second so the timer ticks while the player thinks.
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gCtx.Done():
				return nil
			case <-ticker.C:
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	})
	g.Go(func() error {
		<-gCtx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(eventQuit{}))
		return nil
	})
	g.Go(func() error {
		defer stop()
		u.run()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("exit reason: ", err)
	}
}
