package main

import (
	"flag"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vsafonkin/minesweeper/internal/mines"
)

var log = logrus.New()

var (
	width     int
	height    int
	mineCount int
	seed      uint64
	logPath   string
	verbose   bool
)

func init() {
	flag.IntVar(&width, "width", 9, "field width")
	flag.IntVar(&width, "w", 9, "field width (shorthand)")
	flag.IntVar(&height, "height", 9, "field height")
	flag.IntVar(&mineCount, "mines", 10, "number of mines")
	flag.IntVar(&mineCount, "m", 10, "number of mines (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, "mine placement seed, 0 picks a random one")
	flag.StringVar(&logPath, "log", "", "append diagnostics to this file")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	mines.Log.SetLevel(logLevel)

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
		log.Fatal("unable to set up log file: ", err)
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

func main() {
	flag.Parse()
	setupLogging()

	params := mines.GameParams{Width: width, Height: height, MineCount: mineCount}
	game, err := mines.NewGame(params, newRand(seed))
	if err != nil {
		log.Fatal("unable to start game: ", err)
	}

	log.WithFields(logrus.Fields{
		"width": width, "height": height, "mines": mineCount,
	}).Debug("game created")

	r := &repl{game: game, in: os.Stdin, out: os.Stdout}
	if err := r.run(); err != nil {
		log.Fatal(err)
	}
}
