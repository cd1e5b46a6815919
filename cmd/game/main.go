package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/asteroids-arcade/internal/audio/speaker"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/logging"
	"github.com/tomz197/asteroids-arcade/internal/loop"
)

func main() {
	settings := config.Load()

	// Stdout belongs to the game, so logs go to a file or nowhere.
	logger, closeLog, err := logging.OpenFile(settings.LogFile, settings.LogLevel, "game")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sink, closeAudio := speaker.Open(settings.Audio, logger)
	defer closeAudio()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	seed := settings.RandSeed(time.Now())
	logger.Info("starting", "seed", seed, "audio", settings.Audio)

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Audio:  sink,
		Logger: logger,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
