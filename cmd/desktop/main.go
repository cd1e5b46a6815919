package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/asteroids-arcade/internal/audio/speaker"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/desktop"
	"github.com/tomz197/asteroids-arcade/internal/logging"
)

func main() {
	settings := config.Load()
	logger := logging.New(os.Stderr, settings.LogLevel, "desktop")

	sink, closeAudio := speaker.Open(settings.Audio, logger)
	defer closeAudio()

	seed := settings.RandSeed(time.Now())
	logger.Info("starting", "seed", seed, "audio", settings.Audio)

	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowSize(desktop.ScreenWidth, desktop.ScreenHeight)

	game := desktop.New(rand.New(rand.NewSource(seed)), sink, logger)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game error", "err", err)
	}
}
