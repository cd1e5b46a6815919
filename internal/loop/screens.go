package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/asteroids-arcade/internal/loop/engine"
)

var titleArt = []string{
	`    _   ___ _____ ___ ___  ___ ___ ___  ___ `,
	`   /_\ / __|_   _| __| _ \/ _ \_ _|   \/ __|`,
	`  / _ \\__ \ | | | _||   / (_) | || |) \__ \`,
	` /_/ \_\___/ |_| |___|_|_\\___/___|___/|___/`,
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___ `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \`,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   /`,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\`,
}

var controlLines = []string{
	"W / Up  . . . . Thrust",
	"A D / < >  . .  Rotate",
	"SPACE  . . . . . Shoot",
	"R  . . . . . . Restart",
	"Q  . . . . . . .  Quit",
}

const controlsHint = "WASD/Arrows move  SPACE shoot  Q quit"

// text writes s at the 1-based canvas position and marks the cells so the
// canvas repaints them once the text is gone.
func (s *session) text(col, row int, str string) {
	if row < 1 || row > s.canvas.TerminalHeight() || col < 1 {
		return
	}
	s.chunkWriter.WriteAt(col, row, str)
	s.canvas.MarkTextDirty(col, row, len(str))
}

// centered writes str horizontally centered on row.
func (s *session) centered(row int, str string) {
	s.text(s.canvas.TerminalWidth()/2-len(str)/2+1, row, str)
}

// drawUI draws the text overlay for the current screen.
func (s *session) drawUI(snap *engine.Snapshot) {
	centerY := s.canvas.TerminalHeight() / 2

	switch s.screen {
	case ScreenTitle:
		s.drawTitleScreen(centerY)
	case ScreenPlaying:
		s.drawPlayingHUD(snap.HUD)
		switch snap.HUD.Phase {
		case engine.PhaseRespawning:
			s.drawRespawnCountdown(centerY, snap.HUD)
		case engine.PhaseGameOver:
			s.drawGameOverScreen(centerY, snap.HUD)
		}
	}
}

// drawTitleScreen draws the title art, controls and a blinking start prompt.
func (s *session) drawTitleScreen(centerY int) {
	row := centerY - 7
	for i, line := range titleArt {
		s.centered(row+i, line)
	}
	row += len(titleArt) + 1

	s.centered(row, "Controls")
	for i, line := range controlLines {
		s.centered(row+1+i, line)
	}
	row += len(controlLines) + 2

	if time.Now().UnixMilli()/600%2 == 0 {
		s.centered(row, ">>  Press SPACE to Start  <<")
	} else {
		s.centered(row, "                            ")
	}
}

// drawPlayingHUD draws score, lives, FPS and the controls hint.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (s *session) drawPlayingHUD(hud engine.HUD) {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()

	s.text(2, 1, fmt.Sprintf("Score: %-8d", hud.Score))

	livesText := fmt.Sprintf("Lives: %-3d", hud.Lives)
	s.text(termWidth-len(livesText)-1, 1, livesText)

	s.text(2, termHeight, controlsHint)

	fpsText := fmt.Sprintf("FPS: %-4d", s.fps.FPS())
	s.text(termWidth-len(fpsText)-1, termHeight, fpsText)
}

func (s *session) drawRespawnCountdown(centerY int, hud engine.HUD) {
	s.centered(centerY, fmt.Sprintf("Respawn in %.1f seconds...", hud.RespawnTimer))
}

// drawGameOverScreen draws the final score and the restart prompt.
func (s *session) drawGameOverScreen(centerY int, hud engine.HUD) {
	row := centerY - 4
	for i, line := range gameOverArt {
		s.centered(row+i, line)
	}
	row += len(gameOverArt) + 1

	s.centered(row, fmt.Sprintf("Final Score: %d", hud.Score))
	s.centered(row+2, "Press R to Restart")
}
