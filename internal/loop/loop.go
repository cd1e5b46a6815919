// Package loop runs the game in a terminal: the Input → Update → Draw cycle
// around an engine.Game, rendered on a half-block canvas.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-arcade/internal/audio"
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/loop/engine"
	"github.com/tomz197/asteroids-arcade/internal/object"
)

// Options configures a terminal session. Zero values pick defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Audio        audio.Sink        // Defaults to audio.Nop
	Logger       *log.Logger       // Defaults to a discarding logger
	Rand         object.Rand       // Defaults to a time-seeded source
	Context      context.Context   // Cancelling it ends the session
}

// session holds the per-connection state of one running game.
type session struct {
	opts   Options
	log    *log.Logger
	writer io.Writer

	stream *input.Stream
	input  input.Input

	canvas      *draw.Canvas
	chunkWriter *draw.ChunkWriter

	bounds object.Bounds
	game   *engine.Game
	clock  *engine.Clock
	fps    *FPSMeter

	screen     Screen
	prevScreen Screen
	prevPhase  engine.Phase
	running    bool
}

// Run starts the game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits, the input stream closes or the context
// is cancelled.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	s := newSession(r, w, opts)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	s.log.Info("session started")
	err := s.run()
	if err != nil {
		s.log.Error("session failed", "err", err)
	} else {
		s.log.Info("session ended", "score", s.score())
	}

	draw.ClearScreen(w)
	return err
}

func newSession(r *bufio.Reader, w io.Writer, opts Options) *session {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := opts.TermSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.WorldWidth, config.WorldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	now := time.Now()
	return &session{
		opts:        opts,
		log:         opts.Logger,
		writer:      w,
		stream:      input.StartStream(r),
		canvas:      canvas,
		chunkWriter: draw.NewChunkWriter(w, offsetCol, offsetRow),
		bounds:      object.NewBounds(config.WorldWidth, config.WorldHeight),
		fps:         NewFPSMeter(now),
		screen:      ScreenTitle,
		prevScreen:  ScreenTitle,
		running:     true,
	}
}

func (s *session) run() error {
	for s.running {
		frameStart := time.Now()

		select {
		case <-s.opts.Context.Done():
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		s.processInput()

		// ===== UPDATE PHASE =====
		s.updateScreen()

		switch s.screen {
		case ScreenTitle:
			s.updateTitle(frameStart)
		case ScreenPlaying:
			s.updatePlaying(frameStart)
		}

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return err
		}
		s.fps.Frame(frameStart)

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
	return nil
}

// processInput reads all pending input and handles quitting.
func (s *session) processInput() {
	s.input = input.ReadInput(s.stream)
	if s.input.Quit || s.input.Closed {
		s.running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (s *session) updateScreen() {
	termWidth, termHeight, err := s.opts.TermSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		s.chunkWriter.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateTitle starts a game on SPACE or ENTER.
func (s *session) updateTitle(now time.Time) {
	if !s.input.Space && !s.input.Enter {
		return
	}
	s.game = engine.New(s.bounds, s.opts.Rand)
	s.clock = engine.NewClock(now)
	s.prevPhase = s.game.Phase()
	s.screen = ScreenPlaying
	s.log.Info("game started")
}

// updatePlaying advances the simulation and forwards its audio events.
func (s *session) updatePlaying(now time.Time) {
	dt := s.clock.Tick(now)
	s.game.Tick(dt, s.input.Intents())

	for _, ev := range s.game.Events() {
		s.opts.Audio.Handle(ev)
	}

	if phase := s.game.Phase(); phase != s.prevPhase {
		hud := s.game.HUD()
		s.log.Debug("phase changed", "from", s.prevPhase, "to", phase, "score", hud.Score, "lives", hud.Lives)
		if phase == engine.PhaseGameOver {
			s.log.Info("game over", "score", hud.Score, "wave", hud.Wave)
		}
	}
}

// drawFrame renders the canvas and the text overlay for the current screen.
func (s *session) drawFrame() error {
	// On screen or phase transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	phase := s.prevPhase
	if s.game != nil {
		phase = s.game.Phase()
	}
	if s.screen != s.prevScreen || phase != s.prevPhase {
		s.chunkWriter.WriteString("\033[H\033[2J")
		s.canvas.ForceRedraw()
		s.prevScreen = s.screen
		s.prevPhase = phase
	}

	s.canvas.Clear()

	var snap *engine.Snapshot
	if s.screen == ScreenPlaying {
		snap = s.game.Snapshot()
		renderSnapshot(s.canvas, snap)
	}

	if err := s.canvas.Render(s.chunkWriter); err != nil {
		return err
	}
	s.canvas.RenderBorder(s.chunkWriter)

	s.drawUI(snap)

	if err := s.chunkWriter.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

func (s *session) score() int {
	if s.game == nil {
		return 0
	}
	return s.game.HUD().Score
}
