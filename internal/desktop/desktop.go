// Package desktop hosts the simulation in an ebiten window.
package desktop

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/asteroids-arcade/internal/audio"
	"github.com/tomz197/asteroids-arcade/internal/loop/config"
	"github.com/tomz197/asteroids-arcade/internal/loop/engine"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

const (
	ScreenWidth  = config.WorldWidth
	ScreenHeight = config.WorldHeight
)

var (
	backgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	shipColor       = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	flameColor      = color.RGBA{R: 255, G: 150, B: 0, A: 255}
	asteroidColor   = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	bulletColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// controls is the key legend drawn in the bottom-left corner.
var controls = []string{
	"W / Up      Thrust",
	"A D / < >   Rotate",
	"SPACE       Shoot",
	"R           Restart",
	"Q / ESC     Quit",
}

const debugLineHeight = 16

// Game adapts an engine.Game to ebiten.Game.
type Game struct {
	sim   *engine.Game
	clock *engine.Clock
	audio audio.Sink
	log   *log.Logger

	lastPhase engine.Phase
	outline   []physics.Vec2
}

// New creates a desktop game. A nil sink or logger disables that output.
func New(rng object.Rand, sink audio.Sink, logger *log.Logger) *Game {
	if sink == nil {
		sink = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sim := engine.New(object.NewBounds(ScreenWidth, ScreenHeight), rng)
	return &Game{
		sim:       sim,
		clock:     engine.NewClock(time.Now()),
		audio:     sink,
		log:       logger,
		lastPhase: sim.Phase(),
	}
}

// keyState reports whether a key is held, or was pressed this frame.
type keyState struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

var ebitenKeys = keyState{
	pressed:     ebiten.IsKeyPressed,
	justPressed: inpututil.IsKeyJustPressed,
}

func (k keyState) held(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if k.pressed(key) {
			return true
		}
	}
	return false
}

// intents latches the keyboard into the engine's input flags.
func intents(k keyState) engine.Intents {
	return engine.Intents{
		Thrust:      k.held(ebiten.KeyW, ebiten.KeyArrowUp),
		RotateLeft:  k.held(ebiten.KeyA, ebiten.KeyArrowLeft),
		RotateRight: k.held(ebiten.KeyD, ebiten.KeyArrowRight),
		Fire:        k.held(ebiten.KeySpace),
		Restart:     k.justPressed(ebiten.KeyR),
	}
}

// quitRequested reports whether the player asked to close the window.
func quitRequested(k keyState) bool {
	return k.justPressed(ebiten.KeyEscape) || k.justPressed(ebiten.KeyQ)
}

func (g *Game) Update() error {
	if quitRequested(ebitenKeys) {
		g.log.Info("quit requested", "score", g.sim.HUD().Score)
		return ebiten.Termination
	}
	g.step(g.clock.Tick(time.Now()), intents(ebitenKeys))
	return nil
}

// step advances the simulation and forwards its audio events.
func (g *Game) step(dt float64, in engine.Intents) {
	g.sim.Tick(dt, in)
	for _, ev := range g.sim.Events() {
		g.audio.Handle(ev)
	}

	if phase := g.sim.Phase(); phase != g.lastPhase {
		hud := g.sim.HUD()
		g.log.Debug("phase changed", "from", g.lastPhase, "to", phase, "score", hud.Score, "lives", hud.Lives)
		if phase == engine.PhaseGameOver {
			g.log.Info("game over", "score", hud.Score, "wave", hud.Wave)
		}
		g.lastPhase = phase
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := g.sim.Snapshot()

	for i := range snap.Stars {
		st := &snap.Stars[i]
		b := uint8(min(255, st.Brightness()))
		vector.FillCircle(screen, float32(st.Pos.X), float32(st.Pos.Y), float32(st.Size/2),
			color.RGBA{R: b, G: b, B: b, A: 255}, false)
	}

	for i := range snap.Asteroids {
		a := &snap.Asteroids[i]
		g.outline = a.Outline(g.outline[:0])
		g.strokeClosed(screen, g.outline, asteroidColor)
	}

	for i := range snap.Particles {
		p := &snap.Particles[i]
		vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size/2), p.RGBA(), true)
	}

	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		vector.FillCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), 2, bulletColor, true)
	}

	if ship := snap.Ship; ship != nil {
		if ship.ThrusterActive {
			flame := ship.Flame()
			g.strokeClosed(screen, flame[:], flameColor)
		}
		hull := ship.Hull()
		g.strokeClosed(screen, hull[:], shipColor)
	}

	drawHUD(screen, snap.HUD)
}

func (g *Game) strokeClosed(screen *ebiten.Image, pts []physics.Vec2, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.5, clr, true)
	}
}

func drawHUD(screen *ebiten.Image, hud engine.HUD) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", hud.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", hud.Lives), ScreenWidth-80, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), ScreenWidth-80, ScreenHeight-20)

	top := ScreenHeight - 4 - debugLineHeight*len(controls)
	for i, line := range controls {
		ebitenutil.DebugPrintAt(screen, line, 10, top+i*debugLineHeight)
	}

	switch hud.Phase {
	case engine.PhaseRespawning:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Respawn in %.1f seconds...", hud.RespawnTimer),
			ScreenWidth/2-80, ScreenHeight/2)
	case engine.PhaseGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", ScreenWidth/2-27, ScreenHeight/2-30)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Final Score: %d", hud.Score), ScreenWidth/2-45, ScreenHeight/2)
		ebitenutil.DebugPrintAt(screen, "Press R to Restart", ScreenWidth/2-54, ScreenHeight/2+20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
