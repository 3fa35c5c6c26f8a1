// Package invaders implements the arcade shooter simulation: a ship at the
// bottom of the field, a descending 3x5 enemy formation, and shots both ways.
//
// The package is pure logic. Front ends feed key events into Input(), call
// Step once per display frame with a canvas, and show a blocking Game Over
// notice whenever a step reports GameOver.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// State is the frame driver state.
type State int

const (
	StateRunning    State = iota
	StateTerminated       // Player hit; frozen until acknowledged
)

// String returns the state name.
func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// GameOverMessage is the text of the terminal notification.
const GameOverMessage = "Game Over!"

// Game holds the whole simulation.
type Game struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	input   core.Tracker

	fieldW     float64
	fieldH     float64
	fireChance float64

	state       State
	frame       uint64
	player      Player
	formation   Formation
	playerShots []Projectile
	enemyShots  []Projectile
}

// New creates a game with the given configuration, already reset with the
// default runtime config. Front ends Reset again with their own seed.
func New(cfg config.InvadersConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// FieldSize returns the play field in pixels.
func (g *Game) FieldSize() (w, h float64) {
	return float64(g.cfg.Field.Width), float64(g.cfg.Field.Height)
}

// Reset reinitializes every entity to startup values and re-enters Running.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.input.Reset()

	g.fieldW, g.fieldH = g.FieldSize()
	g.fireChance = EnemyFireChance * g.cfg.Difficulty.FireScale

	g.state = StateRunning
	g.frame = 0
	g.player = Player{
		X: g.fieldW/2 - PlayerWidth/2,
		Y: g.fieldH - PlayerBaseGap,
	}
	g.formation = NewFormation(EnemySpeed * g.cfg.Difficulty.SpeedScale)
	g.playerShots = make([]Projectile, 0, 16)
	g.enemyShots = make([]Projectile, 0, 16)
}

// Input returns the control tracker key events are fed into.
func (g *Game) Input() *core.Tracker {
	return &g.input
}

// Step runs one frame in fixed order: draw with the positions from before
// the step, advance and cull shots (checking enemy shots against the
// player), resolve hits on the formation, move the player and the
// formation, then handle player and enemy fire.
//
// A player hit terminates the game on the spot: the rest of the frame is
// skipped and GameOver is reported once. While terminated, Step does nothing
// until Acknowledge. dst may be nil for headless stepping.
func (g *Game) Step(dst core.Canvas) core.StepResult {
	if g.state == StateTerminated {
		return core.StepResult{State: g.State()}
	}
	if dst == nil {
		dst = discard{}
	}

	g.frame++

	dst.Clear()
	g.drawPlayer(dst)
	g.drawFormation(dst)

	g.playerShots = g.advanceShots(dst, g.playerShots, PlayerShotColor, nil)

	playerHit := false
	g.enemyShots = g.advanceShots(dst, g.enemyShots, EnemyShotColor, func(s Projectile) {
		if g.hitsPlayer(s) {
			playerHit = true
		}
	})
	if playerHit {
		g.state = StateTerminated
		return core.StepResult{State: g.State(), GameOver: true}
	}

	g.resolveHits()

	in := g.input.State()
	g.movePlayer(in)
	g.formation.Move(g.fieldW)
	g.firePlayer()
	g.fireEnemy()

	return core.StepResult{State: g.State()}
}

// Acknowledge dismisses the Game Over notification. It performs a full
// reset with the given seed and reports whether the game was terminated.
func (g *Game) Acknowledge(seed int64) bool {
	if g.state != StateTerminated {
		return false
	}
	rt := g.runtime
	rt.Seed = seed
	g.Reset(rt)
	return true
}

// Terminated reports whether the game waits for acknowledgment.
func (g *Game) Terminated() bool {
	return g.state == StateTerminated
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Frame:        g.frame,
		Terminated:   g.state == StateTerminated,
		EnemiesAlive: g.formation.CountAlive(),
	}
}
