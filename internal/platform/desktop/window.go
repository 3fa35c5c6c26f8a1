// Package desktop runs the game in a native window with Ebitengine.
//
// Ebitengine separates Update from Draw, so each Update steps the game into a
// display list and Draw replays the last recorded frame.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/games/invaders"
)

const ackHint = "press Enter"

var (
	background = color.RGBA{0, 0, 0, 255}
	overlay    = color.RGBA{0, 0, 0, 180}

	palette = map[core.Color]color.RGBA{
		core.ColorDefault: {200, 200, 200, 255},
		core.ColorRed:     {255, 0, 0, 255},
		core.ColorGreen:   {0, 255, 0, 255},
		core.ColorYellow:  {255, 255, 0, 255},
		core.ColorWhite:   {255, 255, 255, 255},
		core.ColorGray:    {128, 128, 128, 255},
	}

	fontFace = text.NewGoXFace(basicfont.Face7x13)
)

// Window implements ebiten.Game for one invaders game.
type Window struct {
	game      *invaders.Game
	config    core.RuntimeConfig
	fixedSeed bool
	frame     core.DisplayList
	keys      []ebiten.Key
}

// NewWindow creates the window front end. A zero seed is replaced with the
// current time on every reset.
func NewWindow(game *invaders.Game, cfg core.RuntimeConfig) *Window {
	return &Window{
		game:      game,
		config:    cfg,
		fixedSeed: cfg.Seed != 0,
	}
}

// Update feeds key events into the game and steps one frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if w.game.Terminated() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			w.game.Acknowledge(w.seed())
			w.game.Render(&w.frame)
		}
		return nil
	}

	// Ebitengine key names ("ArrowLeft", "Space") map like browser ones.
	in := w.game.Input()
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		in.PressKey(k.String())
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		in.ReleaseKey(k.String())
	}

	w.game.Step(&w.frame)
	return nil
}

// Draw replays the last recorded frame and the Game Over notice.
func (w *Window) Draw(screen *ebiten.Image) {
	w.frame.Replay(imageCanvas{dst: screen})

	if w.game.Terminated() {
		w.drawGameOver(screen)
	}
}

func (w *Window) drawGameOver(screen *ebiten.Image) {
	fw, fh := w.game.FieldSize()
	vector.DrawFilledRect(screen, 0, 0, float32(fw), float32(fh), overlay, false)

	drawCentered(screen, invaders.GameOverMessage, fw/2, fh/2-12)
	drawCentered(screen, ackHint, fw/2, fh/2+8)
}

func drawCentered(screen *ebiten.Image, s string, cx, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-text.Advance(s, fontFace)/2, y)
	op.ColorScale.ScaleWithColor(palette[core.ColorWhite])
	text.Draw(screen, s, fontFace, op)
}

// Layout keeps the logical screen at field size; Ebitengine scales it to
// the window.
func (w *Window) Layout(_, _ int) (int, int) {
	fw, fh := w.game.FieldSize()
	return int(fw), int(fh)
}

func (w *Window) seed() int64 {
	if w.fixedSeed {
		return w.config.Seed
	}
	return time.Now().UnixNano()
}

// imageCanvas draws fill commands onto an Ebitengine image.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) Clear() {
	c.dst.Fill(background)
}

func (c imageCanvas) FillRect(x, y, w, h float64, col core.Color) {
	clr, ok := palette[col]
	if !ok {
		clr = palette[core.ColorDefault]
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// Run opens a window scaled by scale and blocks until it is closed.
func Run(game *invaders.Game, cfg core.RuntimeConfig, scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	game.Reset(withSeed(cfg))

	fw, fh := game.FieldSize()
	ebiten.SetWindowSize(int(fw*scale), int(fh*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(NewWindow(game, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

// withSeed fills in a time-based seed when none was given.
func withSeed(cfg core.RuntimeConfig) core.RuntimeConfig {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
