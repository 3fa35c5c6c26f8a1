package invaders

import "github.com/vovakirdan/invaders/internal/core"

// Palette.
const (
	PlayerColor     = core.ColorGreen
	EnemyColor      = core.ColorRed
	PlayerShotColor = core.ColorYellow
	EnemyShotColor  = core.ColorWhite
)

// Render draws the current state without advancing it.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()
	g.drawPlayer(dst)
	g.drawFormation(dst)
	for _, s := range g.playerShots {
		dst.FillRect(s.X, s.Y, ShotWidth, ShotHeight, PlayerShotColor)
	}
	for _, s := range g.enemyShots {
		dst.FillRect(s.X, s.Y, ShotWidth, ShotHeight, EnemyShotColor)
	}
}

func (g *Game) drawPlayer(dst core.Canvas) {
	dst.FillRect(g.player.X, g.player.Y, PlayerWidth, PlayerHeight, PlayerColor)
}

// drawFormation draws live enemies only.
func (g *Game) drawFormation(dst core.Canvas) {
	for row := range EnemyRows {
		for col := range EnemyCols {
			e := g.formation.Enemies[row][col]
			if !e.Alive {
				continue
			}
			dst.FillRect(e.X, e.Y, EnemyWidth, EnemyHeight, EnemyColor)
		}
	}
}

// discard is the canvas used when a frame is stepped without a display.
type discard struct{}

func (discard) Clear()                                    {}
func (discard) FillRect(_, _, _, _ float64, _ core.Color) {}
