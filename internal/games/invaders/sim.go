package invaders

import (
	"github.com/vovakirdan/invaders/internal/core"
)

// movePlayer applies horizontal input. Right wins when both are held.
func (g *Game) movePlayer(in core.InputState) {
	maxX := g.fieldW - PlayerWidth

	if in.Right && g.player.X < maxX {
		g.player.X += PlayerStep
	} else if in.Left && g.player.X > 0 {
		g.player.X -= PlayerStep
	}

	// Only matters when the field width is not a multiple of the step.
	g.player.X = core.ClampF(g.player.X, 0, maxX)
}

// Move advances every live enemy, then reverses and drops the formation if
// any live enemy crossed a field edge. The overshoot of up to Speed pixels
// is left in place; the next frame's reversed move pulls it back.
func (f *Formation) Move(fieldW float64) {
	hitEdge := false

	for row := range EnemyRows {
		for col := range EnemyCols {
			e := &f.Enemies[row][col]
			if !e.Alive {
				continue
			}
			e.X += f.Speed * float64(f.Direction)
			if e.X < 0 || e.X+EnemyWidth > fieldW {
				hitEdge = true
			}
		}
	}

	if hitEdge {
		f.Direction = -f.Direction
		f.descend = true
	}

	if f.descend {
		for row := range EnemyRows {
			for col := range EnemyCols {
				if e := &f.Enemies[row][col]; e.Alive {
					e.Y += EnemyHeight
				}
			}
		}
		f.descend = false
	}
}

// advanceShots draws each shot at its current position, moves it, and
// compacts away the ones that left the field. Survivors keep their order.
// onMove, if set, sees every moved shot, including the ones being culled.
func (g *Game) advanceShots(dst core.Canvas, shots []Projectile, color core.Color, onMove func(Projectile)) []Projectile {
	kept := shots[:0]
	for _, s := range shots {
		dst.FillRect(s.X, s.Y, ShotWidth, ShotHeight, color)
		s.Y += s.DY
		if onMove != nil {
			onMove(s)
		}
		if s.OutOfField(g.fieldH) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// firePlayer spawns one shot per armed fire request and disarms it.
func (g *Game) firePlayer() {
	if !g.input.State().Fire {
		return
	}
	g.playerShots = append(g.playerShots, NewPlayerShot(g.player.CenterX(), g.player.Y))
	g.input.ConsumeFire()
}

// fireEnemy rolls for an enemy shot. A roll that lands on a dead cell is
// wasted, not retried.
func (g *Game) fireEnemy() {
	if g.rng.Float64() >= g.fireChance {
		return
	}

	row := g.rng.Intn(EnemyRows)
	col := g.rng.Intn(EnemyCols)
	e := g.formation.At(row, col)
	if !e.Alive {
		return
	}
	g.enemyShots = append(g.enemyShots, NewEnemyShot(e.X+EnemyWidth/2, e.Y+EnemyHeight))
}
