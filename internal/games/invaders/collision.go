package invaders

// resolveHits tests every player shot against every live enemy, shots outer
// and grid cells row-major inner. A hit kills the enemy and consumes the
// shot, so one shot never takes out two enemies.
func (g *Game) resolveHits() {
	kept := g.playerShots[:0]
	for _, s := range g.playerShots {
		if !g.hitFormation(s) {
			kept = append(kept, s)
		}
	}
	g.playerShots = kept
}

// hitFormation kills the first live enemy the shot is strictly inside.
func (g *Game) hitFormation(s Projectile) bool {
	for row := range EnemyRows {
		for col := range EnemyCols {
			e := g.formation.At(row, col)
			if !e.Alive {
				continue
			}
			if e.Bounds().ContainsStrict(s.X, s.Y) {
				e.Alive = false
				return true
			}
		}
	}
	return false
}

// hitsPlayer reports whether an enemy shot is strictly inside the player.
func (g *Game) hitsPlayer(s Projectile) bool {
	return g.player.Bounds().ContainsStrict(s.X, s.Y)
}
