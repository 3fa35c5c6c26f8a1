package invaders

import "math"

// Snapshot contains the complete game state for replay and determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame     uint64
	State     int
	PlayerX   float64
	PlayerY   float64
	Direction int

	// Enemy states, row-major (each enemy is 3 values: X, Y, Status 0/1)
	EnemyData []float64

	// Shot states (each shot is 3 values: X, Y, DY)
	PlayerShotCount int
	PlayerShotData  []float64
	EnemyShotCount  int
	EnemyShotData   []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]float64, 0, EnemyRows*EnemyCols*3)
	for row := range EnemyRows {
		for col := range EnemyCols {
			e := g.formation.Enemies[row][col]
			status := 0.0
			if e.Alive {
				status = 1
			}
			enemyData = append(enemyData, e.X, e.Y, status)
		}
	}

	return Snapshot{
		Frame:           g.frame,
		State:           int(g.state),
		PlayerX:         g.player.X,
		PlayerY:         g.player.Y,
		Direction:       g.formation.Direction,
		EnemyData:       enemyData,
		PlayerShotCount: len(g.playerShots),
		PlayerShotData:  flattenShots(g.playerShots),
		EnemyShotCount:  len(g.enemyShots),
		EnemyShotData:   flattenShots(g.enemyShots),
	}
}

func flattenShots(shots []Projectile) []float64 {
	data := make([]float64, 0, len(shots)*3)
	for _, s := range shots {
		data = append(data, s.X, s.Y, s.DY)
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.State)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerShotCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyShotCount)  //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.PlayerShotData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.EnemyShotData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
