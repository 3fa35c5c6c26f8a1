package invaders

import "github.com/vovakirdan/invaders/internal/core"

// Player constants (pixels).
const (
	PlayerWidth   = 40
	PlayerHeight  = 20
	PlayerStep    = 5  // Horizontal move per frame
	PlayerBaseGap = 30 // Distance from the player's top edge to the field bottom
)

// Formation constants (pixels).
const (
	EnemyRows       = 3
	EnemyCols       = 5
	EnemyWidth      = 40
	EnemyHeight     = 20
	EnemyPadding    = 10
	EnemyOffsetTop  = 30
	EnemyOffsetLeft = 30
	EnemySpeed      = 2    // Horizontal move per frame at normal difficulty
	EnemyFireChance = 0.02 // Probability of an enemy fire attempt per frame
)

// Projectile constants (pixels).
const (
	ShotWidth       = 5
	ShotHeight      = 10
	PlayerShotSpeed = 7 // Upward
	EnemyShotSpeed  = 3 // Downward
)

// Player is the ship at the bottom of the field.
type Player struct {
	X, Y float64
}

// Bounds returns the player's rectangle.
func (p Player) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, PlayerWidth, PlayerHeight)
}

// CenterX returns the horizontal midpoint.
func (p Player) CenterX() float64 {
	return p.X + PlayerWidth/2
}

// Enemy is one cell of the formation. Dead enemies stay in the grid.
type Enemy struct {
	X, Y  float64
	Alive bool
}

// Bounds returns the enemy's rectangle.
func (e Enemy) Bounds() core.RectF {
	return core.NewRectF(e.X, e.Y, EnemyWidth, EnemyHeight)
}

// Formation is the enemy grid. All live enemies share one direction.
type Formation struct {
	Enemies   [EnemyRows][EnemyCols]Enemy
	Direction int     // +1 right, -1 left
	Speed     float64 // Pixels per frame
	descend   bool
}

// NewFormation lays out a full grid of live enemies moving right.
func NewFormation(speed float64) Formation {
	f := Formation{Direction: 1, Speed: speed}
	for row := range EnemyRows {
		for col := range EnemyCols {
			f.Enemies[row][col] = Enemy{
				X:     float64(col*(EnemyWidth+EnemyPadding) + EnemyOffsetLeft),
				Y:     float64(row*(EnemyHeight+EnemyPadding) + EnemyOffsetTop),
				Alive: true,
			}
		}
	}
	return f
}

// At returns a pointer to the enemy at (row, col).
func (f *Formation) At(row, col int) *Enemy {
	return &f.Enemies[row][col]
}

// CountAlive returns the number of live enemies.
func (f *Formation) CountAlive() int {
	count := 0
	for row := range EnemyRows {
		for col := range EnemyCols {
			if f.Enemies[row][col].Alive {
				count++
			}
		}
	}
	return count
}

// Owner identifies who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a shot from either side. X, Y is its top-left corner and
// also the point tested for hits.
type Projectile struct {
	X, Y  float64
	DY    float64 // Negative moves up
	Owner Owner
}

// NewPlayerShot creates a shot centered on x, starting at y, moving up.
func NewPlayerShot(centerX, y float64) Projectile {
	return Projectile{X: centerX - ShotWidth/2.0, Y: y, DY: -PlayerShotSpeed, Owner: OwnerPlayer}
}

// NewEnemyShot creates a shot centered on x, starting at y, moving down.
func NewEnemyShot(centerX, y float64) Projectile {
	return Projectile{X: centerX - ShotWidth/2.0, Y: y, DY: EnemyShotSpeed, Owner: OwnerEnemy}
}

// OutOfField reports whether the shot has left the field vertically on the
// side it travels toward.
func (p Projectile) OutOfField(fieldH float64) bool {
	if p.Owner == OwnerPlayer {
		return p.Y < 0
	}
	return p.Y > fieldH
}
