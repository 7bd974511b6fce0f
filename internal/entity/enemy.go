package entity

import (
	"bubblepop/internal/draw"
	"bubblepop/internal/geom"
)

const (
	EnemyRadius    = 40
	EnemyScale     = 3.5
	EnemyAnimEvery = 5

	// Enemies swim in a band that keeps clear of the HUD and the sea floor.
	EnemyBandTop    = 90
	EnemyBandMargin = 150
	// Recycled enemies re-enter from this far past the right edge.
	EnemyReentry = 200
)

// Enemy swims right to left. Leaving the left edge recycles it in place.
type Enemy struct {
	X, Y     float64
	Radius   float64
	Speed    float64
	Scale    float64
	Distance float64
	Respawns int
	Anim

	rng    Rand
	bounds geom.Size
}

func NewEnemy(rng Rand, bounds geom.Size) *Enemy {
	e := &Enemy{
		X:      bounds.W,
		Radius: EnemyRadius,
		Scale:  EnemyScale,
		Anim:   NewAnim(draw.SheetEnemy, EnemyAnimEvery),
		rng:    rng,
		bounds: bounds,
	}
	e.Y = e.randomY()
	e.Speed = e.randomSpeed()
	return e
}

func (e *Enemy) randomY() float64 {
	return e.rng.Float64()*(e.bounds.H-EnemyBandMargin) + EnemyBandTop
}

func (e *Enemy) randomSpeed() float64 {
	return e.rng.Float64()*2 + 2
}

func (e *Enemy) Pos() geom.Point { return geom.Point{X: e.X, Y: e.Y} }

func (e *Enemy) Circle() geom.Circle {
	return geom.Circle{Center: e.Pos(), R: e.Radius}
}

// Update swims left, recycling past the left edge, then advances the walk
// cycle and refreshes the distance to the player.
func (e *Enemy) Update(player geom.Point, frame int) {
	e.X -= e.Speed

	if e.X < -e.Radius*2 {
		e.X = e.bounds.W + EnemyReentry
		e.Y = e.randomY()
		e.Speed = e.randomSpeed()
		e.Respawns++
	}

	e.Advance(frame)

	e.Distance = geom.Distance(e.Pos(), player)
}

func (e *Enemy) Draw(s draw.Surface) {
	s.DrawSprite(draw.SheetEnemy, e.FrameX, e.FrameY, draw.SpriteOp{
		Center: e.Pos(),
		Scale:  e.Scale,
	})
}

func (e *Enemy) DrawDebug(s draw.Surface) {
	s.FillCircle(e.Circle(), draw.ColEnemy)
}
