package sim

import (
	"bubblepop/internal/entity"
	"bubblepop/internal/geom"
)

const (
	EnemyEvery  = 250
	BubbleEvery = 50
)

// Spawner creates entities on fixed frame cadences. Cadences count ticks,
// not wall time, so they follow the achieved frame rate.
type Spawner struct {
	EnemyEvery  int
	BubbleEvery int
	Rand        entity.Rand
	Bounds      geom.Size
}

func NewSpawner(rng entity.Rand, bounds geom.Size) Spawner {
	return Spawner{
		EnemyEvery:  EnemyEvery,
		BubbleEvery: BubbleEvery,
		Rand:        rng,
		Bounds:      bounds,
	}
}

// Spawn returns the entities due on frame. The enemy is nil unless the
// cadence hits and the live count is under the cap; bubbles are uncapped.
func (s Spawner) Spawn(frame, enemies, maxEnemies int) (*entity.Enemy, *entity.Bubble) {
	var e *entity.Enemy
	var b *entity.Bubble

	if frame%s.EnemyEvery == 0 && enemies < maxEnemies {
		e = entity.NewEnemy(s.Rand, s.Bounds)
	}
	if frame%s.BubbleEvery == 0 {
		b = entity.NewBubble(s.Rand, s.Bounds)
	}
	return e, b
}
