package entity

import (
	"bubblepop/internal/draw"
	"bubblepop/internal/geom"
)

const (
	BubbleRadius    = 50
	BubbleScale     = 4
	BubbleAnimEvery = 5
)

// Bubble rises from below the surface. It only ages its own pop animation;
// whether and when it pops is decided by the world.
type Bubble struct {
	X, Y     float64
	Radius   float64
	Speed    float64
	Scale    float64
	Distance float64

	// AltSound picks which pop cue branch plays for this bubble.
	AltSound bool
	Popped   bool
	ToClean  bool
	Anim
}

func NewBubble(rng Rand, bounds geom.Size) *Bubble {
	b := &Bubble{
		X:      rng.Float64() * bounds.W,
		Y:      bounds.H + bounds.H/2,
		Radius: BubbleRadius,
		Scale:  BubbleScale,
		Anim:   NewAnim(draw.SheetBubble, BubbleAnimEvery),
	}
	b.Speed = rng.Float64()*5 + 1
	b.AltSound = rng.Float64() <= 0.5
	return b
}

func (b *Bubble) Pos() geom.Point { return geom.Point{X: b.X, Y: b.Y} }

func (b *Bubble) Circle() geom.Circle {
	return geom.Circle{Center: b.Pos(), R: b.Radius}
}

// Update rises, refreshes the distance to the player and, once popped,
// plays the burst animation through exactly once.
func (b *Bubble) Update(player geom.Point, frame int) {
	b.Y -= b.Speed
	b.Distance = geom.Distance(b.Pos(), player)

	if b.Popped && b.Advance(frame) && b.Last() {
		b.ToClean = true
	}
}

// Pop marks the bubble popped. It returns false if it already was.
func (b *Bubble) Pop() bool {
	if b.Popped {
		return false
	}
	b.Popped = true
	return true
}

// Expired reports whether the bubble should leave the live set: it has
// risen fully past the top edge or finished bursting.
func (b *Bubble) Expired() bool {
	return b.Y < -b.Radius*2 || b.ToClean
}

func (b *Bubble) Draw(s draw.Surface) {
	s.DrawSprite(draw.SheetBubble, b.FrameX, b.FrameY, draw.SpriteOp{
		Center: b.Pos(),
		Scale:  b.Scale,
	})
}

func (b *Bubble) DrawDebug(s draw.Surface) {
	s.FillCircle(b.Circle(), draw.ColBubble)
}
