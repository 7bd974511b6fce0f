package entity

import (
	"math"

	"bubblepop/internal/draw"
	"bubblepop/internal/geom"
)

const (
	PlayerRadius    = 40
	PlayerVelocity  = 30
	PlayerScale     = 3.5
	PlayerAnimEvery = 7
)

// Player chases the pointer, covering 1/Velocity of the remaining gap on
// each axis per tick.
type Player struct {
	X, Y     float64
	Radius   float64
	Angle    float64
	Velocity float64
	Scale    float64
	Anim

	target geom.Point
}

func NewPlayer(bounds geom.Size) *Player {
	center := geom.Point{X: bounds.W / 2, Y: bounds.H / 2}
	return &Player{
		X:        center.X,
		Y:        center.Y,
		Radius:   PlayerRadius,
		Velocity: PlayerVelocity,
		Scale:    PlayerScale,
		Anim:     NewAnim(draw.SheetPlayer, PlayerAnimEvery),
		target:   center,
	}
}

func (p *Player) Pos() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

func (p *Player) Circle() geom.Circle {
	return geom.Circle{Center: p.Pos(), R: p.Radius}
}

// Update moves the player toward target and advances its swim animation.
func (p *Player) Update(target geom.Point, frame int) {
	dx := p.X - target.X
	dy := p.Y - target.Y

	p.Angle = math.Atan2(dy, dx)

	if p.X != target.X {
		p.X -= dx / p.Velocity
	}
	if p.Y != target.Y {
		p.Y -= dy / p.Velocity
	}
	p.target = target

	p.Advance(frame)
}

func (p *Player) Draw(s draw.Surface) {
	s.DrawSprite(draw.SheetPlayer, p.FrameX, p.FrameY, draw.SpriteOp{
		Center: p.Pos(),
		Scale:  p.Scale,
		Angle:  p.Angle,
		// Sheet faces left; mirror so the belly stays down when heading right.
		FlipY: p.X < p.target.X,
	})
}

// DrawDebug draws the hitbox and, while the pointer is held, a line to it.
func (p *Player) DrawDebug(s draw.Surface, pointer geom.Point, pressed bool) {
	if pressed {
		s.StrokeLine(p.Pos(), pointer, 0.2, draw.ColText)
	}
	s.FillCircle(p.Circle(), draw.ColPlayer)
}
