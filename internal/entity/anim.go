package entity

import "bubblepop/internal/draw"

// Rand is the random source entities draw spawn positions and speeds from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Anim cycles through the frames of a sprite sheet grid, one cell every
// Every ticks of the shared frame counter.
type Anim struct {
	draw.Grid
	Every  int
	FrameX int
	FrameY int
}

func NewAnim(sheet draw.Sheet, every int) Anim {
	return Anim{Grid: draw.Grids[sheet], Every: every}
}

// Due reports whether frame falls on the animation cadence.
func (a *Anim) Due(frame int) bool {
	return a.Every > 0 && frame%a.Every == 0
}

// Step moves to the next cell, row-major, wrapping at the end of the grid.
func (a *Anim) Step() {
	a.FrameX++
	if a.FrameX == a.Cols {
		a.FrameY++
	}
	a.FrameX %= a.Cols
	a.FrameY %= a.Rows
}

// Advance steps the animation if frame is on cadence.
func (a *Anim) Advance(frame int) bool {
	if !a.Due(frame) {
		return false
	}
	a.Step()
	return true
}

// Last reports whether the animation sits on the final cell of the grid.
func (a *Anim) Last() bool {
	return a.FrameX == a.Cols-1 && a.FrameY == a.Rows-1
}
