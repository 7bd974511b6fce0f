package terminal

import (
	"github.com/gdamore/tcell/v2"

	"bubblepop/internal/sim"
)

// Input turns tcell mouse events into the pointer snapshot the world reads.
type Input struct {
	screen *Screen
	hover  bool
	p      sim.Pointer
}

// NewInput starts with the pointer on the surface center. With hover set
// the pointer follows every motion; otherwise it only moves while pressed.
func NewInput(screen *Screen, hover bool) *Input {
	size := screen.Size()
	return &Input{
		screen: screen,
		hover:  hover,
		p:      sim.Pointer{X: size.W / 2, Y: size.H / 2},
	}
}

func (in *Input) Pointer() sim.Pointer { return in.p }

func (in *Input) HandleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	in.p.Pressed = pressed
	if !pressed && !in.hover {
		return
	}

	x, y := ev.Position()
	pt := in.screen.Point(x, y)
	size := in.screen.Size()
	in.p.X = clamp(pt.X, 0, size.W)
	in.p.Y = clamp(pt.Y, 0, size.H)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
