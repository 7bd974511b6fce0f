package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bubblepop/internal/sim"
)

// Mouse samples the cursor (or first touch) once per Update. By default the
// pointer only follows while the button is held, like a click-to-swim
// control; with hover it follows every motion.
type Mouse struct {
	hover   bool
	p       sim.Pointer
	touches  []ebiten.TouchID
	touch    ebiten.TouchID
	touching bool
}

func NewMouse(hover bool) *Mouse {
	return &Mouse{
		hover: hover,
		p:     sim.Pointer{X: ScreenWidth / 2, Y: ScreenHeight / 2},
	}
}

func (m *Mouse) Update() {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// Follow the first finger down until it lifts.
	if m.touching && inpututil.IsTouchJustReleased(m.touch) {
		m.touching = false
	}
	if !m.touching {
		m.touches = inpututil.AppendJustPressedTouchIDs(m.touches[:0])
		if len(m.touches) > 0 {
			m.touch, m.touching = m.touches[0], true
		}
	}
	if m.touching {
		x, y = ebiten.TouchPosition(m.touch)
		pressed = true
	}

	m.p.Pressed = pressed
	if pressed || m.hover {
		m.p.X = clamp(float64(x), 0, ScreenWidth)
		m.p.Y = clamp(float64(y), 0, ScreenHeight)
	}
}

func (m *Mouse) Pointer() sim.Pointer { return m.p }

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
