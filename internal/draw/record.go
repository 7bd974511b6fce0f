package draw

import (
	"image/color"

	"bubblepop/internal/geom"
)

// Nop discards everything drawn to it.
type Nop struct {
	W, H float64
}

func (n Nop) Size() geom.Size { return geom.Size{W: n.W, H: n.H} }
func (Nop) Clear() {}
func (Nop) DrawSprite(Sheet, int, int, SpriteOp) {}
func (Nop) DrawText(string, float64, float64, TextOp) {}
func (Nop) StrokeLine(geom.Point, geom.Point, float64, color.Color) {}
func (Nop) FillCircle(geom.Circle, color.Color) {}

// Call is one recorded drawing operation.
type Call struct {
	Op     string
	Sheet  Sheet
	Col    int
	Row    int
	Sprite SpriteOp
	Text   string
	At     geom.Point
}

// Recorder keeps the operations of the current frame. Clear resets it.
type Recorder struct {
	W, H   float64
	Calls  []Call
	Clears int
}

func (r *Recorder) Size() geom.Size { return geom.Size{W: r.W, H: r.H} }

func (r *Recorder) Clear() {
	r.Clears++
	r.Calls = r.Calls[:0]
}

func (r *Recorder) DrawSprite(sheet Sheet, col, row int, op SpriteOp) {
	r.Calls = append(r.Calls, Call{Op: "sprite", Sheet: sheet, Col: col, Row: row, Sprite: op, At: op.Center})
}

func (r *Recorder) DrawText(s string, x, y float64, _ TextOp) {
	r.Calls = append(r.Calls, Call{Op: "text", Text: s, At: geom.Point{X: x, Y: y}})
}

func (r *Recorder) StrokeLine(a, _ geom.Point, _ float64, _ color.Color) {
	r.Calls = append(r.Calls, Call{Op: "line", At: a})
}

func (r *Recorder) FillCircle(c geom.Circle, _ color.Color) {
	r.Calls = append(r.Calls, Call{Op: "circle", At: c.Center})
}

// Count returns how many recorded calls match op (and sheet, for sprites).
func (r *Recorder) Count(op string, sheet Sheet) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op != op {
			continue
		}
		if op == "sprite" && c.Sheet != sheet {
			continue
		}
		n++
	}
	return n
}

// Texts returns the strings drawn this frame.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}
