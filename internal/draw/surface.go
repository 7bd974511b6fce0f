// Package draw defines the immediate-mode drawing target the simulation
// renders into. Hosts provide the implementation.
package draw

import (
	"image/color"

	"bubblepop/internal/geom"
)

// Sheet identifies one of the pre-loaded sprite sheets.
type Sheet int

const (
	SheetPlayer Sheet = iota
	SheetEnemy
	SheetBubble
)

func (s Sheet) String() string {
	switch s {
	case SheetPlayer:
		return "player"
	case SheetEnemy:
		return "enemy"
	case SheetBubble:
		return "bubble"
	}
	return "unknown"
}

// Grid is the layout of equal-sized frames in a sprite sheet.
type Grid struct {
	Cols, Rows int
}

// Frames returns the number of cells in the grid.
func (g Grid) Frames() int { return g.Cols * g.Rows }

// Grids holds the fixed frame layout of every sheet.
var Grids = map[Sheet]Grid{
	SheetPlayer: {Cols: 4, Rows: 3},
	SheetEnemy:  {Cols: 4, Rows: 3},
	SheetBubble: {Cols: 3, Rows: 2},
}

// SpriteOp places one sheet frame on the surface. The destination rect is
// the source frame shrunk by Scale and centered on Center. FlipY mirrors the
// frame vertically before it is rotated by Angle.
type SpriteOp struct {
	Center geom.Point
	Scale  float64
	Angle  float64
	FlipY  bool
}

type Align int

const (
	AlignStart Align = iota
	AlignCenter
)

// TextOp styles a line of text. Y is the baseline.
type TextOp struct {
	Align Align
	Color color.Color
	Size  float64
}

// Surface is a fixed-size 2D drawing target.
type Surface interface {
	Size() geom.Size
	Clear()
	DrawSprite(sheet Sheet, col, row int, op SpriteOp)
	DrawText(s string, x, y float64, op TextOp)
	StrokeLine(a, b geom.Point, width float64, clr color.Color)
	FillCircle(c geom.Circle, clr color.Color)
}

// --- Colors ---
var (
	ColText   = color.RGBA{0x10, 0x10, 0x10, 0xff}
	ColWin    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColLose   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColPlayer = color.RGBA{0x00, 0x80, 0x00, 0xff}
	ColBubble = color.RGBA{0x00, 0x00, 0xff, 0xff}
	ColEnemy  = color.RGBA{0xff, 0x00, 0x00, 0xff}
)
