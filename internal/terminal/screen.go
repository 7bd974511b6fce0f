// Package terminal hosts the simulation in a text terminal: tcell draws
// and reads the mouse, beep plays the cues.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"bubblepop/internal/assets"
	"bubblepop/internal/draw"
	"bubblepop/internal/geom"
)

// Screen maps the fixed simulation surface onto the terminal cell grid.
type Screen struct {
	term   tcell.Screen
	size   geom.Size
	cols   int
	rows   int
	colors map[draw.Sheet][]tcell.Color
	bg     tcell.Style
}

// glyphs per sheet: left-facing art, then right-facing art, one per
// animation parity. Bubbles use one glyph per grid cell.
var (
	playerArt = [2][2]string{{"<°)", "<°}"}, {"(°>", "{°>"}}
	enemyArt  = [2]string{"<x)", "<x}"}
	bubbleArt = []rune{'O', 'o', '*', '+', '·', '.'}
)

func NewScreen(term tcell.Screen, surface geom.Size, pack *assets.Pack) *Screen {
	s := &Screen{
		term:   term,
		size:   surface,
		colors: make(map[draw.Sheet][]tcell.Color),
		bg:     tcell.StyleDefault.Background(tcell.NewRGBColor(0x1b, 0x4f, 0x72)),
	}
	for id, sheet := range pack.Sheets {
		cells := make([]tcell.Color, 0, sheet.Grid.Frames())
		for row := 0; row < sheet.Grid.Rows; row++ {
			for col := 0; col < sheet.Grid.Cols; col++ {
				cells = append(cells, tcell.FromImageColor(sheet.FrameColor(col, row)))
			}
		}
		s.colors[id] = cells
	}
	s.Resize()
	return s
}

// Resize re-reads the terminal size. Call it on every resize event.
func (s *Screen) Resize() {
	s.cols, s.rows = s.term.Size()
}

// Cell converts a surface position to a terminal cell.
func (s *Screen) Cell(p geom.Point) (int, int) {
	if s.cols == 0 || s.rows == 0 {
		return 0, 0
	}
	x := int(math.Floor(p.X * float64(s.cols) / s.size.W))
	y := int(math.Floor(p.Y * float64(s.rows) / s.size.H))
	return x, y
}

// Point converts a terminal cell back to the surface position of its center.
func (s *Screen) Point(x, y int) geom.Point {
	if s.cols == 0 || s.rows == 0 {
		return geom.Point{}
	}
	return geom.Point{
		X: (float64(x) + 0.5) * s.size.W / float64(s.cols),
		Y: (float64(y) + 0.5) * s.size.H / float64(s.rows),
	}
}

func (s *Screen) Size() geom.Size { return s.size }

func (s *Screen) Clear() {
	s.term.Fill(' ', s.bg)
}

func (s *Screen) frameColor(sheet draw.Sheet, col, row int) tcell.Color {
	cells := s.colors[sheet]
	i := row*draw.Grids[sheet].Cols + col
	if i < 0 || i >= len(cells) {
		return tcell.ColorWhite
	}
	return cells[i]
}

func (s *Screen) DrawSprite(sheet draw.Sheet, col, row int, op draw.SpriteOp) {
	style := s.bg.Foreground(s.frameColor(sheet, col, row))
	x, y := s.Cell(op.Center)

	switch sheet {
	case draw.SheetPlayer:
		facing := 0
		if op.FlipY {
			facing = 1
		}
		s.put(x, y, playerArt[facing][col%2], style, draw.AlignCenter)
	case draw.SheetEnemy:
		s.put(x, y, enemyArt[col%2], style, draw.AlignCenter)
	case draw.SheetBubble:
		i := row*draw.Grids[sheet].Cols + col
		if i < len(bubbleArt) {
			s.put(x, y, string(bubbleArt[i]), style, draw.AlignCenter)
		}
	}
}

func (s *Screen) DrawText(str string, x, y float64, op draw.TextOp) {
	style := s.bg.Foreground(tcell.ColorWhite)
	if op.Color != nil {
		style = s.bg.Foreground(tcell.FromImageColor(op.Color))
	}
	cx, cy := s.Cell(geom.Point{X: x, Y: y})
	s.put(cx, cy, str, style.Bold(true), op.Align)
}

// StrokeLine plots a Bresenham line of dots between two surface points.
func (s *Screen) StrokeLine(a, b geom.Point, _ float64, clr color.Color) {
	style := s.bg.Foreground(tcell.FromImageColor(clr))
	x0, y0 := s.Cell(a)
	x1, y1 := s.Cell(b)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.term.SetContent(x0, y0, '.', nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// FillCircle tints the background of every cell whose center is inside c.
func (s *Screen) FillCircle(c geom.Circle, clr color.Color) {
	bg := tcell.FromImageColor(clr)
	x0, y0 := s.Cell(geom.Point{X: c.Center.X - c.R, Y: c.Center.Y - c.R})
	x1, y1 := s.Cell(geom.Point{X: c.Center.X + c.R, Y: c.Center.Y + c.R})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if geom.Distance(s.Point(x, y), c.Center) >= c.R {
				continue
			}
			r, comb, style, _ := s.term.GetContent(x, y)
			s.term.SetContent(x, y, r, comb, style.Background(bg))
		}
	}
}

func (s *Screen) put(x, y int, str string, style tcell.Style, align draw.Align) {
	runes := []rune(str)
	if align == draw.AlignCenter {
		x -= len(runes) / 2
	}
	for i, r := range runes {
		s.term.SetContent(x+i, y, r, nil, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
