package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bubblepop/internal/assets"
	"bubblepop/internal/draw"
	"bubblepop/internal/geom"
)

// --- Colors ---
var (
	ColBg = color.RGBA{0x7e, 0xc8, 0xe3, 0xff} // Shallow water
)

// Canvas is the offscreen surface the world renders into during Update.
// Draw only blits it to the screen.
type Canvas struct {
	img    *ebiten.Image
	sheets map[draw.Sheet]*ebiten.Image
	grids  map[draw.Sheet]*assets.Sheet
	face   *text.GoXFace
}

func NewCanvas(pack *assets.Pack) *Canvas {
	c := &Canvas{
		img:    ebiten.NewImage(ScreenWidth, ScreenHeight),
		sheets: make(map[draw.Sheet]*ebiten.Image, len(pack.Sheets)),
		grids:  pack.Sheets,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
	for id, s := range pack.Sheets {
		c.sheets[id] = ebiten.NewImageFromImage(s.Image)
	}
	return c
}

func (c *Canvas) Size() geom.Size {
	return geom.Size{W: ScreenWidth, H: ScreenHeight}
}

func (c *Canvas) Clear() {
	c.img.Fill(ColBg)
}

func (c *Canvas) DrawSprite(sheet draw.Sheet, col, row int, op draw.SpriteOp) {
	s, ok := c.grids[sheet]
	if !ok {
		return
	}
	frame := c.sheets[sheet].SubImage(s.Frame(col, row)).(*ebiten.Image)

	scale := 1.0
	if op.Scale > 0 {
		scale = 1 / op.Scale
	}

	// 1. Center the frame on the origin
	dio := &ebiten.DrawImageOptions{}
	dio.GeoM.Translate(-float64(s.FrameW)/2, -float64(s.FrameH)/2)
	// 2. Shrink, mirror, rotate
	dio.GeoM.Scale(scale, scale)
	if op.FlipY {
		dio.GeoM.Scale(1, -1)
	}
	dio.GeoM.Rotate(op.Angle)
	// 3. Move into place
	dio.GeoM.Translate(op.Center.X, op.Center.Y)
	dio.Filter = ebiten.FilterLinear

	c.img.DrawImage(frame, dio)
}

func (c *Canvas) DrawText(s string, x, y float64, op draw.TextOp) {
	scale := 1.0
	if op.Size > 0 {
		scale = op.Size / float64(basicfont.Face7x13.Height)
	}

	tdo := &text.DrawOptions{}
	if op.Align == draw.AlignCenter {
		tdo.PrimaryAlign = text.AlignCenter
	}
	// y is the baseline; text/v2 lays out from the top of the line.
	tdo.GeoM.Translate(0, -c.face.Metrics().HAscent)
	tdo.GeoM.Scale(scale, scale)
	tdo.GeoM.Translate(x, y)
	if op.Color != nil {
		tdo.ColorScale.ScaleWithColor(op.Color)
	}
	text.Draw(c.img, s, c.face, tdo)
}

func (c *Canvas) StrokeLine(a, b geom.Point, width float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
}

func (c *Canvas) FillCircle(circle geom.Circle, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(circle.Center.X), float32(circle.Center.Y), float32(circle.R), clr, true)
}

// Image is the last rendered frame.
func (c *Canvas) Image() *ebiten.Image { return c.img }
