package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG format
	"io/fs"
	"path"

	"bubblepop/internal/draw"
)

//go:embed images/*.png sounds/*.wav
var projectAssets embed.FS

// Embedded returns the asset pack bundled with the binary.
func Embedded() fs.FS { return projectAssets }

// SheetFiles maps every sprite sheet to its file in an asset pack.
var SheetFiles = map[draw.Sheet]string{
	draw.SheetPlayer: "images/player.png",
	draw.SheetEnemy:  "images/enemy.png",
	draw.SheetBubble: "images/bubble.png",
}

// SoundNames are the cues every pack must carry, looked up as
// sounds/<name>.ogg or sounds/<name>.wav.
var SoundNames = []string{"pop1", "pop2"}

var soundExts = []string{".ogg", ".wav"}

// Sheet is a decoded sprite sheet cut into a grid of equal frames.
type Sheet struct {
	Image  image.Image
	Grid   draw.Grid
	FrameW int
	FrameH int
}

// Frame returns the source rectangle of the cell at (col, row).
func (s *Sheet) Frame(col, row int) image.Rectangle {
	o := s.Image.Bounds().Min
	x := o.X + col*s.FrameW
	y := o.Y + row*s.FrameH
	return image.Rect(x, y, x+s.FrameW, y+s.FrameH)
}

// FrameColor averages the opaque pixels of a cell.
func (s *Sheet) FrameColor(col, row int) color.RGBA {
	r := s.Frame(col, row)
	step := max(1, s.FrameW/16)

	var sr, sg, sb, n uint32
	for y := r.Min.Y; y < r.Max.Y; y += step {
		for x := r.Min.X; x < r.Max.X; x += step {
			c := color.NRGBAModel.Convert(s.Image.At(x, y)).(color.NRGBA)
			if c.A < 0x80 {
				continue
			}
			sr += uint32(c.R)
			sg += uint32(c.G)
			sb += uint32(c.B)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return color.RGBA{uint8(sr / n), uint8(sg / n), uint8(sb / n), 0xff}
}

// Sound is an undecoded audio cue.
type Sound struct {
	Name string
	File string
	Data []byte
}

// Ext is the container extension, ".ogg" or ".wav".
func (s Sound) Ext() string { return path.Ext(s.File) }

// Pack holds everything the simulation needs before its first tick.
type Pack struct {
	Sheets map[draw.Sheet]*Sheet
	Sounds map[string]Sound
}

// Load decodes every sprite sheet and reads every sound from fsys. Any
// missing or undecodable file fails the whole load.
func Load(fsys fs.FS) (*Pack, error) {
	p := &Pack{
		Sheets: make(map[draw.Sheet]*Sheet, len(SheetFiles)),
		Sounds: make(map[string]Sound, len(SoundNames)),
	}
	for _, id := range []draw.Sheet{draw.SheetPlayer, draw.SheetEnemy, draw.SheetBubble} {
		s, err := LoadSheet(fsys, SheetFiles[id], draw.Grids[id])
		if err != nil {
			return nil, err
		}
		p.Sheets[id] = s
	}
	for _, name := range SoundNames {
		s, err := LoadSound(fsys, name)
		if err != nil {
			return nil, err
		}
		p.Sounds[name] = s
	}
	return p, nil
}

// LoadSheet decodes an image and slices it into grid cells.
func LoadSheet(fsys fs.FS, name string, grid draw.Grid) (*Sheet, error) {
	fileData, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", name, err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || b.Dx()%grid.Cols != 0 || b.Dy()%grid.Rows != 0 {
		return nil, fmt.Errorf("image %q: %dx%d does not split into %dx%d frames",
			name, b.Dx(), b.Dy(), grid.Cols, grid.Rows)
	}

	return &Sheet{
		Image:  img,
		Grid:   grid,
		FrameW: b.Dx() / grid.Cols,
		FrameH: b.Dy() / grid.Rows,
	}, nil
}

// LoadSound reads the first of sounds/<name>.ogg, sounds/<name>.wav found.
func LoadSound(fsys fs.FS, name string) (Sound, error) {
	for _, ext := range soundExts {
		file := "sounds/" + name + ext
		data, err := fs.ReadFile(fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Sound{}, fmt.Errorf("read sound %q: %w", file, err)
		}
		return Sound{Name: name, File: file, Data: data}, nil
	}
	return Sound{}, fmt.Errorf("sound %q: no sounds/%s.ogg or sounds/%s.wav", name, name, name)
}
