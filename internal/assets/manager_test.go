package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"bubblepop/internal/draw"
)

func TestLoadEmbedded(t *testing.T) {
	p, err := Load(Embedded())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for id, grid := range draw.Grids {
		s := p.Sheets[id]
		if s == nil {
			t.Fatalf("sheet %v missing", id)
		}
		b := s.Image.Bounds()
		if s.FrameW*grid.Cols != b.Dx() || s.FrameH*grid.Rows != b.Dy() {
			t.Errorf("%v: frame %dx%d does not tile %v", id, s.FrameW, s.FrameH, b)
		}
	}
	for _, name := range SoundNames {
		s, ok := p.Sounds[name]
		if !ok || len(s.Data) == 0 || s.Ext() != ".wav" {
			t.Errorf("sound %q: %+v", name, s.File)
		}
	}
}

func TestFrameRect(t *testing.T) {
	s := &Sheet{Image: image.NewRGBA(image.Rect(0, 0, 120, 90)), Grid: draw.Grid{Cols: 4, Rows: 3}, FrameW: 30, FrameH: 30}
	if got := s.Frame(3, 2); got != image.Rect(90, 60, 120, 90) {
		t.Fatalf("Frame(3,2) = %v", got)
	}
}

func TestFrameColorIgnoresTransparentPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	for y := 8; y < 24; y++ {
		for x := 40; x < 56; x++ {
			img.Set(x, y, color.NRGBA{200, 100, 0, 255})
		}
	}
	s := &Sheet{Image: img, Grid: draw.Grid{Cols: 2, Rows: 1}, FrameW: 32, FrameH: 32}

	if got := s.FrameColor(1, 0); got != (color.RGBA{200, 100, 0, 255}) {
		t.Fatalf("FrameColor(1,0) = %v", got)
	}
	if got := s.FrameColor(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("empty frame color = %v, want white fallback", got)
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func validFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"images/player.png": {Data: encodePNG(t, 8, 6)},
		"images/enemy.png":  {Data: encodePNG(t, 8, 6)},
		"images/bubble.png": {Data: encodePNG(t, 6, 4)},
		"sounds/pop1.ogg":   {Data: []byte("OggS")},
		"sounds/pop2.wav":   {Data: []byte("RIFF")},
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(fstest.MapFS)
		wantErr string
	}{
		{"missing sheet", func(m fstest.MapFS) { delete(m, "images/bubble.png") }, "bubble.png"},
		{"corrupt sheet", func(m fstest.MapFS) { m["images/enemy.png"] = &fstest.MapFile{Data: []byte("nope")} }, "decode image"},
		{"uneven grid", func(m fstest.MapFS) { m["images/player.png"] = &fstest.MapFile{Data: encodePNG(t, 10, 6)} }, "does not split"},
		{"missing sound", func(m fstest.MapFS) { delete(m, "sounds/pop2.wav") }, "pop2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validFS(t)
			tt.mutate(m)
			_, err := Load(m)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadPrefersOgg(t *testing.T) {
	m := validFS(t)
	m["sounds/pop1.wav"] = &fstest.MapFile{Data: []byte("RIFF")}
	p, err := Load(m)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Sounds["pop1"].Ext() != ".ogg" || p.Sounds["pop2"].Ext() != ".wav" {
		t.Fatalf("sounds = %v / %v", p.Sounds["pop1"].File, p.Sounds["pop2"].File)
	}
}
