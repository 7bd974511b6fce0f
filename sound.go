package main

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"bubblepop/internal/assets"
	"bubblepop/internal/sim"
)

const SampleRate = 44100

// Sounds plays cues on the Ebiten audio context. Every Play gets its own
// player so overlapping pops do not cut each other off.
type Sounds struct {
	ctx    *audio.Context
	pcm    map[sim.Cue][]byte
	volume float64
	live   []*audio.Player
}

func NewSounds(ctx *audio.Context, sounds map[string]assets.Sound, volume float64) (*Sounds, error) {
	s := &Sounds{
		ctx:    ctx,
		pcm:    make(map[sim.Cue][]byte, len(sounds)),
		volume: volume,
	}
	for name, snd := range sounds {
		cue, err := sim.ParseCue(name)
		if err != nil {
			return nil, err
		}

		var stream io.Reader
		switch snd.Ext() {
		case ".wav":
			stream, err = wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(snd.Data))
		case ".ogg":
			stream, err = vorbis.DecodeWithSampleRate(SampleRate, bytes.NewReader(snd.Data))
		default:
			err = fmt.Errorf("unsupported format %q", snd.Ext())
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", snd.File, err)
		}

		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", snd.File, err)
		}
		s.pcm[cue] = pcm
	}
	return s, nil
}

func (s *Sounds) Play(c sim.Cue) {
	pcm, ok := s.pcm[c]
	if !ok {
		log.Printf("no sound loaded for cue %v", c)
		return
	}

	// Drop finished players before adding the new one.
	live := s.live[:0]
	for _, p := range s.live {
		if p.IsPlaying() {
			live = append(live, p)
		} else {
			p.Close()
		}
	}

	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(s.volume)
	p.Play()
	s.live = append(live, p)
}
