package terminal

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"bubblepop/internal/assets"
	"bubblepop/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// DecodeCues decodes every cue into an in-memory buffer at sampleRate.
func DecodeCues(sounds map[string]assets.Sound) (map[sim.Cue]*beep.Buffer, error) {
	out := make(map[sim.Cue]*beep.Buffer, len(sounds))
	for name, snd := range sounds {
		cue, err := sim.ParseCue(name)
		if err != nil {
			return nil, err
		}

		var streamer beep.StreamSeekCloser
		var format beep.Format
		switch snd.Ext() {
		case ".wav":
			streamer, format, err = wav.Decode(bytes.NewReader(snd.Data))
		case ".ogg":
			streamer, format, err = vorbis.Decode(io.NopCloser(bytes.NewReader(snd.Data)))
		default:
			err = fmt.Errorf("unsupported format %q", snd.Ext())
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", snd.File, err)
		}

		buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		if format.SampleRate != sampleRate {
			buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
		} else {
			buf.Append(streamer)
		}
		streamer.Close()
		out[cue] = buf
	}
	return out, nil
}

// Sounds plays cues through the beep speaker. A Sounds without a speaker
// stays silent.
type Sounds struct {
	buffers map[sim.Cue]*beep.Buffer
	volume  float64
	ready   bool
}

func NewSounds(sounds map[string]assets.Sound, volume float64) (*Sounds, error) {
	buffers, err := DecodeCues(sounds)
	if err != nil {
		return nil, err
	}
	return &Sounds{buffers: buffers, volume: volume}, nil
}

// Open starts the speaker. Until it succeeds Play does nothing.
func (s *Sounds) Open() error {
	if s.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.ready = true
	return nil
}

func (s *Sounds) Play(c sim.Cue) {
	if !s.ready {
		return
	}
	buf, ok := s.buffers[c]
	if !ok {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   math.Log2(s.volume),
		Silent:   s.volume == 0,
	})
}

func (s *Sounds) Close() {
	if s.ready {
		speaker.Clear()
		speaker.Close()
	}
}
