package sim

import "fmt"

// Pointer is the latest pointer snapshot in surface coordinates.
type Pointer struct {
	X, Y    float64
	Pressed bool
}

// Input supplies the pointer. The world reads it once per tick.
type Input interface {
	Pointer() Pointer
}

// Cue names a playable sound.
type Cue int

const (
	CuePop1 Cue = iota + 1
	CuePop2
)

func (c Cue) String() string {
	switch c {
	case CuePop1:
		return "pop1"
	case CuePop2:
		return "pop2"
	}
	return "unknown"
}

// ParseCue maps a cue name back to its Cue.
func ParseCue(s string) (Cue, error) {
	switch s {
	case "pop1":
		return CuePop1, nil
	case "pop2":
		return CuePop2, nil
	}
	return 0, fmt.Errorf("unknown cue %q", s)
}

// Cues plays sounds. Play must not block and never reports failure back.
type Cues interface {
	Play(c Cue)
}

type nopCues struct{}

func (nopCues) Play(Cue) {}

// FixedInput is an Input that always reports the same pointer.
type FixedInput Pointer

func (f FixedInput) Pointer() Pointer { return Pointer(f) }
