// Package sim runs the bubble-popping simulation one tick at a time.
package sim

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"slices"
	"time"

	"bubblepop/internal/draw"
	"bubblepop/internal/entity"
	"bubblepop/internal/geom"
)

// Outcome tells the host whether to schedule another tick.
type Outcome int

const (
	Continue Outcome = iota
	OutcomeWon
	OutcomeLost
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Halted reports whether the host should stop scheduling ticks.
func (o Outcome) Halted() bool { return o != Continue }

// ErrTickFailed matches every *TickError.
var ErrTickFailed = errors.New("tick failed")

// TickError reports a panic raised inside a tick, usually by a collaborator.
type TickError struct {
	Frame int
	Cause any
}

func (e *TickError) Error() string {
	return fmt.Sprintf("tick %d failed: %v", e.Frame, e.Cause)
}

func (e *TickError) Is(target error) bool { return target == ErrTickFailed }

func (e *TickError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

const (
	ReadoutX    = 10
	ReadoutY    = 50
	MessageSize = 60
)

type Options struct {
	Difficulty int
	Surface    draw.Surface
	Input      Input
	Cues       Cues
	Rand       entity.Rand
	Logger     *log.Logger
	Debug      bool

	// PopCues holds the cue for each pop sound branch: [0] for bubbles
	// flagged AltSound, [1] for the rest.
	PopCues [2]Cue
}

// DefaultPopCues routes both pop branches to the second cue.
var DefaultPopCues = [2]Cue{CuePop2, CuePop2}

// World owns every entity and the progression state.
type World struct {
	Progression
	Frame   int
	Player  *entity.Player
	Bubbles []*entity.Bubble
	Enemies []*entity.Enemy

	surface draw.Surface
	input   Input
	cues    Cues
	logger  *log.Logger
	debug   bool
	popCues [2]Cue
	bounds  geom.Size
	spawner Spawner

	bubblesSpawned int
	enemiesSpawned int
	pops           int
	pointer        Pointer
	outcome        Outcome
	err            error
}

func New(opts Options) (*World, error) {
	if opts.Surface == nil {
		return nil, errors.New("sim: surface is required")
	}
	if opts.Input == nil {
		return nil, errors.New("sim: input is required")
	}
	if opts.Difficulty < 1 {
		return nil, fmt.Errorf("sim: difficulty must be at least 1, got %d", opts.Difficulty)
	}
	if opts.Cues == nil {
		opts.Cues = nopCues{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.PopCues == [2]Cue{} {
		opts.PopCues = DefaultPopCues
	}

	bounds := opts.Surface.Size()
	return &World{
		Progression: NewProgression(opts.Difficulty),
		Player:      entity.NewPlayer(bounds),
		surface:     opts.Surface,
		input:       opts.Input,
		cues:        opts.Cues,
		logger:      opts.Logger,
		debug:       opts.Debug,
		popCues:     opts.PopCues,
		bounds:      bounds,
		spawner:     NewSpawner(opts.Rand, bounds),
	}, nil
}

// Tick advances the simulation by one frame and renders it. Once the game
// has ended (or a tick failed) Tick changes nothing and repeats the result.
func (w *World) Tick() (out Outcome, err error) {
	if w.outcome.Halted() {
		return w.outcome, w.err
	}
	defer func() {
		if r := recover(); r != nil {
			w.outcome = Failed
			w.err = &TickError{Frame: w.Frame, Cause: r}
			out, err = w.outcome, w.err
		}
	}()

	w.Frame++
	w.spawn()

	w.surface.Clear()
	w.pointer = w.input.Pointer()

	w.updateBubbles()

	w.Player.Update(geom.Point{X: w.pointer.X, Y: w.pointer.Y}, w.Frame)
	if w.debug {
		w.Player.DrawDebug(w.surface, geom.Point{X: w.pointer.X, Y: w.pointer.Y}, w.pointer.Pressed)
	}
	w.Player.Draw(w.surface)

	w.updateEnemies()

	w.surface.DrawText(fmt.Sprintf("Level :%d Score: %d", w.Level, w.Score), ReadoutX, ReadoutY,
		draw.TextOp{Color: draw.ColText, Size: MessageSize})

	if !w.GameOver() {
		w.CheckWin()
	}

	w.outcome = w.resolve()
	return w.outcome, nil
}

func (w *World) spawn() {
	e, b := w.spawner.Spawn(w.Frame, len(w.Enemies), w.MaxEnemies)
	if e != nil {
		w.Enemies = append(w.Enemies, e)
		w.enemiesSpawned++
	}
	if b != nil {
		w.Bubbles = append(w.Bubbles, b)
		w.bubblesSpawned++
	}
}

// Bubbles are walked back to front so removal does not skip the next one.
func (w *World) updateBubbles() {
	for i := len(w.Bubbles) - 1; i >= 0; i-- {
		b := w.Bubbles[i]
		b.Update(w.Player.Pos(), w.Frame)
		if w.debug {
			b.DrawDebug(w.surface)
		}
		b.Draw(w.surface)

		if !b.Popped && geom.Hit(b.Distance, b.Radius, w.Player.Radius) {
			w.pop(b)
		}
		if b.Expired() {
			w.Bubbles = slices.Delete(w.Bubbles, i, i+1)
		}
	}
}

func (w *World) pop(b *entity.Bubble) {
	if !b.Pop() {
		return
	}
	w.pops++
	if w.Progression.Pop() {
		w.logger.Printf("level %d reached at score %d, enemy cap now %d", w.Level, w.Score, w.MaxEnemies)
	}

	// TODO: confirm with design whether the two branches should differ;
	// DefaultPopCues sends both to pop2.
	cue := w.popCues[1]
	if b.AltSound {
		cue = w.popCues[0]
	}
	w.cues.Play(cue)
}

func (w *World) updateEnemies() {
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		e.Update(w.Player.Pos(), w.Frame)
		if w.debug {
			e.DrawDebug(w.surface)
		}
		e.Draw(w.surface)

		if geom.Hit(e.Distance, e.Radius, w.Player.Radius) {
			w.Collide()
		}
	}
}

func (w *World) resolve() Outcome {
	center := geom.Point{X: w.bounds.W / 2, Y: w.bounds.H / 2}
	switch w.Phase {
	case Won:
		w.surface.DrawText("GG", center.X, center.Y,
			draw.TextOp{Align: draw.AlignCenter, Color: draw.ColWin, Size: MessageSize})
		w.logger.Printf("won at frame %d with score %d", w.Frame, w.Score)
		return OutcomeWon
	case Lost:
		w.surface.DrawText("RIP", center.X, center.Y,
			draw.TextOp{Align: draw.AlignCenter, Color: draw.ColLose, Size: MessageSize})
		w.logger.Printf("lost at frame %d with score %d", w.Frame, w.Score)
		return OutcomeLost
	}
	return Continue
}

// Snapshot is a read-only view of the world counters.
type Snapshot struct {
	Frame          int
	Score          int
	Level          int
	MaxLevel       int
	MaxEnemies     int
	Phase          Phase
	Bubbles        int
	Enemies        int
	BubblesSpawned int
	EnemiesSpawned int
	Pops           int
	Player         geom.Point
}

func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Frame:          w.Frame,
		Score:          w.Score,
		Level:          w.Level,
		MaxLevel:       w.MaxLevel,
		MaxEnemies:     w.MaxEnemies,
		Phase:          w.Phase,
		Bubbles:        len(w.Bubbles),
		Enemies:        len(w.Enemies),
		BubblesSpawned: w.bubblesSpawned,
		EnemiesSpawned: w.enemiesSpawned,
		Pops:           w.pops,
		Player:         w.Player.Pos(),
	}
}

// Err returns the failure that halted the world, if any.
func (w *World) Err() error { return w.err }
