package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"bubblepop/internal/sim"
)

// FrameRate is how often the run loop ticks the world.
const FrameRate = 60

// Session is everything the run loop drives.
type Session struct {
	Term   tcell.Screen
	Screen *Screen
	Input  *Input
	// NewWorld builds a fresh world on start and on every restart.
	NewWorld func() (*sim.World, error)
}

// Run ticks the world on a fixed cadence until the player quits, ctx is
// cancelled or a tick fails. A finished game stays on screen until the
// player quits or restarts with r.
//
// Terminal events arrive on a channel and are applied between ticks, so
// the pointer and the cell mapping never change mid-tick.
func Run(ctx context.Context, s Session) error {
	world, err := s.NewWorld()
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	go s.Term.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	halted := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Screen.Resize()
				s.Term.Sync()
			case *tcell.EventMouse:
				s.Input.HandleMouse(ev)
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return nil
				case ev.Rune() == 'r' && halted:
					if world, err = s.NewWorld(); err != nil {
						return err
					}
					halted = false
				}
			}

		case <-ticker.C:
			if halted {
				continue
			}
			out, err := world.Tick()
			s.Term.Show()
			if err != nil {
				return err
			}
			halted = out.Halted()
		}
	}
}
