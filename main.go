package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"bubblepop/internal/assets"
	"bubblepop/internal/config"
	"bubblepop/internal/draw"
	"bubblepop/internal/geom"
	"bubblepop/internal/sim"
	"bubblepop/internal/terminal"
)

// Playfield size
const (
	ScreenWidth  = 800
	ScreenHeight = 500
	WindowTitle  = "Bubble Pop"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	// 2. Assets
	var fsys fs.FS = assets.Embedded()
	if cfg.AssetDir != "" {
		fsys = os.DirFS(cfg.AssetDir)
	}
	pack, err := assets.Load(fsys)
	if err != nil {
		log.Fatalf("load assets: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 3. Run the selected host
	switch cfg.UI {
	case config.UITerminal:
		err = runTerminal(cfg, pack, rng)
	default:
		log.Printf("seed %d, difficulty %d", seed, cfg.Difficulty)
		err = runEbiten(cfg, pack, rng)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// worldFactory builds fresh worlds that share the host's surface, input,
// cues and random source.
func worldFactory(cfg config.Config, rng *rand.Rand, logger *log.Logger) (func(draw.Surface, sim.Input, sim.Cues) (*sim.World, error), error) {
	cues, err := cfg.Cues()
	if err != nil {
		return nil, err
	}
	return func(surface draw.Surface, input sim.Input, sounds sim.Cues) (*sim.World, error) {
		return sim.New(sim.Options{
			Difficulty: cfg.Difficulty,
			Surface:    surface,
			Input:      input,
			Cues:       sounds,
			Rand:       rng,
			Logger:     logger,
			Debug:      cfg.Debug,
			PopCues:    cues,
		})
	}, nil
}

func runEbiten(cfg config.Config, pack *assets.Pack, rng *rand.Rand) error {
	factory, err := worldFactory(cfg, rng, log.Default())
	if err != nil {
		return err
	}

	var cues sim.Cues
	sounds, err := NewSounds(audio.NewContext(SampleRate), pack.Sounds, cfg.Volume)
	if err != nil {
		// Audio is optional; play silently.
		log.Printf("audio disabled: %v", err)
	} else {
		cues = sounds
	}

	game, err := NewGame(NewCanvas(pack), NewMouse(cfg.Pointer == config.PointerHover),
		func(c *Canvas, m *Mouse) (*sim.World, error) { return factory(c, m, cues) })
	if err != nil {
		return err
	}

	game.Debug = cfg.Debug

	ebiten.SetWindowSize(int(ScreenWidth*cfg.Scale), int(ScreenHeight*cfg.Scale))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}

func runTerminal(cfg config.Config, pack *assets.Pack, rng *rand.Rand) error {
	// The terminal owns stdout while the game runs.
	factory, err := worldFactory(cfg, rng, log.New(io.Discard, "", 0))
	if err != nil {
		return err
	}

	term, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	term.EnableMouse()
	term.HideCursor()

	screen := terminal.NewScreen(term, geom.Size{W: ScreenWidth, H: ScreenHeight}, pack)
	input := terminal.NewInput(screen, cfg.Pointer == config.PointerHover)

	var cues sim.Cues
	var audioErr error
	sounds, err := terminal.NewSounds(pack.Sounds, cfg.Volume)
	if err == nil {
		err = sounds.Open()
	}
	if err != nil {
		audioErr = err
	} else {
		defer sounds.Close()
		cues = sounds
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = terminal.Run(ctx, terminal.Session{
		Term:   term,
		Screen: screen,
		Input:  input,
		NewWorld: func() (*sim.World, error) {
			return factory(screen, input, cues)
		},
	})
	term.Fini()

	if audioErr != nil {
		log.Printf("audio disabled: %v", audioErr)
	}
	return err
}
