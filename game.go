package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bubblepop/internal/sim"
)

// Game adapts a sim.World to ebiten. The world ticks and renders into the
// canvas inside Update; Draw only presents the finished frame.
type Game struct {
	canvas   *Canvas
	mouse    *Mouse
	newWorld func(*Canvas, *Mouse) (*sim.World, error)
	// Debug prints tick stats over the playfield.
	Debug bool

	world   *sim.World
	outcome sim.Outcome
}

func NewGame(canvas *Canvas, mouse *Mouse, newWorld func(*Canvas, *Mouse) (*sim.World, error)) (*Game, error) {
	g := &Game{canvas: canvas, mouse: mouse, newWorld: newWorld}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart() error {
	world, err := g.newWorld(g.canvas, g.mouse)
	if err != nil {
		return err
	}
	g.world = world
	g.outcome = sim.Continue
	return nil
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.mouse.Update()

	// A finished round keeps its last frame until restarted.
	if g.outcome.Halted() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return g.restart()
		}
		return nil
	}

	out, err := g.world.Tick()
	g.outcome = out
	if err != nil {
		log.Printf("frame %d: %v", g.world.Frame, err)
		return err
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)

	if g.Debug {
		snap := g.world.Snapshot()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.1f frame %d\nbubbles %d enemies %d/%d\n%v",
			ebiten.ActualTPS(), snap.Frame, snap.Bubbles, snap.Enemies, snap.MaxEnemies, g.outcome))
	}
}

// Layout: the playfield is fixed; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
