package entity

import (
	"math"
	"testing"

	"bubblepop/internal/draw"
	"bubblepop/internal/geom"
)

var bounds = geom.Size{W: 800, H: 500}

// seqRand replays a fixed list of values, then repeats the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i]
	if r.i < len(r.vals)-1 {
		r.i++
	}
	return v
}

func TestAnimWrapsRowMajor(t *testing.T) {
	a := NewAnim(draw.SheetPlayer, 7)
	want := [][2]int{
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1}, {3, 1},
		{0, 2}, {1, 2}, {2, 2}, {3, 2},
		{0, 0},
	}
	for i, w := range want {
		a.Step()
		if a.FrameX != w[0] || a.FrameY != w[1] {
			t.Fatalf("step %d = (%d,%d), want (%d,%d)", i+1, a.FrameX, a.FrameY, w[0], w[1])
		}
	}
}

func TestAnimCadence(t *testing.T) {
	a := NewAnim(draw.SheetEnemy, 5)
	steps := 0
	for frame := 1; frame <= 50; frame++ {
		if a.Advance(frame) {
			steps++
		}
	}
	if steps != 10 {
		t.Fatalf("steps in 50 frames = %d, want 10", steps)
	}
}

func TestPlayerPursuitIsExponential(t *testing.T) {
	p := NewPlayer(bounds)
	target := geom.Point{X: 700, Y: 400}

	p.Update(target, 1)
	// 1/30 of the 300 and 150 unit gaps.
	if math.Abs(p.X-410) > 1e-9 || math.Abs(p.Y-255) > 1e-9 {
		t.Fatalf("after 1 tick = (%v,%v), want (410,255)", p.X, p.Y)
	}

	prevGap := geom.Distance(p.Pos(), target)
	for frame := 2; frame < 200; frame++ {
		p.Update(target, frame)
		gap := geom.Distance(p.Pos(), target)
		if gap >= prevGap {
			t.Fatalf("frame %d: gap did not shrink (%v >= %v)", frame, gap, prevGap)
		}
		prevGap = gap
	}
	if prevGap > 5 {
		t.Fatalf("player still %v away after 200 ticks", prevGap)
	}
}

func TestPlayerFacingAndFlip(t *testing.T) {
	p := NewPlayer(bounds)
	p.Update(geom.Point{X: 600, Y: 250}, 1)
	if p.Angle != math.Pi {
		t.Fatalf("angle toward the right = %v, want pi", p.Angle)
	}

	rec := &draw.Recorder{W: 800, H: 500}
	p.Draw(rec)
	if len(rec.Calls) != 1 || !rec.Calls[0].Sprite.FlipY {
		t.Fatalf("expected one flipped sprite when target is to the right, got %+v", rec.Calls)
	}

	p.Update(geom.Point{X: 0, Y: 250}, 2)
	rec.Clear()
	p.Draw(rec)
	if rec.Calls[0].Sprite.FlipY {
		t.Fatalf("sprite should not flip when target is to the left")
	}
}

func TestPlayerStaysWhenOnTarget(t *testing.T) {
	p := NewPlayer(bounds)
	p.Update(p.Pos(), 1)
	if p.X != 400 || p.Y != 250 {
		t.Fatalf("player moved to (%v,%v) while on target", p.X, p.Y)
	}
}

func TestPlayerAnimatesEverySeventhFrame(t *testing.T) {
	p := NewPlayer(bounds)
	for frame := 1; frame <= 6; frame++ {
		p.Update(p.Pos(), frame)
	}
	if p.FrameX != 0 {
		t.Fatalf("frameX = %d before frame 7, want 0", p.FrameX)
	}
	p.Update(p.Pos(), 7)
	if p.FrameX != 1 {
		t.Fatalf("frameX = %d at frame 7, want 1", p.FrameX)
	}
}

func TestNewBubble(t *testing.T) {
	b := NewBubble(&seqRand{vals: []float64{0.25, 0.5, 0.75}}, bounds)
	if b.X != 200 || b.Y != 750 {
		t.Fatalf("spawn at (%v,%v), want (200,750)", b.X, b.Y)
	}
	if b.Speed != 3.5 {
		t.Fatalf("speed = %v, want 3.5", b.Speed)
	}
	if b.AltSound {
		t.Fatalf("0.75 should select the second sound branch")
	}
	if b.Popped || b.ToClean {
		t.Fatalf("fresh bubble must not be popped or cleanable")
	}
}

func TestBubblePopsOnce(t *testing.T) {
	b := NewBubble(&seqRand{vals: []float64{0.5}}, bounds)
	if !b.Pop() {
		t.Fatalf("first Pop should succeed")
	}
	if b.Pop() {
		t.Fatalf("second Pop should report already popped")
	}
}

func TestBubbleBurstAnimationEndsInClean(t *testing.T) {
	b := NewBubble(&seqRand{vals: []float64{0.5}}, bounds)
	player := geom.Point{X: 400, Y: 250}

	for frame := 1; frame <= 20; frame++ {
		b.Update(player, frame)
	}
	if b.FrameX != 0 || b.FrameY != 0 {
		t.Fatalf("unpopped bubble animated to (%d,%d)", b.FrameX, b.FrameY)
	}

	b.Pop()
	frame := 20
	for i := 0; i < 4; i++ {
		frame += 5
		b.Update(player, frame)
		if b.ToClean {
			t.Fatalf("cleaned early at step %d (%d,%d)", i+1, b.FrameX, b.FrameY)
		}
	}
	frame += 5
	b.Update(player, frame)
	if !b.ToClean || b.FrameX != 2 || b.FrameY != 1 {
		t.Fatalf("after 5 steps: toClean=%v at (%d,%d), want true at (2,1)", b.ToClean, b.FrameX, b.FrameY)
	}
	if !b.Expired() {
		t.Fatalf("cleaned bubble must be expired")
	}
}

func TestBubbleDistanceAndExpiry(t *testing.T) {
	b := NewBubble(&seqRand{vals: []float64{0.5, 0}}, bounds)
	b.Speed = 10
	b.Update(geom.Point{X: 400, Y: 0}, 1)
	if b.Y != 740 || b.Distance != 740 {
		t.Fatalf("y=%v distance=%v, want 740/740", b.Y, b.Distance)
	}

	b.Y = -100
	if b.Expired() {
		t.Fatalf("bubble exactly at -2r is not yet expired")
	}
	b.Y = -100.1
	if !b.Expired() {
		t.Fatalf("bubble above -2r must be expired")
	}
}

func TestNewEnemy(t *testing.T) {
	e := NewEnemy(&seqRand{vals: []float64{0, 0.5}}, bounds)
	if e.X != 800 || e.Y != 90 || e.Speed != 3 {
		t.Fatalf("enemy spawned at x=%v y=%v speed=%v", e.X, e.Y, e.Speed)
	}
}

func TestEnemyRecyclesInPlace(t *testing.T) {
	rng := &seqRand{vals: []float64{0.5, 0.5, 0.999, 0.25}}
	e := NewEnemy(rng, bounds)
	e.X = -79
	e.Speed = 2
	e.Update(geom.Point{X: 400, Y: 250}, 1)

	if e.Respawns != 1 {
		t.Fatalf("respawns = %d, want 1", e.Respawns)
	}
	if e.X != 1000 {
		t.Fatalf("x = %v, want canvas width + 200", e.X)
	}
	if e.Y < 90 || e.Y > 440 {
		t.Fatalf("y = %v outside [90, 440]", e.Y)
	}
	if e.Speed != 2.5 {
		t.Fatalf("speed = %v, want 2.5", e.Speed)
	}
	if e.Distance != geom.Distance(e.Pos(), geom.Point{X: 400, Y: 250}) {
		t.Fatalf("distance not refreshed after recycling")
	}
}

func TestEnemyBandWithSeededSource(t *testing.T) {
	rng := &seqRand{vals: []float64{0, 0.9999999, 0.3, 0.7}}
	for i := 0; i < 4; i++ {
		e := NewEnemy(rng, bounds)
		if e.Y < 90 || e.Y >= 440 {
			t.Fatalf("y = %v outside [90, 440)", e.Y)
		}
		if e.Speed < 2 || e.Speed >= 4 {
			t.Fatalf("speed = %v outside [2, 4)", e.Speed)
		}
	}
}
