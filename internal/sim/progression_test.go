package sim

import "testing"

func TestNewProgression(t *testing.T) {
	tests := []struct {
		difficulty int
		maxLevel   int
		levelScore int
		maxEnemies int
		lvl        int
	}{
		{1, 3, 8, 2, 1},
		{2, 6, 16, 4, 1},
		{3, 9, 24, 6, 1},
	}
	for _, tt := range tests {
		p := NewProgression(tt.difficulty)
		if p.MaxLevel != tt.maxLevel || p.LevelScore != tt.levelScore || p.MaxEnemies != tt.maxEnemies || p.Level != tt.lvl {
			t.Errorf("difficulty %d: got %+v", tt.difficulty, p)
		}
		if p.Phase != Playing || p.Score != 0 {
			t.Errorf("difficulty %d: fresh progression not playing at zero: %+v", tt.difficulty, p)
		}
	}
}

func TestPopLevelsUpAndDoublesEnemyCap(t *testing.T) {
	p := NewProgression(1)
	for i := 1; i <= 7; i++ {
		if p.Pop() {
			t.Fatalf("level up after %d pops, want none before 8", i)
		}
	}
	if !p.Pop() {
		t.Fatalf("8th pop should level up")
	}
	if p.Level != 2 || p.MaxEnemies != 4 {
		t.Fatalf("after 8 pops level=%d maxEnemies=%d, want 2/4", p.Level, p.MaxEnemies)
	}

	for i := 9; i <= 16; i++ {
		p.Pop()
	}
	if p.Level != 3 || p.MaxEnemies != 8 {
		t.Fatalf("after 16 pops level=%d maxEnemies=%d, want 3/8", p.Level, p.MaxEnemies)
	}

	for i := 17; i <= 40; i++ {
		if p.Pop() {
			t.Fatalf("leveled past max level at pop %d", i)
		}
	}
	if p.Level != p.MaxLevel || p.MaxEnemies != 8 {
		t.Fatalf("level=%d maxEnemies=%d after max level, want 3/8", p.Level, p.MaxEnemies)
	}
	if p.Score != 40 {
		t.Fatalf("score = %d, want one point per pop", p.Score)
	}
}

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name  string
		level int
		score int
		phase Phase
		want  bool
	}{
		{"short of score", 3, 23, Playing, false},
		{"short of level", 2, 24, Playing, false},
		{"target met", 3, 24, Playing, true},
		{"past target", 3, 30, Playing, true},
		{"already lost", 3, 24, Lost, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgression(1)
			p.Level, p.Score, p.Phase = tt.level, tt.score, tt.phase
			if got := p.CheckWin(); got != tt.want {
				t.Fatalf("CheckWin() = %v, want %v", got, tt.want)
			}
			if tt.phase == Lost && p.Phase != Lost {
				t.Fatalf("loss was overridden by %v", p.Phase)
			}
		})
	}
}

func TestCollideIsSticky(t *testing.T) {
	p := NewProgression(1)
	p.Collide()
	if !p.GameOver() || !p.Terminal() {
		t.Fatalf("collision should end the game")
	}
	p.Score = 100
	p.Level = 3
	p.CheckWin()
	if p.Phase != Lost {
		t.Fatalf("phase = %v after CheckWin, want lost", p.Phase)
	}
	if p.Pop() || p.Score != 100 {
		t.Fatalf("scoring continued after the game ended")
	}
}
