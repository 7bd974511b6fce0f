package sim

// Phase is the progression state. Won and Lost are terminal.
type Phase int

const (
	Playing Phase = iota
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Progression tracks score and level and decides win/lose.
type Progression struct {
	Score      int
	Level      int
	MaxLevel   int
	LevelScore int
	MaxEnemies int
	Phase      Phase
}

// NewProgression derives the level targets from a difficulty multiplier.
func NewProgression(difficulty int) Progression {
	return Progression{
		Level:      1,
		MaxLevel:   3 * difficulty,
		LevelScore: 8 * difficulty,
		MaxEnemies: 2 * difficulty,
	}
}

// Pop scores one bubble. It reports whether the pop completed a level, in
// which case the enemy cap doubles.
func (p *Progression) Pop() bool {
	if p.Terminal() {
		return false
	}
	p.Score++

	if p.Level != p.MaxLevel && p.Score >= p.Level*p.LevelScore {
		p.Level++
		p.MaxEnemies += p.MaxEnemies
		return true
	}
	return false
}

// Collide ends the game. Lost is sticky.
func (p *Progression) Collide() {
	p.Phase = Lost
}

// CheckWin moves to Won once the last level's target is met. It never
// overrides a loss.
func (p *Progression) CheckWin() bool {
	if p.Phase != Playing {
		return p.Phase == Won
	}
	if p.Level >= p.MaxLevel && p.Score >= p.MaxLevel*p.LevelScore {
		p.Phase = Won
		return true
	}
	return false
}

func (p *Progression) GameOver() bool { return p.Phase == Lost }

func (p *Progression) Terminal() bool { return p.Phase != Playing }
