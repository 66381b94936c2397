package loop

// Cue is a gameplay moment that can be voiced.
type Cue int

const (
	CueHit         Cue = iota // Word destroyed
	CueStreakBonus            // Every fifth hit in a row
	CueDamage                 // Meteor reached the bottom
	CuePanic                  // Buffer cleared with Enter
	CueLevelUp
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueStreakBonus:
		return "streak-bonus"
	case CueDamage:
		return "damage"
	case CuePanic:
		return "panic"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Sound plays cues. Implementations must not block the frame.
type Sound interface {
	Play(cue Cue)
}

type silentSound struct{}

func (silentSound) Play(Cue) {}
