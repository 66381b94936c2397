package loop

// Difficulty curve.
const (
	pointsPerLevel   = 100
	baseSpawnDelay   = 90 // Frames between meteors at level 0
	spawnDelayStep   = 5  // Frames removed per level
	minSpawnDelay    = 20
	speedBonusFactor = 0.3 // Extra px/frame per level
)

// LevelManager derives the difficulty level from the score.
type LevelManager struct {
	level int
}

// NewLevelManager starts at level 1.
func NewLevelManager() *LevelManager {
	return &LevelManager{level: 1}
}

// Level returns the current level.
func (l *LevelManager) Level() int {
	return l.level
}

// LevelForScore returns 1 + floor(score/100).
func LevelForScore(score int) int {
	return 1 + floorDiv(score, pointsPerLevel)
}

// CheckLevelUp commits a higher level for score and reports whether it rose.
// The level never decreases.
func (l *LevelManager) CheckLevelUp(score int) bool {
	calculated := LevelForScore(score)
	if calculated > l.level {
		l.level = calculated
		return true
	}
	return false
}

// SpawnDelay returns the frames between spawns: max(20, 90 - 5*level).
func (l *LevelManager) SpawnDelay() int {
	return SpawnDelayForLevel(l.level)
}

// SpawnDelayForLevel is SpawnDelay for an arbitrary level.
func SpawnDelayForLevel(level int) int {
	return max(minSpawnDelay, baseSpawnDelay-level*spawnDelayStep)
}

// SpeedMultiplier returns the speed bonus added to every new meteor.
func (l *LevelManager) SpeedMultiplier() float64 {
	return float64(l.level) * speedBonusFactor
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
