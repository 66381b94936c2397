package loop

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/tomz197/cybertyper/internal/loop/config"
	"github.com/tomz197/cybertyper/internal/physics"
)

// HighscoreStore persists the single high-score value.
type HighscoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Stats holds the player's score, health, streak and high score.
// All mutation goes through its methods so the invariants hold:
// health stays in [0, MaxHealth] and damage always breaks the streak.
type Stats struct {
	score     int
	health    int
	maxHealth int
	streak    int
	highscore int
	store     HighscoreStore
	logger    *log.Logger
}

// NewStats loads the high score from store. A nil store keeps the high
// score in memory only. Load failures are logged and count as 0.
func NewStats(store HighscoreStore, logger *log.Logger) *Stats {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Stats{
		health:    config.MaxHealth,
		maxHealth: config.MaxHealth,
		store:     store,
		logger:    logger,
	}
	if store != nil {
		hs, err := store.Load()
		if err != nil {
			s.logger.Debug("highscore unavailable, starting from 0", "err", err)
			hs = 0
		}
		s.highscore = max(hs, 0)
	}
	return s
}

// Score returns the current score; it may be negative.
func (s *Stats) Score() int { return s.score }

// Health returns the current health.
func (s *Stats) Health() int { return s.health }

// MaxHealth returns the health ceiling.
func (s *Stats) MaxHealth() int { return s.maxHealth }

// Streak returns the number of consecutive hits.
func (s *Stats) Streak() int { return s.streak }

// Highscore returns the best score seen so far.
func (s *Stats) Highscore() int { return s.highscore }

// ResetStats prepares a new game.
func (s *Stats) ResetStats() {
	s.score = 0
	s.health = s.maxHealth
	s.streak = 0
}

// AddScore adds delta (negative for penalties).
func (s *Stats) AddScore(delta int) {
	s.score += delta
}

// TakeDamage lowers health, never below 0, and breaks the streak.
func (s *Stats) TakeDamage(amount int) {
	s.health = physics.ClampInt(s.health-amount, 0, s.maxHealth)
	s.ResetStreak()
}

// Heal raises health, never above the maximum.
func (s *Stats) Heal(amount int) {
	s.health = physics.ClampInt(s.health+amount, 0, s.maxHealth)
}

// IsAlive reports whether health is above zero.
func (s *Stats) IsAlive() bool {
	return s.health > 0
}

// IncrementStreak counts a hit and reports whether it earned a streak bonus.
func (s *Stats) IncrementStreak() bool {
	s.streak++
	return s.streak > 0 && s.streak%config.StreakBonusStep == 0
}

// ResetStreak breaks the streak.
func (s *Stats) ResetStreak() {
	s.streak = 0
}

// SaveData persists the score if it beats the high score. Write failures
// are logged and otherwise ignored.
func (s *Stats) SaveData() {
	if s.score <= s.highscore {
		return
	}
	s.highscore = s.score
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.highscore); err != nil {
		s.logger.Debug("highscore not saved", "score", s.highscore, "err", err)
	}
}
