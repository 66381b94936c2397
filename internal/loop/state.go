package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/cybertyper/internal/draw"
	"github.com/tomz197/cybertyper/internal/loop/config"
	"github.com/tomz197/cybertyper/internal/object"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateMenu     GameState = iota // Title screen with START/QUIT
	GameStatePlaying                   // Active gameplay
	GameStateGameOver                  // Final score, Enter returns to the menu
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case GameStateMenu:
		return "menu"
	case GameStatePlaying:
		return "playing"
	case GameStateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Game owns all state of one player's session: the state machine, the
// player stats, the difficulty and the transient entity collections.
// It is not safe for concurrent use; drive it from a single frame loop.
type Game struct {
	cfg    config.Config
	rng    *rand.Rand
	sound  Sound
	logger *log.Logger
	store  HighscoreStore

	state   GameState
	running bool

	stats *Stats
	level *LevelManager
	shake *ScreenShake

	meteors   []*object.Meteor
	particles []*object.Particle
	floaters  []*object.FloatingText

	buttons []*object.Button
	mouse   draw.Point

	input        string
	spawnTimer   int
	levelUpTimer int
	popupVisible bool // "LEVEL UP!" blink phase for this frame
	damageFlash  bool // A meteor hit the bottom this frame
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source for spawning, particles and shake.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithSound sets the cue player.
func WithSound(s Sound) Option {
	return func(g *Game) { g.sound = s }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithStore sets where the high score is loaded from and saved to.
func WithStore(s HighscoreStore) Option {
	return func(g *Game) { g.store = s }
}

// New creates a game in the menu state.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		state:   GameStateMenu,
		running: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.sound == nil {
		g.sound = silentSound{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.stats = NewStats(g.store, g.logger)
	g.level = NewLevelManager()
	g.shake = NewScreenShake(g.rng)
	g.setupMenu()
	return g
}

// setupMenu creates the START and QUIT buttons.
func (g *Game) setupMenu() {
	cx := float64(g.cfg.Width / 2)
	g.buttons = []*object.Button{
		object.NewButton("START", cx, 350, g.startGame),
		object.NewButton("QUIT", cx, 450, g.Stop),
	}
}

// State returns the current phase.
func (g *Game) State() GameState { return g.state }

// Running reports whether the game wants more frames.
func (g *Game) Running() bool { return g.running }

// Stop ends the game loop.
func (g *Game) Stop() { g.running = false }

// Stats returns the player stats.
func (g *Game) Stats() *Stats { return g.stats }

// Level returns the current difficulty level.
func (g *Game) Level() int { return g.level.Level() }

// Input returns the typed buffer.
func (g *Game) Input() string { return g.input }

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Config { return g.cfg }

// Spawn routes a new object into its collection.
// Implements object.Spawner interface.
func (g *Game) Spawn(obj object.Object) {
	switch o := obj.(type) {
	case *object.Meteor:
		g.meteors = append(g.meteors, o)
	case *object.Particle:
		g.particles = append(g.particles, o)
	case *object.FloatingText:
		g.floaters = append(g.floaters, o)
	}
}

// startGame resets everything a PLAY session owns.
func (g *Game) startGame() {
	g.stats.ResetStats()
	g.level = NewLevelManager()
	g.meteors = nil
	g.particles = nil
	g.floaters = nil
	g.input = ""
	g.spawnTimer = 0
	g.levelUpTimer = 0
	g.popupVisible = false
	g.damageFlash = false
	g.state = GameStatePlaying
	g.logger.Debug("game started", "highscore", g.stats.Highscore())
}

// Close finishes a game in progress, saving a new best score. Front-ends
// call it when the player leaves without going through GAMEOVER.
func (g *Game) Close() {
	if g.state == GameStatePlaying {
		g.endGame()
	}
}

// endGame persists the high score and shows the game-over screen.
func (g *Game) endGame() {
	g.stats.SaveData()
	g.state = GameStateGameOver
	g.sound.Play(CueGameOver)
	g.logger.Info("game over", "score", g.stats.Score(), "level", g.level.Level(), "highscore", g.stats.Highscore())
}
