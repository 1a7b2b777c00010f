// Package dodge implements Cash Dodge: the player steers a character around a
// fixed world, dodging projectiles that fall from the top edge while
// collecting cash that appears at random positions. Difficulty escalates with
// every cash quota reached.
//
// The game is a deterministic fixed-step engine. It is driven one tick at a
// time with a ControlSignal and never reads input devices, renders frames or
// plays audio on its own.
package dodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cashdodge/internal/config"
	"github.com/vovakirdan/cashdodge/internal/core"
)

// collectibleSeedSalt separates the collectible RNG stream from the projectile one.
const collectibleSeedSalt = 0x5DEECE66D

// Game owns every entity and the scoring state machine.
type Game struct {
	cfg     config.DodgeConfig
	runtime core.RuntimeConfig

	clock    Clock
	listener Listener

	velocity    VelocityController
	leveler     Leveler
	character   *Character
	projectiles *ProjectileManager
	collectible *Collectible

	base       Difficulty
	difficulty Difficulty

	score  int
	level  int
	phase  Phase
	paused bool
	scroll float64
	tick   uint64

	notices []Notice
	events  []Event // Emitted during the current Update
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the default tick clock.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithListener attaches an event listener.
func WithListener(l Listener) Option {
	return func(g *Game) {
		g.listener = l
	}
}

// New creates a game ready to play. The config is expected to be validated.
func New(cfg config.DodgeConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		runtime:  runtime,
		velocity: NewVelocityController(cfg.Velocity),
		leveler:  NewLeveler(cfg.Leveling, cfg.Projectiles),
		base:     BaseDifficulty(cfg.Projectiles),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = NewTickClock(runtime.TickRate)
	}

	g.character = NewCharacter(cfg.Character, cfg.World)
	g.Reseed(runtime.Seed)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cashdodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cash Dodge"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

// Reseed replaces both RNG streams and restarts the episode.
func (g *Game) Reseed(seed int64) {
	g.runtime.Seed = seed
	projRNG := rand.New(rand.NewSource(seed))
	collRNG := rand.New(rand.NewSource(seed ^ collectibleSeedSalt))
	g.projectiles = NewProjectileManager(projRNG, g.cfg.Projectiles, g.cfg.World)
	g.collectible = NewCollectible(collRNG, g.cfg.Collectible, g.cfg.World)
	g.ResetGame()
}

// ResetGame starts a new episode: full health at the spawn point, no
// projectiles, base difficulty, a fresh collectible, score 0 and level 1.
// Clocks that support it restart from zero.
func (g *Game) ResetGame() {
	if r, ok := g.clock.(resetter); ok {
		r.Reset()
	}
	now := g.clock.Now()

	g.character.ResetPosition()
	g.character.Health = g.cfg.Character.StartHealth
	g.projectiles.Reset(now)
	g.collectible.Reset()

	g.difficulty = g.base
	g.score = 0
	g.level = 1
	g.phase = PhasePlaying
	g.paused = false
	g.scroll = 0
	g.tick = 0
	g.notices = g.notices[:0]
	g.events = g.events[:0]
}

// Update advances the game by one tick using the given control signal.
// It does nothing once the game is over or while paused.
func (g *Game) Update(sig ControlSignal) {
	g.events = g.events[:0]
	if g.phase == PhaseGameOver || g.paused {
		return
	}

	if a, ok := g.clock.(advancer); ok {
		a.Advance()
	}
	g.tick++
	now := g.clock.Now()
	g.pruneNotices()

	// Background scroll, cosmetic only
	if g.cfg.World.TileHeight > 0 {
		g.scroll = math.Mod(g.scroll+g.cfg.World.ScrollSpeed, g.cfg.World.TileHeight)
	}

	vx, vy := g.velocity.Resolve(sig, g.character.VX, g.character.VY)
	g.character.Move(vx, vy)

	// Leveling is checked before projectiles move so the new difficulty
	// applies on this very tick.
	if g.leveler.ShouldLevelUp(g.score, g.level) {
		g.level++
		g.difficulty = g.leveler.Apply(g.level, g.difficulty)
		g.emit(EventLevelUp, g.level)
		g.notify(EventLevelUp, levelUpText, g.level, g.cfg.World.Width/2, g.cfg.World.Height/2)
	}

	g.projectiles.Update(now, g.difficulty)

	if g.collectible.Visible && g.character.CheckCollision(g.collectible.Box()) {
		reward := g.collectible.Collect(now)
		g.score += reward
		g.emit(EventCollected, reward)
		g.notify(EventCollected, collectedText(reward), reward, g.collectible.X, g.collectible.Y)
	}

	if !g.collectible.Visible {
		g.collectible.Respawn(now)
	}

	if g.character.CheckProjectileCollision(g.projectiles) {
		g.character.Health -= g.cfg.Projectiles.Damage
		g.emit(EventHit, g.cfg.Projectiles.Damage)
	}

	if !g.character.Alive() {
		g.phase = PhaseGameOver
		g.emit(EventGameOver, g.score)
	}
}

// Step advances one tick and returns the resulting snapshot and whether the
// episode has ended.
func (g *Game) Step(sig ControlSignal) (Snapshot, bool) {
	g.Update(sig)
	return g.Snapshot(), g.phase == PhaseGameOver
}

// Reset restarts the episode and returns the initial snapshot.
func (g *Game) Reset() Snapshot {
	g.ResetGame()
	return g.Snapshot()
}

// TogglePause pauses or resumes the game while playing.
func (g *Game) TogglePause() {
	if g.phase == PhasePlaying {
		g.paused = !g.paused
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// IsGameOver reports whether the episode has ended.
func (g *Game) IsGameOver() bool {
	return g.phase == PhaseGameOver
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.level
}

// Difficulty returns the current projectile difficulty.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Tick returns the number of ticks played in this episode.
func (g *Game) Tick() uint64 {
	return g.tick
}

// State returns the summary used by the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	now := g.clock.Now()
	c := g.character

	projectiles := make([]ProjectileState, 0, g.projectiles.Len())
	for _, p := range g.projectiles.projectiles {
		projectiles = append(projectiles, ProjectileState{
			X: p.X,
			Y: p.Y,
			W: g.cfg.Projectiles.Width,
			H: g.cfg.Projectiles.Height,
		})
	}

	notices := make([]Notice, 0, len(g.notices))
	for _, n := range g.notices {
		if n.Active(now) {
			notices = append(notices, n)
		}
	}

	events := make([]Event, len(g.events))
	copy(events, g.events)

	return Snapshot{
		Tick:         g.tick,
		ElapsedMs:    now.Milliseconds(),
		Phase:        g.phase,
		Score:        g.score,
		Level:        g.level,
		WorldW:       g.cfg.World.Width,
		WorldH:       g.cfg.World.Height,
		ScrollOffset: g.scroll,
		Character: CharacterState{
			X:         c.X,
			Y:         c.Y,
			W:         g.cfg.Character.Width,
			H:         g.cfg.Character.Height,
			VX:        c.VX,
			VY:        c.VY,
			Health:    c.Health,
			MaxHealth: g.cfg.Character.StartHealth,
		},
		Projectiles: projectiles,
		Collectible: CollectibleState{
			X:       g.collectible.X,
			Y:       g.collectible.Y,
			W:       g.cfg.Collectible.Width,
			H:       g.cfg.Collectible.Height,
			Visible: g.collectible.Visible,
		},
		Difficulty: DifficultyState{
			Speed:         g.difficulty.Speed,
			MaxConcurrent: g.difficulty.MaxConcurrent,
			IntervalMaxMs: g.difficulty.IntervalMax.Milliseconds(),
		},
		Notices: notices,
		Events:  events,
	}
}

func (g *Game) emit(kind EventKind, value int) {
	e := Event{Kind: kind, Tick: g.tick, Value: value, At: g.clock.Now()}
	g.events = append(g.events, e)
	if g.listener != nil {
		g.listener.OnEvent(e)
	}
}

func (g *Game) notify(kind EventKind, text string, value int, x, y float64) {
	now := g.clock.Now()
	g.notices = append(g.notices, Notice{
		Kind:    kind,
		Text:    text,
		Value:   value,
		X:       x,
		Y:       y,
		ShownAt: now,
		Until:   now + config.Seconds(g.cfg.Display.MessageDuration),
	})
}

func (g *Game) pruneNotices() {
	now := g.clock.Now()
	kept := g.notices[:0]
	for _, n := range g.notices {
		if n.Active(now) {
			kept = append(kept, n)
		}
	}
	g.notices = kept
}
