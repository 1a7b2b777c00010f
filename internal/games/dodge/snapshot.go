package dodge

// Phase is the top-level state of a game.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// CharacterState is the read-only view of the character.
type CharacterState struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
	VX        float64 `json:"vx"`
	VY        float64 `json:"vy"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"max_health"`
}

// HealthFraction returns health as a fraction of max, clamped to [0, 1].
func (c CharacterState) HealthFraction() float64 {
	if c.MaxHealth <= 0 || c.Health <= 0 {
		return 0
	}
	f := float64(c.Health) / float64(c.MaxHealth)
	if f > 1 {
		return 1
	}
	return f
}

// ProjectileState is the read-only view of one projectile.
type ProjectileState struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// CollectibleState is the read-only view of the cash pickup.
type CollectibleState struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
	Visible bool    `json:"visible"`
}

// DifficultyState mirrors Difficulty with the interval in milliseconds.
type DifficultyState struct {
	Speed         float64 `json:"speed"`
	MaxConcurrent int     `json:"max_concurrent"`
	IntervalMaxMs int64   `json:"interval_max_ms"`
}

// Snapshot is a self-contained copy of the game state for rendering,
// persistence and agents. Mutating it never affects the game.
type Snapshot struct {
	Tick         uint64            `json:"tick"`
	ElapsedMs    int64             `json:"elapsed_ms"`
	Phase        Phase             `json:"phase"`
	Score        int               `json:"score"`
	Level        int               `json:"level"`
	WorldW       float64           `json:"world_w"`
	WorldH       float64           `json:"world_h"`
	ScrollOffset float64           `json:"scroll_offset"`
	Character    CharacterState    `json:"character"`
	Projectiles  []ProjectileState `json:"projectiles"`
	Collectible  CollectibleState  `json:"collectible"`
	Difficulty   DifficultyState   `json:"difficulty"`
	Notices      []Notice          `json:"notices"`
	Events       []Event           `json:"events"` // Emitted during the last Update
}

// GameOver reports whether the snapshot is terminal.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// HasEvent reports whether an event of the given kind happened on the last tick.
func (s Snapshot) HasEvent(kind EventKind) bool {
	for _, e := range s.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
