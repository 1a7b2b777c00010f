package dodge

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/cashdodge/internal/config"
)

func newTestCollectible(seed int64) (*Collectible, config.DodgeConfig) {
	cfg := config.DefaultDodgeConfig()
	return NewCollectible(rand.New(rand.NewSource(seed)), cfg.Collectible, cfg.World), cfg
}

func TestCollectibleStartsVisibleInBounds(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		c, cfg := newTestCollectible(seed)
		if !c.Visible {
			t.Fatal("collectible should start visible")
		}
		if c.X < 0 || c.X > cfg.World.Width-cfg.Collectible.Width ||
			c.Y < 0 || c.Y > cfg.World.Height-cfg.Collectible.Height {
			t.Fatalf("seed %d: position (%f, %f) out of bounds", seed, c.X, c.Y)
		}
		lo := config.Seconds(cfg.Collectible.RespawnMin)
		hi := config.Seconds(cfg.Collectible.RespawnMax)
		if c.RespawnDelay < lo || c.RespawnDelay > hi {
			t.Fatalf("seed %d: delay %v outside [%v, %v]", seed, c.RespawnDelay, lo, hi)
		}
	}
}

func TestCollectReturnsReward(t *testing.T) {
	c, cfg := newTestCollectible(9)

	reward := c.Collect(5 * time.Second)
	if !slices.Contains(cfg.Collectible.Rewards, reward) {
		t.Errorf("reward %d not in %v", reward, cfg.Collectible.Rewards)
	}
	if c.Visible {
		t.Error("collectible should be hidden after Collect")
	}
	if c.DisappearedAt != 5*time.Second {
		t.Errorf("DisappearedAt = %v, expected 5s", c.DisappearedAt)
	}
}

func TestCollectInvisiblePanics(t *testing.T) {
	c, _ := newTestCollectible(9)
	c.Collect(0)

	defer func() {
		if recover() == nil {
			t.Error("Collect on an invisible collectible should panic")
		}
	}()
	c.Collect(time.Second)
}

func TestRespawnTiming(t *testing.T) {
	c, _ := newTestCollectible(21)
	at := 3 * time.Second
	c.Collect(at)
	delay := c.RespawnDelay

	if c.Respawn(at + delay/2) {
		t.Fatal("respawned before the delay elapsed")
	}
	if c.Respawn(at + delay) {
		t.Fatal("respawn requires strictly exceeding the delay")
	}
	if !c.Respawn(at + delay + time.Millisecond) {
		t.Fatal("expected respawn after the delay")
	}
	if !c.Visible {
		t.Error("collectible should be visible after respawn")
	}
}

func TestRespawnVisibleIsNoop(t *testing.T) {
	c, _ := newTestCollectible(4)
	x, y, delay := c.X, c.Y, c.RespawnDelay

	for _, now := range []time.Duration{0, time.Hour} {
		if c.Respawn(now) {
			t.Fatal("Respawn on a visible collectible should do nothing")
		}
	}
	if c.X != x || c.Y != y || c.RespawnDelay != delay {
		t.Error("visible collectible state changed")
	}
}
