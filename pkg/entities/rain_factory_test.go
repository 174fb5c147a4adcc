package entities

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewRainComponentInitialPool(t *testing.T) {
	cfg := config.DefaultSceneConfig().Rain
	rain, err := NewRainComponent(cfg, testRNG())
	if err != nil {
		t.Fatalf("NewRainComponent() error = %v", err)
	}

	if len(rain.Particles) != cfg.Count {
		t.Fatalf("pool size = %d, want %d", len(rain.Particles), cfg.Count)
	}
	for i, p := range rain.Particles {
		pos := config.Vec3{X: p.Position.X(), Y: p.Position.Y(), Z: p.Position.Z()}
		if !cfg.Spawn.Contains(pos) {
			t.Errorf("particle %d at %v outside spawn box", i, p.Position)
		}
		if cfg.Interior.Contains(pos) {
			t.Errorf("particle %d at %v inside interior", i, p.Position)
		}
		if p.Hidden {
			t.Errorf("particle %d should start visible", i)
		}
		if p.Speed < cfg.SpeedMin || p.Speed > cfg.SpeedMax {
			t.Errorf("particle %d speed %v outside [%v, %v]", i, p.Speed, cfg.SpeedMin, cfg.SpeedMax)
		}
	}
}

func TestNewRainComponentRejectsCoveredSpawn(t *testing.T) {
	cfg := config.DefaultSceneConfig().Rain
	cfg.Spawn = config.Box3{Min: config.Vec3{X: -1, Y: 0.5, Z: -1}, Max: config.Vec3{X: 1, Y: 1.5, Z: 1}}

	_, err := NewRainComponent(cfg, testRNG())
	if !errors.Is(err, config.ErrSpawnCoveredByInterior) {
		t.Fatalf("error = %v, want ErrSpawnCoveredByInterior", err)
	}
}

func TestNewRainComponentRejectsEmptyPool(t *testing.T) {
	cfg := config.DefaultSceneConfig().Rain
	cfg.Count = 0

	_, err := NewRainComponent(cfg, testRNG())
	if !errors.Is(err, config.ErrInvalidPoolSize) {
		t.Fatalf("error = %v, want ErrInvalidPoolSize", err)
	}
}

func TestNewRainEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewRainEntity(em, config.DefaultSceneConfig().Rain, testRNG())
	if err != nil {
		t.Fatalf("NewRainEntity() error = %v", err)
	}
	if _, ok := ecs.GetComponent[*components.RainComponent](em, id); !ok {
		t.Error("rain entity should carry a RainComponent")
	}
}
