package entities

import (
	"math/rand"
	"testing"

	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/ecs"
)

func TestInitializeBirds(t *testing.T) {
	em := ecs.NewEntityManager()
	catalog := config.DefaultBirdCatalog()
	opts := &SpawnOptions{Scale: 0.5, FlapFrameRate: 10, Rand: rand.New(rand.NewSource(1))}

	ids := InitializeBirds(em, catalog, 800, 600, opts)

	if len(ids) != len(catalog.Birds) {
		t.Fatalf("Expected one bird per archetype (%d), got %d", len(catalog.Birds), len(ids))
	}

	seen := make(map[string]bool)
	for i, id := range ids {
		arch := catalog.Birds[i]

		bird, ok := ecs.GetComponent[*components.BirdComponent](em, id)
		if !ok {
			t.Fatalf("Entity %d missing BirdComponent", id)
		}
		if bird.ArchetypeID != arch.ID || bird.Speed != arch.Speed || bird.Points != arch.Points {
			t.Errorf("Bird %d = %+v, want archetype %+v", id, bird, arch)
		}
		if bird.Captured {
			t.Errorf("Bird %s should not start captured", arch.ID)
		}
		seen[bird.ArchetypeID] = true

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X != 800 {
			t.Errorf("Bird %s X = %v, want 800", arch.ID, pos.X)
		}
		if pos.Y < 0 || pos.Y > 600 {
			t.Errorf("Bird %s Y = %v, want within [0, 600]", arch.ID, pos.Y)
		}

		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		if sprite.Key != arch.DownPose {
			t.Errorf("Bird %s should start in the down pose, got %q", arch.ID, sprite.Key)
		}
		if sprite.Width != arch.Width*0.5 {
			t.Errorf("Bird %s width = %v, want %v", arch.ID, sprite.Width, arch.Width*0.5)
		}

		anim, ok := ecs.GetComponent[*components.FlapAnimationComponent](em, id)
		if !ok {
			t.Fatalf("Bird %s missing flap animation", arch.ID)
		}
		if anim.Frames != [2]string{arch.DownPose, arch.UpPose} || anim.FrameRate != 10 {
			t.Errorf("Bird %s animation = %+v", arch.ID, anim)
		}
	}

	if len(seen) != len(catalog.Birds) {
		t.Errorf("Expected distinct archetypes, got %v", seen)
	}
}

func TestInitializeBirdsNilOptions(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := InitializeBirds(em, config.DefaultBirdCatalog(), 320, 240, nil)

	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		bird, _ := ecs.GetComponent[*components.BirdComponent](em, id)
		arch, _ := config.DefaultBirdCatalog().Get(bird.ArchetypeID)
		if sprite.Width != arch.Width {
			t.Errorf("Default scale should be 1, got width %v for %s", sprite.Width, arch.ID)
		}
	}
}

func TestRespawnBird(t *testing.T) {
	em := ecs.NewEntityManager()
	catalog := config.DefaultBirdCatalog()
	rng := rand.New(rand.NewSource(42))
	id := NewBirdEntity(em, &catalog.Birds[0], -200, 50, &SpawnOptions{Rand: rng})

	bird, _ := ecs.GetComponent[*components.BirdComponent](em, id)
	bird.Captured = true
	clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
	clickable.IsEnabled = false

	if !RespawnBird(em, id, 640, 480, rng) {
		t.Fatal("RespawnBird should succeed for a live bird")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 640 {
		t.Errorf("X = %v, want 640", pos.X)
	}
	if pos.Y < 0 || pos.Y > 480 {
		t.Errorf("Y = %v, want within [0, 480]", pos.Y)
	}
	if bird.Captured {
		t.Error("Respawn should clear the captured flag")
	}
	if !clickable.IsEnabled {
		t.Error("Respawn should re-enable clicking")
	}
	if bird.SpawnCount != 2 {
		t.Errorf("SpawnCount = %d, want 2", bird.SpawnCount)
	}
}

func TestRespawnBirdMissingEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	if RespawnBird(em, 99, 640, 480, rand.New(rand.NewSource(1))) {
		t.Error("RespawnBird should report false for a missing entity")
	}
}

func TestRandomY(t *testing.T) {
	tests := []struct {
		name           string
		viewportHeight int
		spriteHeight   float64
		wantMax        float64
	}{
		{"视口高度为0", 0, 36, 0},
		{"鸟比视口高", 20, 36, 0},
		{"整只鸟在视口内", 640, 36, 604},
		{"终端尺寸", 24, 3.6, 20.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 500; i++ {
				y := randomY(rng, tt.viewportHeight, tt.spriteHeight)
				if y < 0 || y > tt.wantMax {
					t.Fatalf("randomY = %v, want within [0, %v]", y, tt.wantMax)
				}
			}
		})
	}
}

func TestRespawnKeepsBirdInsideViewport(t *testing.T) {
	em := ecs.NewEntityManager()
	catalog := config.DefaultBirdCatalog()
	rng := rand.New(rand.NewSource(9))
	id := NewBirdEntity(em, &catalog.Birds[0], -200, 0, &SpawnOptions{Rand: rng, Scale: 1})
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	for i := 0; i < 500; i++ {
		RespawnBird(em, id, 640, 100, rng)
		if pos.Y < 0 || pos.Y+sprite.Height > 100 {
			t.Fatalf("bird spans [%v, %v], want inside [0, 100]", pos.Y, pos.Y+sprite.Height)
		}
	}
}
