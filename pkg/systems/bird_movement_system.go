package systems

import (
	"math/rand"

	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/entities"
	"github.com/decker502/birdquest/pkg/game"
)

// BirdMovementSystem 每帧让鸟向左飞
//
// 每帧 x -= speed * speedScale；鸟的右边缘完全飞出左边界（x < -width）后
// 在右边界重新生成。本局结束后整个系统冻结，画面仍在刷新但位置不再变化。
type BirdMovementSystem struct {
	entityManager  *ecs.EntityManager
	state          *game.RoundState
	viewportWidth  int
	viewportHeight int
	speedScale     float64
	rng            *rand.Rand
}

// NewBirdMovementSystem 创建移动系统
// 视口尺寸只在创建时读取一次，不跟随窗口实时变化
func NewBirdMovementSystem(em *ecs.EntityManager, state *game.RoundState, viewportWidth, viewportHeight int, speedScale float64, rng *rand.Rand) *BirdMovementSystem {
	if speedScale <= 0 {
		speedScale = 1
	}
	return &BirdMovementSystem{
		entityManager:  em,
		state:          state,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		speedScale:     speedScale,
		rng:            rng,
	}
}

// Update 推进一帧
func (s *BirdMovementSystem) Update(deltaTime float64) {
	if s.state.IsOver() {
		return
	}

	birds := ecs.GetEntitiesWith3[
		*components.BirdComponent,
		*components.PositionComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, id := range birds {
		bird, _ := ecs.GetComponent[*components.BirdComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		pos.X -= bird.Speed * s.speedScale

		if pos.X < -sprite.Width {
			entities.RespawnBird(s.entityManager, id, s.viewportWidth, s.viewportHeight, s.rng)
		}
	}
}
