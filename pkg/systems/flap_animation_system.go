package systems

import (
	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/ecs"
)

// FlapAnimationSystem 两帧循环的扇翅动画
// 按帧率在翅膀向下/向上两种姿态之间切换，并把当前帧写回 SpriteComponent.Key
type FlapAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlapAnimationSystem 创建扇翅动画系统
func NewFlapAnimationSystem(em *ecs.EntityManager) *FlapAnimationSystem {
	return &FlapAnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有扇翅动画
func (s *FlapAnimationSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.FlapAnimationComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range ids {
		anim, _ := ecs.GetComponent[*components.FlapAnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		if anim.FrameRate > 0 {
			frameDuration := 1.0 / anim.FrameRate
			anim.Elapsed += deltaTime
			for anim.Elapsed >= frameDuration {
				anim.Elapsed -= frameDuration
				anim.CurrentFrame = (anim.CurrentFrame + 1) % len(anim.Frames)
			}
		}

		sprite.Key = anim.Frames[anim.CurrentFrame]
	}
}
