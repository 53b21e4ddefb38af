package systems

import (
	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/ecs"
)

// FlashEffectSystem 拍照闪光效果系统
// 推进闪光的淡出进度，结束后删除闪光实体
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪光效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{
		entityManager: em,
	}
}

// Update 更新所有闪光效果
func (s *FlashEffectSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager) {
		flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id)
		if !ok || !flash.IsActive {
			continue
		}

		flash.Elapsed += dt
		if flash.Elapsed >= flash.Duration {
			flash.IsActive = false
			s.entityManager.DestroyEntity(id)
		}
	}
}

// CurrentAlpha 返回所有闪光叠加后的透明度（上限 1）
func (s *FlashEffectSystem) CurrentAlpha() float64 {
	total := 0.0
	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager) {
		if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id); ok {
			total += flash.CurrentAlpha()
		}
	}
	if total > 1 {
		return 1
	}
	return total
}
