package entities

import (
	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/ecs"
)

// NewFlashEffectEntity 创建拍照闪光效果
// 闪光覆盖整个画面，从 intensity 线性淡出，结束后由 FlashEffectSystem 销毁
func NewFlashEffectEntity(em *ecs.EntityManager, duration, intensity float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.FlashEffectComponent{
		Duration:  duration,
		Intensity: intensity,
		IsActive:  true,
	})
	return id
}
