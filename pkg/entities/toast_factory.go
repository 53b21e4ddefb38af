package entities

import (
	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/types"
)

// NewToastEntity 创建一条捕获提示
// durationMs 到期后由 LifetimeSystem 销毁；<= 0 时使用 3000ms
func NewToastEntity(em *ecs.EntityManager, message string, durationMs int, placement types.Placement) ecs.EntityID {
	if durationMs <= 0 {
		durationMs = 3000
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ToastComponent{
		Message:   message,
		Placement: placement,
	})
	ecs.AddComponent(em, id, &components.LifetimeComponent{
		MaxLifetime: float64(durationMs) / 1000,
	})
	return id
}
