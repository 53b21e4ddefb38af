package systems

import (
	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/entities"
	"github.com/decker502/birdquest/pkg/types"
)

// ToastView 一条可见提示的只读视图
type ToastView struct {
	Message   string
	Placement types.Placement
	Remaining float64 // 剩余显示时间（秒）
	Age       float64 // 已显示时间（秒）
}

// ToastSystem 游戏内的提示接收方，实现 game.Notifier
//
// 每条提示是一个带 LifetimeComponent 的实体，到期由 LifetimeSystem 删除。
// 同时可见条数超过 maxVisible 时丢弃最旧的，丢弃不影响游戏状态。
type ToastSystem struct {
	entityManager *ecs.EntityManager
	maxVisible    int
}

// NewToastSystem 创建提示系统，maxVisible <= 0 表示不限制
func NewToastSystem(em *ecs.EntityManager, maxVisible int) *ToastSystem {
	return &ToastSystem{
		entityManager: em,
		maxVisible:    maxVisible,
	}
}

// Notify 创建一条提示，立即返回
func (s *ToastSystem) Notify(message string, durationMs int, placement types.Placement) {
	entities.NewToastEntity(s.entityManager, message, durationMs, placement)
	s.enforceLimit()
}

// Visible 返回仍在显示的提示，按创建顺序（最旧在前）
func (s *ToastSystem) Visible() []ToastView {
	ids := s.liveToasts()
	views := make([]ToastView, 0, len(ids))
	for _, id := range ids {
		toast, _ := ecs.GetComponent[*components.ToastComponent](s.entityManager, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		views = append(views, ToastView{
			Message:   toast.Message,
			Placement: toast.Placement,
			Remaining: life.MaxLifetime - life.CurrentLifetime,
			Age:       life.CurrentLifetime,
		})
	}
	return views
}

// Clear 立即让所有提示过期
func (s *ToastSystem) Clear() {
	for _, id := range s.liveToasts() {
		s.expire(id)
	}
}

func (s *ToastSystem) enforceLimit() {
	if s.maxVisible <= 0 {
		return
	}
	ids := s.liveToasts()
	for i := 0; i < len(ids)-s.maxVisible; i++ {
		s.expire(ids[i])
	}
}

func (s *ToastSystem) expire(id ecs.EntityID) {
	if life, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok && !life.IsExpired {
		life.IsExpired = true
		s.entityManager.DestroyEntity(id)
	}
}

// liveToasts 返回未过期的提示实体（已标记删除但尚未清理的除外）
func (s *ToastSystem) liveToasts() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.ToastComponent, *components.LifetimeComponent](s.entityManager)
	live := ids[:0]
	for _, id := range ids {
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !life.IsExpired && life.CurrentLifetime < life.MaxLifetime {
			live = append(live, id)
		}
	}
	return live
}
