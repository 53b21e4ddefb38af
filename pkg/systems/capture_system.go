package systems

import (
	"log"

	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/types"
	"github.com/decker502/birdquest/pkg/utils"
)

// CaptureEvent 一次成功的捕获
type CaptureEvent struct {
	EntityID    ecs.EntityID
	ArchetypeID string
	Name        string
	Points      int
	Score       int // 捕获后的得分
	Tier        types.Tier
	Message     string
	X, Y        float64 // 鸟的中心位置
}

// CaptureSystem 把指针按下映射为一次捕获
//
// 前置条件：本局未结束，且这只鸟自上次生成以来未被捕获。
// 不满足时静默忽略，这对应玩家点到刚被拍过的鸟或本局刚结束时的竞争点击。
type CaptureSystem struct {
	entityManager *ecs.EntityManager
	state         *game.RoundState
	config        *config.RoundConfig
	notifier      game.Notifier
	listeners     []func(CaptureEvent)
}

// NewCaptureSystem 创建捕获系统
// notifier 可为 nil，此时不发送提示
func NewCaptureSystem(em *ecs.EntityManager, state *game.RoundState, cfg *config.RoundConfig, notifier game.Notifier) *CaptureSystem {
	if cfg == nil {
		cfg = config.DefaultRoundConfig()
	}
	return &CaptureSystem{
		entityManager: em,
		state:         state,
		config:        cfg,
		notifier:      notifier,
	}
}

// OnCapture 注册捕获回调
func (s *CaptureSystem) OnCapture(fn func(CaptureEvent)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// HitTest 返回指针位置下最上层（ID 最大）的鸟
func (s *CaptureSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith3[
		*components.BirdComponent,
		*components.PositionComponent,
		*components.ClickableComponent,
	](s.entityManager)

	// 后创建的鸟绘制在上层，从后往前找
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if utils.PointInRect(x, y, pos.X, pos.Y, clickable.Width, clickable.Height) {
			return id, true
		}
	}
	return 0, false
}

// HandlePointerDown 处理一次指针按下，返回是否产生了捕获
// 指针只作用于最上层的鸟；该鸟已被捕获时点击被吞掉，不会穿透到下层
func (s *CaptureSystem) HandlePointerDown(x, y float64) bool {
	id, ok := s.HitTest(x, y)
	if !ok {
		return false
	}
	return s.Capture(id)
}

// Capture 尝试捕获指定的鸟，返回是否成功
//
// 成功时在同一步内完成：标记已捕获、同步累加得分、按新得分生成提示并发出。
func (s *CaptureSystem) Capture(id ecs.EntityID) bool {
	if s.state.IsOver() {
		return false
	}

	bird, ok := ecs.GetComponent[*components.BirdComponent](s.entityManager, id)
	if !ok || bird.Captured {
		return false
	}
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok && !clickable.IsEnabled {
		return false
	}

	score, accepted := s.state.AddScore(bird.Points)
	if !accepted {
		return false
	}
	bird.Captured = true

	message, tier := game.FormatCaptureMessage(bird.Name, bird.Points, s.config)
	log.Printf("[CaptureSystem] %s (+%d, score=%d, tier=%s)", message, bird.Points, score, tier)

	if s.notifier != nil {
		s.notifier.Notify(message, s.config.Toast.DurationMs, s.config.ToastPlacement())
	}

	event := CaptureEvent{
		EntityID:    id,
		ArchetypeID: bird.ArchetypeID,
		Name:        bird.Name,
		Points:      bird.Points,
		Score:       score,
		Tier:        tier,
		Message:     message,
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		event.X, event.Y = pos.X, pos.Y
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			event.X += sprite.Width / 2
			event.Y += sprite.Height / 2
		}
	}
	for _, fn := range s.listeners {
		fn(event)
	}
	return true
}
