package systems

import (
	"log"
	"sync"
	"time"

	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/game"
)

// TimerTick 倒计时触发器发出的一次触发
type TimerTick struct {
	Token uint64    // 触发器创建时领到的令牌
	At    time.Time // 触发时刻
}

// Trigger 固定间隔的重复触发源，独立于渲染循环运行
// 触发只通过通道送达，由游戏主线程在 Update 中消费
type Trigger interface {
	C() <-chan TimerTick
	Stop()
}

// TriggerFactory 按间隔和令牌创建触发器
type TriggerFactory func(interval time.Duration, token uint64) Trigger

// IntervalTrigger 基于 time.Ticker 的后台触发器
//
// 后台 goroutine 只负责把触发投递到通道，从不直接修改游戏状态。
// 通道未被读取时投递会阻塞，触发不会丢失；Stop 之后 goroutine 退出。
type IntervalTrigger struct {
	ch       chan TimerTick
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewIntervalTrigger 启动一个每 interval 触发一次的触发器
func NewIntervalTrigger(interval time.Duration, token uint64) Trigger {
	if interval <= 0 {
		interval = time.Second
	}
	t := &IntervalTrigger{
		ch:   make(chan TimerTick, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go t.run(interval, token)
	return t
}

func (t *IntervalTrigger) run(interval time.Duration, token uint64) {
	defer close(t.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.quit:
			return
		case now := <-ticker.C:
			select {
			case t.ch <- TimerTick{Token: token, At: now}:
			case <-t.quit:
				return
			}
		}
	}
}

// C 返回触发通道
func (t *IntervalTrigger) C() <-chan TimerTick {
	return t.ch
}

// Stop 停止触发器，可重复调用
func (t *IntervalTrigger) Stop() {
	t.stopOnce.Do(func() {
		close(t.quit)
	})
}

// Done 后台 goroutine 退出后关闭
func (t *IntervalTrigger) Done() <-chan struct{} {
	return t.done
}

// ManualTrigger 手动触发器，用于测试和无界面驱动
type ManualTrigger struct {
	token   uint64
	ch      chan TimerTick
	stopped bool
}

// manualTriggerBuffer 手动触发器通道容量，一局内的触发次数远小于此值
const manualTriggerBuffer = 256

// NewManualTrigger 创建一个手动触发器
func NewManualTrigger(token uint64) *ManualTrigger {
	return &ManualTrigger{
		token: token,
		ch:    make(chan TimerTick, manualTriggerBuffer),
	}
}

// C 返回触发通道
func (t *ManualTrigger) C() <-chan TimerTick {
	return t.ch
}

// Stop 停止触发器，之后的 Fire 为空操作
func (t *ManualTrigger) Stop() {
	t.stopped = true
}

// Stopped 是否已停止
func (t *ManualTrigger) Stopped() bool {
	return t.stopped
}

// Token 返回创建时领到的令牌
func (t *ManualTrigger) Token() uint64 {
	return t.token
}

// Fire 投递一次触发，返回是否投递成功
func (t *ManualTrigger) Fire() bool {
	return t.FireWithToken(t.token)
}

// FireWithToken 用指定令牌投递一次触发，用于模拟过期触发器泄漏到新一局
func (t *ManualTrigger) FireWithToken(token uint64) bool {
	if t.stopped {
		return false
	}
	select {
	case t.ch <- TimerTick{Token: token, At: time.Now()}:
		return true
	default:
		return false
	}
}

// ManualClock 记录它创建的所有手动触发器
// 把 ManualClock.NewTrigger 作为 TriggerFactory 传入即可逐秒驱动倒计时
type ManualClock struct {
	triggers []*ManualTrigger
}

// NewTrigger 满足 TriggerFactory
func (c *ManualClock) NewTrigger(interval time.Duration, token uint64) Trigger {
	t := NewManualTrigger(token)
	c.triggers = append(c.triggers, t)
	return t
}

// Current 返回最近创建的触发器，没有时返回 nil
func (c *ManualClock) Current() *ManualTrigger {
	if len(c.triggers) == 0 {
		return nil
	}
	return c.triggers[len(c.triggers)-1]
}

// Triggers 返回所有创建过的触发器
func (c *ManualClock) Triggers() []*ManualTrigger {
	return c.triggers
}

// Tick 让当前触发器触发一次
func (c *ManualClock) Tick() bool {
	if t := c.Current(); t != nil {
		return t.Fire()
	}
	return false
}

// RoundTimerSystem 一局倒计时
//
// 状态机：Running -> Running -> ... -> Expired（终态）。
// 触发器在后台按固定间隔投递触发，本系统在游戏主线程的 Update 中逐个消费，
// 每个有效触发让 RoundState 推进一秒。
//
// 每次 Start 都由调用方发放一个新的令牌并记在计时实体上；Cancel 时令牌作废，
// 携带旧令牌的触发即使晚到也会被忽略，不会漏进下一局。
// 令牌由生命周期控制器跨局递增发放，因此不同局的令牌不会重复。
type RoundTimerSystem struct {
	entityManager *ecs.EntityManager
	state         *game.RoundState
	interval      time.Duration
	newTrigger    TriggerFactory

	trigger     Trigger
	timerEntity ecs.EntityID
	onExpire    func()
}

// NewRoundTimerSystem 创建倒计时系统
// newTrigger 为 nil 时使用 NewIntervalTrigger
func NewRoundTimerSystem(em *ecs.EntityManager, state *game.RoundState, interval time.Duration, newTrigger TriggerFactory) *RoundTimerSystem {
	if newTrigger == nil {
		newTrigger = NewIntervalTrigger
	}
	return &RoundTimerSystem{
		entityManager: em,
		state:         state,
		interval:      interval,
		newTrigger:    newTrigger,
	}
}

// SetOnExpire 设置倒计时到 0 时的回调（在游戏主线程上调用）
func (s *RoundTimerSystem) SetOnExpire(fn func()) {
	s.onExpire = fn
}

// Start 用给定令牌启动（或重新启动）倒计时
// 已有的触发器会先被取消；令牌 0 保留为无效值
func (s *RoundTimerSystem) Start(token uint64) {
	s.Cancel()
	if token == 0 {
		log.Printf("[RoundTimerSystem] 错误: 无效令牌 0，倒计时未启动")
		return
	}

	s.timerEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.timerEntity, &components.RoundTimerComponent{
		Token:   token,
		Running: true,
	})
	s.trigger = s.newTrigger(s.interval, token)

	log.Printf("[RoundTimerSystem] 倒计时开始 (token=%d, interval=%v)", token, s.interval)
}

// Cancel 停止触发器并作废当前令牌
// 没有运行中的倒计时时为空操作
func (s *RoundTimerSystem) Cancel() {
	if s.trigger != nil {
		s.trigger.Stop()
		s.trigger = nil
	}
	if timer, ok := s.timerComponent(); ok && timer.Running {
		timer.Running = false
		timer.Token = 0
		log.Printf("[RoundTimerSystem] 倒计时已取消")
	}
}

// Token 返回当前有效的令牌，未运行时返回 0
func (s *RoundTimerSystem) Token() uint64 {
	if timer, ok := s.timerComponent(); ok && timer.Running {
		return timer.Token
	}
	return 0
}

// IsRunning 倒计时是否在运行
func (s *RoundTimerSystem) IsRunning() bool {
	timer, ok := s.timerComponent()
	return ok && timer.Running && s.trigger != nil
}

// TicksHandled 本局已处理的有效触发次数
func (s *RoundTimerSystem) TicksHandled() int {
	if timer, ok := s.timerComponent(); ok {
		return timer.TicksHandled
	}
	return 0
}

// Update 消费触发器已投递的所有触发，从不阻塞
func (s *RoundTimerSystem) Update(deltaTime float64) {
	for s.trigger != nil {
		select {
		case tick, ok := <-s.trigger.C():
			if !ok {
				s.trigger = nil
				return
			}
			s.handleTick(tick)
		default:
			return
		}
	}
}

func (s *RoundTimerSystem) handleTick(tick TimerTick) {
	timer, ok := s.timerComponent()
	if !ok || !timer.Running || tick.Token != timer.Token {
		log.Printf("[RoundTimerSystem] 忽略过期触发 (token=%d)", tick.Token)
		return
	}

	// 理论上不会发生：已结束却仍在触发
	if s.state.IsOver() {
		s.Cancel()
		return
	}

	timer.TicksHandled++
	if s.state.TickSecond() {
		s.Cancel()
		if s.onExpire != nil {
			s.onExpire()
		}
	}
}

func (s *RoundTimerSystem) timerComponent() (*components.RoundTimerComponent, bool) {
	if s.timerEntity == 0 {
		return nil, false
	}
	return ecs.GetComponent[*components.RoundTimerComponent](s.entityManager, s.timerEntity)
}
