package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/entities"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/types"
)

// BirdView 一只鸟的只读绘制信息
// 表现层通过它绘制，不接触实体和组件
type BirdView struct {
	ID          ecs.EntityID
	ArchetypeID string
	Name        string
	X, Y        float64
	Width       float64
	Height      float64
	SpriteKey   string
	Pose        types.BirdPose
	Captured    bool
}

// RoundOptions 生命周期控制器的参数
type RoundOptions struct {
	Catalog *config.BirdCatalog // 为 nil 时使用内置原型表
	Config  *config.RoundConfig // 为 nil 时使用默认局配置

	// Viewport 返回当前视口尺寸，每局开始时读取一次
	Viewport func() (width, height int)

	// SpeedScale 速度倍率，终端前端用它把像素速度换算成字符格
	SpeedScale float64

	// BirdScale 精灵缩放，<= 0 时使用 Config.BirdScale
	BirdScale float64

	Notifier   game.Notifier  // 捕获提示接收方，可为 nil
	NewTrigger TriggerFactory // 倒计时触发器工厂，为 nil 时使用 NewIntervalTrigger
	Rand       *rand.Rand     // 随机源，为 nil 时按当前时间创建
}

// simulation 一局的模拟区
// 实体、系统和倒计时都归它所有，拆除时整体丢弃
type simulation struct {
	entityManager  *ecs.EntityManager
	movement       *BirdMovementSystem
	flap           *FlapAnimationSystem
	capture        *CaptureSystem
	timer          *RoundTimerSystem
	birds          []ecs.EntityID
	viewportWidth  int
	viewportHeight int
}

// RoundSystem 一局游戏的生命周期控制器
//
// 负责一起启动、拆除、重开模拟和倒计时，并把模拟的可变状态
// 以 RoundState 快照的形式桥接给表现层。所有方法都只在游戏主线程上调用。
type RoundSystem struct {
	opts  RoundOptions
	state *game.RoundState
	sim   *simulation

	lastToken        uint64
	restartRequested bool

	captureListeners []func(CaptureEvent)
	expireListeners  []func(finalScore int)
}

// NewRoundSystem 创建生命周期控制器，不会自动开始一局
func NewRoundSystem(opts RoundOptions) *RoundSystem {
	if opts.Catalog == nil {
		opts.Catalog = config.DefaultBirdCatalog()
	}
	if opts.Config == nil {
		opts.Config = config.DefaultRoundConfig()
	}
	if opts.BirdScale <= 0 {
		opts.BirdScale = opts.Config.BirdScale
	}
	if opts.SpeedScale <= 0 {
		opts.SpeedScale = 1
	}
	if opts.Viewport == nil {
		opts.Viewport = func() (int, int) { return config.GameWindowWidth, config.GameWindowHeight }
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.NewTrigger == nil {
		opts.NewTrigger = NewIntervalTrigger
	}

	return &RoundSystem{
		opts:  opts,
		state: game.NewRoundState(opts.Config.DurationSeconds),
	}
}

// State 返回权威的局状态
func (r *RoundSystem) State() *game.RoundState {
	return r.state
}

// Snapshot 返回当前局状态投影
func (r *RoundSystem) Snapshot() game.RoundSnapshot {
	return r.state.Snapshot()
}

// Subscribe 订阅局状态变化，跨局有效
func (r *RoundSystem) Subscribe(fn game.RoundListener) func() {
	return r.state.Subscribe(fn)
}

// OnCapture 注册捕获回调，跨局有效
func (r *RoundSystem) OnCapture(fn func(CaptureEvent)) {
	if fn != nil {
		r.captureListeners = append(r.captureListeners, fn)
	}
}

// OnExpire 注册倒计时结束回调，跨局有效
func (r *RoundSystem) OnExpire(fn func(finalScore int)) {
	if fn != nil {
		r.expireListeners = append(r.expireListeners, fn)
	}
}

// IsRunning 是否存在模拟实例
func (r *RoundSystem) IsRunning() bool {
	return r.sim != nil
}

// Viewport 返回本局模拟的视口尺寸
func (r *RoundSystem) Viewport() (int, int) {
	if r.sim == nil {
		return 0, 0
	}
	return r.sim.viewportWidth, r.sim.viewportHeight
}

// Start 开始新的一局
//
// 丢弃已有的模拟实例，把得分、倒计时和结束标志恢复初始值，
// 按当前视口构造新的模拟，然后（重新）启动倒计时。
func (r *RoundSystem) Start() {
	r.Teardown()
	r.state.Reset()
	r.restartRequested = false

	w, h := r.opts.Viewport()
	em := ecs.NewEntityManager()

	sim := &simulation{
		entityManager:  em,
		movement:       NewBirdMovementSystem(em, r.state, w, h, r.opts.SpeedScale, r.opts.Rand),
		flap:           NewFlapAnimationSystem(em),
		capture:        NewCaptureSystem(em, r.state, r.opts.Config, r.opts.Notifier),
		timer:          NewRoundTimerSystem(em, r.state, r.opts.Config.TickInterval(), r.opts.NewTrigger),
		viewportWidth:  w,
		viewportHeight: h,
	}
	sim.capture.OnCapture(r.dispatchCapture)
	sim.timer.SetOnExpire(r.dispatchExpire)

	sim.birds = entities.InitializeBirds(em, r.opts.Catalog, w, h, &entities.SpawnOptions{
		Scale:         r.opts.BirdScale,
		FlapFrameRate: r.opts.Config.FlapFrameRate,
		Rand:          r.opts.Rand,
	})

	r.sim = sim
	r.lastToken++
	sim.timer.Start(r.lastToken)

	log.Printf("[RoundSystem] 新的一局开始: %d 只鸟, %d 秒, 视口 %dx%d",
		len(sim.birds), r.state.SecondsRemaining(), w, h)
}

// Teardown 拆除当前模拟：取消倒计时并释放所有实体
// 没有模拟实例时为空操作
func (r *RoundSystem) Teardown() {
	if r.sim == nil {
		return
	}
	r.sim.timer.Cancel()
	r.sim.entityManager.DestroyAll()
	r.sim = nil
	log.Printf("[RoundSystem] 模拟已拆除")
}

// Restart 拆除当前模拟（如果有）并开始新的一局
func (r *RoundSystem) Restart() {
	log.Printf("[RoundSystem] 重新开始")
	r.Start()
}

// RequestRestart 结算界面发出的重开信号
// 在下一次 Update 开始时执行，避免在输入回调中途重建模拟
func (r *RoundSystem) RequestRestart() {
	r.restartRequested = true
}

// Update 推进一帧：重开请求 -> 移动 -> 扇翅 -> 倒计时 -> 清理实体
func (r *RoundSystem) Update(deltaTime float64) {
	if r.restartRequested {
		r.Restart()
	}
	if r.sim == nil {
		return
	}

	r.sim.movement.Update(deltaTime)
	r.sim.flap.Update(deltaTime)
	r.sim.timer.Update(deltaTime)
	r.sim.entityManager.RemoveMarkedEntities()
}

// HandlePointerDown 把指针按下交给捕获处理，返回是否产生了捕获
func (r *RoundSystem) HandlePointerDown(x, y float64) bool {
	if r.sim == nil {
		return false
	}
	return r.sim.capture.HandlePointerDown(x, y)
}

// Capture 直接捕获指定的鸟，返回是否成功
func (r *RoundSystem) Capture(id ecs.EntityID) bool {
	if r.sim == nil {
		return false
	}
	return r.sim.capture.Capture(id)
}

// TimerRunning 本局倒计时是否仍在运行
func (r *RoundSystem) TimerRunning() bool {
	return r.sim != nil && r.sim.timer.IsRunning()
}

// Birds 返回所有鸟的绘制信息，按绘制顺序（先画的在前）
func (r *RoundSystem) Birds() []BirdView {
	if r.sim == nil {
		return nil
	}
	em := r.sim.entityManager
	ids := ecs.GetEntitiesWith3[
		*components.BirdComponent,
		*components.PositionComponent,
		*components.SpriteComponent,
	](em)

	views := make([]BirdView, 0, len(ids))
	for _, id := range ids {
		bird, _ := ecs.GetComponent[*components.BirdComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)

		view := BirdView{
			ID:          id,
			ArchetypeID: bird.ArchetypeID,
			Name:        bird.Name,
			X:           pos.X,
			Y:           pos.Y,
			Width:       sprite.Width,
			Height:      sprite.Height,
			SpriteKey:   sprite.Key,
			Captured:    bird.Captured,
		}
		if anim, ok := ecs.GetComponent[*components.FlapAnimationComponent](em, id); ok {
			view.Pose = anim.Pose()
		}
		views = append(views, view)
	}
	return views
}

func (r *RoundSystem) dispatchCapture(ev CaptureEvent) {
	for _, fn := range r.captureListeners {
		fn(ev)
	}
}

func (r *RoundSystem) dispatchExpire() {
	score := r.state.Score()
	log.Printf("[RoundSystem] 时间到，最终得分 %d", score)
	for _, fn := range r.expireListeners {
		fn(score)
	}
}
