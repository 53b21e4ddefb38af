package scenes

import (
	"log"

	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/entities"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/systems"
	"github.com/decker502/birdquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 捕获闪光参数
const (
	flashIntensity = 0.8
)

// GameScene 游戏场景
//
// 局内模拟（鸟、得分、倒计时）全部由 RoundSystem 持有，
// 场景只负责输入转发、UI 实体（提示、闪光、结算对话框）和绘制。
// 结算对话框跟随 RoundSnapshot.IsModalShown 挂载和卸载。
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	gameState       *game.GameState
	roundConfig     *config.RoundConfig

	round *systems.RoundSystem

	// UI 实体：提示、闪光、对话框，跨局保留
	uiEntityManager *ecs.EntityManager
	toastSystem     *systems.ToastSystem
	lifetimeSystem  *systems.LifetimeSystem
	flashSystem     *systems.FlashEffectSystem
	dialogInput     *systems.DialogInputSystem

	pointer     *utils.PointerReader
	unsubscribe func()

	dialogID  ecs.EntityID
	hasDialog bool
	snapshot  game.RoundSnapshot

	scoreFont  *text.GoTextFace
	timerFont  *text.GoTextFace
	toastFont  *text.GoTextFace
	dialogFont *text.GoTextFace
	titleFont  *text.GoTextFace
}

// NewGameScene 创建游戏场景并立即开始一局
func NewGameScene(rm *game.ResourceManager, sm *game.SceneManager) *GameScene {
	return newGameScene(rm, sm, nil)
}

// newGameScene newTrigger 为 nil 时使用真实的间隔触发器
func newGameScene(rm *game.ResourceManager, sm *game.SceneManager, newTrigger systems.TriggerFactory) *GameScene {
	gs := game.GetGameState()
	cfg := gs.RoundConfig
	if cfg == nil {
		cfg = config.DefaultRoundConfig()
	}

	uiEM := ecs.NewEntityManager()
	s := &GameScene{
		resourceManager: rm,
		sceneManager:    sm,
		gameState:       gs,
		roundConfig:     cfg,
		uiEntityManager: uiEM,
		toastSystem:     systems.NewToastSystem(uiEM, cfg.Toast.MaxVisible),
		lifetimeSystem:  systems.NewLifetimeSystem(uiEM),
		flashSystem:     systems.NewFlashEffectSystem(uiEM),
		dialogInput:     systems.NewDialogInputSystem(uiEM),
		pointer:         utils.NewPointerReader(),
	}

	s.round = systems.NewRoundSystem(systems.RoundOptions{
		Catalog:    gs.Catalog,
		Config:     cfg,
		Notifier:   game.MultiNotifier{s.toastSystem, game.LogNotifier{}},
		NewTrigger: newTrigger,
	})
	s.round.OnCapture(s.onCapture)
	s.round.OnExpire(s.onExpire)
	s.unsubscribe = s.round.Subscribe(s.onSnapshot)

	s.scoreFont = loadFont(rm, config.HUDFontSize)
	s.timerFont = loadFont(rm, config.HUDTimerFontSize)
	s.toastFont = loadFont(rm, config.ToastFontSize)
	s.dialogFont = loadFont(rm, dialogFontSize)
	s.titleFont = loadFont(rm, dialogTitleFontSize)

	if rm != nil && gs.Catalog != nil {
		rm.LoadBirdSprites(gs.Catalog)
	}

	s.round.Start()
	return s
}

// Update 读取输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
	if s.handleKeys() {
		return
	}
	s.step(deltaTime, s.pointer.Read())
}

// handleKeys 处理快捷键，返回场景是否已切换
func (s *GameScene) handleKeys() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.backToMenu()
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.snapshot.IsOver {
		s.round.RequestRestart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		toggleSound(s.gameState)
	}
	return false
}

// step 推进一帧，指针输入先交给对话框，没有被消费时才用于捕获
func (s *GameScene) step(deltaTime float64, frame utils.PointerFrame) {
	consumed := s.dialogInput.HandlePointer(frame)
	if !consumed && frame.JustPressed {
		s.round.HandlePointerDown(frame.X, frame.Y)
	}

	s.round.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.flashSystem.Update(deltaTime)
	s.uiEntityManager.RemoveMarkedEntities()
}

// onSnapshot 局状态变化时挂载或卸载结算对话框
func (s *GameScene) onSnapshot(snap game.RoundSnapshot) {
	s.snapshot = snap

	if snap.IsModalShown && !s.hasDialog {
		s.dialogID = entities.NewGameOverDialogEntity(s.uiEntityManager,
			config.GameWindowWidth, config.GameWindowHeight, snap.Score,
			s.round.RequestRestart, s.backToMenu)
		s.hasDialog = true
		return
	}
	if !snap.IsModalShown && s.hasDialog {
		if s.uiEntityManager.Exists(s.dialogID) {
			s.uiEntityManager.DestroyEntity(s.dialogID)
			s.uiEntityManager.RemoveMarkedEntities()
		}
		s.hasDialog = false
	}
}

func (s *GameScene) onCapture(ev systems.CaptureEvent) {
	if s.roundConfig.FlashDuration > 0 {
		entities.NewFlashEffectEntity(s.uiEntityManager, s.roundConfig.FlashDuration, flashIntensity)
	}
	if am := s.gameState.GetAudioManager(); am != nil {
		am.PlaySound(game.SoundShutter)
	}
}

func (s *GameScene) onExpire(finalScore int) {
	if am := s.gameState.GetAudioManager(); am != nil {
		am.PlaySound(game.SoundWhistle)
	}
}

func (s *GameScene) backToMenu() {
	log.Printf("[GameScene] 返回开始页面")
	s.sceneManager.Load(game.SceneStart)
}

// Dispose 离开场景时拆除模拟并取消订阅
func (s *GameScene) Dispose() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.round.Teardown()
	s.uiEntityManager.DestroyAll()
}

// Snapshot 返回场景最近收到的局状态
func (s *GameScene) Snapshot() game.RoundSnapshot {
	return s.snapshot
}

// Draw 按层绘制：背景 -> 鸟 -> HUD -> 提示 -> 闪光 -> 对话框 -> 取景框
func (s *GameScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)
	s.drawBirds(screen)
	s.drawHUD(screen)
	s.drawToasts(screen)
	s.drawFlash(screen)
	s.drawDialog(screen)

	if !s.hasDialog {
		x, y := ebiten.CursorPosition()
		drawReticle(screen, float64(x), float64(y))
	}
}
