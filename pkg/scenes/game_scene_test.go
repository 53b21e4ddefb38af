package scenes

import (
	"strings"
	"testing"

	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/systems"
	"github.com/decker502/birdquest/pkg/utils"
)

const frameDt = 1.0 / 60

// newTestScenes 注册开始页面和使用手动时钟的游戏场景
func newTestScenes(t *testing.T) (*game.SceneManager, *systems.ManualClock) {
	t.Helper()
	sm := game.NewSceneManager()
	clock := &systems.ManualClock{}
	sm.Register(game.SceneStart, func() game.Scene { return NewStartScene(nil, sm) })
	sm.Register(game.SceneRound, func() game.Scene { return newGameScene(nil, sm, clock.NewTrigger) })
	return sm, clock
}

func loadGameScene(t *testing.T) (*GameScene, *game.SceneManager, *systems.ManualClock) {
	t.Helper()
	sm, clock := newTestScenes(t)
	if !sm.Load(game.SceneRound) {
		t.Fatal("failed to load round scene")
	}
	scene, ok := sm.GetCurrentScene().(*GameScene)
	if !ok {
		t.Fatalf("current scene is %T, want *GameScene", sm.GetCurrentScene())
	}
	return scene, sm, clock
}

// expire 让倒计时走完
func expire(s *GameScene, clock *systems.ManualClock) {
	for !s.Snapshot().IsOver {
		clock.Tick()
		s.step(frameDt, utils.PointerFrame{})
	}
}

// dialogButtonCenter 返回结算对话框按钮中心的屏幕坐标
func dialogButtonCenter(t *testing.T, s *GameScene, label string) (float64, float64) {
	t.Helper()
	ids := ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.uiEntityManager)
	if len(ids) != 1 {
		t.Fatalf("expected one dialog, got %d", len(ids))
	}
	dialog, _ := ecs.GetComponent[*components.DialogComponent](s.uiEntityManager, ids[0])
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.uiEntityManager, ids[0])
	for _, btn := range dialog.Buttons {
		if btn.Label == label {
			return pos.X + btn.X + btn.Width/2, pos.Y + btn.Y + btn.Height/2
		}
	}
	t.Fatalf("button %q not found", label)
	return 0, 0
}

func click(s *GameScene, x, y float64) {
	s.step(frameDt, utils.PointerFrame{JustPressed: true, X: x, Y: y})
	s.step(frameDt, utils.PointerFrame{JustReleased: true, X: x, Y: y})
}

func TestGameSceneStartsRound(t *testing.T) {
	s, _, _ := loadGameScene(t)

	snap := s.Snapshot()
	if snap.Score != 0 || snap.SecondsRemaining != 15 || snap.IsOver || snap.IsModalShown {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}
	if !s.round.TimerRunning() {
		t.Error("timer should be running")
	}
	if got := len(s.round.Birds()); got != 5 {
		t.Errorf("expected 5 birds, got %d", got)
	}
}

func TestGameSceneCapture(t *testing.T) {
	s, _, _ := loadGameScene(t)

	birds := s.round.Birds()
	top := birds[len(birds)-1]
	s.step(frameDt, utils.PointerFrame{
		JustPressed: true,
		X:           top.X + top.Width/2,
		Y:           top.Y + top.Height/2,
	})

	if s.Snapshot().Score <= 0 {
		t.Fatalf("score should increase after capture, got %d", s.Snapshot().Score)
	}

	t.Run("显示捕获提示", func(t *testing.T) {
		toasts := s.toastSystem.Visible()
		if len(toasts) != 1 {
			t.Fatalf("expected 1 toast, got %d", len(toasts))
		}
		if !strings.HasPrefix(toasts[0].Message, "Photo taken of a ") {
			t.Errorf("unexpected toast %q", toasts[0].Message)
		}
	})

	t.Run("触发拍照闪光", func(t *testing.T) {
		if s.flashSystem.CurrentAlpha() <= 0 {
			t.Error("flash should be visible right after capture")
		}
		for i := 0; i < 60; i++ {
			s.step(frameDt, utils.PointerFrame{})
		}
		if s.flashSystem.CurrentAlpha() != 0 {
			t.Error("flash should fade out")
		}
	})
}

func TestGameSceneGameOver(t *testing.T) {
	s, _, clock := loadGameScene(t)
	expire(s, clock)

	if !s.hasDialog || !s.dialogInput.HasVisibleDialog() {
		t.Fatal("game over dialog should be shown")
	}
	if s.Snapshot().SecondsRemaining != 0 {
		t.Errorf("expected 0 seconds remaining, got %d", s.Snapshot().SecondsRemaining)
	}

	t.Run("对话框吞掉对鸟的点击", func(t *testing.T) {
		before := s.Snapshot().Score
		for _, b := range s.round.Birds() {
			s.step(frameDt, utils.PointerFrame{JustPressed: true, X: b.X + b.Width/2, Y: b.Y + b.Height/2})
		}
		if s.Snapshot().Score != before {
			t.Errorf("score changed behind the dialog: %d -> %d", before, s.Snapshot().Score)
		}
	})

	t.Run("Restart 按钮重新开始", func(t *testing.T) {
		x, y := dialogButtonCenter(t, s, "Restart")
		click(s, x, y)

		snap := s.Snapshot()
		if snap.Score != 0 || snap.SecondsRemaining != 15 || snap.IsOver || snap.IsModalShown {
			t.Errorf("round not reset: %+v", snap)
		}
		if s.hasDialog || s.dialogInput.HasVisibleDialog() {
			t.Error("dialog should be gone after restart")
		}
		if !s.round.TimerRunning() {
			t.Error("timer should be running again")
		}
	})
}

func TestGameScenePressBeforeGameOver(t *testing.T) {
	// 对话框总是出现在同一位置，先用另一局取得 Restart 按钮坐标
	refScene, _, refClock := loadGameScene(t)
	expire(refScene, refClock)
	x, y := dialogButtonCenter(t, refScene, "Restart")

	s, _, clock := loadGameScene(t)
	s.step(frameDt, utils.PointerFrame{JustPressed: true, X: x, Y: y})
	expire(s, clock)
	finalScore := s.Snapshot().Score

	s.step(frameDt, utils.PointerFrame{JustReleased: true, X: x, Y: y})

	snap := s.Snapshot()
	if !snap.IsOver || !snap.IsModalShown || snap.Score != finalScore {
		t.Errorf("release of an earlier press should not restart: %+v", snap)
	}
	if !s.hasDialog || !s.dialogInput.HasVisibleDialog() {
		t.Error("dialog should still be shown")
	}
}

func TestGameSceneMenuButton(t *testing.T) {
	s, sm, clock := loadGameScene(t)
	expire(s, clock)

	x, y := dialogButtonCenter(t, s, "Menu")
	click(s, x, y)

	if sm.CurrentSceneID() != game.SceneStart {
		t.Errorf("expected start scene, got %q", sm.CurrentSceneID())
	}
	if s.round.IsRunning() {
		t.Error("simulation should be torn down after leaving the scene")
	}
}

func TestGameSceneDispose(t *testing.T) {
	s, _, clock := loadGameScene(t)
	trigger := clock.Current()
	s.round.State().AddScore(3)

	s.Dispose()

	if !trigger.Stopped() {
		t.Error("timer trigger should be stopped")
	}
	if s.round.IsRunning() {
		t.Error("simulation should be torn down")
	}

	// 拆除后的订阅不再更新场景
	s.round.State().Reset()
	if s.Snapshot().Score != 3 {
		t.Errorf("unexpected snapshot after dispose: %+v", s.Snapshot())
	}

	t.Run("重复拆除无副作用", func(t *testing.T) {
		s.Dispose()
	})
}

func TestHUDText(t *testing.T) {
	score, remaining := HUDText(game.RoundSnapshot{Score: 12, SecondsRemaining: 7})
	if score != "Score: 12" {
		t.Errorf("score text = %q", score)
	}
	if remaining != "Time Remaining: 7 seconds" {
		t.Errorf("time text = %q", remaining)
	}
}
