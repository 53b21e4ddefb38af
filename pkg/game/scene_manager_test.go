package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingScene 记录调用情况的测试场景
type recordingScene struct {
	updates   int
	draws     int
	deltaTime float64
	disposed  int
}

func (s *recordingScene) Update(deltaTime float64) {
	s.updates++
	s.deltaTime = deltaTime
}

func (s *recordingScene) Draw(screen *ebiten.Image) {
	s.draws++
}

func (s *recordingScene) Dispose() {
	s.disposed++
}

// plainScene 不实现 Disposable
type plainScene struct{ updates int }

func (s *plainScene) Update(deltaTime float64)  { s.updates++ }
func (s *plainScene) Draw(screen *ebiten.Image) {}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("Expected no active scene initially")
	}

	// 没有场景时不应 panic
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(16, 16))
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	scene := &recordingScene{}
	sm.SwitchTo(scene)

	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(16, 16))

	if scene.updates != 1 || scene.draws != 1 {
		t.Errorf("Expected 1 update and 1 draw, got %d/%d", scene.updates, scene.draws)
	}
	if scene.deltaTime != 0.016 {
		t.Errorf("Expected deltaTime 0.016, got %v", scene.deltaTime)
	}
}

func TestSceneManagerSwitchDisposesPrevious(t *testing.T) {
	sm := NewSceneManager()
	first := &recordingScene{}
	second := &recordingScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first)
	if first.disposed != 0 {
		t.Error("Switching to the same scene should not dispose it")
	}

	sm.SwitchTo(second)
	if first.disposed != 1 {
		t.Errorf("Expected previous scene disposed once, got %d", first.disposed)
	}

	// 不实现 Disposable 的场景也能被替换
	sm.SwitchTo(&plainScene{})
	if second.disposed != 1 {
		t.Errorf("Expected second scene disposed once, got %d", second.disposed)
	}
}

func TestSceneManagerLoad(t *testing.T) {
	sm := NewSceneManager()
	created := 0
	sm.Register(SceneStart, func() Scene {
		created++
		return &plainScene{}
	})
	sm.Register(SceneRound, func() Scene { return nil })

	t.Run("已注册场景", func(t *testing.T) {
		if !sm.Load(SceneStart) {
			t.Fatal("Load(start) should succeed")
		}
		if created != 1 {
			t.Errorf("Expected factory called once, got %d", created)
		}
		if sm.CurrentSceneID() != SceneStart {
			t.Errorf("CurrentSceneID = %q, want %q", sm.CurrentSceneID(), SceneStart)
		}
	})

	t.Run("未注册场景", func(t *testing.T) {
		before := sm.GetCurrentScene()
		if sm.Load("missing") {
			t.Error("Load(missing) should fail")
		}
		if sm.GetCurrentScene() != before {
			t.Error("Failed load should keep the current scene")
		}
	})

	t.Run("工厂返回nil", func(t *testing.T) {
		if sm.Load(SceneRound) {
			t.Error("Load should fail when the factory returns nil")
		}
		if sm.CurrentSceneID() != SceneStart {
			t.Error("Failed load should keep the current scene ID")
		}
	})
}
