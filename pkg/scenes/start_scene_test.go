package scenes

import (
	"strings"
	"testing"

	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/utils"
)

func TestStartSceneButton(t *testing.T) {
	tests := []struct {
		name      string
		pressIn   bool
		releaseIn bool
		wantScene string
	}{
		{"按下并在按钮上释放", true, true, game.SceneRound},
		{"按下后移出按钮释放", true, false, game.SceneStart},
		{"在按钮外按下", false, true, game.SceneStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm, _ := newTestScenes(t)
			sm.Load(game.SceneStart)
			s := sm.GetCurrentScene().(*StartScene)

			inX := s.buttonX + config.StartButtonWidth/2
			inY := s.buttonY + config.StartButtonHeight/2
			outX, outY := 5.0, 5.0

			px, py := outX, outY
			if tt.pressIn {
				px, py = inX, inY
			}
			s.handlePointer(utils.PointerFrame{JustPressed: true, X: px, Y: py})

			rx, ry := outX, outY
			if tt.releaseIn {
				rx, ry = inX, inY
			}
			s.handlePointer(utils.PointerFrame{JustReleased: true, X: rx, Y: ry})

			if got := sm.CurrentSceneID(); got != tt.wantScene {
				t.Errorf("scene = %q, want %q", got, tt.wantScene)
			}
			if gs, ok := sm.GetCurrentScene().(*GameScene); ok {
				gs.Dispose()
			}
		})
	}
}

func TestStartSceneButtonCentered(t *testing.T) {
	sm, _ := newTestScenes(t)
	s := NewStartScene(nil, sm)

	wantX := (float64(config.GameWindowWidth) - config.StartButtonWidth) / 2
	if s.buttonX != wantX {
		t.Errorf("buttonX = %v, want %v", s.buttonX, wantX)
	}
	if !s.buttonContains(wantX+1, s.buttonY+1) {
		t.Error("button should contain its top-left interior")
	}
}

func TestSoundHint(t *testing.T) {
	gs := game.GetGameState()
	sm := gs.GetSettingsManager()
	original := sm.GetSettings().SoundEnabled
	defer sm.SetSoundEnabled(original)

	sm.SetSoundEnabled(true)
	if got := soundHint(gs); got != "Sound: on (M to toggle)" {
		t.Errorf("hint = %q", got)
	}
	sm.SetSoundEnabled(false)
	if got := soundHint(gs); got != "Sound: off (M to toggle)" {
		t.Errorf("hint = %q", got)
	}
}

func TestControlsHint(t *testing.T) {
	if got := controlsHint(true); strings.Contains(got, "Esc") {
		t.Errorf("触屏提示不应包含键盘操作: %q", got)
	}
	if got := controlsHint(false); !strings.Contains(got, "Click") {
		t.Errorf("桌面提示 = %q", got)
	}
}
