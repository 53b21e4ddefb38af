package tui

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/decker502/birdquest/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen, *systems.ManualClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	clock := &systems.ManualClock{}
	term := NewTerminal(screen, Options{
		NewTrigger: clock.NewTrigger,
		Rand:       rand.New(rand.NewSource(3)),
	})
	t.Cleanup(term.Close)
	return term, screen, clock
}

// rowText 读取屏幕上一整行
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenContains(screen tcell.Screen, s string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), s) {
			return true
		}
	}
	return false
}

// birdCell 返回某只鸟内部的一个字符格
func birdCell(b systems.BirdView) (int, int) {
	return int(math.Floor(b.X)) + 1, int(math.Floor(b.Y)) + 1
}

func press(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func release(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func TestTerminalStartsRoundWithCellViewport(t *testing.T) {
	term, _, _ := newTestTerminal(t)

	w, h := term.Round().Viewport()
	if w != 80 || h != 24 {
		t.Errorf("viewport = %dx%d, want 80x24", w, h)
	}
	snap := term.Snapshot()
	if snap.Score != 0 || snap.SecondsRemaining != 15 || snap.IsOver {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	for _, b := range term.Round().Birds() {
		if b.Width < 3 || b.Width > 6 {
			t.Errorf("%s width %v cells out of range", b.ArchetypeID, b.Width)
		}
	}
}

func TestTerminalMouseCapture(t *testing.T) {
	term, _, _ := newTestTerminal(t)
	birds := term.Round().Birds()
	x, y := birdCell(birds[len(birds)-1])

	term.HandleEvent(press(x, y))
	score := term.Snapshot().Score
	if score <= 0 {
		t.Fatalf("expected a capture, score = %d", score)
	}
	if got := len(term.Notices().Messages()); got != 1 {
		t.Errorf("expected 1 notice, got %d", got)
	}

	t.Run("按住拖动不会重复拍照", func(t *testing.T) {
		for _, b := range birds {
			bx, by := birdCell(b)
			term.HandleEvent(press(bx, by))
		}
		if term.Snapshot().Score != score {
			t.Errorf("drag captured birds: %d -> %d", score, term.Snapshot().Score)
		}
	})

	t.Run("松开后再次按下可以继续拍", func(t *testing.T) {
		term.HandleEvent(release(0, 0))
		for _, b := range birds {
			if b.Captured || b.ID == birds[len(birds)-1].ID {
				continue
			}
			bx, by := birdCell(b)
			term.HandleEvent(press(bx, by))
			term.HandleEvent(release(bx, by))
		}
		if term.Snapshot().Score <= score {
			t.Errorf("expected more captures, score still %d", term.Snapshot().Score)
		}
	})
}

func TestTerminalGameOverAndRestart(t *testing.T) {
	term, screen, clock := newTestTerminal(t)

	t.Run("未结束时 r 无效", func(t *testing.T) {
		clock.Tick()
		term.Tick(FrameInterval.Seconds())
		term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
		term.Tick(FrameInterval.Seconds())
		if got := term.Snapshot().SecondsRemaining; got != 14 {
			t.Errorf("seconds remaining = %d, want 14", got)
		}
	})

	for !term.Snapshot().IsOver {
		clock.Tick()
		term.Tick(FrameInterval.Seconds())
	}
	term.Draw()

	if !screenContains(screen, "Game Over") || !screenContains(screen, "Final Score: 0") {
		t.Fatal("game over dialog not drawn")
	}
	if !strings.Contains(rowText(screen, 0), "Time Remaining: 0 seconds") {
		t.Errorf("status line = %q", rowText(screen, 0))
	}

	t.Run("结算时点击鸟无效", func(t *testing.T) {
		for _, b := range term.Round().Birds() {
			bx, by := birdCell(b)
			term.HandleEvent(press(bx, by))
			term.HandleEvent(release(bx, by))
		}
		if term.Snapshot().Score != 0 {
			t.Errorf("score changed after game over: %d", term.Snapshot().Score)
		}
	})

	t.Run("点击 Restart 按钮", func(t *testing.T) {
		bx, by, _ := term.restartButtonRect()
		term.HandleEvent(press(bx+1, by))
		term.Tick(FrameInterval.Seconds())

		snap := term.Snapshot()
		if snap.IsOver || snap.IsModalShown || snap.SecondsRemaining != 15 {
			t.Errorf("round not restarted: %+v", snap)
		}
	})
}

func TestTerminalKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q 退出", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
		{"Esc 退出", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"Ctrl-C 退出", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, _, _ := newTestTerminal(t)
			if term.HandleEvent(tt.ev) {
				t.Error("expected HandleEvent to report quit")
			}
		})
	}
}

func TestStatusLine(t *testing.T) {
	term, screen, _ := newTestTerminal(t)
	term.Draw()
	if !strings.Contains(rowText(screen, 0), "Score: 0   Time Remaining: 15 seconds") {
		t.Errorf("status line = %q", rowText(screen, 0))
	}
}
