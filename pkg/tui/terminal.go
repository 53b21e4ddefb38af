// Package tui 提供基于 tcell 的终端前端
//
// 终端前端与桌面版共用同一个 RoundSystem：视口以字符格为单位，
// 鼠标左键按下即拍照，局状态通过订阅投影到状态栏和结算框。
package tui

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/systems"
	"github.com/decker502/birdquest/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// 终端下的换算参数
const (
	DefaultSpeedScale = 0.1  // 像素速度 -> 字符格/帧
	DefaultBirdScale  = 0.05 // 像素尺寸 -> 字符格
	FrameInterval     = 33 * time.Millisecond
)

// Options 终端前端参数
type Options struct {
	Catalog    *config.BirdCatalog
	Config     *config.RoundConfig
	Sound      *Sound                 // 为 nil 时静音
	NewTrigger systems.TriggerFactory // 为 nil 时使用真实的间隔触发器
	Rand       *rand.Rand
}

// Terminal 终端前端
type Terminal struct {
	screen  tcell.Screen
	catalog *config.BirdCatalog
	round   *systems.RoundSystem
	board   *NoticeBoard
	sound   *Sound

	snapshot    game.RoundSnapshot
	unsubscribe func()
	mouseDown   bool
	quit        bool
}

// NewTerminal 在已初始化的 screen 上创建前端并开始第一局
func NewTerminal(screen tcell.Screen, opts Options) *Terminal {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultRoundConfig()
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = config.DefaultBirdCatalog()
	}

	t := &Terminal{
		screen:  screen,
		catalog: catalog,
		board:   NewNoticeBoard(cfg.Toast.MaxVisible),
		sound:   opts.Sound,
	}
	t.round = systems.NewRoundSystem(systems.RoundOptions{
		Catalog:    catalog,
		Config:     cfg,
		Viewport:   screen.Size,
		SpeedScale: DefaultSpeedScale,
		BirdScale:  DefaultBirdScale,
		Notifier:   t.board,
		NewTrigger: opts.NewTrigger,
		Rand:       opts.Rand,
	})
	t.round.OnCapture(func(systems.CaptureEvent) { t.sound.PlayShutter() })
	t.round.OnExpire(func(int) { t.sound.PlayWhistle() })
	t.unsubscribe = t.round.Subscribe(func(s game.RoundSnapshot) { t.snapshot = s })

	screen.EnableMouse()
	screen.HideCursor()
	t.round.Start()
	return t
}

// Run 事件循环，直到退出键或 ctx 结束
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	dt := FrameInterval.Seconds()
	for !t.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			t.HandleEvent(ev)
		case <-ticker.C:
			t.Tick(dt)
			t.Draw()
		}
	}
	return nil
}

// HandleEvent 处理一个终端事件，返回是否应继续运行
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return !t.quit
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
	case tcell.KeyEnter:
		t.restartIfOver()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			t.quit = true
		case 'r', 'R':
			t.restartIfOver()
		}
	}
}

// handleMouse 只在左键按下的那一刻拍照，按住拖动不算
func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	justPressed := pressed && !t.mouseDown
	t.mouseDown = pressed
	if !justPressed {
		return
	}

	x, y := ev.Position()
	if t.snapshot.IsModalShown {
		if t.restartButtonContains(x, y) {
			t.round.RequestRestart()
		}
		return
	}
	// 点击字符格中心
	t.round.HandlePointerDown(float64(x)+0.5, float64(y)+0.5)
}

func (t *Terminal) restartIfOver() {
	if t.snapshot.IsOver {
		t.round.RequestRestart()
	}
}

// Tick 推进一帧
func (t *Terminal) Tick(deltaTime float64) {
	t.round.Update(deltaTime)
	t.board.Update(deltaTime)
}

// Snapshot 返回最近的局状态
func (t *Terminal) Snapshot() game.RoundSnapshot {
	return t.snapshot
}

// Round 返回底层的生命周期控制器
func (t *Terminal) Round() *systems.RoundSystem {
	return t.round
}

// Notices 返回提示板
func (t *Terminal) Notices() *NoticeBoard {
	return t.board
}

// Close 拆除本局并释放音频，不负责 screen.Fini
func (t *Terminal) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
	t.round.Teardown()
	t.sound.Close()
}

var (
	styleSky     = tcell.StyleDefault.Background(tcell.NewRGBColor(0x6e, 0xb6, 0xf0))
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
	styleNotice  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(0x22, 0x22, 0x22))
	styleDialog  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x3e, 0x27, 0x23)).Background(tcell.NewRGBColor(0xfa, 0xf6, 0xe8))
	styleButton  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(0x2e, 0x7d, 0x32)).Bold(true)
	restartLabel = "[ Restart ]"
)

// Draw 绘制一帧
func (t *Terminal) Draw() {
	t.screen.Fill(' ', styleSky)
	t.drawBirds()
	t.drawHUD()
	t.drawNotices()
	if t.snapshot.IsModalShown {
		t.drawDialog()
	}
	t.screen.Show()
}

func (t *Terminal) drawBirds() {
	for _, b := range t.round.Birds() {
		style := t.birdStyle(b)
		x0 := int(math.Floor(b.X))
		y0 := int(math.Floor(b.Y))
		w := int(math.Ceil(b.Width))
		h := int(math.Ceil(b.Height))

		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				t.screen.SetContent(x0+dx, y0+dy, birdGlyph(b, dx, dy, w, h), nil, style)
			}
		}
	}
}

// birdGlyph 头朝左：左端是喙，中间一行是身体，翅膀随姿态在上下行
func birdGlyph(b systems.BirdView, dx, dy, w, h int) rune {
	mid := h / 2
	switch {
	case dy == mid && dx == 0:
		return '<'
	case dy == mid && dx == 1:
		return 'o'
	case dy == mid:
		return '='
	case b.Pose == types.PoseUp && dy < mid && dx == w/2:
		return '^'
	case b.Pose == types.PoseDown && dy > mid && dx == w/2:
		return 'v'
	}
	return ' '
}

func (t *Terminal) birdStyle(b systems.BirdView) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	if arch, ok := t.catalog.Get(b.ArchetypeID); ok {
		c := arch.BodyColor()
		style = style.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		if luminance(c.R, c.G, c.B) < 128 {
			style = style.Foreground(tcell.ColorWhite)
		}
	}
	if b.Captured {
		style = style.Dim(true)
	}
	return style
}

func luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// StatusLine 状态栏文字
func StatusLine(snap game.RoundSnapshot) string {
	return fmt.Sprintf(" Score: %d   Time Remaining: %d seconds ", snap.Score, snap.SecondsRemaining)
}

func (t *Terminal) drawHUD() {
	w, _ := t.screen.Size()
	line := StatusLine(t.snapshot)
	t.drawText((w-len(line))/2, 0, line, styleHUD)
}

// drawNotices 左侧的提示从第二行开始，避开状态栏
func (t *Terminal) drawNotices() {
	w, h := t.screen.Size()
	for placement, messages := range t.board.byPlacement() {
		for i, msg := range messages {
			line := " " + msg + " "
			var x int
			switch placement {
			case types.PlacementTopCenter, types.PlacementBottomCenter:
				x = (w - len(line)) / 2
			case types.PlacementTopRight, types.PlacementBottomRight:
				x = w - len(line) - 1
			default:
				x = 1
			}
			y := 1 + i
			if !placement.IsTop() {
				y = h - 1 - i
			}
			t.drawText(x, y, line, styleNotice)
		}
	}
}

// dialogRect 结算框的位置和大小
func (t *Terminal) dialogRect() (x, y, w, h int) {
	sw, sh := t.screen.Size()
	w, h = 34, 7
	return (sw - w) / 2, (sh - h) / 2, w, h
}

// restartButtonRect 结算框里 Restart 按钮的位置
func (t *Terminal) restartButtonRect() (x, y, w int) {
	dx, dy, dw, dh := t.dialogRect()
	w = len(restartLabel)
	return dx + (dw-w)/2, dy + dh - 2, w
}

func (t *Terminal) restartButtonContains(px, py int) bool {
	x, y, w := t.restartButtonRect()
	return py == y && px >= x && px < x+w
}

func (t *Terminal) drawDialog() {
	x, y, w, h := t.dialogRect()
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			t.screen.SetContent(x+dx, y+dy, ' ', nil, styleDialog)
		}
	}
	t.drawCentered(x, w, y+1, "Game Over", styleDialog.Bold(true))
	t.drawCentered(x, w, y+2, fmt.Sprintf("Final Score: %d", t.snapshot.Score), styleDialog)
	t.drawCentered(x, w, y+3, "r: restart   q: quit", styleDialog.Dim(true))

	bx, by, _ := t.restartButtonRect()
	t.drawText(bx, by, restartLabel, styleButton)
}

func (t *Terminal) drawCentered(x, w, y int, s string, style tcell.Style) {
	t.drawText(x+(w-len(s))/2, y, s, style)
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
