package scenes

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/systems"
	"github.com/decker502/birdquest/pkg/types"
	"github.com/decker502/birdquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	dialogFontSize      = 20.0
	dialogTitleFontSize = 30.0

	capturedBirdAlpha = 0.35
	toastFadeIn       = 0.2 // 秒
	toastFadeOut      = 0.4 // 秒
	toastMaxTextWidth = 320.0
	reticleRadius     = 14
	hudShadowOffset   = 2
)

var (
	hudColor          = color.RGBA{0xff, 0xff, 0xff, 0xff}
	hudShadowColor    = color.RGBA{0x00, 0x00, 0x00, 0x90}
	toastBgColor      = color.RGBA{0x22, 0x22, 0x22, 0xe0}
	toastTextColor    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	overlayColor      = color.RGBA{0x00, 0x00, 0x00, 0x90}
	dialogBgColor     = color.RGBA{0xfa, 0xf6, 0xe8, 0xff}
	dialogBorderColor = color.RGBA{0x5d, 0x40, 0x37, 0xff}
	dialogTextColor   = color.RGBA{0x3e, 0x27, 0x23, 0xff}
	buttonColor       = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
	buttonHoverColor  = color.RGBA{0x43, 0xa0, 0x47, 0xff}
	buttonPressColor  = color.RGBA{0x1b, 0x5e, 0x20, 0xff}
	reticleColor      = color.RGBA{0xff, 0x3d, 0x00, 0xff}
)

// loadFont 加载字体，失败时返回 nil（文字不绘制）
func loadFont(rm *game.ResourceManager, size float64) *text.GoTextFace {
	if rm == nil {
		return nil
	}
	face, err := rm.LoadFont(size)
	if err != nil {
		log.Printf("[scenes] 加载字体失败 (size=%v): %v", size, err)
		return nil
	}
	return face
}

// drawCenteredText 以 (cx, cy) 为中心绘制单行文字
func drawCenteredText(screen *ebiten.Image, s string, face *text.GoTextFace, cx, cy float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawShadowedText 带阴影的居中文字，用于天空背景上的 HUD
func drawShadowedText(screen *ebiten.Image, s string, face *text.GoTextFace, cx, cy float64) {
	drawCenteredText(screen, s, face, cx+hudShadowOffset, cy+hudShadowOffset, hudShadowColor)
	drawCenteredText(screen, s, face, cx, cy, hudColor)
}

// toggleSound 切换音效开关并保存设置
func toggleSound(gs *game.GameState) {
	sm := gs.GetSettingsManager()
	enabled := sm.ToggleSound()
	if err := sm.Save(); err != nil {
		log.Printf("[scenes] 保存设置失败: %v", err)
	}
	log.Printf("[scenes] 音效: %v", enabled)
}

// soundHint 开始页面底部的音效提示
func soundHint(gs *game.GameState) string {
	state := "on"
	if !gs.GetSettingsManager().GetSettings().SoundEnabled {
		state = "off"
	}
	return fmt.Sprintf("Sound: %s (M to toggle)", state)
}

// HUDText 返回 HUD 两行文字
func HUDText(snap game.RoundSnapshot) (score, timeRemaining string) {
	return fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Time Remaining: %d seconds", snap.SecondsRemaining)
}

// drawBirds 按绘制顺序画鸟，已被拍下的鸟变淡
func (s *GameScene) drawBirds(screen *ebiten.Image) {
	if s.resourceManager == nil {
		return
	}
	for _, b := range s.round.Birds() {
		img := s.resourceManager.GetImage(b.SpriteKey)
		if img == nil {
			continue
		}

		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(b.Width/float64(bounds.Dx()), b.Height/float64(bounds.Dy()))
		op.GeoM.Translate(b.X, b.Y)
		if b.Captured {
			op.ColorScale.ScaleAlpha(capturedBirdAlpha)
		}
		screen.DrawImage(img, op)
	}
}

// drawHUD 顶部居中显示得分和剩余时间
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	scoreText, timeText := HUDText(s.snapshot)
	cx := float64(config.GameWindowWidth) / 2
	drawShadowedText(screen, scoreText, s.scoreFont, cx, config.HUDScoreY+config.HUDFontSize/2)
	drawShadowedText(screen, timeText, s.timerFont, cx, config.HUDTimerY+config.HUDTimerFontSize/2)
}

// toastBox 一条提示在屏幕上的位置
type toastBox struct {
	X, Y, W, H float64
	Message    string
}

// layoutToasts 计算提示框位置
// 每个位置各自成列，最新的一条离屏幕边缘最近
func layoutToasts(views []systems.ToastView, measure func(string) (float64, float64), screenW, screenH float64) []toastBox {
	offsets := make(map[types.Placement]float64)
	boxes := make([]toastBox, 0, len(views))

	for i := len(views) - 1; i >= 0; i-- {
		v := views[i]
		tw, th := measure(v.Message)
		w := tw + 2*config.ToastPadding
		h := th + 2*config.ToastPadding

		var x float64
		switch v.Placement {
		case types.PlacementTopCenter, types.PlacementBottomCenter:
			x = (screenW - w) / 2
		case types.PlacementTopRight, types.PlacementBottomRight:
			x = screenW - config.ToastMarginX - w
		default:
			x = config.ToastMarginX
		}

		offset := offsets[v.Placement]
		var y float64
		if v.Placement.IsTop() {
			y = config.ToastMarginY + offset
		} else {
			y = screenH - config.ToastMarginY - offset - h
		}
		offsets[v.Placement] = offset + h + config.ToastSpacing

		boxes = append(boxes, toastBox{X: x, Y: y, W: w, H: h, Message: v.Message})
	}
	return boxes
}

// toastAlpha 提示框透明度：出现时缓出淡入，消失前线性淡出
func toastAlpha(age, remaining float64) float64 {
	fadeIn := utils.EaseOutCubic(utils.Clamp01(age / toastFadeIn))
	fadeOut := utils.Clamp01(remaining / toastFadeOut)
	return fadeIn * fadeOut
}

func (s *GameScene) drawToasts(screen *ebiten.Image) {
	if s.toastFont == nil {
		return
	}
	lineSpacing := s.toastFont.Size * 1.3

	// 长消息按单词折行
	views := s.toastSystem.Visible()
	alphas := make(map[string]float64, len(views))
	for i := range views {
		wrapped := strings.Join(utils.WrapText(views[i].Message, s.toastFont, toastMaxTextWidth), "\n")
		views[i].Message = wrapped
		alphas[wrapped] = toastAlpha(views[i].Age, views[i].Remaining)
	}

	measure := func(msg string) (float64, float64) {
		return text.Measure(msg, s.toastFont, lineSpacing)
	}
	boxes := layoutToasts(views, measure,
		float64(config.GameWindowWidth), float64(config.GameWindowHeight))

	for _, b := range boxes {
		alpha := alphas[b.Message]
		bg := toastBgColor
		bg.A = uint8(float64(bg.A) * alpha)
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, true)

		op := &text.DrawOptions{}
		op.GeoM.Translate(b.X+config.ToastPadding, b.Y+config.ToastPadding)
		op.LineSpacing = lineSpacing
		op.ColorScale.ScaleWithColor(toastTextColor)
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, b.Message, s.toastFont, op)
	}
}

// drawFlash 拍照闪光，全屏白色按透明度淡出
func (s *GameScene) drawFlash(screen *ebiten.Image) {
	alpha := s.flashSystem.CurrentAlpha()
	if alpha <= 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight,
		color.RGBA{0xff, 0xff, 0xff, uint8(alpha * 255)}, false)
}

// drawDialog 绘制结算对话框和半透明遮罩
func (s *GameScene) drawDialog(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.uiEntityManager)
	for _, id := range ids {
		dialog, _ := ecs.GetComponent[*components.DialogComponent](s.uiEntityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.uiEntityManager, id)
		if !dialog.IsVisible {
			continue
		}

		vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, overlayColor, false)

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(dialog.Width), float32(dialog.Height)
		vector.DrawFilledRect(screen, x, y, w, h, dialogBgColor, true)
		vector.StrokeRect(screen, x, y, w, h, 3, dialogBorderColor, true)

		cx := pos.X + dialog.Width/2
		drawCenteredText(screen, dialog.Title, s.titleFont, cx, pos.Y+44, dialogTextColor)
		drawCenteredText(screen, dialog.Message, s.dialogFont, cx, pos.Y+96, dialogTextColor)

		for i, btn := range dialog.Buttons {
			clr := buttonColor
			switch i {
			case dialog.PressedButtonIdx:
				clr = buttonPressColor
			case dialog.HoveredButtonIdx:
				clr = buttonHoverColor
			}
			bx, by := pos.X+btn.X, pos.Y+btn.Y
			vector.DrawFilledRect(screen, float32(bx), float32(by), float32(btn.Width), float32(btn.Height), clr, true)
			drawCenteredText(screen, btn.Label, s.dialogFont, bx+btn.Width/2, by+btn.Height/2, hudColor)
		}
	}
}

// drawReticle 相机取景框光标
func drawReticle(screen *ebiten.Image, x, y float64) {
	fx, fy := float32(x), float32(y)
	vector.StrokeCircle(screen, fx, fy, reticleRadius, 2, reticleColor, true)
	vector.StrokeLine(screen, fx-reticleRadius-6, fy, fx-4, fy, 2, reticleColor, true)
	vector.StrokeLine(screen, fx+4, fy, fx+reticleRadius+6, fy, 2, reticleColor, true)
	vector.StrokeLine(screen, fx, fy-reticleRadius-6, fx, fy-4, 2, reticleColor, true)
	vector.StrokeLine(screen, fx, fy+4, fx, fy+reticleRadius+6, 2, reticleColor, true)
}
