package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	startTitleFontSize    = 56.0
	startSubtitleFontSize = 20.0
	startButtonFontSize   = 26.0
	startHintFontSize     = 14.0
)

var (
	startButtonColor      = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
	startButtonHoverColor = color.RGBA{0x43, 0xa0, 0x47, 0xff}
	titleColor            = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// StartScene 开始页面
// 标题 + "Start" 按钮，点击（释放）按钮或按 Enter/空格进入游戏
type StartScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	gameState       *game.GameState
	pointer         *utils.PointerReader

	titleFont    *text.GoTextFace
	subtitleFont *text.GoTextFace
	buttonFont   *text.GoTextFace
	hintFont     *text.GoTextFace

	buttonX, buttonY float64
	hovered          bool
	pressed          bool
}

// NewStartScene 创建开始页面
func NewStartScene(rm *game.ResourceManager, sm *game.SceneManager) *StartScene {
	s := &StartScene{
		resourceManager: rm,
		sceneManager:    sm,
		gameState:       game.GetGameState(),
		pointer:         utils.NewPointerReader(),
	}
	s.buttonX, s.buttonY = utils.CenterRect(config.GameWindowWidth, config.GameWindowHeight,
		config.StartButtonWidth, config.StartButtonHeight)
	s.buttonY += 60

	s.titleFont = loadFont(rm, startTitleFontSize)
	s.subtitleFont = loadFont(rm, startSubtitleFontSize)
	s.buttonFont = loadFont(rm, startButtonFontSize)
	s.hintFont = loadFont(rm, startHintFontSize)
	return s
}

// Update 处理开始按钮和快捷键
func (s *StartScene) Update(deltaTime float64) {
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	s.handlePointer(s.pointer.Read())

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.start()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		toggleSound(s.gameState)
	}
}

// handlePointer 按下并在按钮上释放才算一次点击
// 返回是否开始了游戏
func (s *StartScene) handlePointer(frame utils.PointerFrame) bool {
	s.hovered = s.buttonContains(frame.X, frame.Y)
	if frame.JustPressed && s.hovered {
		s.pressed = true
	}
	if frame.JustReleased {
		wasPressed := s.pressed
		s.pressed = false
		if wasPressed && s.hovered {
			s.start()
			return true
		}
	}
	return false
}

func (s *StartScene) buttonContains(x, y float64) bool {
	return utils.PointInRect(x, y, s.buttonX, s.buttonY, config.StartButtonWidth, config.StartButtonHeight)
}

func (s *StartScene) start() {
	log.Printf("[StartScene] 开始游戏")
	s.sceneManager.Load(game.SceneRound)
}

// Draw 绘制开始页面
func (s *StartScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)

	cx := float64(config.GameWindowWidth) / 2
	drawCenteredText(screen, "Bird Quest", s.titleFont, cx, float64(config.GameWindowHeight)/2-110, titleColor)
	drawCenteredText(screen, "Photograph as many birds as you can before time runs out!",
		s.subtitleFont, cx, float64(config.GameWindowHeight)/2-40, titleColor)

	btnColor := startButtonColor
	if s.hovered {
		btnColor = startButtonHoverColor
	}
	vector.DrawFilledRect(screen, float32(s.buttonX), float32(s.buttonY),
		config.StartButtonWidth, config.StartButtonHeight, btnColor, true)
	vector.StrokeRect(screen, float32(s.buttonX), float32(s.buttonY),
		config.StartButtonWidth, config.StartButtonHeight, 2, titleColor, true)
	drawCenteredText(screen, "Start", s.buttonFont,
		s.buttonX+config.StartButtonWidth/2, s.buttonY+config.StartButtonHeight/2, titleColor)

	drawCenteredText(screen, controlsHint(utils.IsMobile()), s.hintFont,
		cx, float64(config.GameWindowHeight)-48, titleColor)
	drawCenteredText(screen, soundHint(s.gameState), s.hintFont,
		cx, float64(config.GameWindowHeight)-24, titleColor)
}

// controlsHint 操作说明，触屏设备不提示键盘
func controlsHint(mobile bool) string {
	if mobile {
		return "Tap a bird to take its picture"
	}
	return "Click a bird to take its picture, Esc returns here"
}
