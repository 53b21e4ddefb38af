// Package app 组装 Bird Quest 的 ebiten 应用
//
// 桌面端 main.go 与移动端 mobile 包共用 NewApp，终端前端只复用 LoadConfigs。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 配置文件路径（嵌入资源）
const (
	BirdCatalogPath = "data/birds.yaml"
	RoundConfigPath = "data/round.yaml"
)

// AppName gdata 存储目录名
const AppName = "birdquest"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 以全屏启动（覆盖已保存的设置）
	Fullscreen bool
	// DurationSeconds 覆盖每局时长，<= 0 时使用 data/round.yaml
	DurationSeconds int
	// SkipStartScene 跳过开始页面，直接开始一局
	SkipStartScene bool
	// BirdCatalogPath/RoundConfigPath 为空时使用嵌入的默认文件
	BirdCatalogPath string
	RoundConfigPath string
}

// App 实现 ebiten.Game，把每帧的更新和绘制交给当前场景
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
	// 退出全屏后还要等几帧才能恢复窗口尺寸，<= 0 表示无需恢复
	resizeAfterFrames int
}

// NewApp 加载配置、打开设置存储、准备音效和精灵并进入第一个场景
//
// 调用前必须先 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	catalog, roundConfig, err := LoadConfigs(cfg)
	if err != nil {
		return nil, err
	}

	gameState := game.GetGameState()
	gameState.Catalog = catalog
	gameState.RoundConfig = roundConfig
	log.Printf("[Config] 加载 %d 个鸟类原型, 每局 %d 秒", len(catalog.Birds), roundConfig.DurationSeconds)

	// 设置持久化，失败时仅内存
	gameState.SetGdataManager(game.OpenGdataManager(AppName))
	settings := gameState.GetSettingsManager().GetSettings()

	audioContext := audio.NewContext(game.SampleRate)
	gameState.SetAudioManager(game.NewAudioManager(audioContext, gameState.GetSettingsManager()))
	log.Printf("[App] AudioManager initialized")

	resourceManager := game.NewResourceManager()
	resourceManager.LoadBirdSprites(catalog)

	sceneManager := game.NewSceneManager()
	sceneManager.Register(game.SceneStart, func() game.Scene {
		return scenes.NewStartScene(resourceManager, sceneManager)
	})
	sceneManager.Register(game.SceneRound, func() game.Scene {
		return scenes.NewGameScene(resourceManager, sceneManager)
	})

	if cfg.Fullscreen || settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	startScene := game.SceneStart
	if cfg.SkipStartScene {
		log.Printf("[App] SkipStartScene enabled, starting a round directly")
		startScene = game.SceneRound
	}
	if !sceneManager.Load(startScene) {
		return nil, fmt.Errorf("failed to load scene %s", startScene)
	}

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadConfigs 加载鸟类原型表和局配置，并应用命令行覆盖
func LoadConfigs(cfg Config) (*config.BirdCatalog, *config.RoundConfig, error) {
	catalogPath := cfg.BirdCatalogPath
	if catalogPath == "" {
		catalogPath = BirdCatalogPath
	}
	roundPath := cfg.RoundConfigPath
	if roundPath == "" {
		roundPath = RoundConfigPath
	}

	catalog, err := config.LoadBirdCatalog(catalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("鸟类原型表加载失败: %w", err)
	}
	roundConfig, err := config.LoadRoundConfig(roundPath)
	if err != nil {
		return nil, nil, fmt.Errorf("局配置加载失败: %w", err)
	}

	if cfg.DurationSeconds > 0 {
		roundConfig.DurationSeconds = cfg.DurationSeconds
	}
	return catalog, roundConfig, nil
}

// Update 推进一个 tick，场景收到的 dt 为 1/TPS 秒
func (a *App) Update() error {
	if a.resizeAfterFrames > 0 {
		a.resizeAfterFrames--
		if a.resizeAfterFrames == 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.resizeAfterFrames = 3
	}

	sm := game.GetGameState().GetSettingsManager()
	sm.SetFullscreen(fullscreen)
	if err := sm.Save(); err != nil {
		log.Printf("[App] 保存设置失败: %v", err)
	}
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时用黑边补齐宽高比
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸也是每局模拟的视口，独立于实际窗口大小
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
