package main

import (
	"flag"
	"log"

	"github.com/decker502/birdquest/pkg/app"
	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	duration   = flag.Int("duration", 0, "每局时长（秒），0 表示使用 data/round.yaml")
	fullscreen = flag.Bool("fullscreen", false, "以全屏启动")
	skipStart  = flag.Bool("skip-start", false, "跳过开始页面，直接开始一局")
	birdsPath  = flag.String("birds", "", "鸟类原型表路径（默认使用内置 data/birds.yaml）")
	roundPath  = flag.String("round", "", "局配置路径（默认使用内置 data/round.yaml）")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		Fullscreen:      *fullscreen,
		DurationSeconds: *duration,
		SkipStartScene:  *skipStart,
		BirdCatalogPath: *birdsPath,
		RoundConfigPath: *roundPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Bird Quest")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
