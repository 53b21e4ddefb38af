// birdquest-tui 在终端里玩 Bird Quest
//
// 用法:
//
//	go run ./cmd/birdquest-tui [-duration 15] [-mute] [-log birdquest.log]
//
// 鼠标左键拍照，r 或 Enter 在结束后重开，q / Esc / Ctrl-C 退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/decker502/birdquest/pkg/app"
	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/embedded"
	"github.com/decker502/birdquest/pkg/tui"
	"github.com/gdamore/tcell/v2"
)

var (
	duration  = flag.Int("duration", 0, "每局时长（秒），0 表示使用 data/round.yaml")
	mute      = flag.Bool("mute", false, "关闭音效")
	logPath   = flag.String("log", "", "日志文件路径（屏幕被占用，默认丢弃日志）")
	birdsPath = flag.String("birds", "data/birds.yaml", "鸟类原型表路径")
	roundPath = flag.String("round", "data/round.yaml", "局配置路径")
)

func main() {
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
		os.Exit(1)
	}

	// 从当前目录读取 data/
	embedded.Init(os.DirFS("."))

	catalog, roundConfig, err := app.LoadConfigs(app.Config{
		DurationSeconds: *duration,
		BirdCatalogPath: *birdsPath,
		RoundConfigPath: *roundPath,
	})
	if err != nil {
		// 不在仓库目录下运行时退回内置默认配置
		fmt.Fprintf(os.Stderr, "配置加载失败，使用内置默认配置: %v\n", err)
		catalog = config.DefaultBirdCatalog()
		roundConfig = config.DefaultRoundConfig()
		if *duration > 0 {
			roundConfig.DurationSeconds = *duration
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	term := tui.NewTerminal(screen, tui.Options{
		Catalog: catalog,
		Config:  roundConfig,
		Sound:   tui.NewSound(*mute),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := term.Run(ctx)
	stop()

	term.Close()
	screen.Fini()

	if runErr != nil && runErr != context.Canceled {
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		os.Exit(1)
	}
}

// setupLog 终端被游戏画面占用，日志只能写文件或丢弃
func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}
