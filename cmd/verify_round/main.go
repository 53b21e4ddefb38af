// verify_round 无界面地跑一局，打印局状态投影流
//
// 倒计时由手动时钟驱动，每个 tick 之间模拟 60 帧，
// 用于在没有显示设备的环境下检查计分、倒计时和结算行为。
//
// 用法:
//
//	go run ./cmd/verify_round -duration 15 -captures 3 -seed 42
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/game"
	"github.com/decker502/birdquest/pkg/systems"
	"github.com/decker502/birdquest/pkg/types"
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	duration = flag.Int("duration", 15, "每局时长（秒）")
	captures = flag.Int("captures", 3, "尝试拍照的次数（每秒最多一次）")
	ticks    = flag.Int("ticks", 0, "触发的倒计时次数，0 表示时长 + 2")
	seed     = flag.Int64("seed", 1, "随机种子")
	restart  = flag.Bool("restart", true, "结束后重开一局并打印重置后的状态")
)

const framesPerTick = 60

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultRoundConfig()
	cfg.DurationSeconds = *duration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	n := *ticks
	if n <= 0 {
		n = *duration + 2
	}

	clock := &systems.ManualClock{}
	round := systems.NewRoundSystem(systems.RoundOptions{
		Config:     cfg,
		Notifier:   game.NotifierFunc(printNotice),
		NewTrigger: clock.NewTrigger,
		Rand:       rand.New(rand.NewSource(*seed)),
	})
	round.Subscribe(printSnapshot)
	round.OnExpire(func(score int) {
		fmt.Printf("expired: final score %d\n", score)
	})

	round.Start()

	remaining := *captures
	for i := 0; i < n; i++ {
		if remaining > 0 && captureOne(round) {
			remaining--
		}
		for f := 0; f < framesPerTick; f++ {
			round.Update(1.0 / framesPerTick)
		}
		if !clock.Tick() {
			fmt.Printf("tick %d: trigger stopped\n", i+1)
		}
		round.Update(1.0 / framesPerTick)
	}

	if *restart {
		fmt.Println("restart requested")
		round.RequestRestart()
		round.Update(1.0 / framesPerTick)
	}
	round.Teardown()
}

// captureOne 点击第一只未被拍下的鸟的中心
func captureOne(round *systems.RoundSystem) bool {
	for _, b := range round.Birds() {
		if b.Captured {
			continue
		}
		return round.HandlePointerDown(b.X+b.Width/2, b.Y+b.Height/2)
	}
	return false
}

func printSnapshot(s game.RoundSnapshot) {
	fmt.Printf("snapshot: score=%d secondsRemaining=%d isOver=%v isModalShown=%v\n",
		s.Score, s.SecondsRemaining, s.IsOver, s.IsModalShown)
}

func printNotice(message string, durationMs int, placement types.Placement) {
	fmt.Printf("notify: %q (%dms, %s)\n", message, durationMs, placement)
}
