//go:build ignore

// validate_birds 检查鸟类原型表和局配置
//
// 用法:
//
//	go run tools/validate_birds.go [data/birds.yaml] [data/round.yaml]
package main

import (
	"fmt"
	"os"

	"github.com/decker502/birdquest/pkg/config"
	"gopkg.in/yaml.v3"
)

func main() {
	birdsPath := "data/birds.yaml"
	roundPath := "data/round.yaml"
	if len(os.Args) > 1 {
		birdsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		roundPath = os.Args[2]
	}

	failed := false

	data, err := os.ReadFile(birdsPath)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	// 先按原始结构检查未知字段
	var raw struct {
		Birds []map[string]interface{} `yaml:"birds"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	known := map[string]bool{
		"id": true, "name": true, "upPose": true, "downPose": true,
		"speed": true, "points": true, "color": true, "width": true, "height": true,
	}
	for i, bird := range raw.Birds {
		for key := range bird {
			if !known[key] {
				fmt.Printf("⚠️  第 %d 只鸟有未知字段 %q\n", i+1, key)
			}
		}
	}

	catalog, err := config.ParseBirdCatalog(data)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", birdsPath, err)
		failed = true
	} else {
		fmt.Printf("✅ %s: %d 个原型\n", birdsPath, len(catalog.Birds))
		for _, b := range catalog.Birds {
			fmt.Printf("   %-10s speed=%-4v points=%-3d %vx%v %s\n",
				b.DisplayName(), b.Speed, b.Points, b.Width, b.Height, b.Color)
		}
	}

	roundData, err := os.ReadFile(roundPath)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}
	roundConfig, err := config.ParseRoundConfig(roundData)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", roundPath, err)
		failed = true
	} else {
		fmt.Printf("✅ %s: %d 秒, 阈值 %d/%d/%d\n", roundPath, roundConfig.DurationSeconds,
			roundConfig.Tiers.Exceptional, roundConfig.Tiers.Great, roundConfig.Tiers.Nice)
		if catalog != nil {
			for _, b := range catalog.Birds {
				tier := roundConfig.ClassifyTier(b.Points)
				fmt.Printf("   %-10s -> %s\n", b.DisplayName(), roundConfig.TierMessage(tier))
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}
