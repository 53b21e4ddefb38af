package game

import (
	"fmt"

	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/types"
)

// FormatCaptureMessage 生成捕获提示文本并返回对应档位
// 格式："Photo taken of a <Name>! <评语>"，评语按分值档位从 cfg 中选取
func FormatCaptureMessage(name string, points int, cfg *config.RoundConfig) (string, types.Tier) {
	if cfg == nil {
		cfg = config.DefaultRoundConfig()
	}
	tier := cfg.ClassifyTier(points)
	flavor := cfg.TierMessage(tier)
	if flavor == "" {
		return fmt.Sprintf("Photo taken of a %s!", name), tier
	}
	return fmt.Sprintf("Photo taken of a %s! %s", name, flavor), tier
}
