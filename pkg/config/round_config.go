package config

import (
	"fmt"
	"time"

	"github.com/decker502/birdquest/pkg/embedded"
	"github.com/decker502/birdquest/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultRoundConfigPath 内置局配置的路径
const DefaultRoundConfigPath = "data/round.yaml"

// TierThresholds 捕获评价阈值（含下界）
// 判断顺序：exceptional -> great -> nice -> consolation，命中第一个即返回
type TierThresholds struct {
	Exceptional int `yaml:"exceptional"`
	Great       int `yaml:"great"`
	Nice        int `yaml:"nice"`
}

// TierMessages 各档位附加在提示消息后的评语
type TierMessages struct {
	Exceptional string `yaml:"exceptional"`
	Great       string `yaml:"great"`
	Nice        string `yaml:"nice"`
	Consolation string `yaml:"consolation"`
}

// ToastConfig 捕获提示的显示参数
type ToastConfig struct {
	DurationMs int    `yaml:"durationMs"` // 显示时长（毫秒）
	Placement  string `yaml:"placement"`  // 显示位置，如 "top-left"
	MaxVisible int    `yaml:"maxVisible"` // 同时可见的最大条数，超出时丢弃最旧的
}

// RoundConfig 一局游戏的参数
type RoundConfig struct {
	DurationSeconds int     `yaml:"durationSeconds"` // 倒计时初始秒数
	TickIntervalMs  int     `yaml:"tickIntervalMs"`  // 倒计时触发间隔（毫秒）
	FlapFrameRate   float64 `yaml:"flapFrameRate"`   // 扇翅动画帧率
	BirdScale       float64 `yaml:"birdScale"`       // 精灵缩放
	FlashDuration   float64 `yaml:"flashDuration"`   // 拍照闪光持续时间（秒）

	Tiers    TierThresholds `yaml:"tiers"`
	Messages TierMessages   `yaml:"messages"`
	Toast    ToastConfig    `yaml:"toast"`
}

// DefaultRoundConfig 返回默认局配置（与 data/round.yaml 一致）
func DefaultRoundConfig() *RoundConfig {
	return &RoundConfig{
		DurationSeconds: 15,
		TickIntervalMs:  1000,
		FlapFrameRate:   10,
		BirdScale:       0.5,
		FlashDuration:   0.25,
		Tiers: TierThresholds{
			Exceptional: 8,
			Great:       5,
			Nice:        1,
		},
		Messages: TierMessages{
			Exceptional: "Wow! That's a fast one!",
			Great:       "Great job!",
			Nice:        "Nice catch!",
			Consolation: "Good try!",
		},
		Toast: ToastConfig{
			DurationMs: 3000,
			Placement:  "top-left",
			MaxVisible: 5,
		},
	}
}

// LoadRoundConfig 从 YAML 文件加载局配置
// 文件中未出现的字段保留默认值
func LoadRoundConfig(filepath string) (*RoundConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read round config %s: %w", filepath, err)
	}

	cfg, err := ParseRoundConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid round config %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseRoundConfig 在默认值之上解析并校验局配置 YAML 内容
func ParseRoundConfig(data []byte) (*RoundConfig, error) {
	cfg := DefaultRoundConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse round config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证局配置的合法性
func (c *RoundConfig) Validate() error {
	if c.DurationSeconds < 1 {
		return fmt.Errorf("durationSeconds must be at least 1, got %d", c.DurationSeconds)
	}
	if c.TickIntervalMs <= 0 {
		return fmt.Errorf("tickIntervalMs must be positive, got %d", c.TickIntervalMs)
	}
	if c.FlapFrameRate <= 0 {
		return fmt.Errorf("flapFrameRate must be positive, got %v", c.FlapFrameRate)
	}
	if c.BirdScale <= 0 {
		return fmt.Errorf("birdScale must be positive, got %v", c.BirdScale)
	}
	if c.FlashDuration < 0 {
		return fmt.Errorf("flashDuration cannot be negative, got %v", c.FlashDuration)
	}
	if c.Tiers.Exceptional < c.Tiers.Great || c.Tiers.Great < c.Tiers.Nice {
		return fmt.Errorf("tier thresholds must satisfy exceptional >= great >= nice, got %d/%d/%d",
			c.Tiers.Exceptional, c.Tiers.Great, c.Tiers.Nice)
	}
	if c.Toast.DurationMs <= 0 {
		return fmt.Errorf("toast.durationMs must be positive, got %d", c.Toast.DurationMs)
	}
	if c.Toast.MaxVisible < 1 {
		return fmt.Errorf("toast.maxVisible must be at least 1, got %d", c.Toast.MaxVisible)
	}
	if _, err := types.ParsePlacement(c.Toast.Placement); err != nil {
		return fmt.Errorf("toast.placement: %w", err)
	}
	return nil
}

// TickInterval 返回倒计时触发间隔
func (c *RoundConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// ToastPlacement 返回提示显示位置，配置非法时回退到左上角
func (c *RoundConfig) ToastPlacement() types.Placement {
	p, err := types.ParsePlacement(c.Toast.Placement)
	if err != nil {
		return types.PlacementTopLeft
	}
	return p
}

// ClassifyTier 按阈值从高到低判断分值所属档位
func (c *RoundConfig) ClassifyTier(points int) types.Tier {
	switch {
	case points >= c.Tiers.Exceptional:
		return types.TierExceptional
	case points >= c.Tiers.Great:
		return types.TierGreat
	case points >= c.Tiers.Nice:
		return types.TierNice
	default:
		return types.TierConsolation
	}
}

// TierMessage 返回档位对应的评语
func (c *RoundConfig) TierMessage(tier types.Tier) string {
	switch tier {
	case types.TierExceptional:
		return c.Messages.Exceptional
	case types.TierGreat:
		return c.Messages.Great
	case types.TierNice:
		return c.Messages.Nice
	default:
		return c.Messages.Consolation
	}
}
