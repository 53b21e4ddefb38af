package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/decker502/birdquest/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// MinBirdArchetypes 目录中至少需要的鸟类原型数量
// 五档速度/分值共同构成游戏的难度平衡
const MinBirdArchetypes = 5

// DefaultBirdCatalogPath 内置鸟类目录的路径
const DefaultBirdCatalogPath = "data/birds.yaml"

// BirdArchetype 单个鸟类原型的配置（只读）
type BirdArchetype struct {
	ID       string  `yaml:"id"`       // 原型ID，如 "Pigeon"
	Name     string  `yaml:"name"`     // 显示名称，用于提示消息，如 "BlackBird"
	UpPose   string  `yaml:"upPose"`   // 翅膀向上的精灵键
	DownPose string  `yaml:"downPose"` // 翅膀向下的精灵键
	Speed    float64 `yaml:"speed"`    // 每帧移动像素数
	Points   int     `yaml:"points"`   // 捕获得分
	Color    string  `yaml:"color"`    // 身体颜色（#rrggbb）
	Width    float64 `yaml:"width"`    // 原始精灵宽度（像素，缩放前）
	Height   float64 `yaml:"height"`   // 原始精灵高度（像素，缩放前）
}

// BirdCatalog 鸟类目录文件结构
type BirdCatalog struct {
	Birds []BirdArchetype `yaml:"birds"`
}

// LoadBirdCatalog 从 YAML 文件加载鸟类目录
// 参数：
//
//	filepath - 配置文件路径（"data/" 前缀读取嵌入资源，其他路径读取磁盘）
//
// 返回：
//
//	*BirdCatalog - 解析后的目录
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadBirdCatalog(filepath string) (*BirdCatalog, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read bird catalog %s: %w", filepath, err)
	}

	catalog, err := ParseBirdCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("invalid bird catalog %s: %w", filepath, err)
	}
	return catalog, nil
}

// ParseBirdCatalog 解析并校验鸟类目录 YAML 内容
func ParseBirdCatalog(data []byte) (*BirdCatalog, error) {
	var catalog BirdCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse bird catalog YAML: %w", err)
	}

	if err := validateBirdCatalog(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// validateBirdCatalog 验证鸟类目录的完整性和合法性
func validateBirdCatalog(catalog *BirdCatalog) error {
	if len(catalog.Birds) < MinBirdArchetypes {
		return fmt.Errorf("at least %d bird archetypes are required, got %d", MinBirdArchetypes, len(catalog.Birds))
	}

	seen := make(map[string]bool, len(catalog.Birds))
	for i, bird := range catalog.Birds {
		if bird.ID == "" {
			return fmt.Errorf("bird #%d: id is required", i+1)
		}
		if seen[bird.ID] {
			return fmt.Errorf("bird %s: duplicate id", bird.ID)
		}
		seen[bird.ID] = true

		if bird.UpPose == "" || bird.DownPose == "" {
			return fmt.Errorf("bird %s: both upPose and downPose are required", bird.ID)
		}
		if bird.Speed <= 0 {
			return fmt.Errorf("bird %s: speed must be positive, got %v", bird.ID, bird.Speed)
		}
		if bird.Points < 0 {
			return fmt.Errorf("bird %s: points cannot be negative, got %d", bird.ID, bird.Points)
		}
		if bird.Width <= 0 || bird.Height <= 0 {
			return fmt.Errorf("bird %s: width and height must be positive, got %vx%v", bird.ID, bird.Width, bird.Height)
		}
		if bird.Color != "" {
			if _, err := ParseHexColor(bird.Color); err != nil {
				return fmt.Errorf("bird %s: %w", bird.ID, err)
			}
		}
	}

	return nil
}

// Get 按ID获取原型
// 如果原型不存在，返回 nil 和 false
func (c *BirdCatalog) Get(id string) (*BirdArchetype, bool) {
	for i := range c.Birds {
		if c.Birds[i].ID == id {
			return &c.Birds[i], true
		}
	}
	return nil, false
}

// DisplayName 返回用于提示消息的名称，未配置 name 时使用 id
func (a *BirdArchetype) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// BodyColor 返回身体颜色，未配置或格式错误时返回灰色
func (a *BirdArchetype) BodyColor() color.RGBA {
	c, err := ParseHexColor(a.Color)
	if err != nil {
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	}
	return c
}

// DefaultBirdCatalog 返回与 data/birds.yaml 一致的内置目录
// 用于无法读取嵌入资源的场景（如单元测试、无界面驱动程序）
func DefaultBirdCatalog() *BirdCatalog {
	return &BirdCatalog{
		Birds: []BirdArchetype{
			{ID: "Pigeon", Name: "Pigeon", UpPose: "PigeonUp", DownPose: "PigeonDown", Speed: 7, Points: 7, Color: "#8a8f99", Width: 96, Height: 72},
			{ID: "Jay", Name: "Jay", UpPose: "GreyUp", DownPose: "GreyDown", Speed: 8, Points: 6, Color: "#4a7fc1", Width: 96, Height: 72},
			{ID: "Swallow", Name: "Swallow", UpPose: "SwallowUp", DownPose: "SwallowDown", Speed: 12, Points: 10, Color: "#1f2a44", Width: 80, Height: 60},
			{ID: "BlackBird", Name: "BlackBird", UpPose: "BlackBirdUp", DownPose: "BlackBirdDown", Speed: 5, Points: 4, Color: "#222222", Width: 88, Height: 66},
			{ID: "Dove", Name: "Dove", UpPose: "DoveUp", DownPose: "DoveDown", Speed: 3, Points: 2, Color: "#f2f0ea", Width: 104, Height: 78},
		},
	}
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
