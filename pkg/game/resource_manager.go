package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/birdquest/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager 集中管理字体和鸟类精灵
//
// 游戏没有外部美术资源：字体来自 Go 字体族，鸟类两种姿态用 vector 按原型颜色绘制。
// 资源只创建一次并缓存复用。非线程安全，只在游戏主线程上使用。
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace // 字号 -> 字体
	imageCache    map[string]*ebiten.Image     // 精灵键 -> 图像
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[float64]*text.GoTextFace),
		imageCache:    make(map[string]*ebiten.Image),
	}
}

// LoadFont 返回指定字号的字体，首次调用时解析 Go Regular 字体
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// GetFont 返回已加载的字体，未加载时返回 nil
func (rm *ResourceManager) GetFont(size float64) *text.GoTextFace {
	return rm.fontFaceCache[size]
}

// LoadBirdSprites 为原型表中每只鸟绘制两种姿态的精灵
// 已存在的键不会重复绘制
func (rm *ResourceManager) LoadBirdSprites(catalog *config.BirdCatalog) {
	for i := range catalog.Birds {
		arch := &catalog.Birds[i]
		if _, ok := rm.imageCache[arch.DownPose]; !ok {
			rm.imageCache[arch.DownPose] = drawBird(arch, false)
		}
		if _, ok := rm.imageCache[arch.UpPose]; !ok {
			rm.imageCache[arch.UpPose] = drawBird(arch, true)
		}
	}
	log.Printf("[ResourceManager] 已生成 %d 个鸟类精灵", len(rm.imageCache))
}

// GetImage 返回精灵图像，不存在时返回 nil
func (rm *ResourceManager) GetImage(key string) *ebiten.Image {
	return rm.imageCache[key]
}

// HasImage 精灵是否已生成
func (rm *ResourceManager) HasImage(key string) bool {
	_, ok := rm.imageCache[key]
	return ok
}

var (
	beakColor  = color.RGBA{0xf2, 0xa2, 0x2c, 0xff}
	eyeColor   = color.RGBA{0x10, 0x10, 0x10, 0xff}
	eyeOutline = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// drawBird 绘制一只头朝左的鸟，wingsUp 决定翅膀方向
func drawBird(arch *config.BirdArchetype, wingsUp bool) *ebiten.Image {
	w, h := float32(arch.Width), float32(arch.Height)
	img := ebiten.NewImage(int(arch.Width), int(arch.Height))

	body := arch.BodyColor()
	wing := color.RGBA{
		R: uint8(float64(body.R) * 0.75),
		G: uint8(float64(body.G) * 0.75),
		B: uint8(float64(body.B) * 0.75),
		A: 0xff,
	}

	cy := h * 0.55
	r := h * 0.22

	// 身体：三个相连的圆
	vector.DrawFilledCircle(img, w*0.40, cy, r, body, true)
	vector.DrawFilledCircle(img, w*0.55, cy, r*0.9, body, true)
	vector.DrawFilledCircle(img, w*0.70, cy+r*0.1, r*0.7, body, true)
	// 尾巴
	vector.StrokeLine(img, w*0.72, cy, w*0.95, cy-r*0.3, r*0.5, body, true)
	// 头
	vector.DrawFilledCircle(img, w*0.22, cy-r*0.6, r*0.75, body, true)
	// 喙
	vector.StrokeLine(img, w*0.14, cy-r*0.6, w*0.03, cy-r*0.4, r*0.3, beakColor, true)
	// 眼睛
	vector.DrawFilledCircle(img, w*0.19, cy-r*0.8, r*0.2, eyeOutline, true)
	vector.DrawFilledCircle(img, w*0.185, cy-r*0.8, r*0.1, eyeColor, true)

	// 翅膀
	tipY := h * 0.92
	if wingsUp {
		tipY = h * 0.06
	}
	stroke := r * 0.45
	vector.StrokeLine(img, w*0.42, cy, w*0.58, tipY, stroke, wing, true)
	vector.StrokeLine(img, w*0.58, cy, w*0.66, tipY, stroke, wing, true)

	return img
}
