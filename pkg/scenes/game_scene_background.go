package scenes

import (
	"image/color"

	"github.com/decker502/birdquest/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyTopColor    = color.RGBA{0x6e, 0xb6, 0xf0, 0xff}
	skyBottomColor = color.RGBA{0xc8, 0xe6, 0xfa, 0xff}
	cloudColor     = color.RGBA{0xff, 0xff, 0xff, 0xd0}
	hillFarColor   = color.RGBA{0x7c, 0xb3, 0x42, 0xff}
	hillNearColor  = color.RGBA{0x55, 0x8b, 0x2f, 0xff}
)

// skyBands 天空渐变的色带数
const skyBands = 16

// cloud 一朵云由三个圆组成
type cloud struct {
	x, y, r float32
}

var clouds = []cloud{
	{x: 140, y: 110, r: 28},
	{x: 470, y: 70, r: 22},
	{x: 780, y: 130, r: 32},
}

// drawBackground 绘制天空、云和山丘
func drawBackground(screen *ebiten.Image) {
	w := float32(config.GameWindowWidth)
	h := float32(config.GameWindowHeight)

	bandH := h / skyBands
	for i := 0; i < skyBands; i++ {
		t := float64(i) / float64(skyBands-1)
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, w, bandH+1, lerpColor(skyTopColor, skyBottomColor, t), false)
	}

	for _, c := range clouds {
		vector.DrawFilledCircle(screen, c.x, c.y, c.r, cloudColor, true)
		vector.DrawFilledCircle(screen, c.x+c.r, c.y+c.r*0.2, c.r*0.8, cloudColor, true)
		vector.DrawFilledCircle(screen, c.x-c.r, c.y+c.r*0.25, c.r*0.7, cloudColor, true)
	}

	vector.DrawFilledCircle(screen, w*0.2, h+180, 320, hillFarColor, true)
	vector.DrawFilledCircle(screen, w*0.75, h+220, 380, hillFarColor, true)
	vector.DrawFilledCircle(screen, w*0.5, h+300, 420, hillNearColor, true)
}

// lerpColor 在两个颜色之间线性插值，t 取 0~1
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
