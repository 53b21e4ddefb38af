package components

// SpriteComponent 存储实体的视觉表现
// Key 为当前应绘制的精灵键（由 SpriteCache 解析为图像），
// Width/Height 为缩放后的绘制尺寸，同时用于判断鸟是否完全飞出屏幕
type SpriteComponent struct {
	Key    string
	Width  float64
	Height float64
}
