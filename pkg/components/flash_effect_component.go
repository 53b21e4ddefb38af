package components

// FlashEffectComponent 拍照闪光效果组件
// 捕获成功时在整个画面叠加一层逐渐淡出的白色
type FlashEffectComponent struct {
	// Duration 闪光持续时间（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// Intensity 初始闪光强度（0.0 - 1.0）
	// 1.0 = 完全白色，0.0 = 无效果
	Intensity float64

	// IsActive 是否激活（用于临时禁用效果）
	IsActive bool
}

// CurrentAlpha 返回当前时刻的叠加透明度，随时间线性衰减到 0
func (c *FlashEffectComponent) CurrentAlpha() float64 {
	if !c.IsActive || c.Duration <= 0 {
		return 0
	}
	remaining := 1 - c.Elapsed/c.Duration
	if remaining < 0 {
		remaining = 0
	}
	return c.Intensity * remaining
}
