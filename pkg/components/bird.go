package components

// BirdComponent 标记实体为一只飞行中的鸟
// 原型相关字段在生成时从 config.BirdArchetype 复制，生命周期内保持不变
type BirdComponent struct {
	ArchetypeID string  // 原型ID，如 "Swallow"
	Name        string  // 显示名称，用于捕获提示
	Speed       float64 // 每帧向左移动的像素数
	Points      int     // 捕获得分

	// Captured 是否已被拍到
	// 从捕获成功的那一刻起为 true，直到鸟飞出左边界被重新生成
	// 用于防止同一只鸟在一次飞行中被重复计分
	Captured bool

	// SpawnCount 已生成的次数（初次生成为 1，每次重生 +1）
	SpawnCount int
}
