package components

// RoundTimerComponent 一局倒计时的簿记
// 挂在模拟区的计时实体上，随一局一起创建和销毁
type RoundTimerComponent struct {
	// Token 本局倒计时的能力令牌
	// 只有携带相同令牌的触发才会被处理，取消时令牌作废
	Token uint64

	// Running 触发器是否仍在运行
	Running bool

	// TicksHandled 已处理的有效触发次数
	TicksHandled int
}
