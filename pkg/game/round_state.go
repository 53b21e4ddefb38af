package game

import "log"

// RoundSnapshot 一局游戏状态的只读投影
// 表现层只能看到这几个汇总字段，不接触任何实体内部数据
type RoundSnapshot struct {
	Score            int  // 当前得分
	SecondsRemaining int  // 剩余秒数
	IsOver           bool // 本局是否结束
	IsModalShown     bool // 是否显示结算对话框
}

// RoundListener 状态变化回调
type RoundListener func(RoundSnapshot)

type roundSubscription struct {
	id int
	fn RoundListener
}

// RoundState 一局游戏的权威状态：得分累加器 + 倒计时 + 结束标志
//
// 所有读写都发生在游戏主线程上，因此不需要加锁。
// 得分在 AddScore 内同步读-改-写，调用方在同一步里拿到的就是最新值。
//
// 不变式：
//   - IsModalShown 为 true 时 IsOver 一定为 true
//   - SecondsRemaining 每局最多到达 0 一次，且正是这次转换设置 IsOver
//   - IsOver 为 true 后得分不再变化
type RoundState struct {
	initialSeconds int
	score          int
	remaining      int
	isOver         bool
	isModalShown   bool

	subscribers []roundSubscription
	nextSubID   int
}

// NewRoundState 创建新的局状态，倒计时从 initialSeconds 开始
func NewRoundState(initialSeconds int) *RoundState {
	if initialSeconds < 0 {
		initialSeconds = 0
	}
	return &RoundState{
		initialSeconds: initialSeconds,
		remaining:      initialSeconds,
	}
}

// Reset 把得分清零、倒计时恢复初始值、清除结束标志，然后通知订阅者
// 订阅关系保持不变，跨局的表现层无需重新订阅
func (rs *RoundState) Reset() {
	rs.score = 0
	rs.remaining = rs.initialSeconds
	rs.isOver = false
	rs.isModalShown = false
	rs.publish()
}

// InitialSeconds 返回倒计时初始秒数
func (rs *RoundState) InitialSeconds() int {
	return rs.initialSeconds
}

// Score 返回当前得分
func (rs *RoundState) Score() int {
	return rs.score
}

// SecondsRemaining 返回剩余秒数
func (rs *RoundState) SecondsRemaining() int {
	return rs.remaining
}

// IsOver 本局是否已结束
func (rs *RoundState) IsOver() bool {
	return rs.isOver
}

// IsModalShown 是否应显示结算对话框
func (rs *RoundState) IsModalShown() bool {
	return rs.isModalShown
}

// Snapshot 返回当前状态的投影
func (rs *RoundState) Snapshot() RoundSnapshot {
	return RoundSnapshot{
		Score:            rs.score,
		SecondsRemaining: rs.remaining,
		IsOver:           rs.isOver,
		IsModalShown:     rs.isModalShown,
	}
}

// AddScore 累加得分并返回新得分
//
// 本局已结束时拒绝累加，返回 (当前得分, false)。
// 负分值按 0 处理，得分在一局内单调不减。
func (rs *RoundState) AddScore(points int) (int, bool) {
	if rs.isOver {
		return rs.score, false
	}
	if points < 0 {
		points = 0
	}
	rs.score += points
	rs.publish()
	return rs.score, true
}

// TickSecond 倒计时推进一秒
//
// 已结束时为空操作。剩余秒数到达 0 时夹紧为 0，并在同一步里
// 同时设置 IsOver 和 IsModalShown。仅在本次调用触发了结束时返回 true。
func (rs *RoundState) TickSecond() bool {
	if rs.isOver {
		return false
	}

	rs.remaining--
	expired := false
	if rs.remaining <= 0 {
		rs.remaining = 0
		rs.isOver = true
		rs.isModalShown = true
		expired = true
		log.Printf("[RoundState] 本局结束，最终得分: %d", rs.score)
	}
	rs.publish()
	return expired
}

// Subscribe 注册状态变化回调，返回取消订阅函数
// 回调按注册顺序同步调用；注册时不会立即回放当前状态
func (rs *RoundState) Subscribe(fn RoundListener) func() {
	if fn == nil {
		return func() {}
	}
	rs.nextSubID++
	id := rs.nextSubID
	rs.subscribers = append(rs.subscribers, roundSubscription{id: id, fn: fn})

	return func() {
		for i, sub := range rs.subscribers {
			if sub.id == id {
				rs.subscribers = append(rs.subscribers[:i], rs.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (rs *RoundState) publish() {
	if len(rs.subscribers) == 0 {
		return
	}
	snap := rs.Snapshot()
	// 拷贝一份，允许回调内取消订阅
	subs := make([]roundSubscription, len(rs.subscribers))
	copy(subs, rs.subscribers)
	for _, sub := range subs {
		sub.fn(snap)
	}
}
