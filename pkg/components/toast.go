package components

import "github.com/decker502/birdquest/pkg/types"

// ToastComponent 捕获提示消息
// 只负责显示，不影响游戏状态；过期由 LifetimeComponent 控制
type ToastComponent struct {
	Message   string
	Placement types.Placement
}
