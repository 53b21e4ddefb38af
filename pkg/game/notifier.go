package game

import (
	"log"

	"github.com/decker502/birdquest/pkg/types"
)

// Notifier 捕获提示的接收方
// 发出即忘：不阻塞、不需要确认，接收方可以丢弃或合并消息而不影响游戏状态
type Notifier interface {
	Notify(message string, durationMs int, placement types.Placement)
}

// NotifierFunc 让普通函数满足 Notifier 接口
type NotifierFunc func(message string, durationMs int, placement types.Placement)

// Notify 调用函数本身
func (f NotifierFunc) Notify(message string, durationMs int, placement types.Placement) {
	f(message, durationMs, placement)
}

// LogNotifier 把提示写入日志，用于无界面运行
type LogNotifier struct{}

// Notify 记录提示消息
func (LogNotifier) Notify(message string, durationMs int, placement types.Placement) {
	log.Printf("[Notify] %s (%dms, %s)", message, durationMs, placement)
}

// MultiNotifier 把同一条提示分发给多个接收方，nil 项会被跳过
type MultiNotifier []Notifier

// Notify 依次转发
func (m MultiNotifier) Notify(message string, durationMs int, placement types.Placement) {
	for _, n := range m {
		if n != nil {
			n.Notify(message, durationMs, placement)
		}
	}
}
