package tui

import (
	"github.com/decker502/birdquest/pkg/types"
)

// notice 一条终端提示
type notice struct {
	message   string
	placement types.Placement
	remaining float64 // 秒
}

// NoticeBoard 终端前端的提示接收方，实现 game.Notifier
// 超过 maxVisible 条时丢弃最旧的
type NoticeBoard struct {
	notices    []notice
	maxVisible int
}

// NewNoticeBoard 创建提示板，maxVisible <= 0 表示不限制
func NewNoticeBoard(maxVisible int) *NoticeBoard {
	return &NoticeBoard{maxVisible: maxVisible}
}

// Notify 追加一条提示，立即返回
func (b *NoticeBoard) Notify(message string, durationMs int, placement types.Placement) {
	if durationMs <= 0 {
		durationMs = 3000
	}
	b.notices = append(b.notices, notice{
		message:   message,
		placement: placement,
		remaining: float64(durationMs) / 1000,
	})
	if b.maxVisible > 0 && len(b.notices) > b.maxVisible {
		b.notices = b.notices[len(b.notices)-b.maxVisible:]
	}
}

// Update 推进时间并移除过期的提示
func (b *NoticeBoard) Update(deltaTime float64) {
	kept := b.notices[:0]
	for _, n := range b.notices {
		n.remaining -= deltaTime
		if n.remaining > 0 {
			kept = append(kept, n)
		}
	}
	b.notices = kept
}

// Messages 返回仍在显示的提示，最新的在前
func (b *NoticeBoard) Messages() []string {
	out := make([]string, 0, len(b.notices))
	for i := len(b.notices) - 1; i >= 0; i-- {
		out = append(out, b.notices[i].message)
	}
	return out
}

// byPlacement 按位置分组，组内最新的在前
func (b *NoticeBoard) byPlacement() map[types.Placement][]string {
	groups := make(map[types.Placement][]string)
	for i := len(b.notices) - 1; i >= 0; i-- {
		n := b.notices[i]
		groups[n.placement] = append(groups[n.placement], n.message)
	}
	return groups
}
