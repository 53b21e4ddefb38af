package tui

import (
	"testing"

	"github.com/decker502/birdquest/pkg/types"
)

func TestNoticeBoard(t *testing.T) {
	t.Run("到期移除", func(t *testing.T) {
		b := NewNoticeBoard(5)
		b.Notify("a", 1000, types.PlacementTopLeft)
		b.Notify("b", 3000, types.PlacementTopLeft)
		b.Update(1.5)
		msgs := b.Messages()
		if len(msgs) != 1 || msgs[0] != "b" {
			t.Errorf("messages = %v, want [b]", msgs)
		}
		b.Update(2)
		if len(b.Messages()) != 0 {
			t.Errorf("expected all notices expired, got %v", b.Messages())
		}
	})

	t.Run("超出上限丢弃最旧的", func(t *testing.T) {
		b := NewNoticeBoard(2)
		b.Notify("1", 3000, types.PlacementTopLeft)
		b.Notify("2", 3000, types.PlacementTopLeft)
		b.Notify("3", 3000, types.PlacementTopLeft)
		msgs := b.Messages()
		if len(msgs) != 2 || msgs[0] != "3" || msgs[1] != "2" {
			t.Errorf("messages = %v, want [3 2]", msgs)
		}
	})

	t.Run("非正时长使用默认值", func(t *testing.T) {
		b := NewNoticeBoard(0)
		b.Notify("x", 0, types.PlacementBottomRight)
		b.Update(2.9)
		if len(b.Messages()) != 1 {
			t.Error("notice should last 3 seconds by default")
		}
		groups := b.byPlacement()
		if len(groups[types.PlacementBottomRight]) != 1 {
			t.Errorf("groups = %v", groups)
		}
	})
}
