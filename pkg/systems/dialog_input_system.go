package systems

import (
	"log"

	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/ecs"
	"github.com/decker502/birdquest/pkg/utils"
)

// DialogInputSystem 对话框输入系统
//
// 职责：
//   - 跟踪按钮的悬停/按下状态（供渲染使用）
//   - 指针在按钮上释放时触发按钮回调
//
// 对话框是模态的：点击对话框外部不会关闭它，只会被吞掉。
// 多个对话框同时存在时只处理最上层（ID 最大）的那个。
type DialogInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewDialogInputSystem 创建对话框输入系统
func NewDialogInputSystem(em *ecs.EntityManager) *DialogInputSystem {
	return &DialogInputSystem{
		entityManager: em,
	}
}

// HasVisibleDialog 是否有可见的对话框
func (s *DialogInputSystem) HasVisibleDialog() bool {
	_, ok := s.topDialog()
	return ok
}

// HandlePointer 处理一帧指针输入，返回输入是否被对话框消费
func (s *DialogInputSystem) HandlePointer(frame utils.PointerFrame) bool {
	if !s.HasVisibleDialog() {
		return false
	}

	s.HandleMove(frame.X, frame.Y)
	if frame.JustPressed {
		s.HandlePress(frame.X, frame.Y)
	}
	if frame.JustReleased {
		s.HandleRelease(frame.X, frame.Y)
	}
	return true
}

// HandleMove 更新最上层对话框的悬停按钮
func (s *DialogInputSystem) HandleMove(x, y float64) {
	id, ok := s.topDialog()
	if !ok {
		return
	}
	dialog, pos := s.dialogAt(id)
	dialog.HoveredButtonIdx = buttonIndexAt(dialog, x-pos.X, y-pos.Y)
}

// HandlePress 记录按下的按钮
func (s *DialogInputSystem) HandlePress(x, y float64) {
	id, ok := s.topDialog()
	if !ok {
		return
	}
	dialog, pos := s.dialogAt(id)
	dialog.PressedButtonIdx = buttonIndexAt(dialog, x-pos.X, y-pos.Y)
}

// HandleRelease 在同一个按钮上按下并释放时触发回调，返回是否触发
// 对话框出现之前就按下的指针不会触发任何按钮。
// AutoClose 的对话框在回调之前被删除，回调里可以放心地重建场景
func (s *DialogInputSystem) HandleRelease(x, y float64) bool {
	id, ok := s.topDialog()
	if !ok {
		return false
	}
	dialog, pos := s.dialogAt(id)
	pressed := dialog.PressedButtonIdx
	dialog.PressedButtonIdx = -1

	idx := buttonIndexAt(dialog, x-pos.X, y-pos.Y)
	if idx < 0 || idx != pressed {
		return false
	}

	btn := dialog.Buttons[idx]
	log.Printf("[DialogInputSystem] 点击了按钮 '%s'", btn.Label)

	if dialog.AutoClose {
		dialog.IsVisible = false
		s.entityManager.DestroyEntity(id)
	}
	if btn.OnClick != nil {
		btn.OnClick()
	}
	return true
}

// topDialog 返回最上层的可见对话框
func (s *DialogInputSystem) topDialog() (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith2[*components.DialogComponent, *components.PositionComponent](s.entityManager)
	for i := len(ids) - 1; i >= 0; i-- {
		dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, ids[i])
		if dialog.IsVisible {
			return ids[i], true
		}
	}
	return 0, false
}

func (s *DialogInputSystem) dialogAt(id ecs.EntityID) (*components.DialogComponent, *components.PositionComponent) {
	dialog, _ := ecs.GetComponent[*components.DialogComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	return dialog, pos
}

// buttonIndexAt 返回对话框局部坐标下的按钮索引，没有时返回 -1
func buttonIndexAt(dialog *components.DialogComponent, localX, localY float64) int {
	for i := range dialog.Buttons {
		if dialog.Buttons[i].Contains(localX, localY) {
			return i
		}
	}
	return -1
}
