package entities

import (
	"fmt"

	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/ecs"
)

// GameOverDialogCallback 游戏结束对话框的回调函数类型
type GameOverDialogCallback func()

// NewGameOverDialogEntity 创建游戏结束对话框实体
//
// 参数：
//   - em: 实体管理器
//   - windowWidth, windowHeight: 游戏窗口大小，对话框居中
//   - finalScore: 显示的最终得分
//   - onRestart: "Restart"按钮回调
//   - onMenu: "Menu"按钮回调（可选，为 nil 时只显示"Restart"按钮）
func NewGameOverDialogEntity(
	em *ecs.EntityManager,
	windowWidth, windowHeight int,
	finalScore int,
	onRestart GameOverDialogCallback,
	onMenu GameOverDialogCallback,
) ecs.EntityID {
	dialogWidth := config.DialogWidth
	dialogHeight := config.DialogHeight
	btnWidth := config.DialogButtonWidth
	btnHeight := config.DialogButtonHeight
	btnY := dialogHeight - btnHeight - 24

	dialogEntity := em.CreateEntity()

	ecs.AddComponent(em, dialogEntity, &components.PositionComponent{
		X: float64(windowWidth)/2 - dialogWidth/2,
		Y: float64(windowHeight)/2 - dialogHeight/2,
	})

	restart := components.DialogButton{
		Label:  "Restart",
		Y:      btnY,
		Width:  btnWidth,
		Height: btnHeight,
		OnClick: func() {
			if onRestart != nil {
				onRestart()
			}
		},
	}

	var buttons []components.DialogButton
	if onMenu != nil {
		// 双按钮水平排列
		const btnSpacing = 20.0
		restart.X = dialogWidth/2 - btnWidth - btnSpacing/2
		menu := components.DialogButton{
			Label:   "Menu",
			X:       dialogWidth/2 + btnSpacing/2,
			Y:       btnY,
			Width:   btnWidth,
			Height:  btnHeight,
			OnClick: onMenu,
		}
		buttons = []components.DialogButton{restart, menu}
	} else {
		restart.X = (dialogWidth - btnWidth) / 2
		buttons = []components.DialogButton{restart}
	}

	ecs.AddComponent(em, dialogEntity, &components.DialogComponent{
		Title:            "Game Over",
		Message:          fmt.Sprintf("Final Score: %d", finalScore),
		Buttons:          buttons,
		IsVisible:        true,
		Width:            dialogWidth,
		Height:           dialogHeight,
		AutoClose:        true,
		HoveredButtonIdx: -1,
		PressedButtonIdx: -1,
	})

	return dialogEntity
}
