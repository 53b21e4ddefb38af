package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (start screen or the round itself).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，场景被切换掉时调用 Dispose 释放资源
//
// GameScene 借此停止后台倒计时，避免旧的一局在切回开始界面后继续运行
type Disposable interface {
	Dispose()
}
