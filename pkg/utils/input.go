// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerFrame 一帧内的指针输入
// 鼠标左键和触摸统一成同一种指针，触摸优先
type PointerFrame struct {
	JustPressed  bool    // 本帧刚按下
	JustReleased bool    // 本帧刚释放
	X, Y         float64 // 指针位置（释放时为最后一次触摸位置）
	IsTouch      bool    // 是否来自触摸
}

// PointerReader 逐帧读取指针输入
// 触摸释放那一帧已经拿不到位置，所以记住最后一次触摸位置
type PointerReader struct {
	lastTouchX, lastTouchY int
}

// NewPointerReader 创建指针读取器
func NewPointerReader() *PointerReader {
	return &PointerReader{}
}

// Read 读取本帧指针输入，每帧调用一次
func (r *PointerReader) Read() PointerFrame {
	var frame PointerFrame

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		r.lastTouchX, r.lastTouchY = ebiten.TouchPosition(ids[0])
	}

	if pressed := inpututil.AppendJustPressedTouchIDs(nil); len(pressed) > 0 {
		x, y := ebiten.TouchPosition(pressed[0])
		r.lastTouchX, r.lastTouchY = x, y
		frame.JustPressed = true
		frame.IsTouch = true
		frame.X, frame.Y = float64(x), float64(y)
		return frame
	}

	if released := inpututil.AppendJustReleasedTouchIDs(nil); len(released) > 0 {
		frame.JustReleased = true
		frame.IsTouch = true
		frame.X, frame.Y = float64(r.lastTouchX), float64(r.lastTouchY)
		return frame
	}

	x, y := ebiten.CursorPosition()
	frame.X, frame.Y = float64(x), float64(y)
	frame.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	frame.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return frame
}
