// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Placement 定义提示消息（toast）在屏幕上的显示位置
type Placement int

const (
	// PlacementTopLeft 左上角（默认）
	PlacementTopLeft Placement = iota
	// PlacementTopCenter 顶部居中
	PlacementTopCenter
	// PlacementTopRight 右上角
	PlacementTopRight
	// PlacementBottomLeft 左下角
	PlacementBottomLeft
	// PlacementBottomCenter 底部居中
	PlacementBottomCenter
	// PlacementBottomRight 右下角
	PlacementBottomRight
)

var placementNames = map[Placement]string{
	PlacementTopLeft:      "top-left",
	PlacementTopCenter:    "top-center",
	PlacementTopRight:     "top-right",
	PlacementBottomLeft:   "bottom-left",
	PlacementBottomCenter: "bottom-center",
	PlacementBottomRight:  "bottom-right",
}

// String 返回位置的配置文件写法（如 "top-left"）
func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return "unknown"
}

// IsTop 是否位于屏幕上方
func (p Placement) IsTop() bool {
	return p == PlacementTopLeft || p == PlacementTopCenter || p == PlacementTopRight
}

// ParsePlacement 解析配置文件中的位置字符串
func ParsePlacement(s string) (Placement, error) {
	for p, name := range placementNames {
		if name == s {
			return p, nil
		}
	}
	return PlacementTopLeft, fmt.Errorf("unknown placement %q", s)
}
