package config

// 布局配置常量
// 本文件定义了桌面端窗口尺寸与 HUD、对话框等 UI 元素的位置

const (
	// GameWindowWidth 游戏逻辑屏幕宽度（像素），也是鸟群模拟的视口宽度
	GameWindowWidth = 960

	// GameWindowHeight 游戏逻辑屏幕高度（像素），也是鸟群模拟的视口高度
	GameWindowHeight = 640

	// HUDScoreY 分数文字的Y坐标（水平居中）
	HUDScoreY = 12.0

	// HUDTimerY 剩余时间文字的Y坐标（水平居中）
	HUDTimerY = 44.0

	// HUDFontSize 分数文字字号
	HUDFontSize = 26.0

	// HUDTimerFontSize 剩余时间文字字号
	HUDTimerFontSize = 20.0

	// ToastMarginX 提示框距屏幕左右边缘的距离
	ToastMarginX = 16.0

	// ToastMarginY 提示框距屏幕上下边缘的距离
	ToastMarginY = 16.0

	// ToastSpacing 相邻提示框之间的垂直间距
	ToastSpacing = 8.0

	// ToastPadding 提示框内边距
	ToastPadding = 10.0

	// ToastFontSize 提示文字字号
	ToastFontSize = 16.0

	// DialogWidth 游戏结束对话框宽度
	DialogWidth = 360.0

	// DialogHeight 游戏结束对话框高度
	DialogHeight = 220.0

	// DialogButtonWidth 对话框按钮宽度
	DialogButtonWidth = 130.0

	// DialogButtonHeight 对话框按钮高度
	DialogButtonHeight = 44.0

	// StartButtonWidth 开始页面按钮宽度
	StartButtonWidth = 200.0

	// StartButtonHeight 开始页面按钮高度
	StartButtonHeight = 60.0
)
