package components

// DialogComponent 对话框组件
// 用于显示模态对话框（如游戏结束时的最终得分）
type DialogComponent struct {
	Title            string         // 对话框标题（如"Game Over"）
	Message          string         // 对话框消息（如"Final Score: 12"）
	Buttons          []DialogButton // 按钮列表
	IsVisible        bool           // 是否可见
	Width            float64        // 对话框宽度
	Height           float64        // 对话框高度
	AutoClose        bool           // 点击按钮后是否自动关闭对话框
	HoveredButtonIdx int            // 当前悬停的按钮索引（-1 表示无）
	PressedButtonIdx int            // 当前按下的按钮索引（-1 表示无）
}

// DialogButton 对话框按钮
type DialogButton struct {
	Label   string  // 按钮文字
	OnClick func()  // 点击回调
	X       float64 // 按钮相对对话框的 X 坐标
	Y       float64 // 按钮相对对话框的 Y 坐标
	Width   float64 // 按钮宽度
	Height  float64 // 按钮高度
}

// Contains 判断相对对话框的坐标是否落在按钮内
func (b *DialogButton) Contains(localX, localY float64) bool {
	return localX >= b.X && localX <= b.X+b.Width &&
		localY >= b.Y && localY <= b.Y+b.Height
}
