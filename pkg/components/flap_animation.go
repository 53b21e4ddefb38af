package components

import "github.com/decker502/birdquest/pkg/types"

// FlapAnimationComponent 两帧循环的扇翅动画
// Frames[0] 为翅膀向下姿态（初始帧），Frames[1] 为翅膀向上姿态
type FlapAnimationComponent struct {
	Frames       [2]string // 精灵键：[PoseDown, PoseUp]
	FrameRate    float64   // 每秒帧数
	Elapsed      float64   // 当前帧已持续时间（秒）
	CurrentFrame int       // 当前帧索引
}

// Pose 返回当前帧对应的翅膀姿态
func (c *FlapAnimationComponent) Pose() types.BirdPose {
	if c.CurrentFrame == 1 {
		return types.PoseUp
	}
	return types.PoseDown
}
