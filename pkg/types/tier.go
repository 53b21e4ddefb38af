package types

// Tier 捕获提示的评价档位
// 按分值从高到低依次判断，命中第一个即返回
type Tier int

const (
	// TierConsolation 安慰（分值低于 nice 阈值）
	TierConsolation Tier = iota
	// TierNice 不错
	TierNice
	// TierGreat 很棒
	TierGreat
	// TierExceptional 出色（通常是速度最快、分值最高的鸟）
	TierExceptional
)

// String 返回档位名称
func (t Tier) String() string {
	switch t {
	case TierExceptional:
		return "exceptional"
	case TierGreat:
		return "great"
	case TierNice:
		return "nice"
	default:
		return "consolation"
	}
}

// BirdPose 鸟的翅膀姿态（两帧循环扇动）
type BirdPose int

const (
	// PoseDown 翅膀向下（初始姿态）
	PoseDown BirdPose = iota
	// PoseUp 翅膀向上
	PoseUp
)
