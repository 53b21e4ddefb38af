//go:build !mobile

package utils

import "os"

// IsMobile 是否按移动端（纯触摸）交互
// 桌面端返回 false，设置 BIRDQUEST_MOBILE_EMULATE=1 可在本地模拟移动端
func IsMobile() bool {
	return os.Getenv("BIRDQUEST_MOBILE_EMULATE") == "1"
}
