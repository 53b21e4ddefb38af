//go:build mobile

package utils

// IsMobile 移动端构建始终按触摸交互
func IsMobile() bool {
	return true
}
