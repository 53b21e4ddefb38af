package utils

// PointInRect 判断点 (px, py) 是否落在左上角为 (x, y)、尺寸为 w×h 的矩形内（含边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// CenterRect 返回尺寸为 w×h 的矩形在 outerW×outerH 区域中居中时的左上角
func CenterRect(outerW, outerH, w, h float64) (x, y float64) {
	return (outerW - w) / 2, (outerH - h) / 2
}
