package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapWords 按单词把文本折成不超过 maxWidth 的多行
// 单个单词超宽时独占一行，不再拆分
func WrapWords(s string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 || maxWidth <= 0 || measure == nil {
		return []string{s}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if measure(candidate) > maxWidth {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// WrapText 用字体测量宽度的 WrapWords，font 为 nil 时不换行
func WrapText(s string, font *text.GoTextFace, maxWidth float64) []string {
	if font == nil {
		return []string{s}
	}
	return WrapWords(s, maxWidth, func(line string) float64 {
		w, _ := text.Measure(line, font, 0)
		return w
	})
}
