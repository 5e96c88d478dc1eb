package utils

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var defaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// DefaultFace 返回内置的等宽位图字体（7x13）
// 不需要任何字体文件，HUD 和贺卡都使用它
func DefaultFace() text.Face {
	return defaultFace
}

// LineHeight 返回字体行高
func LineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

// DrawText 在 (x, y) 绘制文本，scale 为整体缩放
//
// 参数:
//   - align: text.AlignStart 左对齐，text.AlignCenter 时 x 为中心
func DrawText(dst *ebiten.Image, str string, face text.Face, x, y, scale float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.LineSpacing = LineHeight(face)
	text.Draw(dst, str, face, op)
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素，按字体原始大小计算）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，强制断行
//   - 支持中文和英文混合文本
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if measureTextWidth(testLine, font) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// 单词本身超宽，按字符强制断行
		if measureTextWidth(word, font) > maxWidth {
			pieces := breakWord(word, font, maxWidth)
			lines = append(lines, pieces[:len(pieces)-1]...)
			currentLine = pieces[len(pieces)-1]
			continue
		}
		currentLine = word
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	if len(lines) == 0 {
		lines = []string{textStr}
	}

	return lines
}

// breakWord 按字符拆分超宽的单词（或不含空格的中文句子）
func breakWord(word string, font text.Face, maxWidth float64) []string {
	var pieces []string
	current := ""
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)
		if current != "" && measureTextWidth(current+char, font) > maxWidth {
			pieces = append(pieces, current)
			current = ""
		}
		current += char
		word = word[size:]
	}
	return append(pieces, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
