package utils

import (
	"strings"
	"testing"
)

// TestWrapText 测试文本换行功能（basicfont 每个字符 7 像素宽）
func TestWrapText(t *testing.T) {
	font := DefaultFace()

	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{
			name:     "短文本不换行",
			input:    "Happy New Year",
			maxWidth: 1000,
			want:     []string{"Happy New Year"},
		},
		{
			name:     "按单词换行",
			input:    "Happy New Year",
			maxWidth: 7 * 10,
			want:     []string{"Happy New", "Year"},
		},
		{
			name:     "超长单词强制断行",
			input:    "abcdefghij",
			maxWidth: 7 * 4,
			want:     []string{"abcd", "efgh", "ij"},
		},
		{
			name:     "空文本",
			input:    "",
			maxWidth: 100,
			want:     []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.input, font, tt.maxWidth)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("WrapText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestWrapTextWidth 每一行都不超过最大宽度
func TestWrapTextWidth(t *testing.T) {
	font := DefaultFace()
	msg := "Cheers to a fresh start, Alice! May this year bring you happiness, love, and the courage to pursue everything you've always wanted."
	maxWidth := 7.0 * 30

	for _, line := range WrapText(msg, font, maxWidth) {
		if w := measureTextWidth(line, font); w > maxWidth {
			t.Errorf("line %q width %.0f exceeds %.0f", line, w, maxWidth)
		}
	}
}

func TestLineHeight(t *testing.T) {
	if h := LineHeight(DefaultFace()); h <= 0 {
		t.Errorf("LineHeight = %f, want > 0", h)
	}
}
