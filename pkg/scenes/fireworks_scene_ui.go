package scenes

import (
	"fmt"
	"image/color"

	"github.com/gonewx/fireworks/pkg/components"
	"github.com/gonewx/fireworks/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hudColor        = color.NRGBA{R: 200, G: 200, B: 200, A: 200}
	hudMutedColor   = color.NRGBA{R: 255, G: 120, B: 120, A: 220}
	panelColor      = color.NRGBA{R: 10, G: 10, B: 30, A: 210}
	panelBorder     = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
	greetingColor   = color.NRGBA{R: 255, G: 230, B: 150, A: 255}
	promptWarnColor = color.NRGBA{R: 255, G: 100, B: 100, A: 255}
)

const (
	hudMargin     = 10.0
	greetingScale = 2.0
	panelPadding  = 24.0
	// 面板入场动画：从下方滑入并淡入
	panelIntroSeconds = 0.35
	panelSlide        = 40.0

	// 右上角贺卡按钮，位于 MUTED 下方
	greetingButtonW   = 120.0
	greetingButtonH   = 36.0
	greetingButtonTop = 36.0
)

// hudText 左上角的状态和按键提示
func (s *FireworksScene) hudText() string {
	if utils.IsMobile() {
		return fmt.Sprintf("Fireworks: %d\nTap anywhere to launch\nTap Greeting for a card", s.LaunchCount())
	}
	return fmt.Sprintf("Fireworks: %d\nClick: launch  G: greeting  M: mute  S: stars  C: clear  F11: fullscreen", s.LaunchCount())
}

// soundEnabled 当前音效开关
func (s *FireworksScene) soundEnabled() bool {
	switch {
	case s.audio != nil:
		return s.audio.IsSoundEnabled()
	case s.settings != nil:
		return s.settings.GetSettings().SoundEnabled
	default:
		return true
	}
}

// drawHUD 绘制 HUD（直接画在屏幕上，不受余晖影响）
func (s *FireworksScene) drawHUD(screen *ebiten.Image) {
	face := utils.DefaultFace()
	utils.DrawText(screen, s.hudText(), face, hudMargin, hudMargin, 1, hudColor, text.AlignStart)

	if !s.soundEnabled() {
		w := float64(screen.Bounds().Dx())
		utils.DrawText(screen, "MUTED", face, w-hudMargin, hudMargin, 1, hudMutedColor, text.AlignEnd)
	}

	s.drawGreetingButton(screen)

	if s.showFPS {
		h := screen.Bounds().Dy()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), int(hudMargin), h-20)
	}
}

// greetingButtonRect 贺卡按钮区域，按当前画布宽度靠右
func (s *FireworksScene) greetingButtonRect() (x, y, w, h float64) {
	return s.width - hudMargin - greetingButtonW, greetingButtonTop, greetingButtonW, greetingButtonH
}

// inGreetingButton 点 (px, py) 是否落在贺卡按钮上
func (s *FireworksScene) inGreetingButton(px, py float64) bool {
	x, y, w, h := s.greetingButtonRect()
	return px >= x && px < x+w && py >= y && py < y+h
}

// greetingButtonLabel 贺卡关闭时打开，打开时关闭
func (s *FireworksScene) greetingButtonLabel() string {
	if s.greetingSystem.State() == components.GreetingIdle {
		return "Greeting"
	}
	return "Close"
}

func (s *FireworksScene) drawGreetingButton(screen *ebiten.Image) {
	x, y, w, h := s.greetingButtonRect()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelColor, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, panelBorder, true)

	face := utils.DefaultFace()
	ty := y + (h-utils.LineHeight(face))/2
	utils.DrawText(screen, s.greetingButtonLabel(), face, x+w/2, ty, 1, greetingColor, text.AlignCenter)
}

// drawGreeting 绘制贺卡面板
func (s *FireworksScene) drawGreeting(screen *ebiten.Image) {
	card := s.greetingSystem.Card()
	if card == nil || card.State == components.GreetingIdle {
		return
	}

	face := utils.DefaultFace()
	lineHeight := utils.LineHeight(face) * greetingScale
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	panelW := sw * 0.7
	if panelW > 900 {
		panelW = 900
	}
	textWidth := (panelW - 2*panelPadding) / greetingScale

	var lines []string
	var colors []color.Color
	intro := utils.EaseOutCubic(utils.Progress(card.Elapsed, panelIntroSeconds))
	addLines := func(str string, clr color.NRGBA) {
		clr = utils.FadeNRGBA(clr, intro)
		for _, l := range utils.WrapText(str, face, textWidth) {
			lines = append(lines, l)
			colors = append(colors, clr)
		}
	}

	switch card.State {
	case components.GreetingEnteringName:
		addLines("Enter your name:", hudColor)
		addLines(card.Name+"_", greetingColor)
		if card.Prompt != "" {
			addLines(card.Prompt, promptWarnColor)
		}
		addLines("Enter: OK   Esc: back", hudColor)
	case components.GreetingShowing:
		addLines(card.Message, greetingColor)
		if utils.IsMobile() {
			addLines("Tap Close: back", hudColor)
		} else {
			addLines("Enter / Esc: back", hudColor)
		}
	}

	panelH := float64(len(lines))*lineHeight + 2*panelPadding
	px := (sw - panelW) / 2
	py := utils.Lerp((sh-panelH)/2+panelSlide, (sh-panelH)/2, intro)

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), utils.FadeNRGBA(panelColor, intro), true)
	vector.StrokeRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), 2, utils.FadeNRGBA(panelBorder, intro), true)

	for i, line := range lines {
		y := py + panelPadding + float64(i)*lineHeight
		utils.DrawText(screen, line, face, sw/2, y, greetingScale, colors[i], text.AlignCenter)
	}
}
