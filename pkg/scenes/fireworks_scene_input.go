package scenes

import (
	"log"

	"github.com/gonewx/fireworks/pkg/components"
	"github.com/gonewx/fireworks/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// sceneCommand 键盘映射后的场景命令
type sceneCommand int

const (
	cmdNone sceneCommand = iota
	cmdOpenGreeting
	cmdSubmitName
	cmdBackspace
	cmdBack
	cmdToggleMute
	cmdToggleStars
	cmdClear
)

// handleKeyboard 读取键盘输入
// 贺卡输入名字时所有字符进入名字，快捷键只在其他状态生效
func (s *FireworksScene) handleKeyboard() {
	if s.greetingSystem.State() == components.GreetingEnteringName {
		s.runes = ebiten.AppendInputChars(s.runes[:0])
		for _, r := range s.runes {
			s.greetingSystem.TypeRune(r)
		}
		if repeatingKeyPressed(ebiten.KeyBackspace) {
			s.apply(cmdBackspace)
		}
		if utils.IsAnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) {
			s.apply(cmdSubmitName)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.apply(cmdBack)
		}
		return
	}

	switch {
	case utils.IsAnyKeyJustPressed(ebiten.KeyEscape, ebiten.KeyEnter, ebiten.KeyNumpadEnter):
		s.apply(cmdBack)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		s.apply(cmdOpenGreeting)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.apply(cmdToggleMute)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		s.apply(cmdToggleStars)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.apply(cmdClear)
	}
}

// repeatingKeyPressed 按住时按键重复（用于退格）
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// apply 执行场景命令
func (s *FireworksScene) apply(cmd sceneCommand) {
	switch cmd {
	case cmdOpenGreeting:
		s.greetingSystem.Open()
	case cmdSubmitName:
		s.greetingSystem.Submit()
	case cmdBackspace:
		s.greetingSystem.Backspace()
	case cmdBack:
		s.greetingSystem.Back()
	case cmdToggleMute:
		s.toggleMute()
	case cmdToggleStars:
		s.toggleStars()
	case cmdClear:
		s.fireworkSystem.Clear()
	}
}

func (s *FireworksScene) toggleMute() {
	if s.audio != nil {
		s.audio.ToggleMute()
		return
	}
	if s.settings != nil {
		s.settings.ToggleAndSave(&s.settings.GetSettings().SoundEnabled)
	}
}

func (s *FireworksScene) toggleStars() {
	visible := !s.starfieldSystem.IsVisible()
	if s.settings != nil {
		visible = s.settings.ToggleAndSave(&s.settings.GetSettings().ShowStars)
	}
	s.starfieldSystem.SetVisible(visible)
	log.Printf("[FireworksScene] 星空: %v", visible)
}

// handlePointers 每个刚按下的指针发射一枚烟花
func (s *FireworksScene) handlePointers() {
	s.presses = utils.AppendJustPressedPointers(s.presses[:0])
	for _, p := range s.presses {
		s.pointerDown(float64(p.X), float64(p.Y))
	}
}

// pointerDown 点中贺卡按钮时只切换贺卡，其余位置以当前画布高度为发射起点
func (s *FireworksScene) pointerDown(x, y float64) {
	if s.inGreetingButton(x, y) {
		s.pressGreetingButton()
		return
	}
	s.fireworkSystem.OnPointerDown(x, y, s.height)
}

// pressGreetingButton 贺卡打开时关闭
// 关闭时桌面端进入输入名字；移动端没有键盘，直接用默认称呼显示祝福语
func (s *FireworksScene) pressGreetingButton() {
	switch {
	case s.greetingSystem.State() != components.GreetingIdle:
		s.apply(cmdBack)
	case utils.IsMobile():
		s.greetingSystem.ShowFor(s.cfg.Greeting.DefaultName)
	default:
		s.apply(cmdOpenGreeting)
	}
}
