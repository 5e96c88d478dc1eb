package systems

import (
	"log"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gonewx/fireworks/pkg/components"
	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/ecs"
	"github.com/gonewx/fireworks/pkg/entities"
)

// GreetingSystem 贺卡状态机
//
//	Idle --Open--> EnteringName --Submit(非空)--> ShowingGreeting
//	EnteringName/ShowingGreeting --Back--> Idle
//
// Submit 时名字为空只设置提示，状态不变。
type GreetingSystem struct {
	entityManager *ecs.EntityManager
	cardID        ecs.EntityID
	cfg           *config.GreetingConfig
	rng           entities.RandomSource
}

// NewGreetingSystem 创建贺卡系统及其单例实体
func NewGreetingSystem(em *ecs.EntityManager, cfg *config.GreetingConfig, rng entities.RandomSource, maxNameLength int) *GreetingSystem {
	if rng == nil {
		rng = entities.NewRandomSource()
	}
	return &GreetingSystem{
		entityManager: em,
		cardID:        entities.NewGreetingCard(em, maxNameLength),
		cfg:           cfg,
		rng:           rng,
	}
}

// Card 返回贺卡组件
func (s *GreetingSystem) Card() *components.GreetingCardComponent {
	card, _ := ecs.GetComponent[*components.GreetingCardComponent](s.entityManager, s.cardID)
	return card
}

// State 当前状态
func (s *GreetingSystem) State() components.GreetingState {
	if card := s.Card(); card != nil {
		return card.State
	}
	return components.GreetingIdle
}

// Open Idle -> EnteringName，清空上一次的输入
func (s *GreetingSystem) Open() bool {
	card := s.Card()
	if card == nil || card.State != components.GreetingIdle {
		return false
	}
	card.State = components.GreetingEnteringName
	card.Elapsed = 0
	card.Name = ""
	card.Message = ""
	card.Prompt = ""
	log.Printf("[GreetingSystem] 打开贺卡")
	return true
}

// TypeRune 输入一个字符（仅 EnteringName 状态，忽略控制字符）
func (s *GreetingSystem) TypeRune(r rune) {
	card := s.Card()
	if card == nil || card.State != components.GreetingEnteringName {
		return
	}
	if !unicode.IsPrint(r) {
		return
	}
	if card.MaxNameLength > 0 && utf8.RuneCountInString(card.Name) >= card.MaxNameLength {
		return
	}
	card.Name += string(r)
	card.Prompt = ""
}

// Backspace 删除最后一个字符
func (s *GreetingSystem) Backspace() {
	card := s.Card()
	if card == nil || card.State != components.GreetingEnteringName || card.Name == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(card.Name)
	card.Name = card.Name[:len(card.Name)-size]
}

// Submit 提交名字
// 名字（去掉首尾空白）为空时设置提示并返回 false；否则随机选一条祝福语
func (s *GreetingSystem) Submit() bool {
	card := s.Card()
	if card == nil || card.State != components.GreetingEnteringName {
		return false
	}

	name := strings.TrimSpace(card.Name)
	if name == "" {
		card.Prompt = s.cfg.EmptyNamePrompt
		return false
	}

	card.Message = s.Compose(name)
	card.Prompt = ""
	card.State = components.GreetingShowing
	card.Elapsed = 0
	log.Printf("[GreetingSystem] 生成祝福语: %s", name)
	return true
}

// ShowFor 跳过输入名字，直接为 name 显示祝福语（没有键盘时使用）
// 只能从 Idle 进入；name 为空白时使用配置的默认称呼
func (s *GreetingSystem) ShowFor(name string) bool {
	if !s.Open() {
		return false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.cfg.DefaultName
	}
	s.Card().Name = name
	return s.Submit()
}

// Back 返回 Idle
func (s *GreetingSystem) Back() {
	card := s.Card()
	if card == nil || card.State == components.GreetingIdle {
		return
	}
	card.State = components.GreetingIdle
	card.Elapsed = 0
	card.Prompt = ""
}

// Update 推进面板动画计时（Idle 状态不计时）
func (s *GreetingSystem) Update(deltaTime float64) {
	card := s.Card()
	if card == nil || card.State == components.GreetingIdle {
		return
	}
	card.Elapsed += deltaTime
}

// Compose 随机选一条模板并替换 {name}、{year}
func (s *GreetingSystem) Compose(name string) string {
	messages := s.cfg.Messages
	if len(messages) == 0 {
		return name
	}
	idx := int(s.rng.Float64() * float64(len(messages)))
	if idx >= len(messages) {
		idx = len(messages) - 1
	}
	return FormatGreeting(messages[idx], name, s.cfg.Year)
}

// FormatGreeting 替换模板中的占位符
func FormatGreeting(template, name string, year int) string {
	return strings.NewReplacer(
		"{name}", name,
		"{year}", strconv.Itoa(year),
	).Replace(template)
}
