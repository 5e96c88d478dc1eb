package components

// GreetingState 贺卡界面状态
type GreetingState int

const (
	// GreetingIdle 贺卡关闭
	GreetingIdle GreetingState = iota
	// GreetingEnteringName 正在输入名字
	GreetingEnteringName
	// GreetingShowing 显示祝福语
	GreetingShowing
)

// String 返回状态名，用于日志
func (s GreetingState) String() string {
	switch s {
	case GreetingIdle:
		return "Idle"
	case GreetingEnteringName:
		return "EnteringName"
	case GreetingShowing:
		return "ShowingGreeting"
	default:
		return "Unknown"
	}
}

// GreetingCardComponent 贺卡单例组件
type GreetingCardComponent struct {
	State GreetingState
	// Name 已输入的名字（原样保存，提交时去掉首尾空白）
	Name string
	// MaxNameLength 名字最大字符数（按 rune 计），0 表示不限
	MaxNameLength int
	// Message 当前显示的祝福语
	Message string
	// Prompt 提示信息（如名字为空），非空时显示在输入框下方
	Prompt string
	// Elapsed 进入当前状态后经过的秒数，驱动面板入场动画
	Elapsed float64
}
