package config

// 窗口与逻辑屏幕尺寸
// 逻辑尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 1280
	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 720
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Fireworks"
)

// TicksPerSecond 逻辑帧率（与 Ebitengine 默认 TPS 一致）
// 动画按固定帧步长推进，延迟类参数按 1/TicksPerSecond 秒累计
const TicksPerSecond = 60

// FrameDeltaTime 每帧时间步长（秒）
const FrameDeltaTime = 1.0 / TicksPerSecond
