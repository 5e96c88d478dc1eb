package components

import "image/color"

// LaunchState 发射体的生命周期阶段
type LaunchState int

const (
	// LaunchAscending 正在上升，绘制弹头和尾迹
	LaunchAscending LaunchState = iota
	// LaunchExploded 已爆炸，只推进和绘制爆炸粒子
	LaunchExploded
)

// String 返回状态名，用于日志
func (s LaunchState) String() string {
	switch s {
	case LaunchAscending:
		return "Ascending"
	case LaunchExploded:
		return "Exploded"
	default:
		return "Unknown"
	}
}

// TrailPoint 尾迹上的一个历史位置
type TrailPoint struct {
	X float64
	Y float64
}

// LaunchComponent 一枚烟花发射体
//
// 位置保存在同一实体的 PositionComponent 上。
// 不变量：
//   - len(Trail) 不超过配置的尾迹长度，最老的点在 Trail[0]
//   - 上升阶段 Particles 为空；爆炸时一次性填充，之后只减不增
type LaunchComponent struct {
	// TargetY 上升到该高度（Y 不大于它）时爆炸
	TargetY float64
	// SpeedY 每帧的纵向位移，负值向上
	SpeedY float64
	// Color 创建时随机分配的颜色，目前不参与绘制
	Color color.RGBA

	State LaunchState
	Trail []TrailPoint

	// Particles 爆炸粒子，归本发射体独占
	Particles []BurstParticle
}

// IsExploded 是否已经爆炸
func (l *LaunchComponent) IsExploded() bool {
	return l.State == LaunchExploded
}

// IsFinished 已爆炸且所有爆炸粒子都已消失
func (l *LaunchComponent) IsFinished() bool {
	return l.State == LaunchExploded && len(l.Particles) == 0
}
