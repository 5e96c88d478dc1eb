package components

// StarComponent 星空背景中的一颗星
// 位置保存在同一实体的 PositionComponent 上
type StarComponent struct {
	// Size 方形边长（像素）
	Size float64
	// Period 一次完整闪烁的时长（秒）
	Period float64
	// Phase 初始相位 [0, 1)，让星星不同步闪烁
	Phase float64
	// NoiseOffset 噪声采样偏移，每颗星取不同的噪声曲线
	NoiseOffset float64
	// Brightness 当前亮度 [0, 1]，由 StarfieldSystem 每帧更新
	Brightness float64
}
