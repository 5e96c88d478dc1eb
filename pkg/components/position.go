package components

// PositionComponent 存储实体在绘制表面上的位置（像素坐标，Y 轴向下）
type PositionComponent struct {
	X float64
	Y float64
}
