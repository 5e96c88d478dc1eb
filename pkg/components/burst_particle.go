package components

// BurstParticle 爆炸产生的一个碎片
//
// 速度在创建时确定，之后只有重力改变 VY。
// Age 按帧累加的时间（秒），用来判断何时触发二次小爆炸。
type BurstParticle struct {
	X, Y    float64
	VX, VY  float64
	Gravity float64
	// Alpha 透明度，从 1 线性递减，<= 0 时粒子被移除（不管小爆炸是否还在）
	Alpha float64

	Gradient RadialGradient

	// MicroDelay 创建后多久触发二次小爆炸（秒）
	MicroDelay float64
	Age        float64
	// MicroTriggered 小爆炸只触发一次
	MicroTriggered bool

	// Pending 已生成、尚未到加入时间的小爆炸，按 ReleaseAt 升序
	Pending []PendingMiniExplosion
	// MiniExplosions 正在运动的小爆炸
	MiniExplosions []MiniExplosion
}

// PendingMiniExplosion 等待加入的小爆炸
type PendingMiniExplosion struct {
	// ReleaseAt 粒子 Age 达到该值时加入 MiniExplosions
	ReleaseAt float64
	Explosion MiniExplosion
}
