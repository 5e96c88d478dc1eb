package entities

import "math/rand/v2"

// RandomSource 烟花工厂使用的随机数来源
// 生产环境使用全局随机数；测试注入固定序列以得到可预测的结果
type RandomSource interface {
	// Float64 返回 [0, 1) 内的伪随机数
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// NewRandomSource 返回基于 math/rand/v2 全局源的随机数来源
func NewRandomSource() RandomSource {
	return globalRandom{}
}

// NewSeededRandomSource 返回固定种子的随机数来源（仅用于测试和复现问题）
func NewSeededRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
