package entities

// SequenceSource 按固定序列循环返回随机数的 RandomSource
// 用于测试，让工厂和系统的输出可预测
type SequenceSource struct {
	values []float64
	next   int
	// Calls 已经返回的随机数个数
	Calls int
}

// NewSequenceSource 创建固定序列随机源，values 为空时始终返回 0
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// Float64 返回序列中的下一个值，到末尾后从头开始
func (s *SequenceSource) Float64() float64 {
	s.Calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
