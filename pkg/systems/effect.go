package systems

// Effect 模拟过程中产生的外部副作用（目前只有音效）
// 系统只负责把 Effect 放进队列，由场景在推进结束后统一交给播放器
type Effect struct {
	SoundID string
}

// EffectQueue 按产生顺序保存 Effect
type EffectQueue struct {
	effects []Effect
}

// NewEffectQueue 创建空队列
func NewEffectQueue() *EffectQueue {
	return &EffectQueue{effects: make([]Effect, 0, 8)}
}

// PushSound 加入一个音效
func (q *EffectQueue) PushSound(soundID string) {
	if soundID == "" {
		return
	}
	q.effects = append(q.effects, Effect{SoundID: soundID})
}

// Len 返回队列中尚未处理的 Effect 数量
func (q *EffectQueue) Len() int {
	return len(q.effects)
}

// Drain 取出并清空队列中的所有 Effect
func (q *EffectQueue) Drain() []Effect {
	if len(q.effects) == 0 {
		return nil
	}
	drained := make([]Effect, len(q.effects))
	copy(drained, q.effects)
	q.effects = q.effects[:0]
	return drained
}

// DispatchTo 把队列中的音效交给播放器并清空队列
// player 为 nil 时直接丢弃（静音模式或测试）
//
// 返回: 播放成功的音效数量
func (q *EffectQueue) DispatchTo(player SoundPlayer) int {
	played := 0
	for _, e := range q.Drain() {
		if player == nil {
			continue
		}
		if player.PlaySound(e.SoundID) {
			played++
		}
	}
	return played
}
