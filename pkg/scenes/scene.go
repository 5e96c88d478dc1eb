package scenes

import (
	"github.com/gonewx/fireworks/pkg/game"
)

// Scene 是 game.Scene 的别名
type Scene = game.Scene

var (
	_ Scene         = (*FireworksScene)(nil)
	_ game.Saveable = (*FireworksScene)(nil)
)
