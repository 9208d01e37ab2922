// Package scenes 实现开场页与旅程页两个场景。
package scenes

import (
	"github.com/decker502/scrollpath/pkg/game"
)

// Scene 是 game.Scene 的别名
type Scene = game.Scene

var (
	_ Scene         = (*IntroScene)(nil)
	_ Scene         = (*JourneyScene)(nil)
	_ game.Saveable = (*JourneyScene)(nil)
)
