package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 场景（开场页、旅程页）。
// 同一时刻只有一个场景接收 Update 和 Draw。
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：窗口关闭时保存场景状态
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}

// Viewport 窗口的实际尺寸（像素），由 App.Layout 每帧更新
type Viewport struct {
	Width  int
	Height int
}
