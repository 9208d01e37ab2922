// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WheelPixelsPerLine 一格滚轮对应的像素距离（与浏览器 deltaY 的量级一致）
const WheelPixelsPerLine = 100.0

// TouchPhase 本帧单指触摸的阶段
type TouchPhase int

const (
	// TouchNone 没有触摸
	TouchNone TouchPhase = iota
	// TouchStarted 手指刚按下
	TouchStarted
	// TouchMoved 手指按住（位置可能未变）
	TouchMoved
	// TouchEnded 手指刚抬起
	TouchEnded
)

// InputFrame 一帧内采集到的输入
type InputFrame struct {
	// WheelY 滚轮距离（像素），正值表示向下滚动/前进
	WheelY float64

	Touch  TouchPhase
	TouchY float64

	// 指针位置（屏幕坐标），PointerMoved 为 false 时与上一帧相同
	PointerX, PointerY float64
	PointerMoved       bool

	// Activate 点击、触摸、空格或回车
	Activate bool
}

// InputReader 从 ebiten 读取输入，只跟踪第一根手指
type InputReader struct {
	touchID  ebiten.TouchID
	touching bool
	lastY    int

	cursorX, cursorY int
	cursorKnown      bool
}

// NewInputReader 创建输入读取器
func NewInputReader() *InputReader {
	return &InputReader{touchID: -1}
}

// Poll 读取本帧输入，每帧调用一次
func (r *InputReader) Poll() InputFrame {
	var f InputFrame

	_, dy := ebiten.Wheel()
	f.WheelY = WheelDelta(dy)

	phase, y := r.trackTouch(
		inpututil.AppendJustPressedTouchIDs(nil),
		ebiten.AppendTouchIDs(nil),
		ebiten.TouchPosition,
	)
	f.Touch = phase
	f.TouchY = float64(y)

	cx, cy := ebiten.CursorPosition()
	if phase == TouchStarted || phase == TouchMoved {
		tx, ty := ebiten.TouchPosition(r.touchID)
		cx, cy = tx, ty
	}
	f.PointerX, f.PointerY = float64(cx), float64(cy)
	f.PointerMoved = !r.cursorKnown || cx != r.cursorX || cy != r.cursorY
	r.cursorX, r.cursorY, r.cursorKnown = cx, cy, true

	f.Activate = phase == TouchStarted ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	return f
}

// WheelDelta 把 ebiten 滚轮值（向上为正，单位为格）换算为前进像素
func WheelDelta(dy float64) float64 {
	return -dy * WheelPixelsPerLine
}

// trackTouch 更新单指跟踪状态
//
// 参数:
//   - justPressed: 本帧新按下的触摸
//   - active: 当前所有活动触摸
//   - position: 查询触摸位置
//
// 返回本帧阶段以及触点 Y（TouchEnded 时为最后一次已知位置）
func (r *InputReader) trackTouch(justPressed, active []ebiten.TouchID, position func(ebiten.TouchID) (int, int)) (TouchPhase, int) {
	if r.touching {
		for _, id := range active {
			if id == r.touchID {
				_, y := position(id)
				r.lastY = y
				return TouchMoved, y
			}
		}
		r.touching = false
		r.touchID = -1
		return TouchEnded, r.lastY
	}

	if len(justPressed) > 0 {
		r.touchID = justPressed[0]
		r.touching = true
		_, y := position(r.touchID)
		r.lastY = y
		return TouchStarted, y
	}
	return TouchNone, 0
}
