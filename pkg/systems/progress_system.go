package systems

import (
	"log"
	"math"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/utils"
)

// ProgressController 管理实际进度与目标进度。
//
// 输入事件只修改 Target（累加后立即限制在 [0, TotalLength]），
// Tick 每帧把 Actual 向 Target 做一阶指数平滑。
// 同一帧内的多个输入（滚轮 + 触摸）按累加合成，不会互相覆盖。
type ProgressController struct {
	state components.ProgressState

	totalLength      float64
	smoothingFactor  float64
	wheelSensitivity float64
	touchSensitivity float64

	// active 为 false 时丢弃所有输入（不排队）
	active bool
}

// NewProgressController 创建进度控制器。
// cfg.Progress.RequireActivation 为 true 时，控制器在 Activate 之前不接受输入。
func NewProgressController(cfg *config.JourneyConfig) *ProgressController {
	return &ProgressController{
		totalLength:      cfg.TotalLength,
		smoothingFactor:  cfg.Progress.SmoothingFactor,
		wheelSensitivity: cfg.Progress.WheelSensitivity,
		touchSensitivity: cfg.Progress.TouchSensitivity,
		active:           !cfg.Progress.RequireActivation,
	}
}

// ApplyInputDelta 把 delta 累加到目标进度。
//
// 规则：
//   - 未激活时直接丢弃，NaN 同样丢弃
//   - 已在上界且继续正向推进（或已在下界且继续反向推进）时不做任何修改，
//     避免边界处被夹回再被推回造成抖动
//   - 其余情况累加后限制在 [0, TotalLength]
func (pc *ProgressController) ApplyInputDelta(delta float64) {
	if !pc.active || delta == 0 || math.IsNaN(delta) {
		return
	}

	if delta > 0 && pc.state.Target >= pc.totalLength {
		return
	}
	if delta < 0 && pc.state.Target <= 0 {
		return
	}

	pc.state.Target = utils.Clamp(pc.state.Target+delta, 0, pc.totalLength)
}

// ApplyWheel 处理滚轮输入（deltaY 为正表示向下滚动/前进）
func (pc *ProgressController) ApplyWheel(deltaY float64) {
	pc.ApplyInputDelta(deltaY * pc.wheelSensitivity)
}

// ApplyTouchDrag 处理触摸拖动
// deltaY = 上一次触点 Y - 当前触点 Y（手指上滑为正，前进）
func (pc *ProgressController) ApplyTouchDrag(deltaY float64) {
	pc.ApplyInputDelta(deltaY * pc.touchSensitivity)
}

// Tick 每帧调用一次：Actual 向 Target 移动剩余距离的 SmoothingFactor 比例
func (pc *ProgressController) Tick() {
	pc.state.Actual = utils.Approach(pc.state.Actual, pc.state.Target, pc.smoothingFactor)
}

// Activate 开启输入（例如开场动画结束后）
func (pc *ProgressController) Activate() {
	if !pc.active {
		log.Printf("[ProgressController] Input activated")
	}
	pc.active = true
}

// Active 返回是否接受输入
func (pc *ProgressController) Active() bool {
	return pc.active
}

// Restore 同时设置 Actual 与 Target（用于从存档恢复），结果会被限制在有效范围内。
// NaN 被忽略。
func (pc *ProgressController) Restore(progress float64) {
	if math.IsNaN(progress) {
		log.Printf("[ProgressController] Warning: ignoring NaN restore progress")
		return
	}
	progress = utils.Clamp(progress, 0, pc.totalLength)
	pc.state.Actual = progress
	pc.state.Target = progress
}

// State 返回当前进度快照
func (pc *ProgressController) State() components.ProgressState {
	return pc.state
}

// TotalLength 返回进度总长度
func (pc *ProgressController) TotalLength() float64 {
	return pc.totalLength
}
