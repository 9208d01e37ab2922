package components

// ProgressState 滚动进度
//
// Actual 与 Target 始终位于 [0, TotalLength]。
// Target 只由输入事件修改，Actual 只由每帧的平滑修改。
type ProgressState struct {
	// Actual 当前（平滑后的）进度
	Actual float64

	// Target 输入累积得到的目标进度
	Target float64
}

// Velocity 返回 Target - Actual
// 行走判定使用其绝对值
func (p ProgressState) Velocity() float64 {
	return p.Target - p.Actual
}

// Z 返回进度对应的纵向坐标（行进方向为 -Z）
func (p ProgressState) Z() float64 {
	return -p.Actual
}
