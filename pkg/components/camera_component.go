package components

import "gonum.org/v1/gonum/spatial/r3"

// CameraPose 镜头位姿
//
// 由 CameraRig 独占写入。Position 的 X/Z 独立于角色做指数平滑，
// 因此镜头会略微滞后于角色，形成跟拍效果。
type CameraPose struct {
	// Position 镜头位置（世界坐标）
	Position r3.Vec

	// LookAt 观察点（世界坐标）
	LookAt r3.Vec
}
