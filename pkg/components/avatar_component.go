package components

import "gonum.org/v1/gonum/spatial/r3"

// LocomotionState 角色运动状态
type LocomotionState int

const (
	// LocomotionSpawning 出生下落阶段：旋转着从高处落到地面
	LocomotionSpawning LocomotionState = iota
	// LocomotionIdle 空闲：四肢回到零位
	LocomotionIdle
	// LocomotionWalking 行走：四肢按步态摆动
	LocomotionWalking
)

// String 返回状态名称（用于日志和调试叠加层）
func (s LocomotionState) String() string {
	switch s {
	case LocomotionSpawning:
		return "spawning"
	case LocomotionIdle:
		return "idle"
	case LocomotionWalking:
		return "walking"
	default:
		return "unknown"
	}
}

// LimbPhase 四肢绕 X 轴的摆动角度（弧度）
type LimbPhase struct {
	LeftLeg  float64
	RightLeg float64
	LeftArm  float64
	RightArm float64
}

// IsZero 四肢是否全部处于零位
func (l LimbPhase) IsZero() bool {
	return l == LimbPhase{}
}

// AvatarPose 角色位姿
//
// 由 LocomotionAnimator（朝向、四肢、水平位置）和 GroundSampler（高度）写入，
// 对镜头和渲染方只读。
type AvatarPose struct {
	// Position 角色脚底位置（世界坐标）
	Position r3.Vec

	// Heading 绕 Y 轴的朝向角（弧度）
	Heading float64

	// Limbs 四肢摆动角度
	Limbs LimbPhase

	// State 当前运动状态
	State LocomotionState
}
