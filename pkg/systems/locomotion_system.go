package systems

import (
	"log"
	"math"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/ecs"
	"github.com/decker502/scrollpath/pkg/utils"
)

// limbSnapEpsilon 空闲回零时小于该角度直接归零
const limbSnapEpsilon = 1e-4

// LocomotionAnimator 计算角色的水平位置、朝向与四肢摆动。
//
// 状态：
//   - Spawning：启动后 actual < SpawnThreshold 期间，角色旋转着从高处落下，
//     朝向与步态逻辑都被跳过；actual 一旦越过阈值，该阶段永久结束
//   - Walking：|target - actual| > VelocityThreshold
//   - Idle：其余情况，四肢逐帧回到零位
//
// 非出生阶段的朝向总是取道路切线方向，与行走/空闲无关。
// 角色位姿以 *components.AvatarPose 组件挂在角色实体上。
type LocomotionAnimator struct {
	entityManager *ecs.EntityManager
	avatarEntity  ecs.EntityID

	path utils.PathFunction
	cfg  config.LocomotionConfig

	// cycle 步态时间参数，随时间持续增长
	cycle float64

	// spawnDone 出生阶段是否已结束
	spawnDone bool
}

// NewLocomotionAnimator 创建运动动画器，并创建带出生位姿的角色实体
func NewLocomotionAnimator(em *ecs.EntityManager, cfg *config.JourneyConfig, path utils.PathFunction) *LocomotionAnimator {
	la := &LocomotionAnimator{
		entityManager: em,
		path:          path,
		cfg:           cfg.Locomotion,
	}

	la.avatarEntity = em.CreateEntity()
	pose := la.InitialPose()
	ecs.AddComponent(em, la.avatarEntity, &pose)
	return la
}

// Avatar 返回角色实体
func (la *LocomotionAnimator) Avatar() ecs.EntityID {
	return la.avatarEntity
}

// Pose 返回角色位姿的副本，角色实体没有位姿组件时返回零值
func (la *LocomotionAnimator) Pose() components.AvatarPose {
	pose, ok := ecs.GetComponent[*components.AvatarPose](la.entityManager, la.avatarEntity)
	if !ok {
		return components.AvatarPose{}
	}
	return *pose
}

// PlaceAt 跳过出生阶段，把角色直接放到 progress 对应的道路位置（从存档恢复时使用）
func (la *LocomotionAnimator) PlaceAt(progress float64, groundLevel func(x, z float64) float64) {
	la.SkipSpawn()
	pose, ok := ecs.GetComponent[*components.AvatarPose](la.entityManager, la.avatarEntity)
	if !ok {
		return
	}

	z := -progress
	*pose = la.InitialPose()
	pose.Position.Z = z
	pose.Position.X = la.path.LateralOffset(z)
	pose.Position.Y = 0
	if groundLevel != nil {
		pose.Position.Y = groundLevel(pose.Position.X, z)
	}
	pose.Heading = la.Heading(z)
}

// InitialPose 返回出生时的角色位姿（位于道路起点上空 SpawnAltitude 处）
func (la *LocomotionAnimator) InitialPose() components.AvatarPose {
	pose := components.AvatarPose{State: components.LocomotionSpawning}
	pose.Position.X = la.path.LateralOffset(0)
	pose.Position.Y = la.cfg.SpawnAltitude
	if la.spawnDone {
		pose.State = components.LocomotionIdle
	}
	return pose
}

// SkipSpawn 直接结束出生阶段（从存档恢复时使用）
func (la *LocomotionAnimator) SkipSpawn() {
	la.spawnDone = true
}

// Spawning 是否仍处于出生阶段
func (la *LocomotionAnimator) Spawning() bool {
	return !la.spawnDone
}

// Update 推进一帧，原地修改角色实体的位姿组件。
//
// 参数:
//   - progress: 本帧平滑后的进度
//   - dt: 帧时长（秒）
//   - groundLevel: 返回 (x, z) 处站立高度的函数，仅在出生阶段作为下落目标
func (la *LocomotionAnimator) Update(progress components.ProgressState, dt float64, groundLevel func(x, z float64) float64) {
	la.cycle += dt * la.cfg.WalkCycleRate

	pose, ok := ecs.GetComponent[*components.AvatarPose](la.entityManager, la.avatarEntity)
	if !ok {
		return
	}

	z := progress.Z()
	pose.Position.Z = z
	pose.Position.X = la.path.LateralOffset(z)

	if !la.spawnDone && progress.Actual >= la.cfg.SpawnThreshold {
		la.spawnDone = true
		log.Printf("[LocomotionAnimator] Spawn finished at progress %.2f", progress.Actual)
	}

	if !la.spawnDone {
		pose.State = components.LocomotionSpawning
		target := 0.0
		if groundLevel != nil {
			target = groundLevel(pose.Position.X, pose.Position.Z)
		}
		pose.Position.Y = utils.Lerp(pose.Position.Y, target, la.cfg.SpawnDropFactor)
		pose.Heading += la.cfg.SpawnSpinRate
		return
	}

	pose.Heading = la.Heading(z)

	if math.Abs(progress.Velocity()) > la.cfg.VelocityThreshold {
		pose.State = components.LocomotionWalking
		pose.Limbs = la.walkPhase()
		return
	}

	pose.State = components.LocomotionIdle
	pose.Limbs = la.relax(pose.Limbs)
}

// Heading 返回 z 处沿行进方向的朝向角：atan2(Δx, Δz) + HeadingOffset
func (la *LocomotionAnimator) Heading(z float64) float64 {
	dx, dz := la.path.Tangent(z, la.cfg.HeadingSampleStep)
	return math.Atan2(dx, dz) + la.cfg.HeadingOffset
}

// walkPhase 按当前步态时间计算四肢角度
// 两腿相差 π 交替迈步；每只手臂与同侧腿反相摆动
func (la *LocomotionAnimator) walkPhase() components.LimbPhase {
	t := la.cycle
	return components.LimbPhase{
		LeftLeg:  math.Sin(t) * la.cfg.LegAmplitude,
		RightLeg: math.Sin(t+math.Pi) * la.cfg.LegAmplitude,
		LeftArm:  math.Sin(t+math.Pi) * la.cfg.ArmAmplitude,
		RightArm: math.Sin(t) * la.cfg.ArmAmplitude,
	}
}

// relax 四肢向零位逼近
func (la *LocomotionAnimator) relax(l components.LimbPhase) components.LimbPhase {
	f := la.cfg.IdleReturnFactor
	return components.LimbPhase{
		LeftLeg:  snapToZero(utils.Approach(l.LeftLeg, 0, f)),
		RightLeg: snapToZero(utils.Approach(l.RightLeg, 0, f)),
		LeftArm:  snapToZero(utils.Approach(l.LeftArm, 0, f)),
		RightArm: snapToZero(utils.Approach(l.RightArm, 0, f)),
	}
}

func snapToZero(v float64) float64 {
	if math.Abs(v) < limbSnapEpsilon {
		return 0
	}
	return v
}
