package systems

import (
	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/ecs"
	"github.com/decker502/scrollpath/pkg/utils"
)

// CameraRig 第三人称跟拍镜头。
//
// 镜头目标位于角色身后 FollowDistance 处的道路上，X/Z 分别向目标做指数平滑，
// 与角色运动解耦，因此镜头会略微滞后。观察点位于角色前方 LookAheadDistance 处，
// 并受指针偏移影响。
//
// 镜头位姿以 *components.CameraPose 组件挂在镜头实体上，角色位姿从角色实体读取。
type CameraRig struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID

	path utils.PathFunction
	cfg  config.CameraConfig

	// 指针相对屏幕中心的偏移（已乘以灵敏度）
	pointerX float64
	pointerY float64
}

// NewCameraRig 创建镜头控制器和镜头实体，初始位置为 (InitialX, Height, InitialZ)
func NewCameraRig(em *ecs.EntityManager, cfg *config.JourneyConfig, path utils.PathFunction) *CameraRig {
	cr := &CameraRig{
		entityManager: em,
		path:          path,
		cfg:           cfg.Camera,
	}

	cr.cameraEntity = em.CreateEntity()
	pose := &components.CameraPose{}
	pose.Position.X = cfg.Camera.InitialX
	pose.Position.Y = cfg.Camera.Height
	pose.Position.Z = cfg.Camera.InitialZ
	ecs.AddComponent(em, cr.cameraEntity, pose)
	return cr
}

// Camera 返回镜头实体
func (cr *CameraRig) Camera() ecs.EntityID {
	return cr.cameraEntity
}

// SetPointer 记录指针屏幕坐标。
// 偏移 = (screen - viewport/2) * PointerSensitivity
func (cr *CameraRig) SetPointer(screenX, screenY float64, viewportWidth, viewportHeight int) {
	cr.pointerX = (screenX - float64(viewportWidth)/2) * cr.cfg.PointerSensitivity
	cr.pointerY = (screenY - float64(viewportHeight)/2) * cr.cfg.PointerSensitivity
}

// Pointer 返回当前指针偏移
func (cr *CameraRig) Pointer() (x, y float64) {
	return cr.pointerX, cr.pointerY
}

// Update 根据角色实体的位姿推进一帧并返回镜头位姿。
// viewportWidth 小于 NarrowViewportWidth 时观察点高度固定，不受指针 Y 影响。
// 角色实体没有位姿组件时镜头保持不动。
func (cr *CameraRig) Update(avatarEntity ecs.EntityID, viewportWidth int) components.CameraPose {
	cam, ok := ecs.GetComponent[*components.CameraPose](cr.entityManager, cr.cameraEntity)
	if !ok {
		return components.CameraPose{}
	}
	avatar, ok := ecs.GetComponent[*components.AvatarPose](cr.entityManager, avatarEntity)
	if !ok {
		return *cam
	}

	targetZ := avatar.Position.Z + cr.cfg.FollowDistance
	targetX := cr.path.LateralOffset(targetZ)

	cam.Position.X = utils.Approach(cam.Position.X, targetX, cr.cfg.SmoothingFactor)
	cam.Position.Z = utils.Approach(cam.Position.Z, targetZ, cr.cfg.SmoothingFactor)
	cam.Position.Y = cr.cfg.Height

	lookY := cr.cfg.VerticalBias + cr.pointerY*cr.cfg.PointerInfluence
	if cr.narrow(viewportWidth) {
		lookY = cr.cfg.NarrowLookAtHeight
	}

	cam.LookAt.X = avatar.Position.X + cr.pointerX*cr.cfg.PointerInfluence
	cam.LookAt.Y = lookY
	cam.LookAt.Z = avatar.Position.Z - cr.cfg.LookAheadDistance

	return *cam
}

// Snap 直接把镜头放到角色对应的目标位置（跳过平滑，用于从存档恢复）
func (cr *CameraRig) Snap(avatarEntity ecs.EntityID) {
	cam, ok := ecs.GetComponent[*components.CameraPose](cr.entityManager, cr.cameraEntity)
	if !ok {
		return
	}
	avatar, ok := ecs.GetComponent[*components.AvatarPose](cr.entityManager, avatarEntity)
	if !ok {
		return
	}

	targetZ := avatar.Position.Z + cr.cfg.FollowDistance
	cam.Position.X = cr.path.LateralOffset(targetZ)
	cam.Position.Y = cr.cfg.Height
	cam.Position.Z = targetZ
}

// Pose 返回当前镜头位姿
func (cr *CameraRig) Pose() components.CameraPose {
	cam, ok := ecs.GetComponent[*components.CameraPose](cr.entityManager, cr.cameraEntity)
	if !ok {
		return components.CameraPose{}
	}
	return *cam
}

func (cr *CameraRig) narrow(viewportWidth int) bool {
	return viewportWidth > 0 && viewportWidth < cr.cfg.NarrowViewportWidth
}
