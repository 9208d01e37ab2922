package game

import (
	"fmt"
	"log"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/ecs"
	"github.com/decker502/scrollpath/pkg/systems"
	"github.com/decker502/scrollpath/pkg/utils"
)

// TickContext 外部帧调度器传入的每帧参数
type TickContext struct {
	// DeltaSeconds 距上一帧的时间（秒）
	DeltaSeconds float64

	// ViewportWidth/ViewportHeight 当前视口尺寸（像素），0 表示未知
	ViewportWidth  int
	ViewportHeight int
}

// Frame 每帧输出，对渲染方只读
type Frame struct {
	// Tick 帧序号（从 1 开始）
	Tick uint64

	Progress components.ProgressState

	// Percent 进度百分比 |z| / TotalLength ∈ [0, 1]
	Percent float64

	Avatar     components.AvatarPose
	Camera     components.CameraPose
	Transition components.TransitionState

	// Zone 当前活动区域
	Zone      components.Zone
	ZoneIndex int

	// ZoneChanged 本帧是否发生区域切换
	ZoneChanged bool

	// GroundHit 本帧贴地采样是否命中（出生阶段恒为 false）
	GroundHit bool
}

// Engine 滚动旅程引擎
//
// 持有进度状态、区域表和所有子系统，取代全局可变状态。
// 角色与镜头是 entityManager 中的实体，位姿以组件形式挂在实体上。
// 输入处理方法只修改目标进度/指针偏移，Tick 是唯一推进状态的入口。
// 所有方法都应在同一个 goroutine（帧循环）中调用。
type Engine struct {
	cfg  *config.JourneyConfig
	path utils.PathFunction

	entityManager *ecs.EntityManager

	progress   *systems.ProgressController
	zones      *systems.ZoneClassifier
	ground     *systems.GroundSampler
	locomotion *systems.LocomotionAnimator
	camera     *systems.CameraRig
	transition *systems.TransitionController

	// 触摸拖动：上一次触点 Y
	touchY   float64
	touching bool

	ticks uint64
	last  Frame
}

// NewEngine 创建引擎
//
// 参数:
//   - cfg: 旅程配置（会被验证）
//   - heights: 地形高度来源，可为 nil（所有贴地采样视为未命中）
//
// 返回:
//   - *Engine: 引擎实例
//   - error: 配置无效时返回错误
func NewEngine(cfg *config.JourneyConfig, heights systems.HeightProvider) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("journey config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid journey config: %w", err)
	}

	path := cfg.PathFunction()
	em := ecs.NewEntityManager()
	e := &Engine{
		cfg:           cfg,
		path:          path,
		entityManager: em,
		progress:      systems.NewProgressController(cfg),
		zones:         systems.NewZoneClassifier(cfg),
		ground:        systems.NewGroundSampler(em, cfg, heights),
		locomotion:    systems.NewLocomotionAnimator(em, cfg, path),
		camera:        systems.NewCameraRig(em, cfg, path),
		transition:    systems.NewTransitionController(cfg),
	}
	e.last = e.snapshot(false, false)

	log.Printf("[Engine] Created: totalLength=%.1f zones=%d", cfg.TotalLength, len(cfg.Zones))
	return e, nil
}

// ApplyInputDelta 直接累加目标进度（已换算为进度单位）
func (e *Engine) ApplyInputDelta(delta float64) {
	e.progress.ApplyInputDelta(delta)
}

// HandleWheel 滚轮事件（deltaY 为正表示前进）
func (e *Engine) HandleWheel(deltaY float64) {
	e.progress.ApplyWheel(deltaY)
}

// HandleTouchStart 手指按下，记录起始 Y
func (e *Engine) HandleTouchStart(y float64) {
	e.touchY = y
	e.touching = true
}

// HandleTouchMove 手指移动：上滑（Y 变小）前进
func (e *Engine) HandleTouchMove(y float64) {
	if !e.touching {
		e.HandleTouchStart(y)
		return
	}
	e.progress.ApplyTouchDrag(e.touchY - y)
	e.touchY = y
}

// HandleTouchEnd 手指抬起
func (e *Engine) HandleTouchEnd() {
	e.touching = false
}

// HandlePointer 指针移动（屏幕坐标）
func (e *Engine) HandlePointer(x, y float64, viewportWidth, viewportHeight int) {
	e.camera.SetPointer(x, y, viewportWidth, viewportHeight)
}

// Activate 开启输入
func (e *Engine) Activate() {
	e.progress.Activate()
}

// Active 是否接受输入
func (e *Engine) Active() bool {
	return e.progress.Active()
}

// OnZoneChanged 注册区域切换监听
func (e *Engine) OnZoneChanged(fn func(components.ZoneChange)) {
	e.zones.OnZoneChanged(fn)
}

// Restore 从存档恢复进度。
// 越过出生阈值时跳过出生阶段，角色与镜头直接就位。
func (e *Engine) Restore(progress float64) {
	e.progress.Restore(progress)
	state := e.progress.State()

	if state.Actual >= e.cfg.Locomotion.SpawnThreshold {
		e.locomotion.PlaceAt(state.Actual, e.standingHeight)
		e.camera.Snap(e.locomotion.Avatar())
	}

	e.zones.Update(state.Z())
	e.last = e.snapshot(false, false)
	log.Printf("[Engine] Restored progress %.2f", state.Actual)
}

// Tick 推进一帧并返回本帧输出
//
// 顺序：进度平滑 → 区域判定 → 角色运动 → 贴地 → 镜头 → 终点过渡。
func (e *Engine) Tick(ctx TickContext) Frame {
	e.ticks++

	e.progress.Tick()
	state := e.progress.State()

	_, changed := e.zones.Update(state.Z())

	avatar := e.locomotion.Avatar()
	e.locomotion.Update(state, ctx.DeltaSeconds, e.standingHeight)

	groundHit := false
	if !e.locomotion.Spawning() {
		groundHit = e.ground.Apply(avatar)
	}

	e.camera.Update(avatar, ctx.ViewportWidth)

	e.last = e.snapshot(changed, groundHit)
	return e.last
}

// Progress 返回当前进度（包含尚未被 Tick 平滑的目标值）
func (e *Engine) Progress() components.ProgressState {
	return e.progress.State()
}

// LastFrame 返回最近一帧输出
func (e *Engine) LastFrame() Frame {
	return e.last
}

// Path 返回引擎使用的道路曲线
func (e *Engine) Path() utils.PathFunction {
	return e.path
}

// Zones 返回区域表
func (e *Engine) Zones() []components.Zone {
	return e.zones.Zones()
}

// Entities 返回引擎的实体管理器
func (e *Engine) Entities() *ecs.EntityManager {
	return e.entityManager
}

// AvatarEntity 返回角色实体
func (e *Engine) AvatarEntity() ecs.EntityID {
	return e.locomotion.Avatar()
}

// CameraEntity 返回镜头实体
func (e *Engine) CameraEntity() ecs.EntityID {
	return e.camera.Camera()
}

// Config 返回旅程配置
func (e *Engine) Config() *config.JourneyConfig {
	return e.cfg
}

func (e *Engine) standingHeight(x, z float64) float64 {
	return e.ground.StandingHeight(x, z, 0)
}

func (e *Engine) snapshot(zoneChanged, groundHit bool) Frame {
	state := e.progress.State()
	zone, index := e.zones.Active()
	return Frame{
		Tick:        e.ticks,
		Progress:    state,
		Percent:     state.Actual / e.cfg.TotalLength,
		Avatar:      e.locomotion.Pose(),
		Camera:      e.camera.Pose(),
		Transition:  e.transition.Evaluate(state.Actual),
		Zone:        zone,
		ZoneIndex:   index,
		ZoneChanged: zoneChanged,
		GroundHit:   groundHit,
	}
}
