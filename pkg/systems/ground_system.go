package systems

import (
	"log"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/ecs"
)

// HeightProvider 地形高度查询
//
// Raycast 从 origin 沿 direction 发射射线，返回第一个交点。
// 没有交点时返回 ok=false。
type HeightProvider interface {
	Raycast(origin, direction r3.Vec) (hit r3.Vec, ok bool)
}

// heightBounded 可选接口：报告地形的最大高度
type heightBounded interface {
	MaxHeight() float64
}

var down = r3.Vec{X: 0, Y: -1, Z: 0}

// GroundSampler 贴地采样。
//
// 在 (x, z) 上方 ProbeHeight 处向下发射射线：
//   - 命中：角色高度 = 命中高度 + Clearance
//   - 未命中：保持角色上一帧的高度（不回落到默认值，避免瞬移）
type GroundSampler struct {
	entityManager *ecs.EntityManager

	heights     HeightProvider
	probeHeight float64
	clearance   float64
}

// NewGroundSampler 创建贴地采样器，heights 可以为 nil（所有采样都视为未命中）
func NewGroundSampler(em *ecs.EntityManager, cfg *config.JourneyConfig, heights HeightProvider) *GroundSampler {
	if b, ok := heights.(heightBounded); ok && cfg.Ground.ProbeHeight <= b.MaxHeight() {
		log.Printf("[GroundSampler] Warning: probe height %.2f is not above terrain max height %.2f",
			cfg.Ground.ProbeHeight, b.MaxHeight())
	}
	return &GroundSampler{
		entityManager: em,
		heights:       heights,
		probeHeight:   cfg.Ground.ProbeHeight,
		clearance:     cfg.Ground.Clearance,
	}
}

// SampleHeight 返回 (x, z) 处的地面高度
func (gs *GroundSampler) SampleHeight(x, z float64) (float64, bool) {
	if gs.heights == nil {
		return 0, false
	}
	hit, ok := gs.heights.Raycast(r3.Vec{X: x, Y: gs.probeHeight, Z: z}, down)
	if !ok {
		return 0, false
	}
	return hit.Y, true
}

// Apply 把实体的 AvatarPose 放到地面上；未命中或实体没有位姿时不做修改。
// 返回是否命中。
func (gs *GroundSampler) Apply(entity ecs.EntityID) bool {
	pose, ok := ecs.GetComponent[*components.AvatarPose](gs.entityManager, entity)
	if !ok {
		return false
	}
	h, ok := gs.SampleHeight(pose.Position.X, pose.Position.Z)
	if !ok {
		return false
	}
	pose.Position.Y = h + gs.clearance
	return true
}

// StandingHeight 返回角色站在 (x, z) 时的高度，未命中时返回 fallback
func (gs *GroundSampler) StandingHeight(x, z, fallback float64) float64 {
	h, ok := gs.SampleHeight(x, z)
	if !ok {
		return fallback
	}
	return h + gs.clearance
}
