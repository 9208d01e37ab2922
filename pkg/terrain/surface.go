// Package terrain 提供沿道路铺设的起伏地面，作为 GroundSampler 的高度来源。
package terrain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/decker502/scrollpath/pkg/utils"
)

const (
	// DefaultWidth 地面带宽度（以道路中心为轴）
	DefaultWidth = 60.0

	// DefaultLength 地面带长度
	DefaultLength = 400.0

	// DefaultCenterZ 地面带中心的纵向坐标
	DefaultCenterZ = -150.0

	// rayStep 射线步进距离
	rayStep = 0.25

	// rayMaxDistance 射线最大长度
	rayMaxDistance = 500.0

	// refineIterations 命中后二分细化次数
	refineIterations = 24
)

// Surface 沿道路弯曲的地面带
//
// 地面带以道路曲线为中轴，横向宽 Width、纵向长 Length。
// 高度为 sin(localX·0.2)·0.5 + cos(z·0.1)·0.5，其中 localX 是相对道路中心的横向偏移。
// 带外没有地面，射线未命中。
type Surface struct {
	Path    utils.PathFunction
	Width   float64
	Length  float64
	CenterZ float64
}

// NewSurface 创建默认尺寸的地面带
func NewSurface(path utils.PathFunction) *Surface {
	return &Surface{
		Path:    path,
		Width:   DefaultWidth,
		Length:  DefaultLength,
		CenterZ: DefaultCenterZ,
	}
}

// Height 返回 (x, z) 处的地面高度，带外返回 ok=false
func (s *Surface) Height(x, z float64) (float64, bool) {
	if math.Abs(z-s.CenterZ) > s.Length/2 {
		return 0, false
	}
	localX := x - s.Path.LateralOffset(z)
	if math.Abs(localX) > s.Width/2 {
		return 0, false
	}
	return math.Sin(localX*0.2)*0.5 + math.Cos(z*0.1)*0.5, true
}

// MaxHeight 地面可能的最高点
func (s *Surface) MaxHeight() float64 {
	return 1.0
}

// Raycast 实现 systems.HeightProvider
//
// 竖直向下的射线直接取高度；其他方向按固定步长推进，
// 首次穿过地面后用二分法细化交点。
func (s *Surface) Raycast(origin, direction r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(direction)
	if n == 0 {
		return r3.Vec{}, false
	}
	direction = r3.Scale(1/n, direction)

	if direction.X == 0 && direction.Z == 0 {
		if direction.Y >= 0 {
			return r3.Vec{}, false
		}
		h, ok := s.Height(origin.X, origin.Z)
		if !ok || origin.Y < h {
			return r3.Vec{}, false
		}
		return r3.Vec{X: origin.X, Y: h, Z: origin.Z}, true
	}

	prev := 0.0
	for t := rayStep; t <= rayMaxDistance; t += rayStep {
		if s.below(r3.Add(origin, r3.Scale(t, direction))) {
			return s.refine(origin, direction, prev, t), true
		}
		prev = t
	}
	return r3.Vec{}, false
}

// below 点是否位于地面以下（带外视为在上方）
func (s *Surface) below(p r3.Vec) bool {
	h, ok := s.Height(p.X, p.Z)
	return ok && p.Y <= h
}

func (s *Surface) refine(origin, direction r3.Vec, lo, hi float64) r3.Vec {
	for i := 0; i < refineIterations; i++ {
		mid := (lo + hi) / 2
		if s.below(r3.Add(origin, r3.Scale(mid, direction))) {
			hi = mid
		} else {
			lo = mid
		}
	}
	p := r3.Add(origin, r3.Scale(hi, direction))
	if h, ok := s.Height(p.X, p.Z); ok {
		p.Y = h
	}
	return p
}
