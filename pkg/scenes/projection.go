package scenes

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/utils"
)

const (
	// fieldOfView 竖直视角（度）
	fieldOfView = 60.0

	// nearPlane 近裁剪面
	nearPlane = 0.1
)

var worldUp = r3.Vec{X: 0, Y: 1, Z: 0}

// projector 透视投影：世界坐标 → 屏幕坐标
type projector struct {
	eye                   r3.Vec
	right, up, forward    r3.Vec
	focal                 float64
	halfWidth, halfHeight float64
}

func newProjector(cam components.CameraPose, width, height int) projector {
	forward := r3.Unit(r3.Sub(cam.LookAt, cam.Position))
	right := r3.Unit(r3.Cross(forward, worldUp))
	up := r3.Cross(right, forward)

	halfHeight := float64(height) / 2
	return projector{
		eye:        cam.Position,
		right:      right,
		up:         up,
		forward:    forward,
		focal:      halfHeight / math.Tan(fieldOfView*math.Pi/360),
		halfWidth:  float64(width) / 2,
		halfHeight: halfHeight,
	}
}

// project 返回屏幕坐标与深度，点在近裁剪面之后时 ok=false
func (p projector) project(world r3.Vec) (x, y, depth float64, ok bool) {
	d := r3.Sub(world, p.eye)
	depth = r3.Dot(d, p.forward)
	if depth <= nearPlane {
		return 0, 0, depth, false
	}
	x = p.halfWidth + r3.Dot(d, p.right)/depth*p.focal
	y = p.halfHeight - r3.Dot(d, p.up)/depth*p.focal
	return x, y, depth, true
}

// scale 返回 depth 处一个世界单位在屏幕上的像素长度
func (p projector) scale(depth float64) float64 {
	return p.focal / depth
}

// fogged 指数平方雾：1 - exp(-(density·distance)²)
func fogged(c, fog color.RGBA, density, distance float64) color.RGBA {
	f := density * distance
	return utils.LerpRGBA(c, fog, 1-math.Exp(-f*f))
}
