package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/content"
	"github.com/decker502/scrollpath/pkg/game"
	"github.com/decker502/scrollpath/pkg/utils"
)

const (
	// roadAhead/roadBehind 绘制道路的范围（相对角色 z）
	roadAhead  = 140.0
	roadBehind = 20.0
	roadStep   = 2.0

	// roadHalfWidth 道路半宽（世界单位）
	roadHalfWidth = 3.0

	// portalRadius 终点传送门基础半径
	portalRadius = 2.0
	portalHeight = 3.0

	// 角色骨架尺寸
	hipHeight      = 1.0
	shoulderHeight = 1.6
	headHeight     = 2.0
	limbLength     = 0.9
)

var (
	roadColor   = color.RGBA{R: 0x6c, G: 0x5c, B: 0xe7, A: 0xff}
	avatarColor = color.RGBA{R: 0xff, G: 0xea, B: 0xa7, A: 0xff}
	portalColor = color.RGBA{R: 0x74, G: 0xb9, B: 0xff, A: 0xff}
	barColor    = color.RGBA{R: 0xfd, G: 0x79, B: 0xa8, A: 0xff}
	dotColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x55}
	dotActive   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// JourneyScene 旅程场景：读取输入、推进引擎并绘制调试视图
type JourneyScene struct {
	engine   *game.Engine
	content  *config.ContentConfig
	saves    *game.JourneySaveManager
	viewport *game.Viewport
	input    *utils.InputReader

	panel content.Panel
	frame game.Frame
}

// NewJourneyScene 创建旅程场景
//
// 参数:
//   - engine: 引擎实例
//   - contentCfg: 面板内容，可为 nil（面板只显示标题）
//   - saves: 存档管理器，可为 nil（退出时不保存）
//   - viewport: 实际窗口尺寸，可为 nil
func NewJourneyScene(engine *game.Engine, contentCfg *config.ContentConfig, saves *game.JourneySaveManager, viewport *game.Viewport) *JourneyScene {
	s := &JourneyScene{
		engine:   engine,
		content:  contentCfg,
		saves:    saves,
		viewport: viewport,
		input:    utils.NewInputReader(),
		frame:    engine.LastFrame(),
	}
	s.panel = content.BuildPanel(s.frame.Zone, contentCfg)

	engine.OnZoneChanged(func(change components.ZoneChange) {
		s.panel = content.BuildPanel(engine.Zones()[change.Index], s.content)
	})
	return s
}

// Update 读取输入并推进一帧
func (s *JourneyScene) Update(deltaTime float64) {
	dispatchInput(s.engine, s.input.Poll(), config.GameWindowWidth, config.GameWindowHeight)

	ctx := game.TickContext{DeltaSeconds: deltaTime}
	if s.viewport != nil {
		ctx.ViewportWidth = s.viewport.Width
		ctx.ViewportHeight = s.viewport.Height
	}
	s.frame = s.engine.Tick(ctx)
}

// Panel 返回当前面板
func (s *JourneyScene) Panel() content.Panel {
	return s.panel
}

// SaveOnExit 实现 game.Saveable
func (s *JourneyScene) SaveOnExit() bool {
	if s.saves == nil {
		return true
	}
	if err := s.saves.SaveFrame(s.engine.LastFrame()); err != nil {
		log.Printf("[JourneyScene] Failed to save journey: %v", err)
		return false
	}
	return true
}

// Draw 绘制场景
func (s *JourneyScene) Draw(screen *ebiten.Image) {
	f := s.frame
	screen.Fill(f.Transition.BackgroundColor)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	proj := newProjector(f.Camera, w, h)

	s.drawRoad(screen, proj)
	s.drawPortal(screen, proj)
	drawAvatar(screen, proj, f.Avatar, f.Transition)
	s.drawOverlay(screen, w)
}

func (s *JourneyScene) drawRoad(screen *ebiten.Image, proj projector) {
	f := s.frame
	path := s.engine.Path()
	total := s.engine.Config().TotalLength

	from := f.Avatar.Position.Z + roadBehind
	to := math.Max(f.Avatar.Position.Z-roadAhead, -total)

	for _, offset := range []float64{-roadHalfWidth, 0, roadHalfWidth} {
		prevX, prevY, prevOK := 0.0, 0.0, false
		for z := from; z >= to; z -= roadStep {
			p := r3.Vec{X: path.LateralOffset(z) + offset, Y: 0, Z: z}
			x, y, depth, ok := proj.project(p)
			if ok && prevOK {
				c := fogged(roadColor, f.Transition.FogColor, f.Transition.FogDensity, depth)
				width := float32(math.Max(1, proj.scale(depth)*0.08))
				vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), width, c, true)
			}
			prevX, prevY, prevOK = x, y, ok
		}
	}
}

func (s *JourneyScene) drawPortal(screen *ebiten.Image, proj projector) {
	f := s.frame
	total := s.engine.Config().TotalLength
	center := r3.Vec{X: s.engine.Path().LateralOffset(-total), Y: portalHeight, Z: -total}

	x, y, depth, ok := proj.project(center)
	if !ok {
		return
	}
	radius := portalRadius * f.Transition.PortalScale * proj.scale(depth)
	radius = math.Min(radius, float64(screen.Bounds().Dx()))
	c := fogged(portalColor, f.Transition.FogColor, f.Transition.FogDensity, depth)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 3, c, true)
}

func drawAvatar(screen *ebiten.Image, proj projector, pose components.AvatarPose, t components.TransitionState) {
	base := pose.Position
	hip := r3.Add(base, r3.Vec{Y: hipHeight})
	shoulder := r3.Add(base, r3.Vec{Y: shoulderHeight})
	head := r3.Add(base, r3.Vec{Y: headHeight})

	// 四肢在角色的前后平面内摆动
	forward := r3.Vec{X: math.Sin(pose.Heading), Z: math.Cos(pose.Heading)}
	side := r3.Vec{X: forward.Z, Z: -forward.X}
	limb := func(root r3.Vec, sideSign, angle float64) (r3.Vec, r3.Vec) {
		root = r3.Add(root, r3.Scale(0.25*sideSign, side))
		swing := r3.Add(r3.Scale(math.Sin(angle)*limbLength, forward), r3.Vec{Y: -math.Cos(angle) * limbLength})
		return root, r3.Add(root, swing)
	}

	segments := [][2]r3.Vec{{hip, shoulder}}
	for _, l := range []struct {
		root  r3.Vec
		side  float64
		angle float64
	}{
		{hip, -1, pose.Limbs.LeftLeg},
		{hip, 1, pose.Limbs.RightLeg},
		{shoulder, -1, pose.Limbs.LeftArm},
		{shoulder, 1, pose.Limbs.RightArm},
	} {
		a, b := limb(l.root, l.side, l.angle)
		segments = append(segments, [2]r3.Vec{a, b})
	}

	for _, seg := range segments {
		x0, y0, d0, ok0 := proj.project(seg[0])
		x1, y1, _, ok1 := proj.project(seg[1])
		if !ok0 || !ok1 {
			continue
		}
		c := fogged(avatarColor, t.FogColor, t.FogDensity, d0)
		width := float32(math.Max(1, proj.scale(d0)*0.15))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, c, true)
	}

	if x, y, d, ok := proj.project(head); ok {
		c := fogged(avatarColor, t.FogColor, t.FogDensity, d)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(math.Max(2, proj.scale(d)*0.3)), c, true)
	}
}

func (s *JourneyScene) drawOverlay(screen *ebiten.Image, width int) {
	f := s.frame
	total := s.engine.Config().TotalLength

	// 进度条
	percent := content.ProgressPercent(f.Progress.Actual, total)
	vector.DrawFilledRect(screen, 0, 0, float32(float64(width)*percent/100), config.ProgressBarHeight, barColor, false)

	// 区域指示点
	dots := content.Dots(f.ZoneIndex, len(s.engine.Zones()))
	x := float32(width) - config.ZoneDotsRightMargin - config.ZoneDotSize
	for i, active := range dots {
		c := dotColor
		if active {
			c = dotActive
		}
		y := float32(config.PanelY) + float32(i)*config.ZoneDotSpacing
		vector.DrawFilledRect(screen, x, y, config.ZoneDotSize, config.ZoneDotSize, c, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f%%  %s", percent, f.Avatar.State), config.PanelX, config.PanelY-24)

	if s.panel.Hidden {
		return
	}
	ebitenutil.DebugPrintAt(screen, s.panel.Title, config.PanelX, config.PanelY)
	for i, line := range s.panel.Lines {
		ebitenutil.DebugPrintAt(screen, line, config.PanelX, config.PanelY+(i+2)*config.PanelLineHeight)
	}
}

// dispatchInput 把一帧输入交给引擎
func dispatchInput(e *game.Engine, in utils.InputFrame, width, height int) {
	if in.WheelY != 0 {
		e.HandleWheel(in.WheelY)
	}

	switch in.Touch {
	case utils.TouchStarted:
		e.HandleTouchStart(in.TouchY)
	case utils.TouchMoved:
		e.HandleTouchMove(in.TouchY)
	case utils.TouchEnded:
		e.HandleTouchEnd()
	}

	if in.PointerMoved {
		e.HandlePointer(in.PointerX, in.PointerY, width, height)
	}
}
