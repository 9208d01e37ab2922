package scenes

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/game"
	"github.com/decker502/scrollpath/pkg/terrain"
	"github.com/decker502/scrollpath/pkg/utils"
)

func newTestEngine(t *testing.T, requireActivation bool) *game.Engine {
	t.Helper()
	cfg := config.DefaultJourneyConfig()
	cfg.Progress.RequireActivation = requireActivation
	e, err := game.NewEngine(cfg, terrain.NewSurface(cfg.PathFunction()))
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return e
}

func TestDispatchInput(t *testing.T) {
	e := newTestEngine(t, false)

	dispatchInput(e, utils.InputFrame{WheelY: 100, Touch: utils.TouchStarted, TouchY: 500}, 1280, 720)
	dispatchInput(e, utils.InputFrame{Touch: utils.TouchMoved, TouchY: 450}, 1280, 720)
	dispatchInput(e, utils.InputFrame{Touch: utils.TouchEnded}, 1280, 720)

	// 5 (滚轮) + 5 (触摸 50px * 0.1)
	if got := e.Progress().Target; math.Abs(got-10) > 1e-9 {
		t.Errorf("target = %v, want 10", got)
	}
}

func TestJourneyScene_PanelFollowsZone(t *testing.T) {
	e := newTestEngine(t, false)
	s := NewJourneyScene(e, nil, nil, &game.Viewport{Width: 1280, Height: 720})

	if !s.Panel().Hidden {
		t.Fatal("开场区域面板应隐藏")
	}

	e.ApplyInputDelta(40)
	for i := 0; i < 300; i++ {
		e.Tick(game.TickContext{DeltaSeconds: 1.0 / 60})
	}

	p := s.Panel()
	if p.ZoneID != "about" || p.Hidden {
		t.Errorf("panel = %+v, want visible about", p)
	}
	if !s.SaveOnExit() {
		t.Error("没有存档管理器时 SaveOnExit 应返回 true")
	}
}

func TestIntroScene_Activate(t *testing.T) {
	e := newTestEngine(t, true)
	sm := game.NewSceneManager()
	sm.Register(game.SceneJourney, func() game.Scene { return NewJourneyScene(e, nil, nil, nil) })

	intro := NewIntroScene(e, sm)
	sm.SwitchTo(intro)

	intro.activate()
	if !e.Active() {
		t.Error("激活后引擎应接受输入")
	}
	if sm.CurrentName() != game.SceneJourney {
		t.Errorf("current scene = %q, want %q", sm.CurrentName(), game.SceneJourney)
	}
}

func TestProjector(t *testing.T) {
	cam := components.CameraPose{
		Position: r3.Vec{X: 0, Y: 0, Z: 10},
		LookAt:   r3.Vec{X: 0, Y: 0, Z: 0},
	}
	p := newProjector(cam, 1280, 720)

	x, y, depth, ok := p.project(r3.Vec{})
	if !ok {
		t.Fatal("正前方的点应可见")
	}
	if math.Abs(x-640) > 1e-9 || math.Abs(y-360) > 1e-9 {
		t.Errorf("center = (%v, %v), want (640, 360)", x, y)
	}
	if math.Abs(depth-10) > 1e-9 {
		t.Errorf("depth = %v, want 10", depth)
	}

	// 右上方的点投影到屏幕右上
	x, y, _, _ = p.project(r3.Vec{X: 1, Y: 1, Z: 0})
	if x <= 640 || y >= 360 {
		t.Errorf("(1,1,0) -> (%v, %v), want right/up of center", x, y)
	}

	if _, _, _, ok := p.project(r3.Vec{Z: 20}); ok {
		t.Error("镜头后方的点不应可见")
	}
}

func TestFogged(t *testing.T) {
	c := color.RGBA{R: 255, A: 255}
	fog := color.RGBA{B: 255, A: 255}

	if got := fogged(c, fog, 0.008, 0); got != c {
		t.Errorf("distance 0: got %v, want %v", got, c)
	}
	far := fogged(c, fog, 0.008, 10000)
	if far != fog {
		t.Errorf("far: got %v, want %v", far, fog)
	}
	mid := fogged(c, fog, 0.008, 100)
	if mid.R == 0 || mid.B == 0 {
		t.Errorf("mid distance should blend, got %v", mid)
	}
}
