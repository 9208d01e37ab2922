package systems

import (
	"math"
	"testing"

	"github.com/decker502/scrollpath/pkg/config"
)

func newTestConfig(totalLength float64) *config.JourneyConfig {
	cfg := config.DefaultJourneyConfig()
	cfg.TotalLength = totalLength
	return cfg
}

// TestProgressController_ClampAfterAccumulation 测试累加后限制范围
func TestProgressController_ClampAfterAccumulation(t *testing.T) {
	pc := NewProgressController(newTestConfig(350))

	pc.ApplyInputDelta(600)
	if got := pc.State().Target; got != 350 {
		t.Errorf("Target = %v, want 350", got)
	}

	pc.ApplyInputDelta(-1000)
	if got := pc.State().Target; got != 0 {
		t.Errorf("Target = %v, want 0", got)
	}

	pc.ApplyInputDelta(-5)
	if got := pc.State().Target; got != 0 {
		t.Errorf("下界继续反向推进应为空操作, Target = %v", got)
	}
}

// TestProgressController_AtCapNoOp 测试上界处继续推进不改变目标
func TestProgressController_AtCapNoOp(t *testing.T) {
	pc := NewProgressController(newTestConfig(100))
	pc.ApplyInputDelta(100)

	for i := 0; i < 10; i++ {
		pc.ApplyInputDelta(3)
		if got := pc.State().Target; got != 100 {
			t.Fatalf("第 %d 次推进后 Target = %v, want 100", i, got)
		}
	}

	pc.ApplyInputDelta(-3)
	if got := pc.State().Target; got != 97 {
		t.Errorf("反向推进后 Target = %v, want 97", got)
	}
}

// TestProgressController_InputsAccumulate 测试同一帧内多个输入源累加合成
func TestProgressController_InputsAccumulate(t *testing.T) {
	pc := NewProgressController(newTestConfig(300))

	pc.ApplyWheel(100)    // 100 * 0.05 = 5
	pc.ApplyTouchDrag(20) // 20 * 0.1 = 2
	pc.ApplyWheel(40)     // 40 * 0.05 = 2

	if got := pc.State().Target; math.Abs(got-9) > 1e-9 {
		t.Errorf("Target = %v, want 9", got)
	}
	if got := pc.State().Actual; got != 0 {
		t.Errorf("输入不应修改 Actual, got %v", got)
	}
}

// TestProgressController_Gating 测试未激活时丢弃输入
func TestProgressController_Gating(t *testing.T) {
	cfg := newTestConfig(300)
	cfg.Progress.RequireActivation = true
	pc := NewProgressController(cfg)

	if pc.Active() {
		t.Fatal("RequireActivation 时初始应未激活")
	}

	pc.ApplyWheel(1000)
	pc.ApplyInputDelta(50)
	if got := pc.State().Target; got != 0 {
		t.Errorf("未激活时输入应被丢弃, Target = %v", got)
	}

	pc.Activate()
	if got := pc.State().Target; got != 0 {
		t.Errorf("激活不应重放已丢弃的输入, Target = %v", got)
	}

	pc.ApplyInputDelta(50)
	if got := pc.State().Target; got != 50 {
		t.Errorf("激活后 Target = %v, want 50", got)
	}
}

// TestProgressController_TickMonotoneConvergence 测试单调收敛且不越过目标
func TestProgressController_TickMonotoneConvergence(t *testing.T) {
	pc := NewProgressController(newTestConfig(350))
	pc.ApplyInputDelta(350)

	prev := pc.State().Actual
	for i := 0; i < 300; i++ {
		pc.Tick()
		s := pc.State()
		if s.Actual <= prev {
			t.Fatalf("第 %d 帧未严格递增: %v <= %v", i, s.Actual, prev)
		}
		if s.Actual > s.Target {
			t.Fatalf("第 %d 帧越过目标: %v > %v", i, s.Actual, s.Target)
		}
		prev = s.Actual
	}

	for i := 0; i < 200; i++ {
		pc.Tick()
	}
	s := pc.State()
	if math.Abs(s.Actual-s.Target) > 1e-6 {
		t.Errorf("500 帧后 |actual-target| = %v, want < 1e-6", math.Abs(s.Actual-s.Target))
	}
}

// TestProgressController_SingleTick 测试单帧平滑
func TestProgressController_SingleTick(t *testing.T) {
	pc := NewProgressController(newTestConfig(350))
	pc.ApplyInputDelta(600)
	pc.Tick()

	if got := pc.State().Actual; math.Abs(got-17.5) > 1e-9 {
		t.Errorf("Actual = %v, want 17.5", got)
	}
}

// TestProgressController_Restore 测试存档恢复
func TestProgressController_Restore(t *testing.T) {
	pc := NewProgressController(newTestConfig(300))

	pc.Restore(120)
	s := pc.State()
	if s.Actual != 120 || s.Target != 120 {
		t.Errorf("Restore(120) = %+v", s)
	}

	pc.Restore(999)
	if got := pc.State().Actual; got != 300 {
		t.Errorf("Restore 应限制范围, Actual = %v", got)
	}
}

// TestProgressController_NonFiniteInput NaN 输入被丢弃，无穷大按边界处理
func TestProgressController_NonFiniteInput(t *testing.T) {
	pc := NewProgressController(newTestConfig(300))
	pc.ApplyInputDelta(40)

	pc.ApplyInputDelta(math.NaN())
	pc.ApplyWheel(math.NaN())
	pc.ApplyTouchDrag(math.NaN())
	pc.Tick()

	s := pc.State()
	if s.Target != 40 {
		t.Fatalf("NaN 输入后 Target = %v, want 40", s.Target)
	}
	if math.IsNaN(s.Actual) || s.Actual < 0 || s.Actual > 40 {
		t.Fatalf("NaN 输入后 Actual = %v, 应在 [0, 40] 内", s.Actual)
	}

	// 后续正常输入仍然生效
	pc.ApplyInputDelta(10)
	if got := pc.State().Target; got != 50 {
		t.Errorf("Target = %v, want 50", got)
	}

	pc.ApplyInputDelta(math.Inf(1))
	if got := pc.State().Target; got != 300 {
		t.Errorf("+Inf 后 Target = %v, want 300", got)
	}
	pc.ApplyInputDelta(math.Inf(-1))
	if got := pc.State().Target; got != 0 {
		t.Errorf("-Inf 后 Target = %v, want 0", got)
	}

	pc.Restore(120)
	pc.Restore(math.NaN())
	if s := pc.State(); s.Actual != 120 || s.Target != 120 {
		t.Errorf("Restore(NaN) 应被忽略, got %+v", s)
	}
}
