package utils

import (
	"math"
	"testing"
)

// TestPathFunction_Formula 测试曲线公式与默认参数一致
func TestPathFunction_Formula(t *testing.T) {
	p := DefaultPathFunction()

	tests := []struct {
		name string
		z    float64
	}{
		{"原点", 0},
		{"入口区", -10},
		{"技能区", -200},
		{"终点", -290},
		{"正向", 42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := math.Sin(tt.z*0.05)*12 + math.Sin(tt.z*0.02)*5
			if got := p.LateralOffset(tt.z); got != want {
				t.Errorf("LateralOffset(%v) = %v, want %v", tt.z, got, want)
			}
		})
	}

	if got := p.LateralOffset(0); got != 0 {
		t.Errorf("LateralOffset(0) = %v, want 0", got)
	}
}

// TestPathFunction_DeterministicAndBounded 测试曲线确定且有界
func TestPathFunction_DeterministicAndBounded(t *testing.T) {
	p := DefaultPathFunction()
	bound := p.Bound()
	if bound != 17 {
		t.Fatalf("Bound() = %v, want 17", bound)
	}

	for z := -2000.0; z <= 2000.0; z += 0.37 {
		a := p.LateralOffset(z)
		b := p.LateralOffset(z)
		if a != b {
			t.Fatalf("LateralOffset(%v) 不确定: %v != %v", z, a, b)
		}
		if math.Abs(a) > bound {
			t.Fatalf("LateralOffset(%v) = %v 超出上界 %v", z, a, bound)
		}
	}
}

// TestPathFunction_Tangent 测试切线采样
func TestPathFunction_Tangent(t *testing.T) {
	p := DefaultPathFunction()
	dx, dz := p.Tangent(-50, 1)
	if dz != 1 {
		t.Errorf("dz = %v, want 1", dz)
	}
	want := p.LateralOffset(-50) - p.LateralOffset(-51)
	if dx != want {
		t.Errorf("dx = %v, want %v", dx, want)
	}
}
