package utils

import (
	"image/color"
	"math"
	"testing"
)

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 0, 10, 0, 0},
		{"终点", 0, 10, 1, 10},
		{"中点", 0, 10, 0.5, 5},
		{"负区间", -10, -20, 0.25, -12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestApproach_NoOvershoot 测试指数逼近单调且不越过目标
func TestApproach_NoOvershoot(t *testing.T) {
	current := 0.0
	target := 100.0
	prev := current
	for i := 0; i < 500; i++ {
		current = Approach(current, target, 0.05)
		if current > target {
			t.Fatalf("第 %d 帧越过目标: %v > %v", i, current, target)
		}
		if current <= prev {
			t.Fatalf("第 %d 帧未严格递增: %v <= %v", i, current, prev)
		}
		prev = current
	}
	if math.Abs(current-target) > 1e-6 {
		t.Errorf("500 帧后未收敛: %v", current)
	}
}

// TestClamp 测试范围限制
func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 5); got != 0 {
		t.Errorf("Clamp(-1) = %v, 期望 0", got)
	}
	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("Clamp(7) = %v, 期望 5", got)
	}
	if got := Clamp(3, 0, 5); got != 3 {
		t.Errorf("Clamp(3) = %v, 期望 3", got)
	}
}

// TestLerpRGBA 测试颜色插值
func TestLerpRGBA(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 200, G: 100, B: 0, A: 255}

	if got := LerpRGBA(a, b, 0); got != a {
		t.Errorf("t=0: got %v, want %v", got, a)
	}
	if got := LerpRGBA(a, b, 1); got != b {
		t.Errorf("t=1: got %v, want %v", got, b)
	}
	want := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	if got := LerpRGBA(a, b, 0.5); got != want {
		t.Errorf("t=0.5: got %v, want %v", got, want)
	}
	if got := LerpRGBA(a, b, 3); got != b {
		t.Errorf("t>1 应被限制: got %v, want %v", got, b)
	}
}

// TestParseHexColor 测试十六进制颜色解析
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#0f0c29", color.RGBA{R: 0x0f, G: 0x0c, B: 0x29, A: 255}, true},
		{"0x1a1a2e", color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 255}, true},
		{"#0984E3", color.RGBA{R: 0x09, G: 0x84, B: 0xe3, A: 255}, true},
		{"0f0c29", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
		{"#12345g", color.RGBA{}, false},
		{"#-12345", color.RGBA{}, false},
		{"#+12345", color.RGBA{}, false},
		{"#fff", color.RGBA{}, false},
		{"0xffffff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHexColor(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseHexColor(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
