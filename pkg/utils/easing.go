package utils

import (
	"image/color"
	"math"
	"strconv"
)

// 插值与平滑工具
//
// 所有逐帧平滑都使用一阶指数逼近：每帧走完剩余距离的固定比例。
// 这种方式单调收敛、不会越过目标，但也永远不会精确到达目标。

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach 指数逼近
// 返回 current 向 target 移动 factor 比例后的值
// 公式：current + (target - current) * factor
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// LerpRGBA 按 t 在两个颜色之间逐通道插值
// t 会被限制在 [0, 1]
func LerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = Clamp(t, 0, 1)
	return color.RGBA{
		R: lerpU8(a.R, b.R, t),
		G: lerpU8(a.G, b.G, t),
		B: lerpU8(a.B, b.B, t),
		A: lerpU8(a.A, b.A, t),
	}
}

func lerpU8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(Lerp(float64(a), float64(b), t)))
}

// ParseHexColor 解析 "#rrggbb" 或 "0xrrggbb" 格式的颜色（alpha 固定为 255）
func ParseHexColor(s string) (color.RGBA, bool) {
	switch {
	case len(s) == 7 && s[0] == '#':
		s = s[1:]
	case len(s) == 8 && (s[:2] == "0x" || s[:2] == "0X"):
		s = s[2:]
	default:
		return color.RGBA{}, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
