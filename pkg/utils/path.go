package utils

import "math"

// PathFunction 道路曲线
//
// 把纵向坐标 z 映射为横向偏移 x。行进方向上 z 递减（为负值）。
// 曲线是两个不同频率、不同振幅的正弦之和：
//
//	offset(z) = sin(z·f1)·a1 + sin(z·f2)·a2
//
// 角色、镜头和各区域内容都按同一条曲线摆放，
// 任何调用方都必须使用同一个 PathFunction 值，否则场景会与道路错位。
type PathFunction struct {
	Frequency1 float64
	Amplitude1 float64
	Frequency2 float64
	Amplitude2 float64
}

// DefaultPathFunction 返回默认道路曲线 sin(z·0.05)·12 + sin(z·0.02)·5
func DefaultPathFunction() PathFunction {
	return PathFunction{
		Frequency1: 0.05,
		Amplitude1: 12,
		Frequency2: 0.02,
		Amplitude2: 5,
	}
}

// LateralOffset 返回纵向坐标 z 处的横向偏移
func (p PathFunction) LateralOffset(z float64) float64 {
	return math.Sin(z*p.Frequency1)*p.Amplitude1 + math.Sin(z*p.Frequency2)*p.Amplitude2
}

// Bound 返回 |LateralOffset| 的上界 |a1|+|a2|
func (p PathFunction) Bound() float64 {
	return math.Abs(p.Amplitude1) + math.Abs(p.Amplitude2)
}

// Tangent 返回 z 处沿行进方向（z 递减）的横向变化量
// 采样 offset(z) 与 offset(z-step)，返回 (dx, dz)
func (p PathFunction) Tangent(z, step float64) (dx, dz float64) {
	return p.LateralOffset(z) - p.LateralOffset(z-step), step
}
