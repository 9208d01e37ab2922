package components

import "image/color"

// TransitionState 终点过渡效果
//
// 完全由当前进度推导，没有跨帧记忆。
type TransitionState struct {
	// Progress01 过渡窗口内的进度，窗口外为 0
	Progress01 float64

	// PortalScale 传送门缩放，窗口外为 1
	PortalScale float64

	// BackgroundBlend 背景/雾颜色向到达色混合的比例 ∈ [0, 1]
	BackgroundBlend float64

	// FogDensity 雾密度
	FogDensity float64

	// BackgroundColor 混合后的背景色
	BackgroundColor color.RGBA

	// FogColor 混合后的雾颜色
	FogColor color.RGBA
}

// Active 是否处于过渡窗口内
func (t TransitionState) Active() bool {
	return t.Progress01 > 0
}
