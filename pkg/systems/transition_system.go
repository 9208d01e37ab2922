package systems

import (
	"image/color"
	"math"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/utils"
)

// TransitionController 终点到达效果。
//
// 纯函数：输出只取决于 actual 与 TotalLength。
// 距终点小于 Window 时效果按线性进度渐入；窗口外所有输出立即回到基础值（硬切换，不做平滑）。
type TransitionController struct {
	totalLength float64
	cfg         config.TransitionConfig

	background color.RGBA
	fog        color.RGBA
	arrival    color.RGBA
}

// NewTransitionController 创建过渡控制器。颜色已在配置验证时检查，这里解析失败按黑色处理。
func NewTransitionController(cfg *config.JourneyConfig) *TransitionController {
	background, _ := cfg.Transition.BackgroundColor.RGBA()
	fog, _ := cfg.Transition.FogColor.RGBA()
	arrival, _ := cfg.Transition.ArrivalColor.RGBA()
	return &TransitionController{
		totalLength: cfg.TotalLength,
		cfg:         cfg.Transition,
		background:  background,
		fog:         fog,
		arrival:     arrival,
	}
}

// Base 返回窗口外的基础状态
func (tc *TransitionController) Base() components.TransitionState {
	return components.TransitionState{
		PortalScale:     1,
		FogDensity:      tc.cfg.FogBase,
		BackgroundColor: tc.background,
		FogColor:        tc.fog,
	}
}

// Evaluate 计算 actual 处的过渡状态
func (tc *TransitionController) Evaluate(actual float64) components.TransitionState {
	distance := math.Abs(tc.totalLength - actual)
	if distance >= tc.cfg.Window {
		return tc.Base()
	}

	p := 1 - distance/tc.cfg.Window
	blend := p * tc.cfg.BlendCap

	return components.TransitionState{
		Progress01:      p,
		PortalScale:     1 + p*tc.cfg.ScaleFactor,
		BackgroundBlend: blend,
		FogDensity:      tc.cfg.FogBase + p*tc.cfg.FogDensityDelta,
		BackgroundColor: utils.LerpRGBA(tc.background, tc.arrival, blend),
		FogColor:        utils.LerpRGBA(tc.fog, tc.arrival, blend),
	}
}
