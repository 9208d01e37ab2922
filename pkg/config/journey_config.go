package config

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/scrollpath/pkg/utils"
)

// JourneyConfig 旅程配置
//
// 启动时加载一次，之后只读。包含进度总长度、区域表、平滑系数、
// 输入灵敏度以及各子系统的常量。
//
// 配置文件位置: data/journey.yaml
type JourneyConfig struct {
	// TotalLength 进度总长度，进度被限制在 [0, TotalLength]
	TotalLength float64 `yaml:"totalLength"`

	Progress   ProgressConfig   `yaml:"progress"`
	Path       PathConfig       `yaml:"path"`
	Zones      []ZoneConfig     `yaml:"zones"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Ground     GroundConfig     `yaml:"ground"`
	Camera     CameraConfig     `yaml:"camera"`
	Transition TransitionConfig `yaml:"transition"`
}

// ProgressConfig 进度控制配置
type ProgressConfig struct {
	// SmoothingFactor 每帧走完剩余距离的比例
	SmoothingFactor float64 `yaml:"smoothingFactor"`

	// WheelSensitivity 滚轮 deltaY 的换算系数
	WheelSensitivity float64 `yaml:"wheelSensitivity"`

	// TouchSensitivity 触摸拖动 deltaY 的换算系数
	TouchSensitivity float64 `yaml:"touchSensitivity"`

	// RequireActivation 为 true 时，激活前的所有输入都会被丢弃
	RequireActivation bool `yaml:"requireActivation"`
}

// PathConfig 道路曲线参数
type PathConfig struct {
	Frequency1 float64 `yaml:"frequency1"`
	Amplitude1 float64 `yaml:"amplitude1"`
	Frequency2 float64 `yaml:"frequency2"`
	Amplitude2 float64 `yaml:"amplitude2"`
}

// ZoneConfig 内容区域
//
// 进度以负的纵向坐标表示时，Start 比 End 更接近 0。
type ZoneConfig struct {
	ID    string  `yaml:"id"`
	Title string  `yaml:"title"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

// LocomotionConfig 角色运动配置
type LocomotionConfig struct {
	// VelocityThreshold |target-actual| 超过该值时进入行走状态
	VelocityThreshold float64 `yaml:"velocityThreshold"`

	// WalkCycleRate 步态时间参数每秒增量
	WalkCycleRate float64 `yaml:"walkCycleRate"`

	LegAmplitude float64 `yaml:"legAmplitude"`
	ArmAmplitude float64 `yaml:"armAmplitude"`

	// IdleReturnFactor 空闲时四肢每帧回零的比例（1 表示立即归零）
	IdleReturnFactor float64 `yaml:"idleReturnFactor"`

	// HeadingOffset 朝向附加旋转（模型朝向相反时设为 π）
	HeadingOffset float64 `yaml:"headingOffset"`

	// HeadingSampleStep 切线采样步长
	HeadingSampleStep float64 `yaml:"headingSampleStep"`

	// 出生下落阶段
	SpawnThreshold  float64 `yaml:"spawnThreshold"`
	SpawnAltitude   float64 `yaml:"spawnAltitude"`
	SpawnDropFactor float64 `yaml:"spawnDropFactor"`
	SpawnSpinRate   float64 `yaml:"spawnSpinRate"`
}

// GroundConfig 地面采样配置
type GroundConfig struct {
	// ProbeHeight 向下射线的起点高度，必须高于地形最高点
	ProbeHeight float64 `yaml:"probeHeight"`

	// Clearance 角色脚底离地面的间隙
	Clearance float64 `yaml:"clearance"`
}

// CameraConfig 镜头跟随配置
type CameraConfig struct {
	FollowDistance     float64 `yaml:"followDistance"`
	Height             float64 `yaml:"height"`
	SmoothingFactor    float64 `yaml:"smoothingFactor"`
	LookAheadDistance  float64 `yaml:"lookAheadDistance"`
	PointerInfluence   float64 `yaml:"pointerInfluence"`
	PointerSensitivity float64 `yaml:"pointerSensitivity"`
	VerticalBias       float64 `yaml:"verticalBias"`

	// 窄屏（宽度小于 NarrowViewportWidth）时观察点高度固定为 NarrowLookAtHeight
	NarrowViewportWidth int     `yaml:"narrowViewportWidth"`
	NarrowLookAtHeight  float64 `yaml:"narrowLookAtHeight"`

	// 初始位置
	InitialX float64 `yaml:"initialX"`
	InitialZ float64 `yaml:"initialZ"`
}

// TransitionConfig 终点过渡效果配置
type TransitionConfig struct {
	Window          float64  `yaml:"window"`
	ScaleFactor     float64  `yaml:"scaleFactor"`
	BlendCap        float64  `yaml:"blendCap"`
	FogBase         float64  `yaml:"fogBase"`
	FogDensityDelta float64  `yaml:"fogDensityDelta"`
	BackgroundColor HexColor `yaml:"backgroundColor"`
	FogColor        HexColor `yaml:"fogColor"`
	ArrivalColor    HexColor `yaml:"arrivalColor"`
}

// HexColor "#rrggbb" 格式颜色
type HexColor string

// RGBA 解析颜色，格式错误时返回 ok=false
func (h HexColor) RGBA() (color.RGBA, bool) {
	return utils.ParseHexColor(string(h))
}

// DefaultJourneyConfig 返回默认旅程配置
func DefaultJourneyConfig() *JourneyConfig {
	return &JourneyConfig{
		TotalLength: 300,
		Progress: ProgressConfig{
			SmoothingFactor:  0.05,
			WheelSensitivity: 0.05,
			TouchSensitivity: 0.1,
		},
		Path: PathConfig{
			Frequency1: 0.05,
			Amplitude1: 12,
			Frequency2: 0.02,
			Amplitude2: 5,
		},
		Zones: []ZoneConfig{
			{ID: "intro", Title: "INTRO", Start: 0, End: -25},
			{ID: "about", Title: "ABOUT ME", Start: -25, End: -65},
			{ID: "experience", Title: "EXPERIENCE", Start: -65, End: -115},
			{ID: "projects", Title: "PROJECTS", Start: -115, End: -175},
			{ID: "skills", Title: "SKILLS", Start: -175, End: -225},
			{ID: "education", Title: "EDUCATION", Start: -225, End: -265},
			{ID: "contact", Title: "CONTACT", Start: -265, End: -300},
		},
		Locomotion: LocomotionConfig{
			VelocityThreshold: 0.1,
			WalkCycleRate:     10,
			LegAmplitude:      0.5,
			ArmAmplitude:      0.5,
			IdleReturnFactor:  0.2,
			HeadingOffset:     0,
			HeadingSampleStep: 1,
			SpawnThreshold:    10,
			SpawnAltitude:     50,
			SpawnDropFactor:   0.05,
			SpawnSpinRate:     0.1,
		},
		Ground: GroundConfig{
			ProbeHeight: 100,
			Clearance:   0.05,
		},
		Camera: CameraConfig{
			FollowDistance:      15,
			Height:              6,
			SmoothingFactor:     0.05,
			LookAheadDistance:   10,
			PointerInfluence:    5,
			PointerSensitivity:  0.001,
			VerticalBias:        2,
			NarrowViewportWidth: 768,
			NarrowLookAtHeight:  2,
			InitialX:            0,
			InitialZ:            15,
		},
		Transition: TransitionConfig{
			Window:          20,
			ScaleFactor:     80,
			BlendCap:        0.5,
			FogBase:         0.008,
			FogDensityDelta: 0.012,
			BackgroundColor: "#0f0c29",
			FogColor:        "#1a1a2e",
			ArrivalColor:    "#0984e3",
		},
	}
}

// LoadJourneyConfig 加载旅程配置
//
// 从指定路径加载 YAML 格式的旅程配置文件。
//
// 参数:
//   - path: 配置文件路径（如 "data/journey.yaml"）
//
// 返回:
//   - *JourneyConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadJourneyConfig(path string) (*JourneyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read journey config: %w", err)
	}
	return ParseJourneyConfig(data)
}

// ParseJourneyConfig 解析旅程配置
//
// 文件中未出现的字段保留 DefaultJourneyConfig 中的默认值；
// 出现 zones 时整张区域表被替换。
// 区域重叠只记录警告，不视为错误。
func ParseJourneyConfig(data []byte) (*JourneyConfig, error) {
	config := DefaultJourneyConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse journey config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid journey config: %w", err)
	}

	for _, warning := range config.ZoneOverlaps() {
		log.Printf("[Config] Warning: %s", warning)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 所有数值字段都是有限值（拒绝 .nan / .inf）
//   - 总长度与各平滑系数在合理范围内
//   - 区域表非空，每个区域有 ID 且 Start > End
//   - 颜色可以解析
func (c *JourneyConfig) Validate() error {
	if err := c.validateFinite(); err != nil {
		return err
	}

	if c.TotalLength <= 0 {
		return fmt.Errorf("totalLength must be > 0, got %.2f", c.TotalLength)
	}

	if err := validateFactor("progress.smoothingFactor", c.Progress.SmoothingFactor); err != nil {
		return err
	}
	if err := validateFactor("camera.smoothingFactor", c.Camera.SmoothingFactor); err != nil {
		return err
	}
	if err := validateFactor("locomotion.idleReturnFactor", c.Locomotion.IdleReturnFactor); err != nil {
		return err
	}
	if err := validateFactor("locomotion.spawnDropFactor", c.Locomotion.SpawnDropFactor); err != nil {
		return err
	}

	if c.Locomotion.HeadingSampleStep <= 0 {
		return fmt.Errorf("locomotion.headingSampleStep must be > 0, got %.2f", c.Locomotion.HeadingSampleStep)
	}

	if err := ValidateZones(c.Zones); err != nil {
		return err
	}

	if c.Transition.Window <= 0 {
		return fmt.Errorf("transition.window must be > 0, got %.2f", c.Transition.Window)
	}
	if c.Transition.BlendCap < 0 || c.Transition.BlendCap > 1 {
		return fmt.Errorf("transition.blendCap must be within [0, 1], got %.2f", c.Transition.BlendCap)
	}

	colors := map[string]HexColor{
		"transition.backgroundColor": c.Transition.BackgroundColor,
		"transition.fogColor":        c.Transition.FogColor,
		"transition.arrivalColor":    c.Transition.ArrivalColor,
	}
	for name, value := range colors {
		if _, ok := value.RGBA(); !ok {
			return fmt.Errorf("%s is not a valid color: %q", name, value)
		}
	}

	return nil
}

// ValidateZones 验证区域表
//
// 区域之间可以有空隙，也可以重叠（重叠由 ZoneOverlaps 报告为警告）。
func ValidateZones(zones []ZoneConfig) error {
	if len(zones) == 0 {
		return fmt.Errorf("zones must not be empty")
	}

	seen := make(map[string]bool, len(zones))
	for i, zone := range zones {
		if zone.ID == "" {
			return fmt.Errorf("zone %d: id must not be empty", i)
		}
		if seen[zone.ID] {
			return fmt.Errorf("zone %d: duplicate id '%s'", i, zone.ID)
		}
		seen[zone.ID] = true

		if zone.Start <= zone.End {
			return fmt.Errorf("zone '%s': start(%.1f) must be greater than end(%.1f)",
				zone.ID, zone.Start, zone.End)
		}
	}
	return nil
}

// ZoneOverlaps 返回所有重叠区域对的描述
//
// 区域判定采用"后匹配覆盖"策略，重叠部分总是归属于列表中靠后的区域。
// 这通常是配置错误，因此在加载时提示。
func (c *JourneyConfig) ZoneOverlaps() []string {
	var warnings []string
	for i := 0; i < len(c.Zones); i++ {
		for j := i + 1; j < len(c.Zones); j++ {
			a, b := c.Zones[i], c.Zones[j]
			// 半开区间 (End, Start] 相交
			if a.End < b.Start && b.End < a.Start {
				warnings = append(warnings, fmt.Sprintf(
					"zones '%s' (%.1f..%.1f) and '%s' (%.1f..%.1f) overlap, '%s' wins in the overlap",
					a.ID, a.Start, a.End, b.ID, b.Start, b.End, b.ID))
			}
		}
	}
	return warnings
}

// PathFunction 根据配置构造道路曲线
func (c *JourneyConfig) PathFunction() utils.PathFunction {
	return utils.PathFunction{
		Frequency1: c.Path.Frequency1,
		Amplitude1: c.Path.Amplitude1,
		Frequency2: c.Path.Frequency2,
		Amplitude2: c.Path.Amplitude2,
	}
}

// validateFinite 拒绝 NaN 与 ±Inf。
// NaN 与任何数比较都为 false，会绕过后面的范围检查。
func (c *JourneyConfig) validateFinite() error {
	values := []struct {
		name  string
		value float64
	}{
		{"totalLength", c.TotalLength},
		{"progress.smoothingFactor", c.Progress.SmoothingFactor},
		{"progress.wheelSensitivity", c.Progress.WheelSensitivity},
		{"progress.touchSensitivity", c.Progress.TouchSensitivity},
		{"path.frequency1", c.Path.Frequency1},
		{"path.amplitude1", c.Path.Amplitude1},
		{"path.frequency2", c.Path.Frequency2},
		{"path.amplitude2", c.Path.Amplitude2},
		{"locomotion.velocityThreshold", c.Locomotion.VelocityThreshold},
		{"locomotion.walkCycleRate", c.Locomotion.WalkCycleRate},
		{"locomotion.legAmplitude", c.Locomotion.LegAmplitude},
		{"locomotion.armAmplitude", c.Locomotion.ArmAmplitude},
		{"locomotion.idleReturnFactor", c.Locomotion.IdleReturnFactor},
		{"locomotion.headingOffset", c.Locomotion.HeadingOffset},
		{"locomotion.headingSampleStep", c.Locomotion.HeadingSampleStep},
		{"locomotion.spawnThreshold", c.Locomotion.SpawnThreshold},
		{"locomotion.spawnAltitude", c.Locomotion.SpawnAltitude},
		{"locomotion.spawnDropFactor", c.Locomotion.SpawnDropFactor},
		{"locomotion.spawnSpinRate", c.Locomotion.SpawnSpinRate},
		{"ground.probeHeight", c.Ground.ProbeHeight},
		{"ground.clearance", c.Ground.Clearance},
		{"camera.followDistance", c.Camera.FollowDistance},
		{"camera.height", c.Camera.Height},
		{"camera.smoothingFactor", c.Camera.SmoothingFactor},
		{"camera.lookAheadDistance", c.Camera.LookAheadDistance},
		{"camera.pointerInfluence", c.Camera.PointerInfluence},
		{"camera.pointerSensitivity", c.Camera.PointerSensitivity},
		{"camera.verticalBias", c.Camera.VerticalBias},
		{"camera.narrowLookAtHeight", c.Camera.NarrowLookAtHeight},
		{"camera.initialX", c.Camera.InitialX},
		{"camera.initialZ", c.Camera.InitialZ},
		{"transition.window", c.Transition.Window},
		{"transition.scaleFactor", c.Transition.ScaleFactor},
		{"transition.blendCap", c.Transition.BlendCap},
		{"transition.fogBase", c.Transition.FogBase},
		{"transition.fogDensityDelta", c.Transition.FogDensityDelta},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", v.name, v.value)
		}
	}

	for i, zone := range c.Zones {
		if math.IsNaN(zone.Start) || math.IsInf(zone.Start, 0) || math.IsNaN(zone.End) || math.IsInf(zone.End, 0) {
			return fmt.Errorf("zone %d: start/end must be finite numbers, got %v/%v", i, zone.Start, zone.End)
		}
	}
	return nil
}

func validateFactor(name string, v float64) error {
	if v <= 0 || v > 1 {
		return fmt.Errorf("%s must be within (0, 1], got %.3f", name, v)
	}
	return nil
}
