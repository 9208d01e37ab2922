package config

// 布局配置常量
// 本文件定义调试视图的窗口尺寸与叠加层位置

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// ProgressBarHeight 顶部进度条高度（像素）
	ProgressBarHeight = 6.0

	// ZoneDotSize 区域指示点边长（像素）
	ZoneDotSize = 10.0

	// ZoneDotSpacing 区域指示点间距（像素）
	ZoneDotSpacing = 18.0

	// ZoneDotsRightMargin 区域指示点列距右边缘的距离
	ZoneDotsRightMargin = 24.0

	// PanelX 内容面板左上角 X
	PanelX = 24

	// PanelY 内容面板左上角 Y
	PanelY = 64

	// PanelLineHeight 面板文字行高（ebitenutil 调试字体）
	PanelLineHeight = 16
)
