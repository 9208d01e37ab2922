// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/embedded"
	"github.com/decker502/scrollpath/pkg/game"
	"github.com/decker502/scrollpath/pkg/scenes"
	"github.com/decker502/scrollpath/pkg/terrain"
	"github.com/decker502/scrollpath/pkg/utils"
)

// 嵌入数据文件路径
const (
	embeddedJourneyPath = "data/journey.yaml"
	embeddedContentPath = "data/content.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool

	// JourneyPath/ContentPath 外部配置文件，为空时使用嵌入的默认文件
	JourneyPath string
	ContentPath string

	// AppName gdata 存储目录名，为空时不持久化进度
	AppName string

	// Fresh 忽略已有存档，从头开始
	Fresh bool
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	engine       *game.Engine
	saves        *game.JourneySaveManager
	viewport     *game.Viewport
	verbose      bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	journeyCfg, err := loadJourney(cfg.JourneyPath)
	if err != nil {
		return nil, err
	}

	// 内容加载失败不是致命错误，面板只显示标题
	contentCfg, err := loadContent(cfg.ContentPath)
	if err != nil {
		log.Printf("[App] Warning: %v (panels will show titles only)", err)
	}

	surface := terrain.NewSurface(journeyCfg.PathFunction())
	engine, err := game.NewEngine(journeyCfg, surface)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	saves := game.NewJourneySaveManager(openStorage(cfg.AppName))
	if save := saves.Current(); save != nil && !cfg.Fresh {
		engine.Restore(save.Progress)
		log.Printf("[App] Resuming journey at %.2f (%s)", save.Progress, save.ZoneID)
	}

	viewport := &game.Viewport{Width: config.GameWindowWidth, Height: config.GameWindowHeight}

	sceneManager := game.NewSceneManager()
	sceneManager.Register(game.SceneIntro, func() game.Scene {
		return scenes.NewIntroScene(engine, sceneManager)
	})
	sceneManager.Register(game.SceneJourney, func() game.Scene {
		return scenes.NewJourneyScene(engine, contentCfg, saves, viewport)
	})

	start := game.SceneJourney
	if !engine.Active() {
		start = game.SceneIntro
	}
	if err := sceneManager.Goto(start); err != nil {
		return nil, fmt.Errorf("failed to start scene: %w", err)
	}

	return &App{
		sceneManager: sceneManager,
		engine:       engine,
		saves:        saves,
		viewport:     viewport,
		verbose:      cfg.Verbose,
	}, nil
}

func loadJourney(path string) (*config.JourneyConfig, error) {
	if path != "" {
		journeyCfg, err := config.LoadJourneyConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load journey config: %w", err)
		}
		log.Printf("[Config] Loaded journey config: %s", path)
		return journeyCfg, nil
	}

	data, err := embedded.ReadFile(embeddedJourneyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded journey config: %w", err)
	}
	journeyCfg, err := config.ParseJourneyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded journey config: %w", err)
	}
	return journeyCfg, nil
}

func loadContent(path string) (*config.ContentConfig, error) {
	if path != "" {
		return config.LoadContentConfig(path)
	}
	data, err := embedded.ReadFile(embeddedContentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded content config: %w", err)
	}
	return config.ParseContentConfig(data)
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级模式）
func openStorage(appName string) *gdata.Manager {
	if appName == "" {
		return nil
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open storage: %v (progress will not be saved)", err)
		return nil
	}
	return m
}

// Update 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 关闭窗口时正常退出，由调用方在 RunGame 返回后保存进度
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口，全屏时左右填充黑边
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 记录实际窗口尺寸（用于窄屏判断），返回固定的逻辑尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.viewport.Width = outsideWidth
	a.viewport.Height = outsideHeight
	return config.GameWindowWidth, config.GameWindowHeight
}

// SaveOnExit 保存当前场景状态
func (a *App) SaveOnExit() bool {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		return s.SaveOnExit()
	}
	if err := a.saves.SaveFrame(a.engine.LastFrame()); err != nil {
		log.Printf("[App] Failed to save journey: %v", err)
		return false
	}
	return true
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Engine 返回引擎
func (a *App) Engine() *game.Engine {
	return a.engine
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
