// scrollpath 滚动同步的第三人称旅程视图
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose            Enable verbose logging (env SCROLLPATH_VERBOSE)
//	--config <path>      Journey config file (env SCROLLPATH_CONFIG, default: embedded data/journey.yaml)
//	--content <path>     Panel content file (env SCROLLPATH_CONTENT, default: embedded data/content.yaml)
//	--fresh              Ignore saved progress and start from the beginning
//
// Controls:
//
//	Mouse wheel / touch drag - Walk forward or back
//	Mouse / touch position   - Nudge the camera
//	F11                      - Toggle fullscreen
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/scrollpath/pkg/app"
	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/embedded"
)

func main() {
	envCfg, err := config.LoadEnvConfig()
	if err != nil {
		log.Fatalf("环境变量解析失败: %v", err)
	}

	verbose := flag.Bool("verbose", envCfg.Verbose, "Enable verbose logging")
	configPath := flag.String("config", envCfg.ConfigPath, "Journey config file (default: embedded)")
	contentPath := flag.String("content", envCfg.ContentPath, "Panel content file (default: embedded)")
	fresh := flag.Bool("fresh", false, "Ignore saved progress")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		JourneyPath: *configPath,
		ContentPath: *contentPath,
		AppName:     envCfg.AppName,
		Fresh:       *fresh,
	})
	if err != nil {
		// NewApp 可能已经关闭了日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Scroll Path")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	runErr := ebiten.RunGame(gameApp)

	if !gameApp.SaveOnExit() {
		log.Printf("[Main] Failed to save progress on exit")
	}
	if runErr != nil && runErr != ebiten.Termination {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
