// Package main provides a headless journey verification tool.
//
// It feeds scripted scroll input into the engine and prints the frame
// stream, without opening a window.
//
// Usage:
//
//	go run cmd/verify_journey/main.go [flags]
//
// Flags:
//
//	--config <path>     Journey config file (default: "data/journey.yaml")
//	--delta <units>     Progress delta applied before the first tick (default: 600)
//	--wheel <pixels>    Wheel distance applied on every tick (default: 0)
//	--ticks <n>         Number of ticks to run (default: 600)
//	--every <n>         Print every n-th frame (default: 30)
//	--restore <units>   Restore progress before running (default: -1, disabled)
//	--verbose           Enable verbose logging
//
// Purpose:
//   - Check smoothing convergence and zone changes without a window
//   - Verify spawn, walk and idle transitions of the avatar
//   - Inspect the arrival transition near the end of the path
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/game"
	"github.com/decker502/scrollpath/pkg/terrain"
)

var (
	configFlag  = flag.String("config", "data/journey.yaml", "Journey config file")
	deltaFlag   = flag.Float64("delta", 600, "Progress delta applied before the first tick")
	wheelFlag   = flag.Float64("wheel", 0, "Wheel distance applied on every tick")
	ticksFlag   = flag.Int("ticks", 600, "Number of ticks to run")
	everyFlag   = flag.Int("every", 30, "Print every n-th frame")
	restoreFlag = flag.Float64("restore", -1, "Restore progress before running (negative disables)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

const tickSeconds = 1.0 / 60.0

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadJourneyConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	// 验证工具不需要开场激活
	cfg.Progress.RequireActivation = false

	engine, err := game.NewEngine(cfg, terrain.NewSurface(cfg.PathFunction()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建引擎失败: %v\n", err)
		os.Exit(1)
	}

	engine.OnZoneChanged(func(c components.ZoneChange) {
		fmt.Printf("  >> zone %s -> %s (%s)\n", c.PreviousID, c.ID, c.Title)
	})

	if *restoreFlag >= 0 {
		engine.Restore(*restoreFlag)
	}
	engine.ApplyInputDelta(*deltaFlag)

	every := *everyFlag
	if every <= 0 {
		every = 1
	}

	fmt.Printf("totalLength=%.1f zones=%d ticks=%d\n", cfg.TotalLength, len(cfg.Zones), *ticksFlag)
	fmt.Println("tick   actual   target   zone        state     avatar(x,y,z)              heading  scale")

	var f game.Frame
	for i := 1; i <= *ticksFlag; i++ {
		if *wheelFlag != 0 {
			engine.HandleWheel(*wheelFlag)
		}
		f = engine.Tick(game.TickContext{
			DeltaSeconds:   tickSeconds,
			ViewportWidth:  config.GameWindowWidth,
			ViewportHeight: config.GameWindowHeight,
		})
		if i%every == 0 || i == 1 || f.ZoneChanged {
			printFrame(f)
		}
	}

	fmt.Printf("final: actual=%.4f target=%.4f percent=%.1f%% zone=%s state=%s\n",
		f.Progress.Actual, f.Progress.Target, f.Percent*100, f.Zone.ID, f.Avatar.State)
}

func printFrame(f game.Frame) {
	p := f.Avatar.Position
	fmt.Printf("%-6d %-8.3f %-8.3f %-11s %-9s (%7.2f,%6.2f,%8.2f)  %7.3f  %.2f\n",
		f.Tick, f.Progress.Actual, f.Progress.Target, f.Zone.ID, f.Avatar.State,
		p.X, p.Y, p.Z, f.Avatar.Heading, f.Transition.PortalScale)
}
