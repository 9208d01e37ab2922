package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/scrollpath/pkg/config"
	"github.com/decker502/scrollpath/pkg/game"
	"github.com/decker502/scrollpath/pkg/utils"
)

const (
	introHintDesktop = "Click or press Space to begin. Scroll to walk."
	introHintMobile  = "Tap to begin. Swipe up to walk."
)

// IntroScene 开场页：激活前引擎丢弃所有输入，激活后切换到旅程场景
type IntroScene struct {
	engine *game.Engine
	scenes *game.SceneManager
	input  *utils.InputReader
}

// NewIntroScene 创建开场场景
func NewIntroScene(engine *game.Engine, sceneManager *game.SceneManager) *IntroScene {
	return &IntroScene{
		engine: engine,
		scenes: sceneManager,
		input:  utils.NewInputReader(),
	}
}

// Update 等待激活
func (s *IntroScene) Update(deltaTime float64) {
	in := s.input.Poll()
	// 激活前的滚动同样会被引擎丢弃
	s.engine.HandleWheel(in.WheelY)
	if in.Activate {
		s.activate()
	}
}

func (s *IntroScene) activate() {
	s.engine.Activate()
	if err := s.scenes.Goto(game.SceneJourney); err != nil {
		log.Printf("[IntroScene] Failed to start journey: %v", err)
	}
}

// Draw 绘制开场页
func (s *IntroScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.engine.LastFrame().Transition.BackgroundColor)
	hint := introHintDesktop
	if utils.IsMobile() {
		hint = introHintMobile
	}
	// 调试字体每个字符宽 6 像素
	x := config.GameWindowWidth/2 - len(hint)*3
	ebitenutil.DebugPrintAt(screen, hint, x, config.GameWindowHeight/2)
}
