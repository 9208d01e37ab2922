package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称
const (
	SceneIntro   = "intro"
	SceneJourney = "journey"
)

// SceneFactory 场景工厂，首次切换到该场景时调用
type SceneFactory func() Scene

// SceneManager 管理活动场景。
// 场景按名称注册，切换时懒创建并缓存，避免场景包之间循环依赖。
type SceneManager struct {
	currentScene Scene
	currentName  string
	factories    map[string]SceneFactory
	scenes       map[string]Scene
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
		scenes:    make(map[string]Scene),
	}
}

// Register 注册场景工厂
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	sm.factories[name] = factory
	delete(sm.scenes, name)
}

// SwitchTo 直接切换到给定场景实例
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentName = ""
}

// Goto 切换到已注册的场景
func (sm *SceneManager) Goto(name string) error {
	scene, ok := sm.scenes[name]
	if !ok {
		factory, registered := sm.factories[name]
		if !registered {
			return fmt.Errorf("scene %q is not registered", name)
		}
		scene = factory()
		if scene == nil {
			return fmt.Errorf("scene factory %q returned nil", name)
		}
		sm.scenes[name] = scene
	}

	log.Printf("[SceneManager] Switch scene: %s -> %s", sm.currentName, name)
	sm.currentScene = scene
	sm.currentName = name
	return nil
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回当前场景名称，通过 SwitchTo 切换时为空
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
