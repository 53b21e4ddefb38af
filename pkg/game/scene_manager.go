package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 场景ID
const (
	SceneStart = "start"
	SceneRound = "round"
)

// SceneFactory 场景工厂函数类型
// 场景之间通过 SceneManager 按ID切换，避免 scenes 包内的循环依赖
type SceneFactory func() Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene   Scene
	currentSceneID string
	factories      map[string]SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
	}
}

// Register 注册场景工厂
func (sm *SceneManager) Register(sceneID string, factory SceneFactory) {
	sm.factories[sceneID] = factory
}

// SwitchTo changes the active scene to the provided scene.
// 被替换的场景如果实现了 Disposable，会先被释放
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		if d, ok := sm.currentScene.(Disposable); ok {
			d.Dispose()
		}
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentSceneID 返回通过 Load 加载的场景ID
func (sm *SceneManager) CurrentSceneID() string {
	return sm.currentSceneID
}

// Load 通过已注册的工厂创建并切换到指定场景
// 返回是否切换成功
func (sm *SceneManager) Load(sceneID string) bool {
	log.Printf("[SceneManager] 加载场景: %s", sceneID)

	factory, ok := sm.factories[sceneID]
	if !ok || factory == nil {
		log.Printf("[SceneManager] 错误: 场景 %s 未注册", sceneID)
		return false
	}

	newScene := factory()
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", sceneID)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentSceneID = sceneID
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
