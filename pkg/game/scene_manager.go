package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given
// time, and drives the optional mount/unmount lifecycle hooks.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene.
// 旧场景若实现 Unmounter 会先被卸载，新场景若实现 Mounter 会被挂载。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}

	sm.unmountCurrent()
	sm.currentScene = scene

	if m, ok := scene.(Mounter); ok {
		m.Mount()
		log.Printf("[SceneManager] Scene mounted: %T", scene)
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Close 卸载当前场景（程序退出时调用）
func (sm *SceneManager) Close() {
	sm.unmountCurrent()
	sm.currentScene = nil
}

func (sm *SceneManager) unmountCurrent() {
	if sm.currentScene == nil {
		return
	}
	if u, ok := sm.currentScene.(Unmounter); ok {
		u.Unmount()
		log.Printf("[SceneManager] Scene unmounted: %T", sm.currentScene)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(elapsed, deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(elapsed, deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
