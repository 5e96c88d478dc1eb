package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动场景
// 同一时刻只有一个场景的 Update 和 Draw 被调用
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SaveOnExit 如果当前场景实现了 Saveable，调用其 SaveOnExit
func (sm *SceneManager) SaveOnExit() bool {
	saveable, ok := sm.currentScene.(Saveable)
	if !ok {
		return true
	}
	if !saveable.SaveOnExit() {
		log.Printf("[SceneManager] Warning: 场景退出保存失败")
		return false
	}
	return true
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
