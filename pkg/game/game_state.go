package game

import (
	"github.com/decker502/birdquest/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// GameState 跨场景共享的进程级服务
// 这是一个单例；一局游戏自己的状态在 RoundState 中，不放在这里
type GameState struct {
	Catalog     *config.BirdCatalog // 鸟类原型表
	RoundConfig *config.RoundConfig // 局参数

	gdataManager    *gdata.Manager
	settingsManager *SettingsManager
	audioManager    *AudioManager
}

// 全局单例实例（这是架构允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 延迟初始化时使用内置默认配置、仅内存设置和静音音频
func GetGameState() *GameState {
	if globalGameState == nil {
		sm := NewSettingsManager(nil)
		globalGameState = &GameState{
			Catalog:         config.DefaultBirdCatalog(),
			RoundConfig:     config.DefaultRoundConfig(),
			settingsManager: sm,
			audioManager:    NewAudioManager(nil, sm),
		}
	}
	return globalGameState
}

// resetGlobalGameState 仅供测试使用
func resetGlobalGameState() {
	globalGameState = nil
}

// SetGdataManager 设置持久化存储并重新加载设置
func (gs *GameState) SetGdataManager(m *gdata.Manager) {
	gs.gdataManager = m
	gs.settingsManager = NewSettingsManager(m)
	if gs.audioManager != nil {
		gs.audioManager.settingsManager = gs.settingsManager
	}
}

// GetGdataManager 返回 gdata 存储，可能为 nil
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// SetAudioManager 替换音频管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器，可能处于静音模式但不为 nil
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}
