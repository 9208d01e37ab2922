package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// JourneySave 旅程存档
type JourneySave struct {
	// SessionID 本次安装的会话标识，首次保存时生成
	SessionID string `yaml:"sessionId"`

	// Progress 已走过的距离（actual）
	Progress float64 `yaml:"progress"`

	// ZoneID 保存时所在的区域
	ZoneID string `yaml:"zoneId"`

	SavedAt time.Time `yaml:"savedAt"`
}

// 存储路径常量
const (
	journeyObject   = "journey"
	journeyProperty = "progress"
)

// JourneySaveManager 旅程进度存档管理器
// gdataManager 为 nil 时进入降级模式：Load 总是返回空存档，Save 不做任何事
type JourneySaveManager struct {
	gdataManager *gdata.Manager
	sessionID    string
	current      *JourneySave
}

// NewJourneySaveManager 创建存档管理器并尝试加载已有存档
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *JourneySaveManager: 存档管理器实例（加载失败不影响创建）
func NewJourneySaveManager(gdataManager *gdata.Manager) *JourneySaveManager {
	m := &JourneySaveManager{gdataManager: gdataManager}
	if err := m.Load(); err != nil {
		log.Printf("[JourneySave] Warning: Failed to load journey: %v (starting fresh)", err)
	}
	if m.sessionID == "" {
		m.sessionID = uuid.NewString()
	}
	return m
}

// Load 从 gdata 加载存档，不存在时不报错
func (m *JourneySaveManager) Load() error {
	m.current = nil
	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(journeyObject, journeyProperty) {
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(journeyObject, journeyProperty)
	if err != nil {
		return fmt.Errorf("failed to load journey: %w", err)
	}

	var save JourneySave
	if err := yaml.Unmarshal(data, &save); err != nil {
		return fmt.Errorf("failed to unmarshal journey: %w", err)
	}

	m.current = &save
	m.sessionID = save.SessionID
	log.Printf("[JourneySave] Loaded: progress=%.2f zone=%s", save.Progress, save.ZoneID)
	return nil
}

// Current 返回已加载的存档，没有存档时返回 nil
func (m *JourneySaveManager) Current() *JourneySave {
	return m.current
}

// SessionID 返回会话标识
func (m *JourneySaveManager) SessionID() string {
	return m.sessionID
}

// Save 保存进度
func (m *JourneySaveManager) Save(progress float64, zoneID string) error {
	save := &JourneySave{
		SessionID: m.sessionID,
		Progress:  progress,
		ZoneID:    zoneID,
		SavedAt:   time.Now().UTC(),
	}
	m.current = save

	if m.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(save)
	if err != nil {
		return fmt.Errorf("failed to marshal journey: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(journeyObject, journeyProperty, data); err != nil {
		return fmt.Errorf("failed to save journey: %w", err)
	}

	log.Printf("[JourneySave] Saved: progress=%.2f zone=%s", progress, zoneID)
	return nil
}

// SaveFrame 保存帧中的进度
func (m *JourneySaveManager) SaveFrame(f Frame) error {
	return m.Save(f.Progress.Actual, f.Zone.ID)
}

// Clear 删除存档
func (m *JourneySaveManager) Clear() error {
	m.current = nil
	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(journeyObject, journeyProperty) {
		return nil
	}
	if err := m.gdataManager.DeleteObjectProp(journeyObject, journeyProperty); err != nil {
		return fmt.Errorf("failed to delete journey: %w", err)
	}
	return nil
}
