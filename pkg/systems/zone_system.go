package systems

import (
	"log"

	"github.com/decker502/scrollpath/pkg/components"
	"github.com/decker502/scrollpath/pkg/config"
)

// ClassifyZone 按"后匹配覆盖"策略在区域表中查找进度坐标 p 所在的区域。
//
// 顺序遍历全部区域且不提前退出：若区域边界重叠，列表中靠后的命中区域胜出。
// 没有任何区域命中时返回 ok=false。
func ClassifyZone(p float64, zones []components.Zone) (index int, ok bool) {
	index = -1
	for i, zone := range zones {
		if zone.Contains(p) {
			index = i
		}
	}
	return index, index >= 0
}

// ZoneClassifier 跟踪当前活动区域。
//
// 初始活动区域为区域表第一项。没有区域命中时保持上一个活动区域，
// 这与每帧未命中即重置回第一个区域的做法刻意不同。
// 只在活动区域变化时通知监听者，避免每帧重建内容面板。
type ZoneClassifier struct {
	zones     []components.Zone
	active    int
	listeners []func(components.ZoneChange)
}

// NewZoneClassifier 根据配置创建区域分类器
func NewZoneClassifier(cfg *config.JourneyConfig) *ZoneClassifier {
	zones := make([]components.Zone, len(cfg.Zones))
	for i, z := range cfg.Zones {
		zones[i] = components.Zone{ID: z.ID, Title: z.Title, Start: z.Start, End: z.End}
	}
	return &ZoneClassifier{zones: zones}
}

// OnZoneChanged 注册区域切换监听
func (zc *ZoneClassifier) OnZoneChanged(fn func(components.ZoneChange)) {
	zc.listeners = append(zc.listeners, fn)
}

// Update 用进度坐标 p（通常为 -actual）更新活动区域。
// 返回当前活动区域以及本次是否发生切换。
func (zc *ZoneClassifier) Update(p float64) (components.Zone, bool) {
	index, ok := ClassifyZone(p, zc.zones)
	if !ok || index == zc.active {
		return zc.zones[zc.active], false
	}

	previous := zc.zones[zc.active]
	zc.active = index
	current := zc.zones[index]

	log.Printf("[ZoneClassifier] Zone changed: %s -> %s (p=%.2f)", previous.ID, current.ID, p)

	change := components.ZoneChange{
		Index:      index,
		ID:         current.ID,
		Title:      current.Title,
		PreviousID: previous.ID,
	}
	for _, fn := range zc.listeners {
		fn(change)
	}
	return current, true
}

// Active 返回当前活动区域及其下标
func (zc *ZoneClassifier) Active() (components.Zone, int) {
	return zc.zones[zc.active], zc.active
}

// Zones 返回区域表副本
func (zc *ZoneClassifier) Zones() []components.Zone {
	out := make([]components.Zone, len(zc.zones))
	copy(out, zc.zones)
	return out
}
