package components

// Zone 内容区域
//
// 区间为 (End, Start]，进度坐标 p 满足 p <= Start && p > End 时命中。
type Zone struct {
	ID    string
	Title string
	Start float64
	End   float64
}

// Contains 判断进度坐标 p 是否落在区域内
func (z Zone) Contains(p float64) bool {
	return p <= z.Start && p > z.End
}

// ZoneChange 区域切换通知
// 只在活动区域发生变化时发出
type ZoneChange struct {
	// Index 区域在区域表中的下标
	Index int
	ID    string
	Title string
	// PreviousID 切换前的区域 ID
	PreviousID string
}
