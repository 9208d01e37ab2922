//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按移动端处理（本地调试触摸交互）
const MobileEmulateEnv = "SCROLLPATH_MOBILE_EMULATE"

// IsMobile 桌面端返回 false，除非设置了 MobileEmulateEnv
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
