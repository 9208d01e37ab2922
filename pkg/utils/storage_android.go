//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在 gdata 初始化前创建 /data/data/{package}/saves
// gdata 在 Android 上不会预先创建该目录
func EnsureStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}
	// cmdline 以 NUL 分隔，第一段即包名
	pkg := string(bytes.TrimRight(bytes.SplitN(cmdline, []byte{0}, 2)[0], "\n"))
	if pkg == "" {
		return fmt.Errorf("failed to detect Android package: empty cmdline")
	}

	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", dir, err)
	}
	return nil
}
