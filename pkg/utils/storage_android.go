//go:build android

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 预先创建 /data/data/{package}/settings 并确认可写
// gdata 在 Android 上写入该目录，但不会自己创建它
func EnsureStorageDir() error {
	pkg, err := androidPackageName()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, "settings")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// androidPackageName 应用进程的 cmdline 就是包名（以 NUL 结尾）
func androidPackageName() (string, error) {
	raw, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name, _, _ := bytes.Cut(raw, []byte{0})
	name = bytes.TrimSpace(name)
	if len(name) == 0 {
		return "", errors.New("empty /proc/self/cmdline")
	}
	return string(name), nil
}
