//go:build !android

package utils

// EnsureStorageDir 桌面和 iOS 上由 gdata 自行创建目录
func EnsureStorageDir() error {
	return nil
}
