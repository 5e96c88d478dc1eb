package utils

import "os"

// MobileEmulateEnv 桌面端设为 "1" 时按移动端布局运行（触屏提示、无键盘快捷键说明）
const MobileEmulateEnv = "FIREWORKS_MOBILE_EMULATE"

// IsMobile 是否按移动端运行：-tags mobile 构建，或设置了 MobileEmulateEnv
func IsMobile() bool {
	return mobileBuild || os.Getenv(MobileEmulateEnv) == "1"
}
