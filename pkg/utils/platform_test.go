//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"桌面默认", "", false},
		{"模拟移动端", "1", true},
		{"其他取值不生效", "true", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(MobileEmulateEnv, tt.env)
			if got := IsMobile(); got != tt.want {
				t.Errorf("IsMobile() with %s=%q = %v, want %v", MobileEmulateEnv, tt.env, got, tt.want)
			}
		})
	}
}
