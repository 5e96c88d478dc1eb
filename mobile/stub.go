//go:build !mobile

// Package mobile 是 ebitenmobile 绑定入口，真正的代码只在 -tags mobile 时编译
package mobile

// Dummy 让普通构建下 ./mobile 仍是一个合法的包
func Dummy() {}
