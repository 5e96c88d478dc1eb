// Package embedded 让各个包读取 main / mobile 中 //go:embed 的 data/ 目录
//
// embed.FS 只能声明在与 data/ 同级的包里，启动时通过 Init 传进来。
// 测试中可以传 fstest.MapFS。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var dataFS fs.FS

// Init 设置资源文件系统，传 nil 表示取消
func Init(data fs.FS) {
	dataFS = data
}

// IsInitialized 是否已经调用过 Init
func IsInitialized() bool {
	return dataFS != nil
}

// resolve 把 "./data/x"、"data\x" 之类的写法统一成 embed.FS 使用的 "data/x"
func resolve(path string) (string, error) {
	if dataFS == nil {
		return "", errors.New("embedded package not initialized, call Init() first")
	}
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取内嵌文件
func ReadFile(path string) ([]byte, error) {
	p, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, p)
}

// Exists 内嵌文件是否存在
func Exists(path string) bool {
	p, err := resolve(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, p)
	return err == nil
}
