// Package main 在终端里运行烟花动画
//
// Usage:
//
//	go run ./cmd/fireworks-term [flags]
//
// Flags:
//
//	--fps <n>             帧率（默认 60，动画按帧推进）
//	--scale <n>           每个终端像素对应的逻辑单位（默认 8）
//	--config <path>       烟花配置文件（默认 data/fireworks.yaml，不存在时使用默认值）
//	--max-launches <n>    覆盖 scene.maxLaunches
//	--mute                静音启动
//	--log <path>          日志文件（终端被占用，日志不能写到 stderr）
//
// Controls:
//
//	Mouse Click   - 在点击位置发射烟花
//	C             - 清空烟花
//	S             - 显示/隐藏星空
//	M             - 静音开关
//	Q/Escape      - 退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/fireworks/pkg/config"
)

var (
	fpsFlag         = flag.Int("fps", config.TicksPerSecond, "Frames per second")
	scaleFlag       = flag.Float64("scale", 8, "Logical units per terminal pixel")
	configFlag      = flag.String("config", config.DefaultFireworksConfigPath, "Path to a fireworks YAML config")
	maxLaunchesFlag = flag.Int("max-launches", -1, "Override scene.maxLaunches (0 = unbounded)")
	muteFlag        = flag.Bool("mute", false, "Start with sound effects muted")
	logFlag         = flag.String("log", "", "Write logs to this file (default: discard)")
)

func main() {
	flag.Parse()

	closeLog, err := setupLog(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *maxLaunchesFlag >= 0 {
		cfg.Scene.MaxLaunches = *maxLaunchesFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	host := newHost(screen, cfg, hostOptions{
		FPS:   *fpsFlag,
		Scale: *scaleFlag,
		Mute:  *muteFlag,
	})
	defer host.cleanup()

	host.run()
}

// setupLog 终端被 tcell 占用，日志只能写到文件
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// loadConfig 配置文件不存在时使用默认配置，存在但无效时报错
func loadConfig(path string) (*config.FireworksConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("[Config] %s 不存在，使用默认配置", path)
		return config.DefaultFireworksConfig(), nil
	}
	cfg, err := config.LoadFireworksConfig(path)
	if err != nil {
		return nil, fmt.Errorf("烟花配置加载失败: %w", err)
	}
	return cfg, nil
}
