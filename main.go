package main

import (
	"flag"
	"log"

	"github.com/gonewx/fireworks/pkg/app"
	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag     = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag      = flag.String("config", "", "Path to a fireworks YAML config (default: embedded data/fireworks.yaml)")
	maxLaunchesFlag = flag.Int("max-launches", -1, "Override scene.maxLaunches (0 = unbounded)")
	muteFlag        = flag.Bool("mute", false, "Start with sound effects muted")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		ConfigPath:  *configFlag,
		MaxLaunches: *maxLaunchesFlag,
		Mute:        *muteFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	err = ebiten.RunGame(gameApp)
	gameApp.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}
