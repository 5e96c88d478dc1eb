package main

import "embed"

// dataFS 桌面端内嵌的配置和音效，main 启动时交给 embedded.Init
//
//go:embed data/fireworks.yaml data/resources.yaml data/sounds
var dataFS embed.FS
