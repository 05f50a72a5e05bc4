package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/cardstack/pkg/app"
	"github.com/decker502/cardstack/pkg/embedded"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	sceneFlag  = flag.String("scene", "", "初始场景: linear / stack / grid")
	items      = flag.Int("items", -1, "条目数量（覆盖配置文件）")
	configPath = flag.String("config", "", "外部配置文件路径（默认使用内置 data/cardlist.yaml）")
	debug      = flag.Bool("debug", false, "在画面上显示调试信息")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	cardApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Scene:      *sceneFlag,
		Items:      *items,
		ConfigPath: *configPath,
		ShowDebug:  *debug,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	window := cardApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(cardApp); err != nil {
		log.Fatal(err)
	}
}
