package main

import (
	"flag"
	"log"

	"github.com/gonewx/cozyroom/pkg/app"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "场景参数文件路径（默认使用内置 data/scene.yaml）")
	seed       = flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	duration   = flag.Duration("duration", 0, "覆盖倒计时时长，例如 5m 或 90s")
	mute       = flag.Bool("mute", false, "启动时静音")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	roomApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Duration:   *duration,
		Mute:       *mute,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer roomApp.Close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Cozy Room")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(roomApp); err != nil {
		log.Fatal(err)
	}
}
