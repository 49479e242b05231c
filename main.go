package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/starblitz/pkg/app"
	"github.com/gonewx/starblitz/pkg/embedded"
	"github.com/gonewx/starblitz/pkg/game"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	// 设置持久化：打开失败时降级为内存默认设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "starblitz"})
	if err != nil {
		log.Printf("[Main] gdata unavailable, using default settings: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Fatalf("设置初始化失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{Verbose: *verbose}, settings)
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Star Blitz")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
