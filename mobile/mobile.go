//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.scrollpath -o build/android/scrollpath.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/ScrollPath.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/scrollpath/pkg/app"
	"github.com/decker502/scrollpath/pkg/embedded"
)

var gameApp *app.App

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	var err error
	gameApp, err = app.NewApp(app.Config{
		Verbose: true,
		AppName: "scrollpath",
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Suspend 应用进入后台时由宿主调用，保存当前进度
func Suspend() {
	if gameApp != nil {
		gameApp.SaveOnExit()
	}
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
