package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a top-level view (the room). Each scene has its own
// update and rendering logic.
type Scene interface {
	// Update advances the scene.
	// elapsed is the total time since the scene loop started, deltaTime the
	// time since the previous update, both in seconds.
	Update(elapsed, deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Mounter 是可选接口：场景被切换为当前场景时调用
//
// 倒计时等需要后台资源的场景在 Mount 中获取资源。
type Mounter interface {
	Mount()
}

// Unmounter 是可选接口：场景被切换掉或程序退出时调用
//
// 在 Mount 中获取的资源（如倒计时协程）必须在这里释放。
type Unmounter interface {
	Unmount()
}
