// Package main provides a headless verification tool for the room effects.
//
// Usage:
//
//	go run cmd/verify_effects/main.go [flags]
//
// Flags:
//
//	--config <path>    Scene config file (default: built-in defaults)
//	--seconds <n>      Simulated seconds (default: 120)
//	--fps <n>          Simulated frame rate (default: 60)
//	--seed <n>         Random seed (default: 1)
//	--verbose          Enable verbose logging
//
// Purpose:
//   - Check rain pool invariants (fixed size, never below floor, hidden iff inside the room)
//   - Count blink cycles and tail flips over a long run
//   - Confirm the fire light never goes negative
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/entities"
	"github.com/gonewx/cozyroom/pkg/systems"
)

var (
	configFlag  = flag.String("config", "", "Scene config file (default: built-in defaults)")
	secondsFlag = flag.Float64("seconds", 120, "Simulated seconds")
	fpsFlag     = flag.Int("fps", 60, "Simulated frame rate")
	seedFlag    = flag.Uint64("seed", 1, "Random seed")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultSceneConfig()
	if *configFlag != "" {
		loaded, err := config.LoadSceneConfig(*configFlag)
		if err != nil {
			fmt.Printf("❌ 场景参数加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *fpsFlag <= 0 {
		fmt.Printf("❌ fps 必须为正数\n")
		os.Exit(1)
	}

	rng := rand.New(rand.NewPCG(*seedFlag, *seedFlag+1))
	em := ecs.NewEntityManager()
	room, err := entities.BuildRoom(em, cfg, rng)
	if err != nil {
		fmt.Printf("❌ 场景构建失败: %v\n", err)
		os.Exit(1)
	}

	rainSystem := systems.NewRainSystem(em, rng)
	fireSystem := systems.NewFireSystem(em)
	blinkSystem := systems.NewBlinkSystem(em, rng)
	tailSystem := systems.NewTailSwaySystem(em)

	rain, _ := ecs.GetComponent[*components.RainComponent](em, room.Rain)
	fire, _ := ecs.GetComponent[*components.FireComponent](em, room.Fireplace)
	blink, _ := ecs.GetComponent[*components.BlinkComponent](em, room.Cat)
	fireLight, _ := ecs.GetComponent[*components.PointLightComponent](em, fire.Light)

	var tail *components.TailSwayComponent
	if ids := ecs.GetEntitiesWith1[*components.TailSwayComponent](em); len(ids) > 0 {
		tail, _ = ecs.GetComponent[*components.TailSwayComponent](em, ids[0])
	}

	dt := 1.0 / float64(*fpsFlag)
	frames := int(*secondsFlag * float64(*fpsFlag))
	var (
		elapsed      float64
		violations   int
		maxHidden    int
		minLight     = fireLight.Intensity
		tailFlips    int
		lastTailSign float64
	)

	fmt.Printf("=== 房间效果验证：%d 帧 @ %d fps ===\n\n", frames, *fpsFlag)

	for frame := 0; frame < frames; frame++ {
		rainSystem.Update(dt)
		fireSystem.Update(elapsed)
		blinkSystem.Update(dt)
		tailSystem.Update(dt)
		elapsed += dt

		if len(rain.Particles) != cfg.Rain.Count {
			fmt.Printf("❌ 帧 %d: 雨滴池大小 %d ≠ %d\n", frame, len(rain.Particles), cfg.Rain.Count)
			violations++
		}
		hidden := 0
		for i, p := range rain.Particles {
			pos := config.Vec3{X: p.Position.X(), Y: p.Position.Y(), Z: p.Position.Z()}
			if p.Position.Y() < cfg.Rain.FloorY {
				fmt.Printf("❌ 帧 %d: 雨滴 %d 低于地面 (y=%.3f)\n", frame, i, p.Position.Y())
				violations++
			}
			if cfg.Rain.Interior.Contains(pos) != p.Hidden {
				fmt.Printf("❌ 帧 %d: 雨滴 %d 隐藏标记错误\n", frame, i)
				violations++
			}
			if p.Hidden {
				hidden++
			}
		}
		maxHidden = max(maxHidden, hidden)

		if fireLight.Intensity < 0 {
			fmt.Printf("❌ 帧 %d: 火光强度为负 (%.3f)\n", frame, fireLight.Intensity)
			violations++
		}
		minLight = min(minLight, fireLight.Intensity)

		if tail != nil && tail.Direction != lastTailSign {
			if lastTailSign != 0 {
				tailFlips++
			}
			lastTailSign = tail.Direction
		}
	}

	fmt.Println("--- 雨滴 ---")
	fmt.Printf("池大小: %d\n", len(rain.Particles))
	fmt.Printf("回收次数: %d（闭式采样 %d 次）\n", rain.Recycled, rain.Fallbacks)
	fmt.Printf("同时隐藏的最大数量: %d\n\n", maxHidden)

	fmt.Println("--- 壁炉 ---")
	fmt.Printf("火焰 %d / 火星 %d，最低光强 %.3f\n\n", len(fire.Flames), len(fire.Sparks), minLight)

	fmt.Println("--- 猫咪 ---")
	fmt.Printf("眨眼次数: %d（当前 %s）\n", blink.Cycles, blink.State)
	fmt.Printf("尾巴换向次数: %d\n\n", tailFlips)

	if violations > 0 {
		fmt.Printf("❌ 发现 %d 处违例\n", violations)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有不变量成立\n")
}
