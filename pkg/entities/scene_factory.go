package entities

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

// 家具摆放
const (
	fireplaceX, fireplaceY, fireplaceZ = -half + 0.45, 0.05, 0.7
	shelfX, shelfY, shelfZ             = -1.25, 1.6, -half + 0.15
	chairX, chairY, chairZ             = 1.2, 0, -0.2
	catX, catY, catZ                   = -0.6, 0.05, 0.9
	laptopDepthOffset                  = 0.05
)

// RoomEntities 场景中效果系统需要直接访问的实体
type RoomEntities struct {
	Root      ecs.EntityID
	Rain      ecs.EntityID
	Fireplace ecs.EntityID
	Cat       ecs.EntityID
	Laptop    ecs.EntityID
}

// BuildRoom 按场景参数组装整个卧室
//
// 构造失败（参数非法、出生区域被室内完全覆盖）时返回错误，实体管理器中可能残留部分实体。
func BuildRoom(em *ecs.EntityManager, cfg *config.SceneConfig, rng *rand.Rand) (*RoomEntities, error) {
	if cfg == nil {
		return nil, fmt.Errorf("scene config cannot be nil")
	}

	root, err := NewRoomShell(em)
	if err != nil {
		return nil, err
	}
	out := &RoomEntities{Root: root}

	NewBed(em, root)
	desk, topY := NewDesk(em, root)
	out.Laptop = NewLaptop(em, desk, 0, topY+0.0125, laptopDepthOffset, 0)
	NewPlant(em, root)
	NewChair(em, root, chairX, chairY, chairZ, math.Pi)
	NewShelf(em, root, shelfX, shelfY, shelfZ, 1)

	if out.Fireplace, err = NewFireplace(em, root, cfg.Fire, rng, fireplaceX, fireplaceY, fireplaceZ, math.Pi/2); err != nil {
		return nil, err
	}
	if out.Cat, err = NewCat(em, root, cfg.Cat, rng, catX, catY, catZ, math.Pi/4); err != nil {
		return nil, err
	}
	if out.Rain, err = NewRainEntity(em, cfg.Rain, rng); err != nil {
		return nil, err
	}

	log.Printf("[SceneFactory] Room built with %d entities", em.Count())
	return out, nil
}
