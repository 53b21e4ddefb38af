package entities

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/birdquest/pkg/components"
	"github.com/decker502/birdquest/pkg/config"
	"github.com/decker502/birdquest/pkg/ecs"
)

// SpawnOptions 生成鸟时的参数
type SpawnOptions struct {
	Scale         float64    // 精灵缩放，<= 0 时按 1 处理
	FlapFrameRate float64    // 扇翅帧率
	Rand          *rand.Rand // 随机源，nil 时按当前时间创建
}

func (o *SpawnOptions) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

func (o *SpawnOptions) rng() *rand.Rand {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o.Rand
}

// NewBirdEntity 按原型在 (x, y) 创建一只鸟
//
// 鸟以翅膀向下的姿态出生，并挂上两帧循环的扇翅动画。
// 可点击区域与缩放后的精灵尺寸一致。
func NewBirdEntity(em *ecs.EntityManager, arch *config.BirdArchetype, x, y float64, opts *SpawnOptions) ecs.EntityID {
	if opts == nil {
		opts = &SpawnOptions{}
	}
	width := arch.Width * opts.scale()
	height := arch.Height * opts.scale()

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.BirdComponent{
		ArchetypeID: arch.ID,
		Name:        arch.DisplayName(),
		Speed:       arch.Speed,
		Points:      arch.Points,
		SpawnCount:  1,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Key:    arch.DownPose,
		Width:  width,
		Height: height,
	})
	ecs.AddComponent(em, id, &components.ClickableComponent{
		Width:     width,
		Height:    height,
		IsEnabled: true,
	})
	ecs.AddComponent(em, id, &components.FlapAnimationComponent{
		Frames:    [2]string{arch.DownPose, arch.UpPose},
		FrameRate: opts.FlapFrameRate,
	})
	return id
}

// InitializeBirds 为每个原型创建一只鸟
// 所有鸟都从右边界外 x = viewportWidth 出发，y 均匀随机且整只鸟落在视口高度内
func InitializeBirds(em *ecs.EntityManager, catalog *config.BirdCatalog, viewportWidth, viewportHeight int, opts *SpawnOptions) []ecs.EntityID {
	if opts == nil {
		opts = &SpawnOptions{}
	}
	ids := make([]ecs.EntityID, 0, len(catalog.Birds))
	for i := range catalog.Birds {
		arch := &catalog.Birds[i]
		y := randomY(opts.rng(), viewportHeight, arch.Height*opts.scale())
		ids = append(ids, NewBirdEntity(em, arch, float64(viewportWidth), y, opts))
	}
	log.Printf("[BirdFactory] 生成 %d 只鸟 (视口 %dx%d)", len(ids), viewportWidth, viewportHeight)
	return ids
}

// RespawnBird 把飞出左边界的鸟放回右边界
// x 重置为 viewportWidth，重新随机 y，清除已捕获标记。实体不存在时返回 false
func RespawnBird(em *ecs.EntityManager, id ecs.EntityID, viewportWidth, viewportHeight int, rng *rand.Rand) bool {
	bird, ok := ecs.GetComponent[*components.BirdComponent](em, id)
	if !ok {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return false
	}

	var height float64
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		height = sprite.Height
	}
	pos.X = float64(viewportWidth)
	pos.Y = randomY(rng, viewportHeight, height)
	bird.Captured = false
	bird.SpawnCount++

	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](em, id); ok {
		clickable.IsEnabled = true
	}
	return true
}

// randomY 返回鸟的上边缘，取值 [0, viewportHeight-height]
// 鸟比视口还高时贴着上边缘
func randomY(rng *rand.Rand, viewportHeight int, height float64) float64 {
	span := float64(viewportHeight) - height
	if span <= 0 || rng == nil {
		return 0
	}
	return rng.Float64() * span
}
