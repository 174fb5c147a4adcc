package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/cozyroom/internal/mesh"
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// pointLightScale 点光源贡献的整体缩放，避免近处表面过曝
	pointLightScale = 0.35
	// pointLightMaxAttenuation 衰减系数上限（光源贴近表面时）
	pointLightMaxAttenuation = 4.0
	// sparkDotRadius 投影半径小于该值（像素）的球体画成圆点
	sparkDotRadius = 1.5
	// rainStrokeWidth 雨丝线宽（像素）
	rainStrokeWidth = 1.0
)

// cameraTarget 相机注视点（房间中部略低）
var cameraTarget = mgl64.Vec3{0, 1.0, 0}

// drawKind 绘制项类型
type drawKind int

const (
	drawPolygon drawKind = iota
	drawStreak
	drawDot
)

// drawItem 一个待排序的绘制项
type drawItem struct {
	kind  drawKind
	layer int
	depth float64 // 沿观察方向的深度，越大越远
	color color.RGBA
	alpha float64

	points []mgl64.Vec2 // 多边形顶点或雨丝两端（屏幕坐标）
	radius float64      // 圆点半径
}

// litPoint 本帧参与光照的点光源（世界坐标）
type litPoint struct {
	position  mgl64.Vec3
	color     colorful.Color // 线性空间
	intensity float64
	distance  float64
	decay     float64
}

// Projector 正交等距投影
type Projector struct {
	Forward, Right, Up mgl64.Vec3
	Zoom               float64
	CenterX, CenterY   float64
}

// NewProjector 按相机状态与屏幕尺寸创建投影
func NewProjector(cam *components.CameraComponent, width, height int) Projector {
	forward, right, up := CameraBasis(cam)
	return Projector{
		Forward: forward,
		Right:   right,
		Up:      up,
		Zoom:    cam.Zoom,
		CenterX: float64(width) / 2,
		CenterY: float64(height) / 2,
	}
}

// Project 把世界坐标投影到屏幕，返回屏幕坐标与深度
func (p Projector) Project(v mgl64.Vec3) (mgl64.Vec2, float64) {
	d := v.Sub(cameraTarget)
	sx := p.CenterX + d.Dot(p.Right)*p.Zoom
	sy := p.CenterY - d.Dot(p.Up)*p.Zoom
	return mgl64.Vec2{sx, sy}, d.Dot(p.Forward)
}

// RenderSystem 等距场景渲染
//
// 画家算法：收集所有可见面、雨丝和火星圆点，按 (层, 深度) 从远到近排序后依次绘制。
// 多边形以三角扇形式写入复用的顶点数组批量提交，遇到雨丝或圆点时先提交当前批次。
// 光照：环境光 + 一盏方向光（Lambert）+ 点光源（距离衰减）+ 自发光。
type RenderSystem struct {
	entityManager *ecs.EntityManager

	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex // 顶点数组（复用，避免每帧分配）
	indices    []uint16        // 索引数组（复用，避免每帧分配）
	items      []drawItem
	lights     []litPoint

	lightDir mgl64.Vec3
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &RenderSystem{
		entityManager: em,
		whiteImage:    white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertices:      make([]ebiten.Vertex, 0, 4096),
		indices:       make([]uint16, 0, 8192),
		items:         make([]drawItem, 0, 2048),
		lightDir:      mgl64.Vec3{config.DirectionalX, config.DirectionalY, config.DirectionalZ}.Normalize(),
	}
}

// Draw 绘制整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image, cam *components.CameraComponent) {
	if cam == nil {
		return
	}
	bounds := screen.Bounds()
	proj := NewProjector(cam, bounds.Dx(), bounds.Dy())

	s.items = s.items[:0]
	s.collectLights()
	s.collectMeshes(proj)
	s.collectRain(proj)
	s.sortItems()
	s.flushItems(screen)
}

// Items 返回最近一次 Draw 收集的绘制项数量（调试用）
func (s *RenderSystem) Items() int {
	return len(s.items)
}

// collectLights 收集点光源的世界位置与颜色
func (s *RenderSystem) collectLights() {
	s.lights = s.lights[:0]
	entities := ecs.GetEntitiesWith2[
		*components.PointLightComponent,
		*components.TransformComponent,
	](s.entityManager)

	for _, id := range entities {
		light, _ := ecs.GetComponent[*components.PointLightComponent](s.entityManager, id)
		if light == nil || light.Intensity <= 0 {
			continue
		}
		r, g, b := utils.ParseHexColor(light.Color).LinearRgb()
		s.lights = append(s.lights, litPoint{
			position:  WorldPosition(s.entityManager, id),
			color:     colorful.Color{R: r, G: g, B: b},
			intensity: light.Intensity,
			distance:  light.Distance,
			decay:     light.Decay,
		})
	}
}

// collectMeshes 变换、剔除并着色所有网格面
func (s *RenderSystem) collectMeshes(proj Projector) {
	entities := ecs.GetEntitiesWith2[
		*components.MeshComponent,
		*components.TransformComponent,
	](s.entityManager)

	for _, id := range entities {
		m, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
		if m == nil || m.Hidden {
			continue
		}

		world := WorldMatrix(s.entityManager, id)
		normalMat := world.Mat3().Inv().Transpose()

		base := utils.ParseHexColor(m.Color)
		var emissive colorful.Color
		if m.Emissive != "" && m.EmissiveIntensity > 0 {
			emissive = utils.ScaleLinear(utils.ParseHexColor(m.Emissive), m.EmissiveIntensity)
		}
		alpha := m.Alpha()

		// 很小的球体（火星）直接画成圆点
		if m.Shape.Kind == mesh.KindSphere {
			center := mgl64.TransformCoordinate(mgl64.Vec3{}, world)
			scale := world.Col(0).Vec3().Len()
			if r := m.Shape.Radius * scale * proj.Zoom; r < sparkDotRadius {
				p, depth := proj.Project(center)
				c := s.shade(base, emissive, mgl64.Vec3{0, 1, 0}, center, m.Unlit)
				s.items = append(s.items, drawItem{
					kind:   drawDot,
					layer:  m.Layer,
					depth:  depth,
					color:  utils.ToRGBA(c, alpha),
					alpha:  alpha,
					points: []mgl64.Vec2{p},
					radius: math.Max(1, r),
				})
				continue
			}
		}

		geom := mesh.Build(m.Shape)
		for _, face := range geom.Faces {
			normal := normalMat.Mul3x1(face.Normal)
			if normal.Len() == 0 {
				continue
			}
			normal = normal.Normalize()

			// 背面剔除
			if normal.Dot(proj.Forward) >= 0 {
				continue
			}

			points := make([]mgl64.Vec2, len(face.Vertices))
			var centroid mgl64.Vec3
			for i, v := range face.Vertices {
				wv := mgl64.TransformCoordinate(v, world)
				points[i], _ = proj.Project(wv)
				centroid = centroid.Add(wv)
			}
			centroid = centroid.Mul(1 / float64(len(face.Vertices)))
			_, depth := proj.Project(centroid)

			c := s.shade(base, emissive, normal, centroid, m.Unlit)
			s.items = append(s.items, drawItem{
				kind:   drawPolygon,
				layer:  m.Layer,
				depth:  depth,
				color:  utils.ToRGBA(c, alpha),
				alpha:  alpha,
				points: points,
			})
		}
	}
}

// collectRain 收集可见雨滴的雨丝
func (s *RenderSystem) collectRain(proj Projector) {
	// 相机在后墙前方时雨在房间之后，绕到背面时画在最上层
	layer := components.LayerOutside
	if proj.Forward.Z() > 0 {
		layer = components.LayerFront
	}

	entities := ecs.GetEntitiesWith1[*components.RainComponent](s.entityManager)
	for _, id := range entities {
		rain, _ := ecs.GetComponent[*components.RainComponent](s.entityManager, id)
		if rain == nil {
			continue
		}
		base := utils.ParseHexColor(config.Color("rain"))

		for _, p := range rain.Particles {
			if p.Hidden {
				continue
			}
			alpha := RainOpacity(rain.Config, rain.Elapsed, p.Phase)
			if alpha <= 0 {
				continue
			}
			head, depth := proj.Project(p.Position)
			tail, _ := proj.Project(p.Position.Add(mgl64.Vec3{0, rain.Config.StreakLength, 0}))
			s.items = append(s.items, drawItem{
				kind:   drawStreak,
				layer:  layer,
				depth:  depth,
				color:  utils.ToRGBA(base, alpha),
				alpha:  alpha,
				points: []mgl64.Vec2{head, tail},
			})
		}
	}
}

// shade 计算面中心点的光照颜色
func (s *RenderSystem) shade(base, emissive colorful.Color, normal, point mgl64.Vec3, unlit bool) colorful.Color {
	if unlit {
		return base
	}

	diffuse := config.AmbientIntensity + config.DirectionalIntensity*math.Max(0, normal.Dot(s.lightDir))

	br, bg, bb := base.LinearRgb()
	var tint colorful.Color
	for _, l := range s.lights {
		toLight := l.position.Sub(point)
		d := toLight.Len()
		if d == 0 || (l.distance > 0 && d > l.distance) {
			continue
		}
		lambert := math.Max(0, normal.Dot(toLight.Mul(1/d)))
		if lambert == 0 {
			continue
		}
		k := l.intensity * pointLightScale * lambert * Attenuation(d, l.distance, l.decay)
		tint.R += br * l.color.R * k
		tint.G += bg * l.color.G * k
		tint.B += bb * l.color.B * k
	}
	return utils.ShadeColor(base, diffuse, utils.AddLinear(tint, emissive))
}

// Attenuation 点光源距离衰减
//
//	window = (1 - (d/distance)^4)^2，distance 为 0 时恒为 1
//	atten  = window / max(d^decay, 1/pointLightMaxAttenuation)
func Attenuation(d, distance, decay float64) float64 {
	window := 1.0
	if distance > 0 {
		r := d / distance
		window = utils.Clamp(1-r*r*r*r, 0, 1)
		window *= window
	}
	return window / math.Max(math.Pow(d, decay), 1/pointLightMaxAttenuation)
}

// sortItems 按层升序、同层内按深度从远到近排序
func (s *RenderSystem) sortItems() {
	sort.SliceStable(s.items, func(i, j int) bool {
		a, b := s.items[i], s.items[j]
		if a.layer != b.layer {
			return a.layer < b.layer
		}
		return a.depth > b.depth
	})
}

// flushItems 按排序结果绘制
func (s *RenderSystem) flushItems(screen *ebiten.Image) {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	for i := range s.items {
		item := &s.items[i]
		switch item.kind {
		case drawPolygon:
			// uint16 索引上限
			if len(s.vertices)+len(item.points) > math.MaxUint16 {
				s.flushBatch(screen)
			}
			s.appendPolygon(item)
		case drawStreak:
			s.flushBatch(screen)
			a, b := item.points[0], item.points[1]
			vector.StrokeLine(screen, float32(a.X()), float32(a.Y()), float32(b.X()), float32(b.Y()),
				rainStrokeWidth, item.color, true)
		case drawDot:
			s.flushBatch(screen)
			p := item.points[0]
			vector.DrawFilledCircle(screen, float32(p.X()), float32(p.Y()), float32(item.radius), item.color, true)
		}
	}
	s.flushBatch(screen)
}

// appendPolygon 以三角扇形式追加一个凸多边形
func (s *RenderSystem) appendPolygon(item *drawItem) {
	if len(item.points) < 3 {
		return
	}

	// 顶点颜色使用直通 alpha
	a := float32(item.alpha)
	var r, g, b float32
	if item.color.A > 0 {
		r = float32(item.color.R) / float32(item.color.A)
		g = float32(item.color.G) / float32(item.color.A)
		b = float32(item.color.B) / float32(item.color.A)
	}

	baseIndex := uint16(len(s.vertices))
	for _, p := range item.points {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(p.X()),
			DstY:   float32(p.Y()),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	for i := 1; i+1 < len(item.points); i++ {
		s.indices = append(s.indices, baseIndex, baseIndex+uint16(i), baseIndex+uint16(i+1))
	}
}

// flushBatch 提交当前三角形批次
func (s *RenderSystem) flushBatch(screen *ebiten.Image) {
	if len(s.indices) == 0 {
		s.vertices = s.vertices[:0]
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(s.vertices, s.indices, s.whiteImage, op)
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}
