package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/utils"
)

const (
	// CameraPolar 相机极角（与 +Y 轴夹角），固定
	CameraPolar = math.Pi / 3
	// cameraSmoothing 方位角/缩放趋近目标的平滑系数（每个 60Hz 帧）
	cameraSmoothing = 0.2
	// cameraZoomStep 每单位缩放输入改变的比例
	cameraZoomStep = 0.1
)

// CameraSystem 管理等距相机的旋转和缩放
//
// 方位角限制在 [-π, π]，极角固定为 π/3，缩放限制在 [MinZoom, MaxZoom]。
// 输入只改变目标值，当前值每帧平滑趋近目标。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
}

// NewCameraSystem 创建相机系统并创建相机实体
func NewCameraSystem(em *ecs.EntityManager, cfg config.CameraConfig) *CameraSystem {
	cs := &CameraSystem{entityManager: em}

	azimuth := clampCameraAzimuth(cfg.Azimuth)
	zoom := utils.Clamp(cfg.Zoom, cfg.MinZoom, cfg.MaxZoom)

	cs.cameraEntity = em.CreateEntity()
	em.AddComponent(cs.cameraEntity, &components.CameraComponent{
		Azimuth:       azimuth,
		TargetAzimuth: azimuth,
		Polar:         CameraPolar,
		Zoom:          zoom,
		TargetZoom:    zoom,
		MinZoom:       cfg.MinZoom,
		MaxZoom:       cfg.MaxZoom,
		RotateSpeed:   cfg.RotateSpeed,
	})
	em.AddComponent(cs.cameraEntity, &components.LabelComponent{Name: "camera"})

	return cs
}

// Camera 返回相机组件
func (cs *CameraSystem) Camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	return cam
}

// SetView 直接设置方位角与缩放（恢复保存的视角），不经过平滑
// zoom <= 0 时保留当前缩放
func (cs *CameraSystem) SetView(azimuth, zoom float64) {
	cam := cs.Camera()
	if cam == nil {
		return
	}
	cam.Azimuth = clampCameraAzimuth(azimuth)
	cam.TargetAzimuth = cam.Azimuth
	if zoom > 0 {
		cam.Zoom = utils.Clamp(zoom, cam.MinZoom, cam.MaxZoom)
		cam.TargetZoom = cam.Zoom
	}
}

// Update 应用本帧输入并平滑趋近目标
func (cs *CameraSystem) Update(deltaTime float64, input utils.CameraInput) {
	cam := cs.Camera()
	if cam == nil {
		return
	}

	if input.Rotate != 0 {
		cam.TargetAzimuth = clampCameraAzimuth(cam.TargetAzimuth + input.Rotate*cam.RotateSpeed*deltaTime)
	}
	if input.Zoom != 0 {
		cam.TargetZoom = utils.Clamp(cam.TargetZoom*(1+cameraZoomStep*input.Zoom), cam.MinZoom, cam.MaxZoom)
	}

	cam.Azimuth = utils.SmoothTowards(cam.Azimuth, cam.TargetAzimuth, cameraSmoothing, deltaTime)
	cam.Zoom = utils.SmoothTowards(cam.Zoom, cam.TargetZoom, cameraSmoothing, deltaTime)
}

// clampCameraAzimuth 方位角限制在 [-π, π]
func clampCameraAzimuth(a float64) float64 {
	return utils.Clamp(a, -math.Pi, math.Pi)
}

// CameraBasis 计算正交相机的观察方向与屏幕基向量
//
// 相机位于以原点为中心、极角 polar、方位角 azimuth 的方向上（方位角 0 指向 +Z）。
// 返回：
//   - forward: 从相机指向场景的单位向量
//   - right: 屏幕 +X 方向
//   - up: 屏幕上方（屏幕 -Y 方向）
func CameraBasis(cam *components.CameraComponent) (forward, right, up mgl64.Vec3) {
	sp, cp := math.Sincos(cam.Polar)
	sa, ca := math.Sincos(cam.Azimuth)
	toCamera := mgl64.Vec3{sp * sa, cp, sp * ca}
	forward = toCamera.Mul(-1)
	right = mgl64.Vec3{0, 1, 0}.Cross(toCamera).Normalize()
	up = toCamera.Cross(right).Normalize()
	return forward, right, up
}
