package systems

import (
	"math"
	"testing"

	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/utils"
)

func TestCameraSystemInitialView(t *testing.T) {
	cfg := config.DefaultSceneConfig().Camera
	cs := NewCameraSystem(ecs.NewEntityManager(), cfg)

	cam := cs.Camera()
	if cam == nil {
		t.Fatal("camera entity should exist")
	}
	if cam.Azimuth != cfg.Azimuth || cam.Zoom != cfg.Zoom || cam.Polar != CameraPolar {
		t.Errorf("camera = %+v, want azimuth %v zoom %v", cam, cfg.Azimuth, cfg.Zoom)
	}
}

func TestCameraSystemClampsAzimuth(t *testing.T) {
	cfg := config.DefaultSceneConfig().Camera
	cs := NewCameraSystem(ecs.NewEntityManager(), cfg)

	for i := 0; i < 600; i++ {
		cs.Update(1.0/60, utils.CameraInput{Rotate: 1})
	}
	cam := cs.Camera()
	if cam.TargetAzimuth != math.Pi {
		t.Errorf("target azimuth = %v, want clamped to π", cam.TargetAzimuth)
	}
	if cam.Azimuth > math.Pi {
		t.Errorf("azimuth = %v exceeds π", cam.Azimuth)
	}

	for i := 0; i < 1200; i++ {
		cs.Update(1.0/60, utils.CameraInput{Rotate: -1})
	}
	if cam.TargetAzimuth != -math.Pi {
		t.Errorf("target azimuth = %v, want clamped to -π", cam.TargetAzimuth)
	}
}

func TestCameraSystemClampsZoom(t *testing.T) {
	cfg := config.DefaultSceneConfig().Camera
	cs := NewCameraSystem(ecs.NewEntityManager(), cfg)
	cam := cs.Camera()

	for i := 0; i < 100; i++ {
		cs.Update(1.0/60, utils.CameraInput{Zoom: 1})
	}
	if cam.TargetZoom != cfg.MaxZoom {
		t.Errorf("target zoom = %v, want %v", cam.TargetZoom, cfg.MaxZoom)
	}

	for i := 0; i < 100; i++ {
		cs.Update(1.0/60, utils.CameraInput{Zoom: -1})
	}
	if cam.TargetZoom != cfg.MinZoom {
		t.Errorf("target zoom = %v, want %v", cam.TargetZoom, cfg.MinZoom)
	}
	if cam.Zoom < cfg.MinZoom || cam.Zoom > cfg.MaxZoom {
		t.Errorf("zoom = %v outside [%v, %v]", cam.Zoom, cfg.MinZoom, cfg.MaxZoom)
	}
}

func TestCameraSystemSetView(t *testing.T) {
	cfg := config.DefaultSceneConfig().Camera
	cs := NewCameraSystem(ecs.NewEntityManager(), cfg)
	cam := cs.Camera()

	cs.SetView(5, 0)
	if cam.Azimuth != math.Pi || cam.TargetAzimuth != math.Pi {
		t.Errorf("azimuth = %v, want π", cam.Azimuth)
	}
	if cam.Zoom != cfg.Zoom {
		t.Errorf("zero zoom should keep %v, got %v", cfg.Zoom, cam.Zoom)
	}

	cs.SetView(0, 1000)
	if cam.Zoom != cfg.MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", cam.Zoom, cfg.MaxZoom)
	}
}
