package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultSceneConfigIsValid 默认配置必须通过校验
func TestDefaultSceneConfigIsValid(t *testing.T) {
	cfg := DefaultSceneConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultSceneConfig().Validate() = %v", err)
	}
	if cfg.Timer.InitialSeconds != 1500 {
		t.Errorf("默认倒计时应为 1500 秒, got %d", cfg.Timer.InitialSeconds)
	}
	if cfg.Fire.FlameCount != 8 || cfg.Fire.SparkCount != 12 {
		t.Errorf("默认火焰/火星数量应为 8/12, got %d/%d", cfg.Fire.FlameCount, cfg.Fire.SparkCount)
	}
}

// TestParseSceneConfigKeepsDefaults 未出现的字段保留默认值
func TestParseSceneConfigKeepsDefaults(t *testing.T) {
	data := []byte(`
rain:
  count: 64
timer:
  initialSeconds: 90
`)
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		t.Fatalf("ParseSceneConfig() failed: %v", err)
	}

	if cfg.Rain.Count != 64 {
		t.Errorf("Rain.Count = %d, 期望 64", cfg.Rain.Count)
	}
	if cfg.Timer.InitialSeconds != 90 {
		t.Errorf("Timer.InitialSeconds = %d, 期望 90", cfg.Timer.InitialSeconds)
	}
	def := DefaultSceneConfig()
	if cfg.Rain.FallSpeed != def.Rain.FallSpeed {
		t.Errorf("FallSpeed 应保留默认值 %v, got %v", def.Rain.FallSpeed, cfg.Rain.FallSpeed)
	}
	if cfg.Cat.BlinkDuration != def.Cat.BlinkDuration {
		t.Errorf("BlinkDuration 应保留默认值 %v, got %v", def.Cat.BlinkDuration, cfg.Cat.BlinkDuration)
	}
}

// TestParseSceneConfigErrors 配置错误在构造阶段被发现
func TestParseSceneConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "负数粒子池",
			yaml:    "rain: {count: -5}",
			wantErr: ErrInvalidPoolSize,
		},
		{
			name:    "零速度",
			yaml:    "rain: {fallSpeed: 0}",
			wantErr: ErrInvalidSpeed,
		},
		{
			name: "出生区域被室内完全覆盖",
			yaml: `
rain:
  spawn: {min: {x: -1, y: 1, z: -1}, max: {x: 1, y: 2, z: 1}}
`,
			wantErr: ErrSpawnCoveredByInterior,
		},
		{
			name:    "非法包围盒",
			yaml:    "rain: {spawn: {min: {x: 1, y: 0, z: 0}, max: {x: -1, y: 1, z: 1}}}",
			wantErr: ErrInvalidBox,
		},
		{
			name:    "零火星",
			yaml:    "fire: {sparkCount: 0}",
			wantErr: ErrInvalidPoolSize,
		},
		{
			name:    "零眨眼时长",
			yaml:    "cat: {blinkDuration: 0}",
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "负数倒计时",
			yaml:    "timer: {initialSeconds: -1}",
			wantErr: ErrInvalidTimer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneConfig([]byte(tt.yaml))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseSceneConfig() error = %v, 期望 %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseSceneConfigMalformedYAML(t *testing.T) {
	if _, err := ParseSceneConfig([]byte("rain: [unterminated")); err == nil {
		t.Error("格式错误的 YAML 应返回错误")
	}
}

func TestLoadSceneConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scene.yaml")
		if err := os.WriteFile(path, []byte("fire: {size: 1.5}\n"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		cfg, err := LoadSceneConfig(path)
		if err != nil {
			t.Fatalf("LoadSceneConfig() failed: %v", err)
		}
		if cfg.Fire.Size != 1.5 {
			t.Errorf("Fire.Size = %v, 期望 1.5", cfg.Fire.Size)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadSceneConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("不存在的文件应返回错误")
		}
	})
}
