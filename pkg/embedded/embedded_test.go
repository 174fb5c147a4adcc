package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/scene.yaml":     {Data: []byte("timer:\n  initialSeconds: 60\n")},
		"data/presets/a.yaml": {Data: []byte("{}")},
		"assets/ignored.png":  {Data: []byte{0}},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false with a nil FS")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	Init(nil)
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile(SceneConfigPath)
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"data/scene.yaml", false},
		{"./data/scene.yaml", false},
		{"data/missing.yaml", true},
		{"assets/ignored.png", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned no data", tt.path)
			}
		})
	}
}

func TestExistsAndReadDir(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists(SceneConfigPath) {
		t.Errorf("%s should exist", SceneConfigPath)
	}
	if Exists("data/nope.yaml") {
		t.Error("missing file should not exist")
	}

	entries, err := ReadDir("data/presets")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("entries = %d, want 1", len(entries))
	}
}
