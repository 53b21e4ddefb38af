package embedded

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// 测试用的内存文件系统，模拟项目根目录 embed.go 中嵌入的 data/ 目录
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/birds.yaml": &fstest.MapFile{Data: []byte("birds: []\n")},
		"data/round.yaml": &fstest.MapFile{Data: []byte("durationSeconds: 15\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	Init(nil)
}

// TestReadFileNotInitialized 测试未初始化时读取嵌入路径
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/birds.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFileEmbedded(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"标准路径", "data/birds.yaml", "birds: []\n"},
		{"带 ./ 前缀", "./data/round.yaml", "durationSeconds: 15\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestReadFileFromDisk 非 data/ 路径直接读取磁盘，不要求初始化
func TestReadFileFromDisk(t *testing.T) {
	Init(nil)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile from disk failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Expected 'hello', got %q", data)
	}

	if !Exists(path) {
		t.Error("Exists() should report the on-disk file")
	}
	if Exists(filepath.Join(t.TempDir(), "missing.yaml")) {
		t.Error("Exists() should be false for a missing file")
	}
}

func TestGlob(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %d (%v)", len(matches), matches)
	}

	if _, err := Glob("assets/*.png"); err == nil {
		t.Error("Expected error for pattern outside data/")
	}
}
