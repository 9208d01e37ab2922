package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/journey.yaml": &fstest.MapFile{Data: []byte("totalLength: 300\n")},
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
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/journey.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFile 测试读取内嵌文件
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/journey.yaml", false},
		{"带 ./ 前缀", "./data/journey.yaml", false},
		{"不存在的文件", "data/missing.yaml", true},
		{"未知前缀", "assets/journey.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != "totalLength: 300\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	if !Exists("data/journey.yaml") {
		t.Error("Expected data/journey.yaml to exist")
	}
	if Exists("data/content.yaml") {
		t.Error("Expected data/content.yaml to be missing")
	}
}
