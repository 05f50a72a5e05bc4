package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/cardstack/pkg/types"
)

// TestDefaultCardListConfig 测试默认配置可通过验证
func TestDefaultCardListConfig(t *testing.T) {
	cfg := DefaultCardListConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.Items != 100 {
		t.Errorf("Items: got %d, want 100", cfg.Items)
	}
	if len(cfg.Palette) != 18 {
		t.Errorf("Palette size: got %d, want 18", len(cfg.Palette))
	}
	if cfg.Spring.Stiffness != SpringStiffnessMedium || cfg.Spring.DampingRatio != SpringDampingLowBouncy {
		t.Errorf("Spring: got %+v", cfg.Spring)
	}

	// 修改返回值不应影响全局默认调色板
	cfg.Palette[0] = "#000000"
	if DefaultPalette[0] != "#E57373" {
		t.Error("DefaultCardListConfig should copy the default palette")
	}
}

// TestParseCardListConfig 测试 YAML 解析与默认值合并
func TestParseCardListConfig(t *testing.T) {
	data := []byte(`
window:
  width: 1080
  height: 1920
items: 42
initialScene: stack
spring:
  stiffness: 200
`)

	cfg, err := ParseCardListConfig(data)
	if err != nil {
		t.Fatalf("ParseCardListConfig() error: %v", err)
	}

	if cfg.Window.Width != 1080 || cfg.Window.Height != 1920 {
		t.Errorf("Window: got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Items != 42 {
		t.Errorf("Items: got %d, want 42", cfg.Items)
	}
	if cfg.InitialScene != types.SceneStack {
		t.Errorf("InitialScene: got %v, want stack", cfg.InitialScene)
	}
	if cfg.Spring.Stiffness != 200 {
		t.Errorf("Stiffness: got %v, want 200", cfg.Spring.Stiffness)
	}
	// 未指定的字段保留默认值
	if cfg.Spring.DampingRatio != SpringDampingLowBouncy {
		t.Errorf("DampingRatio should keep default, got %v", cfg.Spring.DampingRatio)
	}
	if cfg.Window.Title != "Card Stack" {
		t.Errorf("Title should keep default, got %q", cfg.Window.Title)
	}
}

// TestParseCardListConfigInvalid 测试非法配置被拒绝
func TestParseCardListConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"负数条目", "items: -1", "items"},
		{"零宽窗口", "window: {width: 0, height: 100}", "window size"},
		{"非法颜色", "palette: ['#12345']", "palette[0]"},
		{"空调色板", "palette: []", "palette"},
		{"非法场景", "initialScene: carousel", "unknown scene kind"},
		{"零 FPS", "spring: {fps: 0}", "fps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCardListConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// TestLoadCardListConfig 测试从文件加载
func TestLoadCardListConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardlist.yaml")
	if err := os.WriteFile(path, []byte("items: 7\n"), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadCardListConfig(path)
	if err != nil {
		t.Fatalf("LoadCardListConfig() error: %v", err)
	}
	if cfg.Items != 7 {
		t.Errorf("Items: got %d, want 7", cfg.Items)
	}

	if _, err := LoadCardListConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should return error")
	}
}

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#E57373")
	if err != nil {
		t.Fatalf("ParseHexColor() error: %v", err)
	}
	want := color.RGBA{R: 0xE5, G: 0x73, B: 0x73, A: 0xff}
	if got != want {
		t.Errorf("ParseHexColor() = %v, want %v", got, want)
	}

	if _, err := ParseHexColor("#GG0000"); err == nil {
		t.Error("non-hex digits should fail")
	}
}

func TestColors(t *testing.T) {
	cfg := DefaultCardListConfig()
	colors := cfg.Colors()
	if len(colors) != len(cfg.Palette) {
		t.Fatalf("Colors() size: got %d, want %d", len(colors), len(cfg.Palette))
	}
	if colors[len(colors)-1] != (color.RGBA{R: 0x90, G: 0xA4, B: 0xAE, A: 0xff}) {
		t.Errorf("last colour: got %v", colors[len(colors)-1])
	}
}
