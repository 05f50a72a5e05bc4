package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/cardstack/pkg/types"
	"gopkg.in/yaml.v3"
)

// CardListConfig 卡片列表应用配置
//
// 配置文件位置: data/cardlist.yaml
type CardListConfig struct {
	// Window 窗口（逻辑屏幕）配置
	Window WindowConfig `yaml:"window"`

	// Items 适配器中的条目数量
	Items int `yaml:"items"`

	// ItemMargin 卡片装饰边距（像素），左右各 m，上下各 m/2
	ItemMargin int `yaml:"itemMargin"`

	// InitialScene 首次启动时使用的场景（存档中有记录时以存档为准）
	InitialScene types.SceneKind `yaml:"initialScene"`

	// Spring 弹簧动画参数
	Spring SpringConfig `yaml:"spring"`

	// Toolbar 场景切换按钮栏
	Toolbar ToolbarConfig `yaml:"toolbar"`

	// Palette 卡片背景色，按 position % len(Palette) 循环使用
	Palette []string `yaml:"palette"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SpringConfig 弹簧动画配置
type SpringConfig struct {
	// Stiffness 弹簧刚度，角频率 = sqrt(Stiffness)
	Stiffness float64 `yaml:"stiffness"`

	// DampingRatio 阻尼比，1 为临界阻尼
	DampingRatio float64 `yaml:"dampingRatio"`

	// FPS 动画时钟频率
	FPS int `yaml:"fps"`
}

// ToolbarConfig 场景切换按钮栏配置
type ToolbarConfig struct {
	// ButtonSize 圆形按钮直径
	ButtonSize int `yaml:"buttonSize"`

	// Spacing 按钮间距
	Spacing int `yaml:"spacing"`
}

// DefaultPalette 默认卡片配色
var DefaultPalette = []string{
	"#E57373", "#F06292", "#BA68C8", "#9575CD", "#7986CB", "#64B5F6",
	"#4FC3F7", "#4DD0E1", "#4DB6AC", "#81C784", "#AED581", "#DCE775",
	"#FFF176", "#FFD54F", "#FF8A65", "#A1887F", "#E0E0E0", "#90A4AE",
}

// DefaultCardListConfig 返回默认配置
func DefaultCardListConfig() *CardListConfig {
	palette := make([]string, len(DefaultPalette))
	copy(palette, DefaultPalette)
	return &CardListConfig{
		Window: WindowConfig{
			Width:  540,
			Height: 960,
			Title:  "Card Stack",
		},
		Items:        100,
		ItemMargin:   8,
		InitialScene: types.SceneGrid,
		Spring: SpringConfig{
			Stiffness:    SpringStiffnessMedium,
			DampingRatio: SpringDampingLowBouncy,
			FPS:          DefaultAnimationFPS,
		},
		Toolbar: ToolbarConfig{
			ButtonSize: 56,
			Spacing:    16,
		},
		Palette: palette,
	}
}

// LoadCardListConfig 从文件加载卡片列表配置
//
// 参数:
//   - path: 配置文件路径（如 "data/cardlist.yaml"）
//
// 返回:
//   - *CardListConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadCardListConfig(path string) (*CardListConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card list config: %w", err)
	}
	return ParseCardListConfig(data)
}

// ParseCardListConfig 解析 YAML 格式的卡片列表配置
//
// 未出现在 YAML 中的字段保留默认值
func ParseCardListConfig(data []byte) (*CardListConfig, error) {
	cfg := DefaultCardListConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse card list config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid card list config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口尺寸为正
//   - 条目数量、边距非负
//   - 弹簧刚度、阻尼比、FPS 为正
//   - 调色板非空且每项均为合法的 #RRGGBB
func (c *CardListConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive: %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Items < 0 {
		return fmt.Errorf("items must not be negative: %d", c.Items)
	}

	if c.ItemMargin < 0 {
		return fmt.Errorf("itemMargin must not be negative: %d", c.ItemMargin)
	}

	if c.Spring.Stiffness <= 0 {
		return fmt.Errorf("spring stiffness must be positive: %.2f", c.Spring.Stiffness)
	}

	if c.Spring.DampingRatio <= 0 {
		return fmt.Errorf("spring dampingRatio must be positive: %.2f", c.Spring.DampingRatio)
	}

	if c.Spring.FPS <= 0 {
		return fmt.Errorf("spring fps must be positive: %d", c.Spring.FPS)
	}

	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must not be empty")
	}

	for i, hex := range c.Palette {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("palette[%d]: %w", i, err)
		}
	}

	return nil
}

// Colors 返回解析后的调色板
// 调用前应已通过 Validate，非法项被替换为灰色
func (c *CardListConfig) Colors() []color.RGBA {
	colors := make([]color.RGBA, 0, len(c.Palette))
	for _, hex := range c.Palette {
		col, err := ParseHexColor(hex)
		if err != nil {
			col = color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}
		}
		colors = append(colors, col)
	}
	return colors
}

// ParseHexColor 解析 "#RRGGBB" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
