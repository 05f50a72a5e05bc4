// Package app 提供卡片列表应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/embedded"
	"github.com/decker502/cardstack/pkg/game"
	"github.com/decker502/cardstack/pkg/scenes"
	"github.com/decker502/cardstack/pkg/types"
	"github.com/decker502/cardstack/pkg/utils"
)

const (
	// defaultConfigPath 内置配置文件路径
	defaultConfigPath = "data/cardlist.yaml"
	// storageAppName gdata 存储目录名
	storageAppName = "cardstack"
	// labelFontSize 卡片文字字号
	labelFontSize = 28
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Scene 指定初始场景（linear/stack/grid），为空则使用上次的选择或配置默认值
	Scene string
	// Items 覆盖条目数量，负数表示使用配置文件中的值
	Items int
	// ConfigPath 外部配置文件路径，为空则使用内置配置
	ConfigPath string
	// ShowDebug 在画面上显示调试信息
	ShowDebug bool
	// DisableStorage 不打开持久化存储（只在内存中记录设置）
	DisableStorage bool
}

// App 应用包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.CardListConfig
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool
}

// NewApp 创建并初始化应用
//
// 使用内置配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cardCfg, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Items >= 0 {
		cardCfg.Items = cfg.Items
	}
	if err := cardCfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置无效: %w", err)
	}

	settings := openSettings(cfg.DisableStorage)

	initialScene := settings.LastScene(cardCfg.InitialScene)
	if cfg.Scene != "" {
		kind, err := types.ParseSceneKind(cfg.Scene)
		if err != nil {
			return nil, fmt.Errorf("初始场景无效: %w", err)
		}
		initialScene = kind
	}
	log.Printf("[App] Initial scene: %s", initialScene)

	font, err := game.LoadDefaultFont(labelFontSize)
	if err != nil {
		// 字体加载失败不影响布局，只是不绘制文字
		log.Printf("[App] Warning: %v", err)
		font = nil
	}

	cardListScene, err := scenes.NewCardListScene(scenes.CardListSceneOptions{
		Config:       cardCfg,
		Settings:     settings,
		Font:         font,
		InitialScene: initialScene,
		ShowDebug:    cfg.ShowDebug,
	})
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(cardListScene)

	if settings.GetSettings().Fullscreen && !utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	return &App{
		cfg:          cardCfg,
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// loadConfig 加载外部配置文件或内置配置
func loadConfig(path string) (*config.CardListConfig, error) {
	if path != "" {
		cardCfg, err := config.LoadCardListConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] Loaded %s", path)
		return cardCfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data unavailable, using defaults")
		return config.DefaultCardListConfig(), nil
	}

	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内置配置读取失败: %w", err)
	}
	cardCfg, err := config.ParseCardListConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内置配置解析失败: %w", err)
	}
	log.Printf("[Config] Loaded embedded %s", defaultConfigPath)
	return cardCfg, nil
}

// openSettings 打开偏好设置，存储不可用时降级为内存模式
func openSettings(disableStorage bool) *game.SettingsManager {
	var manager *game.SettingsManager
	if !disableStorage {
		if err := utils.EnsureStorageDir(); err != nil {
			log.Printf("[App] Warning: storage dir unavailable: %v", err)
		} else if path := utils.GetStoragePath(); path != "" {
			log.Printf("[App] Storage path: %s", path)
		}
		storage, err := game.OpenStorage(storageAppName)
		if err != nil {
			log.Printf("[App] Warning: %v (settings will not persist)", err)
		} else {
			manager, _ = game.NewSettingsManager(storage)
		}
	}
	if manager == nil {
		manager, _ = game.NewSettingsManager(nil)
	}
	return manager
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) && !utils.IsMobile() {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
		log.Printf("[App] Fullscreen: %v", fullscreen)
	}

	if ebiten.IsWindowBeingClosed() {
		a.Close()
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Close 保存当前场景的状态
func (a *App) Close() {
	if !a.sceneManager.SaveCurrent() {
		log.Printf("[App] Warning: failed to save state on exit")
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// WindowConfig 返回窗口配置（main 用于设置窗口大小和标题）
func (a *App) WindowConfig() config.WindowConfig {
	return a.cfg.Window
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
