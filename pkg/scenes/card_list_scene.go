package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/cardstack/pkg/animator"
	"github.com/decker502/cardstack/pkg/components"
	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/ecs"
	"github.com/decker502/cardstack/pkg/entities"
	"github.com/decker502/cardstack/pkg/game"
	"github.com/decker502/cardstack/pkg/layoutmanager"
	"github.com/decker502/cardstack/pkg/systems"
	"github.com/decker502/cardstack/pkg/transition"
	"github.com/decker502/cardstack/pkg/types"
	"github.com/decker502/cardstack/pkg/utils"
)

const (
	// wheelStep 每格滚轮对应的滚动像素
	wheelStep = 60.0
	// keyScrollStep 方向键每次滚动的像素
	keyScrollStep = 40
	// dragSlop 拖拽进入滚动前允许的位移
	dragSlop = 8
)

var backgroundColor = color.RGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF}

// CardListSceneOptions 卡片列表场景的创建参数
type CardListSceneOptions struct {
	// Config 应用配置，不能为 nil
	Config *config.CardListConfig
	// Settings 偏好设置，可为 nil（不记录场景选择）
	Settings *game.SettingsManager
	// Font 卡片和按钮文字字体，可为 nil（不绘制文字）
	Font *text.GoTextFace
	// InitialScene 初始场景
	InitialScene types.SceneKind
	// ShowDebug 绘制调试信息（场景、偏移、动画数量）
	ShowDebug bool
}

// frameInput 一帧中与平台无关的输入
type frameInput struct {
	Pointer systems.PointerState
	// ScrollDelta 列表滚动量，正值表示内容向上移动
	ScrollDelta int
	// SelectScene 键盘选择的场景
	SelectScene *types.SceneKind
}

// CardListScene 卡片列表场景
//
// 场景同时充当布局引擎的宿主：卡片视图是 ECS 实体，
// 布局引擎通过视图句柄（即实体ID）驱动它们的挂载、回收和定位。
// 场景切换后的第一次 Update 中执行预测布局并调度过渡动画。
type CardListScene struct {
	cfg       *config.CardListConfig
	settings  *game.SettingsManager
	showDebug bool

	width, height int

	entityManager *ecs.EntityManager
	adapter       *game.CardAdapter

	layoutManager *layoutmanager.LayoutManager
	itemAnimator  *animator.ItemAnimator
	tracker       *transition.Tracker

	cardRenderSystem   *systems.CardRenderSystem
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	dragManager        *utils.DragManager

	// children 挂载的子视图，顺序与布局引擎一致
	children []ecs.EntityID
	// pool 回收池
	pool []ecs.EntityID
	// ghosts 正在播放消失动画的快照
	ghosts map[types.ItemKey]ecs.EntityID

	// laidOut 是否完成过首次布局
	laidOut bool
	// pendingRelayout 条目区间已变化，等待下一帧执行过渡布局
	pendingRelayout bool
	// laidOutItemCount 上一次真实布局使用的条目数量
	laidOutItemCount int
}

// NewCardListScene 创建卡片列表场景
//
// 参数：
//   - opts: 创建参数
//
// 返回：
//   - *CardListScene: 场景实例
//   - error: 配置无效时返回错误
func NewCardListScene(opts CardListSceneOptions) (*CardListScene, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("card list scene requires a config")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid card list config: %w", err)
	}

	cfg := opts.Config
	scene := &CardListScene{
		cfg:           cfg,
		settings:      opts.Settings,
		showDebug:     opts.ShowDebug,
		width:         cfg.Window.Width,
		height:        cfg.Window.Height,
		entityManager: ecs.NewEntityManager(),
		adapter:       game.NewCardAdapter(cfg.Items, cfg.Colors()),
		dragManager:   utils.NewDragManager(dragSlop),
		ghosts:        make(map[types.ItemKey]ecs.EntityID),
	}

	scene.layoutManager = layoutmanager.New(scene, opts.InitialScene)
	scene.itemAnimator = animator.NewItemAnimator(cfg.Spring, scene, scene)
	scene.layoutManager.SetAnimationSettler(scene.itemAnimator)
	scene.tracker = transition.NewTracker(scene.layoutManager, scene.itemAnimator, scene)

	scene.cardRenderSystem = systems.NewCardRenderSystem(scene.entityManager, scene.itemAnimator, cfg.ItemMargin, opts.Font)
	scene.buttonSystem = systems.NewButtonSystem(scene.entityManager)
	scene.buttonRenderSystem = systems.NewButtonRenderSystem(scene.entityManager)
	scene.createSceneButtons(opts.Font)
	scene.updateButtonSelection()

	log.Printf("[CardListScene] Created: %dx%d, %d items, scene=%s",
		scene.width, scene.height, scene.adapter.ItemCount(), opts.InitialScene)
	return scene, nil
}

// createSceneButtons 在底部居中创建 Linear / Stack / Grid 三个切换按钮
func (s *CardListScene) createSceneButtons(font *text.GoTextFace) {
	size := float64(s.cfg.Toolbar.ButtonSize)
	spacing := float64(s.cfg.Toolbar.Spacing)
	kinds := []types.SceneKind{types.SceneLinear, types.SceneStack, types.SceneGrid}

	total := float64(len(kinds))*size + float64(len(kinds)-1)*spacing
	x := (float64(s.width) - total) / 2
	y := float64(s.height) - size - spacing

	for _, kind := range kinds {
		entities.NewSceneButton(s.entityManager, kind, font, x, y, size, func() {
			s.SwitchScene(kind)
		})
		x += size + spacing
	}
}

// SwitchScene 切换布局场景，下一帧执行过渡动画
func (s *CardListScene) SwitchScene(kind types.SceneKind) {
	if s.layoutManager.CurrentScene().Kind() == kind {
		return
	}
	s.layoutManager.SetScene(kind)
	if s.settings != nil {
		s.settings.SetLastScene(kind)
	}
	s.updateButtonSelection()
	log.Printf("[CardListScene] Switched to %s scene", kind)
}

// CurrentScene 当前场景类型
func (s *CardListScene) CurrentScene() types.SceneKind {
	return s.layoutManager.CurrentScene().Kind()
}

func (s *CardListScene) updateButtonSelection() {
	current := s.CurrentScene()
	s.buttonSystem.SetSelected(func(b *components.ButtonComponent) bool {
		return b.Scene == current
	})
}

// Update 每帧更新：处理输入、执行挂起的布局、推进动画
func (s *CardListScene) Update(deltaTime float64) {
	s.step(s.pollInput())
}

// pollInput 从 ebiten 读取本帧输入
func (s *CardListScene) pollInput() frameInput {
	s.dragManager.Update()
	pressed := utils.SamplePointer()
	released, rx, ry := utils.IsPointerJustReleased()

	input := frameInput{
		Pointer: systems.PointerState{
			X:            float64(pressed.X),
			Y:            float64(pressed.Y),
			Pressed:      pressed.Down,
			JustReleased: released,
		},
		ScrollDelta: s.dragManager.ScrollDelta() + utils.WheelScrollDelta(wheelStep),
	}
	if released {
		input.Pointer.X, input.Pointer.Y = float64(rx), float64(ry)
	}
	// 拖拽滚动结束时的释放不算点击
	if released && s.dragManager.GetInfo().Scrolling {
		input.Pointer.JustReleased = false
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		kind := types.SceneLinear
		input.SelectScene = &kind
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		kind := types.SceneStack
		input.SelectScene = &kind
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		kind := types.SceneGrid
		input.SelectScene = &kind
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		input.ScrollDelta -= keyScrollStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		input.ScrollDelta += keyScrollStep
	}
	return input
}

// step 用一帧输入推进场景
func (s *CardListScene) step(input frameInput) {
	if s.buttonSystem.Update(input.Pointer) && !s.dragManager.IsScrolling() {
		input.ScrollDelta = 0
	}
	if input.SelectScene != nil {
		s.SwitchScene(*input.SelectScene)
	}

	switch {
	case !s.laidOut:
		s.tracker.Relayout(s.snapshot(0), s.snapshot(s.adapter.ItemCount()))
		s.laidOut = true
		s.pendingRelayout = false
		s.laidOutItemCount = s.adapter.ItemCount()
	case s.pendingRelayout:
		s.tracker.Relayout(s.snapshot(s.laidOutItemCount), s.snapshot(s.adapter.ItemCount()))
		s.pendingRelayout = false
		s.laidOutItemCount = s.adapter.ItemCount()
	}

	if input.ScrollDelta != 0 {
		s.scroll(input.ScrollDelta)
	}

	s.itemAnimator.Update()
	s.entityManager.RemoveMarkedEntities()
}

// scroll 滚动列表并预热回收池
func (s *CardListScene) scroll(dy int) {
	state := layoutmanager.State{ItemCount: s.adapter.ItemCount()}
	if s.layoutManager.ScrollBy(dy, state) == 0 {
		return
	}

	// 为即将进入视口的条目准备视图，避免下一帧临时创建实体
	prefetch := s.layoutManager.CollectPrefetchPositions(dy, state)
	for len(s.pool) < len(prefetch) {
		s.pool = append(s.pool, entities.NewCardView(s.entityManager))
	}
}

func (s *CardListScene) snapshot(itemCount int) transition.Snapshot {
	return transition.Snapshot{ItemCount: itemCount, Key: s.adapter.ItemKey}
}

// Draw 绘制卡片、按钮和调试信息
func (s *CardListScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.cardRenderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)

	if s.showDebug {
		current := s.layoutManager.CurrentScene()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("scene: %s  offset: %d/%d  views: %d  animating: %d",
			current.Kind(), current.ScrollOffset(), current.MaxScroll(),
			len(s.children), s.itemAnimator.RunningCount()), 8, 8)
	}
}

// SaveOnExit 保存场景选择
func (s *CardListScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[CardListScene] Failed to save settings: %v", err)
		return false
	}
	return true
}
