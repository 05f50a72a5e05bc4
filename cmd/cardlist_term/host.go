package main

import (
	"fmt"
	"log"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cardstack/pkg/animator"
	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/game"
	"github.com/decker502/cardstack/pkg/layoutmanager"
	"github.com/decker502/cardstack/pkg/transition"
	"github.com/decker502/cardstack/pkg/types"
)

// 每个终端单元格对应的逻辑像素
const (
	cellWidth  = 10
	cellHeight = 20
)

// termView 终端宿主中的一个卡片视图
type termView struct {
	position int
	bounds   types.Rect
	item     game.CardItem
	bound    bool
}

// termHost 以终端单元格绘制卡片列表
//
// 实现 layoutmanager.Host、animator.FinishListener、animator.ScreenMetrics
// 和 transition.DisappearingHost。最后一行为状态栏。
type termHost struct {
	cols, rows int
	margin     int

	adapter  *game.CardAdapter
	palette  []tcell.Color
	lm       *layoutmanager.LayoutManager
	animator *animator.ItemAnimator
	tracker  *transition.Tracker

	views    map[layoutmanager.View]*termView
	nextView layoutmanager.View
	children []layoutmanager.View
	pool     []layoutmanager.View
	ghosts   map[types.ItemKey]termView

	laidOut          bool
	pendingRelayout  bool
	laidOutItemCount int
}

// newTermHost 创建终端宿主
//
// 参数：
//   - cfg: 已验证的卡片列表配置
//   - kind: 初始场景
//   - cols, rows: 终端尺寸（单元格）
func newTermHost(cfg *config.CardListConfig, kind types.SceneKind, cols, rows int) *termHost {
	colors := cfg.Colors()
	palette := make([]tcell.Color, len(colors))
	for i, c := range colors {
		palette[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}

	h := &termHost{
		cols:    cols,
		rows:    rows,
		margin:  cfg.ItemMargin,
		adapter: game.NewCardAdapter(cfg.Items, colors),
		palette: palette,
		views:   make(map[layoutmanager.View]*termView),
		ghosts:  make(map[types.ItemKey]termView),
	}
	h.lm = layoutmanager.New(h, kind)
	h.animator = animator.NewItemAnimator(cfg.Spring, h, h)
	h.lm.SetAnimationSettler(h.animator)
	h.tracker = transition.NewTracker(h.lm, h.animator, h)
	return h
}

// Width 列表宽度（像素）
func (h *termHost) Width() int { return h.cols * cellWidth }

// Height 列表高度（像素），不含状态栏
func (h *termHost) Height() int { return max(h.rows-1, 0) * cellHeight }

func (h *termHost) Padding() types.Insets { return types.Insets{} }

func (h *termHost) ItemCount() int { return h.adapter.ItemCount() }

func (h *termHost) ItemKey(position int) types.ItemKey { return h.adapter.ItemKey(position) }

func (h *termHost) ScreenHeight() int { return h.Height() }

func (h *termHost) ObtainView(position int) layoutmanager.View {
	var view layoutmanager.View
	if n := len(h.pool); n > 0 {
		view = h.pool[n-1]
		h.pool = h.pool[:n-1]
	} else {
		h.nextView++
		view = h.nextView
		h.views[view] = &termView{}
	}

	v := h.views[view]
	v.position = position
	v.item, v.bound = h.adapter.Item(position)
	return view
}

func (h *termHost) AttachView(view layoutmanager.View, index int) {
	if index < 0 || index > len(h.children) {
		index = len(h.children)
	}
	h.children = append(h.children, 0)
	copy(h.children[index+1:], h.children[index:])
	h.children[index] = view
}

func (h *termHost) DetachView(view layoutmanager.View) {
	for i, child := range h.children {
		if child == view {
			h.children = append(h.children[:i], h.children[i+1:]...)
			return
		}
	}
}

func (h *termHost) RecycleView(view layoutmanager.View) {
	if v, ok := h.views[view]; ok {
		*v = termView{}
	}
	h.pool = append(h.pool, view)
}

func (h *termHost) MeasureChild(view layoutmanager.View, size types.Size) {}

func (h *termHost) LayoutChild(view layoutmanager.View, bounds types.Rect) {
	if v, ok := h.views[view]; ok {
		v.bounds = bounds
	}
}

func (h *termHost) NotifyItemRangeChanged(start, count int) {
	h.pendingRelayout = true
}

// OnAnimationFinished 消失动画结束后丢弃快照
func (h *termHost) OnAnimationFinished(key types.ItemKey) {
	delete(h.ghosts, key)
}

// KeepDisappearing 记录离开布局的条目，直到消失动画结束
func (h *termHost) KeepDisappearing(key types.ItemKey, bounds types.Rect) {
	item, ok := h.adapter.Item(int(key))
	if !ok {
		return
	}
	h.ghosts[key] = termView{position: int(key), bounds: bounds, item: item, bound: true}
}

// resize 终端尺寸变化后按新宽度重新布局，不产生动画
func (h *termHost) resize(cols, rows int) {
	if cols == h.cols && rows == h.rows {
		return
	}
	h.cols, h.rows = cols, rows
	h.animator.EndAnimations()
	if h.laidOut {
		h.lm.LayoutChildren(layoutmanager.State{ItemCount: h.adapter.ItemCount()})
	}
	log.Printf("[TermHost] Resized to %dx%d cells", cols, rows)
}

// switchScene 切换场景，下一次 step 执行过渡动画
func (h *termHost) switchScene(kind types.SceneKind) {
	if h.lm.CurrentScene().Kind() == kind {
		return
	}
	h.lm.SetScene(kind)
	log.Printf("[TermHost] Switched to %s scene", kind)
}

// step 推进一帧：执行挂起的布局、滚动、推进动画
func (h *termHost) step(scrollDelta int) {
	switch {
	case !h.laidOut:
		h.tracker.Relayout(h.snapshot(0), h.snapshot(h.adapter.ItemCount()))
		h.laidOut = true
		h.pendingRelayout = false
		h.laidOutItemCount = h.adapter.ItemCount()
	case h.pendingRelayout:
		h.tracker.Relayout(h.snapshot(h.laidOutItemCount), h.snapshot(h.adapter.ItemCount()))
		h.pendingRelayout = false
		h.laidOutItemCount = h.adapter.ItemCount()
	}

	if scrollDelta != 0 {
		h.lm.ScrollBy(scrollDelta, layoutmanager.State{ItemCount: h.adapter.ItemCount()})
	}
	h.animator.Update()
}

func (h *termHost) snapshot(itemCount int) transition.Snapshot {
	return transition.Snapshot{ItemCount: itemCount, Key: h.adapter.ItemKey}
}

// draw 绘制消失中的条目、子视图和状态栏
func (h *termHost) draw(screen tcell.Screen) {
	screen.Clear()

	for _, ghost := range h.ghosts {
		h.drawCard(screen, ghost)
	}
	for _, view := range h.children {
		if v, ok := h.views[view]; ok && v.bound {
			h.drawCard(screen, *v)
		}
	}

	current := h.lm.CurrentScene()
	status := fmt.Sprintf(" [1]Linear [2]Stack [3]Grid  %s  %d/%d  q:quit",
		current.Kind(), current.ScrollOffset(), current.MaxScroll())
	drawText(screen, 0, h.rows-1, status, tcell.StyleDefault.Reverse(true))
}

// drawCard 按动画变换把卡片矩形换算成单元格并填充
func (h *termHost) drawCard(screen tcell.Screen, v termView) {
	rect, ok := cellRect(v.bounds, h.margin, h.animator.Transform(v.item.ID))
	if !ok {
		return
	}

	bg := h.palette[v.position%len(h.palette)]
	style := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack)
	limit := h.rows - 1
	for y := max(rect.Top, 0); y < min(rect.Bottom, limit); y++ {
		for x := max(rect.Left, 0); x < min(rect.Right, h.cols); x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}

	cy := (rect.Top + rect.Bottom) / 2
	if cy >= 0 && cy < limit {
		cx := (rect.Left+rect.Right)/2 - len(v.item.Label)/2
		drawText(screen, cx, cy, v.item.Label, style)
	}
}

// cellRect 把像素矩形（含装饰边距和动画变换）换算为单元格矩形
// 透明度低于一半时视为不可见
func cellRect(bounds types.Rect, margin int, tr animator.Transform) (types.Rect, bool) {
	if tr.Alpha < 0.5 {
		return types.Rect{}, false
	}

	left := float64(bounds.Left + margin)
	right := float64(bounds.Right - margin)
	top := float64(bounds.Top + margin/2)
	bottom := float64(bounds.Bottom - margin/2)

	cx := (left + right) / 2
	cy := (top + bottom) / 2
	halfW := (right - left) / 2 * tr.ScaleX
	halfH := (bottom - top) / 2 * tr.ScaleY
	cx += tr.TranslationX
	cy += tr.TranslationY

	rect := types.Rect{
		Left:   int(math.Round((cx - halfW) / cellWidth)),
		Top:    int(math.Round((cy - halfH) / cellHeight)),
		Right:  int(math.Round((cx + halfW) / cellWidth)),
		Bottom: int(math.Round((cy + halfH) / cellHeight)),
	}
	if rect.Right <= rect.Left || rect.Bottom <= rect.Top {
		return types.Rect{}, false
	}
	return rect, true
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
