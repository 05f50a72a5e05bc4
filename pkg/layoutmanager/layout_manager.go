// Package layoutmanager 实现卡片列表的子视图回收布局引擎
//
// LayoutManager 读取当前场景（cardscene.Scene）的卡片尺寸和可见区间，
// 决定哪些子视图需要挂载、测量、定位或释放：
//   - 完整布局：分离全部子视图到临时废弃区，按可见区间重新填充
//   - 增量滚动：只重新定位已挂载的子视图，并在区间边缘释放或补充子视图
package layoutmanager

import (
	"log"

	"github.com/decker502/cardstack/pkg/cardscene"
	"github.com/decker502/cardstack/pkg/types"
)

// LayoutManager 回收布局引擎
//
// 子视图按位置降序保存（与可见区间的顺序一致），
// 位置越小的卡片越晚挂载，绘制时位于上层。
type LayoutManager struct {
	host    Host
	settler AnimationSettler

	current  *cardscene.Scene
	previous *cardscene.Scene // 仅在场景切换后的下一次真实布局之前保留

	children []Child

	// passItemCount 布局过程中使用 State.ItemCount，其余时间为 -1 表示读取宿主
	passItemCount int
}

// New 创建布局引擎，初始场景为 kind
func New(host Host, kind types.SceneKind) *LayoutManager {
	lm := &LayoutManager{
		host:          host,
		passItemCount: -1,
	}
	lm.current = cardscene.New(kind, lm)
	return lm
}

// SetAnimationSettler 设置动画结算器，可为 nil
func (lm *LayoutManager) SetAnimationSettler(settler AnimationSettler) {
	lm.settler = settler
}

// Width 实现 cardscene.Container
func (lm *LayoutManager) Width() int { return lm.host.Width() }

// Height 实现 cardscene.Container
func (lm *LayoutManager) Height() int { return lm.host.Height() }

// Padding 实现 cardscene.Container
func (lm *LayoutManager) Padding() types.Insets { return lm.host.Padding() }

// ItemCount 实现 cardscene.Container
// 布局过程中返回本次布局的条目数量
func (lm *LayoutManager) ItemCount() int {
	if lm.passItemCount >= 0 {
		return lm.passItemCount
	}
	return lm.host.ItemCount()
}

// CurrentScene 当前场景
func (lm *LayoutManager) CurrentScene() *cardscene.Scene {
	return lm.current
}

// PreviousScene 切换前的场景，没有待处理的切换时为 nil
func (lm *LayoutManager) PreviousScene() *cardscene.Scene {
	return lm.previous
}

// CanScrollVertically 卡片列表总是纵向滚动
func (lm *LayoutManager) CanScrollVertically() bool {
	return true
}

// SupportsPredictiveItemAnimations 支持预测布局动画
func (lm *LayoutManager) SupportsPredictiveItemAnimations() bool {
	return true
}

// ChildCount 已挂载子视图数量
func (lm *LayoutManager) ChildCount() int {
	return len(lm.children)
}

// Children 返回已挂载子视图的副本（位置降序）
func (lm *LayoutManager) Children() []Child {
	out := make([]Child, len(lm.children))
	copy(out, lm.children)
	return out
}

// ShowLinear 切换到线性场景
func (lm *LayoutManager) ShowLinear() { lm.SetScene(types.SceneLinear) }

// ShowStack 切换到堆叠场景
func (lm *LayoutManager) ShowStack() { lm.SetScene(types.SceneStack) }

// ShowGrid 切换到网格场景
func (lm *LayoutManager) ShowGrid() { lm.SetScene(types.SceneGrid) }

// SetScene 切换当前场景
//
// 新场景从旧场景接管滚动偏移；旧场景保留到下一次真实布局结束，
// 供预测布局读取"之前"的几何。切换后通知宿主整个区间已变化。
func (lm *LayoutManager) SetScene(kind types.SceneKind) {
	lm.settleAll()

	old := lm.current
	lm.previous = old
	lm.current = cardscene.New(kind, lm).From(old)

	log.Printf("[LayoutManager] Scene switched: %s -> %s (offset %d -> %d)",
		old.Kind(), kind, old.ScrollOffset(), lm.current.ScrollOffset())

	lm.host.NotifyItemRangeChanged(0, lm.host.ItemCount())
}

// LayoutChildren 完整布局
//
// 宽度未知时直接返回（宿主测量后会重试）；条目为空时回收全部子视图；
// 预测布局且没有子视图时不做任何事。
func (lm *LayoutManager) LayoutChildren(state State) {
	if lm.host.Width() == 0 {
		return
	}

	if state.ItemCount == 0 {
		lm.removeAndRecycleAllViews()
		return
	}

	if len(lm.children) == 0 && state.PreLayout {
		return
	}

	lm.passItemCount = state.ItemCount
	defer func() { lm.passItemCount = -1 }()

	scrap := lm.detachAndScrapAttachedViews()
	lm.fill(state, scrap)
	lm.recycleScrap(scrap)

	if !state.PreLayout {
		lm.previous = nil
	}
}

// fill 按场景的可见区间填充子视图
func (lm *LayoutManager) fill(state State, scrap map[int]View) {
	scene := lm.current
	if state.PreLayout && lm.previous != nil {
		scene = lm.previous
	}

	lm.measureChildSize(scene)
	for _, position := range scene.VisibleRange(state.ItemCount).Positions() {
		lm.addMeasureAndLayoutChild(len(lm.children), position, scene, scrap)
	}
}

// measureChildSize 按容器可用宽度更新场景卡片尺寸
// 宽度变化会改变滚动上界，偏移随之重新钳制
func (lm *LayoutManager) measureChildSize(scene *cardscene.Scene) {
	scene.UpdateCardSize(lm.host.Width() - lm.host.Padding().Horizontal())
	scene.FixScrollOffset()
}

// addMeasureAndLayoutChild 取得位置 position 的视图，挂载为第 index 个子视图并定位
// 废弃区中同位置的视图优先复用
func (lm *LayoutManager) addMeasureAndLayoutChild(index, position int, scene *cardscene.Scene, scrap map[int]View) View {
	view, ok := scrap[position]
	if ok {
		delete(scrap, position)
	} else {
		view = lm.host.ObtainView(position)
	}

	bounds := scene.CardBounds(position)
	lm.host.AttachView(view, index)
	lm.host.MeasureChild(view, scene.CardSize())
	lm.host.LayoutChild(view, bounds)

	child := Child{View: view, Position: position, Bounds: bounds}
	lm.children = append(lm.children, Child{})
	copy(lm.children[index+1:], lm.children[index:])
	lm.children[index] = child

	return view
}

// detachAndScrapAttachedViews 分离全部子视图，返回 位置->视图 的废弃区
func (lm *LayoutManager) detachAndScrapAttachedViews() map[int]View {
	scrap := make(map[int]View, len(lm.children))
	for _, c := range lm.children {
		lm.settle(c.Position)
		lm.host.DetachView(c.View)
		scrap[c.Position] = c.View
	}
	lm.children = lm.children[:0]
	return scrap
}

// recycleScrap 回收本次布局未复用的视图
func (lm *LayoutManager) recycleScrap(scrap map[int]View) {
	for _, view := range scrap {
		lm.host.RecycleView(view)
	}
}

// removeAndRecycleAllViews 分离并回收全部子视图
func (lm *LayoutManager) removeAndRecycleAllViews() {
	for _, c := range lm.children {
		lm.settle(c.Position)
		lm.host.DetachView(c.View)
		lm.host.RecycleView(c.View)
	}
	lm.children = lm.children[:0]
}

// settle 结束位置 position 上条目的动画
func (lm *LayoutManager) settle(position int) {
	if lm.settler == nil {
		return
	}
	lm.settler.EndAnimation(lm.host.ItemKey(position))
}

func (lm *LayoutManager) settleAll() {
	for _, c := range lm.children {
		lm.settle(c.Position)
	}
}
