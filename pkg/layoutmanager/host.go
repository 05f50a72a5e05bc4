package layoutmanager

import "github.com/decker502/cardstack/pkg/types"

// View 宿主视图系统中子视图的不透明句柄
type View uint64

// Host 宿主视图列表组件
//
// LayoutManager 通过 Host 读取容器几何信息，并发出实例化、挂载、
// 分离、回收、测量和定位子视图的调用。所有方法都在 UI 线程上调用。
type Host interface {
	// 容器几何信息
	Width() int
	Height() int
	Padding() types.Insets

	// ItemCount 适配器当前的条目数量
	ItemCount() int

	// ItemKey 返回位置 position 处条目的稳定标识
	ItemKey(position int) types.ItemKey

	// ObtainView 实例化或从回收池取出位置 position 的视图并完成绑定
	ObtainView(position int) View

	// AttachView 将视图挂载为第 index 个子视图
	AttachView(view View, index int)

	// DetachView 分离子视图，视图仍可在本次布局中重新挂载
	DetachView(view View)

	// RecycleView 将已分离的视图放回回收池
	RecycleView(view View)

	// MeasureChild 以卡片尺寸测量子视图
	MeasureChild(view View, size types.Size)

	// LayoutChild 报告子视图最终的像素边界
	LayoutChild(view View, bounds types.Rect)

	// NotifyItemRangeChanged 通知整个条目区间发生变化
	// 场景切换时调用一次，用于驱动预测布局
	NotifyItemRangeChanged(start, count int)
}

// AnimationSettler 可以立即结束某个条目正在进行的动画
// 在视图被复用或释放之前调用，避免过期动画继续修改视图
type AnimationSettler interface {
	EndAnimation(key types.ItemKey)
}

// State 一次布局或滚动的状态
type State struct {
	// ItemCount 本次布局使用的条目数量
	ItemCount int

	// PreLayout 为 true 时表示预测布局（使用切换前的场景计算"之前"的几何）
	PreLayout bool
}

// Child 一个已挂载的子视图
type Child struct {
	View     View
	Position int
	Bounds   types.Rect
}

// Prefetch 预取建议：即将可见的位置及其距视口边缘的估计距离
type Prefetch struct {
	Position int
	Distance int
}
