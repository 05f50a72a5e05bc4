package components

import (
	"image/color"

	"github.com/decker502/cardstack/pkg/types"
)

// CardViewComponent 一个可复用的卡片视图
//
// 视图由布局引擎通过不透明句柄驱动：ObtainView 绑定数据，
// AttachView/DetachView 改变挂载状态，LayoutChild 写入 Bounds。
// Bounds 是包含装饰边距的整个槽位，绘制时再向内收缩。
type CardViewComponent struct {
	// Position 绑定的适配器位置，-1 表示未绑定（位于回收池中）
	Position int
	// Key 绑定条目的稳定标识
	Key types.ItemKey

	// Attached 是否为当前挂载的子视图
	Attached bool
	// ChildIndex 在子视图列表中的序号，决定绘制顺序（小的先画）
	ChildIndex int

	// Measured 最近一次测量得到的卡片尺寸
	Measured types.Size
	// Bounds 最近一次布局得到的槽位矩形
	Bounds types.Rect

	// Color 卡片背景色
	Color color.RGBA
	// Label 卡片文字
	Label string
}

// DisappearingComponent 标记已离开布局、仍在播放消失动画的卡片
//
// 实体只带有一份绑定数据的快照，动画结束后由宿主销毁。
type DisappearingComponent struct {
	Key    types.ItemKey
	Bounds types.Rect
}

// Unbind 清除绑定数据，视图回到回收池时调用
func (c *CardViewComponent) Unbind() {
	c.Position = -1
	c.Key = types.NoItemKey
	c.Attached = false
	c.ChildIndex = 0
	c.Label = ""
}
