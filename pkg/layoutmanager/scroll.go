package layoutmanager

import "github.com/decker502/cardstack/pkg/cardscene"

// ScrollBy 消耗纵向滚动量 dy，返回实际消耗的量
//
// 没有子视图（或卡片尺寸未知）时退化为完整布局；
// 否则只做增量更新：释放离开可见区间的子视图，
// 重新定位其余子视图，并在区间边缘补充新出现的子视图。
func (lm *LayoutManager) ScrollBy(dy int, state State) int {
	lm.passItemCount = state.ItemCount
	consumed := lm.current.ScrollBy(dy)
	lm.passItemCount = -1

	if len(lm.children) == 0 || !lm.current.HasCardSize() || lm.host.Width() == 0 || state.ItemCount == 0 {
		lm.LayoutChildren(state)
		return consumed
	}

	if consumed == 0 {
		return 0
	}

	lm.passItemCount = state.ItemCount
	defer func() { lm.passItemCount = -1 }()

	lm.scrollChildren(lm.current, state.ItemCount)
	return consumed
}

// scrollChildren 在场景偏移变化后增量更新子视图
func (lm *LayoutManager) scrollChildren(scene *cardscene.Scene, itemCount int) {
	visible := scene.VisibleRange(itemCount)

	// 释放离开可见区间的子视图
	kept := lm.children[:0]
	for _, c := range lm.children {
		if visible.Contains(c.Position) {
			kept = append(kept, c)
			continue
		}
		lm.settle(c.Position)
		lm.host.DetachView(c.View)
		lm.host.RecycleView(c.View)
	}
	lm.children = kept

	// 连续运动：按新偏移重新定位
	for i := range lm.children {
		bounds := scene.CardBounds(lm.children[i].Position)
		lm.host.LayoutChild(lm.children[i].View, bounds)
		lm.children[i].Bounds = bounds
	}

	// 在边缘补充新出现的位置
	for _, position := range visible.Positions() {
		if lm.indexOfPosition(position) >= 0 {
			continue
		}
		lm.addMeasureAndLayoutChild(lm.insertionIndex(position), position, scene, nil)
	}
}

// indexOfPosition 返回位置 position 的子视图下标，不存在时返回 -1
func (lm *LayoutManager) indexOfPosition(position int) int {
	for i, c := range lm.children {
		if c.Position == position {
			return i
		}
	}
	return -1
}

// insertionIndex 保持位置降序的插入下标
func (lm *LayoutManager) insertionIndex(position int) int {
	for i, c := range lm.children {
		if c.Position < position {
			return i
		}
	}
	return len(lm.children)
}
