package scenes

import (
	"github.com/decker502/cardstack/pkg/components"
	"github.com/decker502/cardstack/pkg/ecs"
	"github.com/decker502/cardstack/pkg/entities"
	"github.com/decker502/cardstack/pkg/layoutmanager"
	"github.com/decker502/cardstack/pkg/types"
)

// 以下方法实现 layoutmanager.Host、animator.FinishListener、
// animator.ScreenMetrics 和 transition.DisappearingHost

// Width 列表宽度
func (s *CardListScene) Width() int { return s.width }

// Height 列表高度
func (s *CardListScene) Height() int { return s.height }

// Padding 列表内边距
func (s *CardListScene) Padding() types.Insets { return types.Insets{} }

// ItemCount 条目数量
func (s *CardListScene) ItemCount() int { return s.adapter.ItemCount() }

// ItemKey 条目稳定标识
func (s *CardListScene) ItemKey(position int) types.ItemKey { return s.adapter.ItemKey(position) }

// ScreenHeight 屏幕高度（出现/消失动画的位移）
func (s *CardListScene) ScreenHeight() int { return s.height }

// ObtainView 从回收池取出或新建视图，并绑定到 position
func (s *CardListScene) ObtainView(position int) layoutmanager.View {
	var id ecs.EntityID
	if n := len(s.pool); n > 0 {
		id = s.pool[n-1]
		s.pool = s.pool[:n-1]
	} else {
		id = entities.NewCardView(s.entityManager)
	}

	if item, ok := s.adapter.Item(position); ok {
		entities.BindCardView(s.entityManager, id, position, item)
	}
	return layoutmanager.View(id)
}

// AttachView 把视图挂载为第 index 个子视图
func (s *CardListScene) AttachView(view layoutmanager.View, index int) {
	id := ecs.EntityID(view)
	if index < 0 || index > len(s.children) {
		index = len(s.children)
	}
	s.children = append(s.children, 0)
	copy(s.children[index+1:], s.children[index:])
	s.children[index] = id
	s.renumberChildren()
}

// DetachView 分离子视图
func (s *CardListScene) DetachView(view layoutmanager.View) {
	id := ecs.EntityID(view)
	for i, child := range s.children {
		if child == id {
			s.children = append(s.children[:i], s.children[i+1:]...)
			break
		}
	}
	if card, ok := s.card(id); ok {
		card.Attached = false
	}
	s.renumberChildren()
}

// RecycleView 解除绑定并放回回收池
func (s *CardListScene) RecycleView(view layoutmanager.View) {
	id := ecs.EntityID(view)
	if card, ok := s.card(id); ok {
		card.Unbind()
	}
	s.pool = append(s.pool, id)
}

// MeasureChild 记录测量尺寸
func (s *CardListScene) MeasureChild(view layoutmanager.View, size types.Size) {
	if card, ok := s.card(ecs.EntityID(view)); ok {
		card.Measured = size
	}
}

// LayoutChild 记录布局矩形
func (s *CardListScene) LayoutChild(view layoutmanager.View, bounds types.Rect) {
	if card, ok := s.card(ecs.EntityID(view)); ok {
		card.Bounds = bounds
	}
}

// NotifyItemRangeChanged 标记下一帧需要执行过渡布局
func (s *CardListScene) NotifyItemRangeChanged(start, count int) {
	s.pendingRelayout = true
}

// OnAnimationFinished 动画结束，移除对应的消失快照
func (s *CardListScene) OnAnimationFinished(key types.ItemKey) {
	ghost, ok := s.ghosts[key]
	if !ok {
		return
	}
	delete(s.ghosts, key)
	s.entityManager.DestroyEntity(ghost)
}

// KeepDisappearing 为离开布局的条目创建快照，直到消失动画结束
func (s *CardListScene) KeepDisappearing(key types.ItemKey, bounds types.Rect) {
	// 条目标识即位置
	item, ok := s.adapter.Item(int(key))
	if !ok {
		return
	}

	if ghost, exists := s.ghosts[key]; exists {
		if card, ok := s.card(ghost); ok {
			card.Bounds = bounds
		}
		return
	}
	s.ghosts[key] = entities.NewDisappearingCard(s.entityManager, key, item, bounds)
}

func (s *CardListScene) card(id ecs.EntityID) (*components.CardViewComponent, bool) {
	return ecs.GetComponent[*components.CardViewComponent](s.entityManager, id)
}

// renumberChildren 按子视图顺序刷新挂载状态和绘制序号
func (s *CardListScene) renumberChildren() {
	for i, id := range s.children {
		if card, ok := s.card(id); ok {
			card.Attached = true
			card.ChildIndex = i
		}
	}
}
