package entities

import (
	"github.com/decker502/cardstack/pkg/components"
	"github.com/decker502/cardstack/pkg/ecs"
	"github.com/decker502/cardstack/pkg/game"
	"github.com/decker502/cardstack/pkg/types"
)

// NewCardView 创建一个未绑定的卡片视图实体
//
// 参数：
//   - em: 实体管理器
//
// 返回：
//   - 卡片视图实体ID
func NewCardView(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.CardViewComponent{
		Position: -1,
		Key:      types.NoItemKey,
	})
	return entity
}

// BindCardView 将卡片视图绑定到适配器中的条目
//
// 参数：
//   - em: 实体管理器
//   - entity: 卡片视图实体
//   - position: 适配器位置
//   - item: 条目数据
//
// 返回：
//   - 实体不是卡片视图时返回 false
func BindCardView(em *ecs.EntityManager, entity ecs.EntityID, position int, item game.CardItem) bool {
	card, ok := ecs.GetComponent[*components.CardViewComponent](em, entity)
	if !ok {
		return false
	}
	card.Position = position
	card.Key = item.ID
	card.Color = item.Color
	card.Label = item.Label
	return true
}

// NewDisappearingCard 为离开布局的卡片创建一个只用于绘制消失动画的快照实体
//
// 参数：
//   - em: 实体管理器
//   - key: 条目标识
//   - item: 条目数据（颜色和文字）
//   - bounds: 离开布局前的槽位矩形
//
// 返回：
//   - 快照实体ID
func NewDisappearingCard(em *ecs.EntityManager, key types.ItemKey, item game.CardItem, bounds types.Rect) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.CardViewComponent{
		Position: -1,
		Key:      key,
		Bounds:   bounds,
		Color:    item.Color,
		Label:    item.Label,
	})
	ecs.AddComponent(em, entity, &components.DisappearingComponent{
		Key:    key,
		Bounds: bounds,
	})
	return entity
}
