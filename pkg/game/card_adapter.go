package game

import (
	"image/color"
	"strconv"

	"github.com/decker502/cardstack/pkg/types"
)

// CardItem 适配器中的一个条目
type CardItem struct {
	// ID 稳定标识，视图复用后动画仍能找到对应条目
	ID types.ItemKey
	// Color 卡片背景色
	Color color.RGBA
	// Label 卡片上显示的文字
	Label string
}

// CardAdapter 卡片数据源
//
// 条目 i 的颜色为 palette[i % len(palette)]，文字为位置编号。
type CardAdapter struct {
	items   []CardItem
	palette []color.RGBA
}

// NewCardAdapter 创建包含 count 个条目的适配器
//
// 参数：
//   - count: 条目数量，负数按 0 处理
//   - palette: 配色，为空时使用白色
func NewCardAdapter(count int, palette []color.RGBA) *CardAdapter {
	if len(palette) == 0 {
		palette = []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}
	}
	a := &CardAdapter{palette: palette}
	a.SetItemCount(count)
	return a
}

// SetItemCount 重建条目列表
func (a *CardAdapter) SetItemCount(count int) {
	if count < 0 {
		count = 0
	}
	a.items = make([]CardItem, count)
	for i := range a.items {
		a.items[i] = CardItem{
			ID:    types.ItemKey(i),
			Color: a.palette[i%len(a.palette)],
			Label: strconv.Itoa(i),
		}
	}
}

// ItemCount 条目数量
func (a *CardAdapter) ItemCount() int {
	return len(a.items)
}

// Item 返回位置 position 处的条目，越界时返回 false
func (a *CardAdapter) Item(position int) (CardItem, bool) {
	if position < 0 || position >= len(a.items) {
		return CardItem{}, false
	}
	return a.items[position], true
}

// ItemKey 返回位置 position 处条目的稳定标识，越界时返回 NoItemKey
func (a *CardAdapter) ItemKey(position int) types.ItemKey {
	item, ok := a.Item(position)
	if !ok {
		return types.NoItemKey
	}
	return item.ID
}
