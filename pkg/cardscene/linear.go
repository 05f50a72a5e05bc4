package cardscene

import "github.com/decker502/cardstack/pkg/types"

// 线性场景：单列，列表自视口底部向上排列，偏移增大时卡片整体下移

func (s *Scene) linearCoords(position int) types.Point {
	pad := s.container.Padding()
	return types.Point{
		X: pad.Left,
		Y: s.scrollOffset + s.container.Height() - pad.Bottom - (position+1)*s.cardSize.Height,
	}
}

func (s *Scene) linearVisibleRange(itemCount int) Range {
	h := s.cardSize.Height
	start := minInt((s.scrollOffset+s.container.Height())/h+1, itemCount-1)
	end := maxInt(s.scrollOffset/h-1, 0)
	return Range{Start: start, End: end}
}

func (s *Scene) linearMaxScroll() int {
	pad := s.container.Padding()
	return s.container.ItemCount()*s.cardSize.Height - s.container.Height() + pad.Vertical()
}
