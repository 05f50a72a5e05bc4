package cardscene

import (
	"math"

	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/types"
)

// 网格场景：两列，偶数位置在左列，奇数位置在右列
// 几何计算使用内部偏移 scrollOffset / GridScrollDivisor

func gridCardSize(measuredWidth int) types.Size {
	return types.Size{
		Width:  measuredWidth / config.GridColumns,
		Height: int(math.Round(float64(measuredWidth) / config.CardProportion / config.GridColumns)),
	}
}

func (s *Scene) internalScrollOffset() int {
	return s.scrollOffset / config.GridScrollDivisor
}

func (s *Scene) setInternalScrollOffset(v int) {
	s.scrollOffset = v * config.GridScrollDivisor
}

func (s *Scene) gridCoords(position int) types.Point {
	pad := s.container.Padding()
	column := position % config.GridColumns
	row := position / config.GridColumns
	return types.Point{
		X: pad.Left + column*s.cardSize.Width,
		Y: s.internalScrollOffset() + s.container.Height() - pad.Bottom - (row+1)*s.cardSize.Height,
	}
}

func (s *Scene) gridVisibleRange(itemCount int) Range {
	h := s.cardSize.Height
	height := s.container.Height()
	internal := s.internalScrollOffset()

	start := minInt((height*2+internal)/h*config.GridColumns, itemCount-1)
	end := maxInt((internal-height)/h*config.GridColumns, 0)
	return Range{Start: start, End: end}
}

// gridMaxInternalScroll 以内部偏移单位表示的滚动上界
func (s *Scene) gridMaxInternalScroll() int {
	pad := s.container.Padding()
	rows := (s.container.ItemCount() + config.GridColumns - 1) / config.GridColumns
	return rows*s.cardSize.Height - s.container.Height() + pad.Vertical()
}

func (s *Scene) gridScrollBy(dy int) int {
	internal := s.internalScrollOffset()
	consumed := consumeScroll(dy, internal, s.gridMaxInternalScroll())
	s.setInternalScrollOffset(internal + consumed)
	return -consumed
}
