package cardscene

import (
	"math"

	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/types"
)

// 堆叠场景：单列，卡片互相覆盖，越深的卡片越向"堆顶"压缩

// Distortion 堆叠压缩函数
//
// x > 0 时为 2/(1+0.6^(1.1x)) - 1，随 x 增大渐近于 1；
// x <= 0 时按 cardHeight/viewportHeight 线性透传。
// 函数在整个定义域上单调不减。
func Distortion(x float64, cardHeight, viewportHeight int) float64 {
	if x > 0 {
		return 2.0/(1.0+math.Pow(config.StackDistortionBase, config.StackDistortionExponent*x)) - 1.0
	}
	if viewportHeight <= 0 {
		return 0
	}
	return float64(cardHeight) / float64(viewportHeight) * x / config.StackLinearDivisor
}

// stackBaseOffset 第 0 张卡片静止时的顶部位置（相对于上内边距）
func (s *Scene) stackBaseOffset() int {
	pad := s.container.Padding()
	return s.container.Height() - pad.Vertical() - s.cardSize.Height
}

func (s *Scene) stackCoords(position int) types.Point {
	pad := s.container.Padding()
	h := s.cardSize.Height
	if h <= 0 {
		return types.Point{X: pad.Left, Y: pad.Top}
	}
	base := s.stackBaseOffset()
	viewport := s.container.Height() - pad.Vertical()

	childTop := base - h*position + s.scrollOffset
	x := scaleToDomain(float64(base-childTop), float64(config.MaxVisibleStackCards*h), config.StackDistortionDomain)
	stackTop := int(math.Round(float64(base) - float64(base)*Distortion(x, h, viewport)))

	// 列表末尾的卡片不会被压到其自然停靠位置之下
	itemCount := s.container.ItemCount()
	if itemCount-position-config.StackSettleLookahead < base/h {
		stackTop = minInt(stackTop, h*(itemCount-position-1))
	}

	return types.Point{X: pad.Left, Y: pad.Top + stackTop}
}

func (s *Scene) stackVisibleRange(itemCount int) Range {
	end := maxInt((s.scrollOffset-s.container.Height())/s.cardSize.Height-1, 0)
	start := minInt(end+config.MaxVisibleStackCards, itemCount-1)
	return Range{Start: start, End: end}
}

func scaleToDomain(value, sourceMax, destMax float64) float64 {
	if sourceMax == 0 {
		return 0
	}
	return value * destMax / sourceMax
}
