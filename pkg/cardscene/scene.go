// Package cardscene 实现卡片列表的三种布局场景（线性、堆叠、网格）
//
// 每个场景持有卡片尺寸和滚动偏移，并根据容器几何信息计算：
//   - 卡片尺寸
//   - 指定位置卡片的左上角坐标
//   - 当前可见的条目区间
//   - 滚动量的消耗与偏移钳制
//
// 场景集合是封闭的，Scene 通过 Kind 标签分派到各变体的实现，
// 不依赖任何视图系统，所有方法都是纯几何计算。
package cardscene

import (
	"math"

	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/types"
)

// Container 提供场景计算所需的容器几何信息
// 每次布局时由宿主读取，场景不缓存这些值
type Container interface {
	Width() int
	Height() int
	Padding() types.Insets
	ItemCount() int
}

// Scene 一个可插拔的布局和滚动策略
//
// 不变量：任何修改之后 scrollOffset 都在 [0, MaxScroll()] 之内
type Scene struct {
	kind      types.SceneKind
	container Container

	cardSize     types.Size
	scrollOffset int
}

// New 创建指定类型的场景
// 卡片尺寸在第一次 UpdateCardSize 之前为零
func New(kind types.SceneKind, container Container) *Scene {
	return &Scene{
		kind:      kind,
		container: container,
	}
}

// Kind 返回场景类型
func (s *Scene) Kind() types.SceneKind {
	return s.kind
}

// CardSize 返回当前卡片尺寸
func (s *Scene) CardSize() types.Size {
	return s.cardSize
}

// ScrollOffset 返回原始滚动偏移（0 为列表起点）
func (s *Scene) ScrollOffset() int {
	return s.scrollOffset
}

// HasCardSize 卡片尺寸已计算且高度为正
func (s *Scene) HasCardSize() bool {
	return s.cardSize.Height > 0 && s.cardSize.Width > 0
}

// UpdateCardSize 根据可用宽度重新计算卡片尺寸
func (s *Scene) UpdateCardSize(measuredWidth int) {
	if measuredWidth < 0 {
		measuredWidth = 0
	}

	switch s.kind {
	case types.SceneGrid:
		s.cardSize = gridCardSize(measuredWidth)
	default:
		s.cardSize = types.Size{
			Width:  measuredWidth,
			Height: cardHeightFor(float64(measuredWidth)),
		}
	}
}

// CardCoords 返回位置 position 处卡片的左上角坐标
// 调用前必须已经计算过卡片尺寸
func (s *Scene) CardCoords(position int) types.Point {
	switch s.kind {
	case types.SceneStack:
		return s.stackCoords(position)
	case types.SceneGrid:
		return s.gridCoords(position)
	default:
		return s.linearCoords(position)
	}
}

// CardBounds 返回位置 position 处卡片的矩形
func (s *Scene) CardBounds(position int) types.Rect {
	return types.RectAt(s.CardCoords(position), s.cardSize)
}

// VisibleRange 返回与视口相交的条目区间（降序）
// 卡片高度未知时返回空区间
func (s *Scene) VisibleRange(itemCount int) Range {
	if !s.HasCardSize() || itemCount <= 0 {
		return EmptyRange
	}

	switch s.kind {
	case types.SceneStack:
		return s.stackVisibleRange(itemCount)
	case types.SceneGrid:
		return s.gridVisibleRange(itemCount)
	default:
		return s.linearVisibleRange(itemCount)
	}
}

// MaxScroll 返回原始滚动偏移的上界
// 内容不足一屏时可能为负，钳制时按 0 处理
func (s *Scene) MaxScroll() int {
	if s.kind == types.SceneGrid {
		return s.gridMaxInternalScroll() * config.GridScrollDivisor
	}
	return s.linearMaxScroll()
}

// ScrollBy 消耗滚动量 dy 并返回实际消耗的量
//
// dy < 0 增大偏移（列表自底部向上生长），dy > 0 减小偏移。
// 实际消耗量为 min(|dy|, 到边界的距离)，符号与 dy 相同。
func (s *Scene) ScrollBy(dy int) int {
	if s.kind == types.SceneGrid {
		return s.gridScrollBy(dy)
	}

	consumed := consumeScroll(dy, s.scrollOffset, s.linearMaxScroll())
	s.scrollOffset += consumed
	return -consumed
}

// FixScrollOffset 将原始滚动偏移钳制到 [0, MaxScroll()]
// 网格也按原始单位钳制，不丢弃不足 GridScrollDivisor 的余数
func (s *Scene) FixScrollOffset() {
	s.scrollOffset = clampInt(s.scrollOffset, 0, s.MaxScroll())
}

// From 从旧场景接管滚动状态
//
// 卡片尺寸不能跨场景复用（网格卡片宽度只有线性的一半），
// 因此按当前容器宽度重新计算；偏移原样复制后再按新场景的范围钳制。
func (s *Scene) From(old *Scene) *Scene {
	pad := s.container.Padding()
	s.UpdateCardSize(s.container.Width() - pad.Horizontal())
	if old != nil {
		s.scrollOffset = old.scrollOffset
	}
	s.FixScrollOffset()
	return s
}

// consumeScroll 计算在 [0, maxScroll] 范围内 offset 能够移动的量
// 返回值为 offset 的变化量，与 dy 符号相反
func consumeScroll(dy, offset, maxScroll int) int {
	if dy < 0 {
		room := maxScroll - offset
		if room < 0 {
			room = 0
		}
		return minInt(-dy, room)
	}
	return -minInt(offset, dy)
}

// cardHeightFor 按卡片宽高比计算高度（四舍五入）
func cardHeightFor(width float64) int {
	return int(math.Round(width / config.CardProportion))
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
