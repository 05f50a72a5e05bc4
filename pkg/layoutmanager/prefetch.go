package layoutmanager

import (
	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/types"
)

// CollectPrefetchPositions 根据滚动方向估计即将可见的位置
//
// dy < 0 时偏移增大，更大的位置从顶部进入；dy > 0 时更小的位置从底部进入。
// 返回值仅作为后台预实例化的建议，不影响布局正确性。
func (lm *LayoutManager) CollectPrefetchPositions(dy int, state State) []Prefetch {
	scene := lm.current
	if dy == 0 || len(lm.children) == 0 || !scene.HasCardSize() || state.ItemCount <= 0 {
		return nil
	}

	h := scene.CardSize().Height
	distance := dy
	if distance < 0 {
		distance = -distance
	}
	rows := (distance + h - 1) / h

	perRow := 1
	if scene.Kind() == types.SceneGrid {
		perRow = config.GridColumns
	}

	// 子视图按位置降序保存
	next, step := lm.children[0].Position+1, 1
	if dy > 0 {
		next, step = lm.children[len(lm.children)-1].Position-1, -1
	}

	out := make([]Prefetch, 0, rows*perRow)
	for row := 0; row < rows; row++ {
		for col := 0; col < perRow; col++ {
			if next < 0 || next >= state.ItemCount {
				return out
			}
			out = append(out, Prefetch{Position: next, Distance: row * h})
			next += step
		}
	}
	return out
}
