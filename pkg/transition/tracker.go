// Package transition 在宿主一侧完成预测布局动画的调度
//
// 场景切换或数据变化后，Tracker 先用切换前的几何执行一次预测布局，
// 记录每个条目"之前"的矩形；再执行真实布局得到"之后"的矩形，
// 然后按条目标识对比，分别调度出现、消失和持续（移动/缩放）动画。
package transition

import (
	"log"

	"github.com/decker502/cardstack/pkg/layoutmanager"
	"github.com/decker502/cardstack/pkg/types"
)

// Animator 条目动画控制器需要提供的操作
type Animator interface {
	AnimateAppearance(key types.ItemKey, pre *types.Rect, post types.Rect) bool
	AnimateDisappearance(key types.ItemKey, pre types.Rect, post *types.Rect) bool
	AnimatePersistence(key types.ItemKey, pre, post types.Rect) bool
	RunPendingAnimations()
}

// DisappearingHost 在消失动画期间继续绘制已不在布局中的条目
type DisappearingHost interface {
	KeepDisappearing(key types.ItemKey, bounds types.Rect)
}

// Snapshot 某一时刻的数据集视图
type Snapshot struct {
	ItemCount int
	Key       func(position int) types.ItemKey
}

// Result 一次过渡调度的统计
type Result struct {
	Appeared    int
	Disappeared int
	Persisted   int
	// Scheduled 实际需要运行的动画集数量（不含同步完成的）
	Scheduled int
}

// Tracker 预测布局过渡调度器
type Tracker struct {
	lm       *layoutmanager.LayoutManager
	animator Animator
	host     DisappearingHost
}

// NewTracker 创建调度器，host 可为 nil
func NewTracker(lm *layoutmanager.LayoutManager, animator Animator, host DisappearingHost) *Tracker {
	return &Tracker{
		lm:       lm,
		animator: animator,
		host:     host,
	}
}

// Relayout 执行预测布局和真实布局并调度过渡动画
//
// 没有已挂载子视图时（首次布局）只执行真实布局，不产生动画。
func (t *Tracker) Relayout(before, after Snapshot) Result {
	var preRects map[types.ItemKey]types.Rect
	if t.lm.ChildCount() > 0 && t.lm.SupportsPredictiveItemAnimations() {
		t.lm.LayoutChildren(layoutmanager.State{ItemCount: before.ItemCount, PreLayout: true})
		preRects = collectBounds(t.lm.Children(), before.Key)
	}

	t.lm.LayoutChildren(layoutmanager.State{ItemCount: after.ItemCount})
	postRects := collectBounds(t.lm.Children(), after.Key)

	var result Result
	if preRects == nil {
		return result
	}

	for key, post := range postRects {
		if pre, ok := preRects[key]; ok {
			result.Persisted++
			if t.animator.AnimatePersistence(key, pre, post) {
				result.Scheduled++
			}
			continue
		}
		result.Appeared++
		if t.animator.AnimateAppearance(key, nil, post) {
			result.Scheduled++
		}
	}

	for key, pre := range preRects {
		if _, ok := postRects[key]; ok {
			continue
		}
		result.Disappeared++
		// 先登记动画再通知宿主：登记时会结束该条目的旧动画并派发完成回调
		if t.animator.AnimateDisappearance(key, pre, nil) {
			result.Scheduled++
			if t.host != nil {
				t.host.KeepDisappearing(key, pre)
			}
		}
	}

	t.animator.RunPendingAnimations()

	log.Printf("[Transition] appeared=%d disappeared=%d persisted=%d scheduled=%d",
		result.Appeared, result.Disappeared, result.Persisted, result.Scheduled)
	return result
}

func collectBounds(children []layoutmanager.Child, key func(int) types.ItemKey) map[types.ItemKey]types.Rect {
	rects := make(map[types.ItemKey]types.Rect, len(children))
	for _, c := range children {
		rects[key(c.Position)] = c.Bounds
	}
	return rects
}
