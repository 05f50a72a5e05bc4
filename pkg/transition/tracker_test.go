package transition

import (
	"testing"

	"github.com/decker502/cardstack/pkg/animator"
	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/layoutmanager"
	"github.com/decker502/cardstack/pkg/types"
)

// listHost 最小化的列表宿主
type listHost struct {
	items    int
	next     layoutmanager.View
	pool     []layoutmanager.View
	notified int

	finished    map[types.ItemKey]int
	disappeared map[types.ItemKey]types.Rect
}

func newListHost(items int) *listHost {
	return &listHost{
		items:       items,
		next:        1,
		finished:    make(map[types.ItemKey]int),
		disappeared: make(map[types.ItemKey]types.Rect),
	}
}

func (h *listHost) Width() int                                  { return 1080 }
func (h *listHost) Height() int                                 { return 1920 }
func (h *listHost) Padding() types.Insets                       { return types.Insets{} }
func (h *listHost) ItemCount() int                              { return h.items }
func (h *listHost) ItemKey(position int) types.ItemKey          { return types.ItemKey(position) }
func (h *listHost) AttachView(layoutmanager.View, int)          {}
func (h *listHost) DetachView(layoutmanager.View)               {}
func (h *listHost) MeasureChild(layoutmanager.View, types.Size) {}
func (h *listHost) LayoutChild(layoutmanager.View, types.Rect)  {}
func (h *listHost) NotifyItemRangeChanged(start, count int)     { h.notified++ }
func (h *listHost) ScreenHeight() int                           { return 1920 }

func (h *listHost) ObtainView(position int) layoutmanager.View {
	if n := len(h.pool); n > 0 {
		v := h.pool[n-1]
		h.pool = h.pool[:n-1]
		return v
	}
	v := h.next
	h.next++
	return v
}

func (h *listHost) RecycleView(v layoutmanager.View) {
	h.pool = append(h.pool, v)
}

func (h *listHost) OnAnimationFinished(key types.ItemKey) {
	h.finished[key]++
}

func (h *listHost) KeepDisappearing(key types.ItemKey, bounds types.Rect) {
	h.disappeared[key] = bounds
}

func (h *listHost) snapshot() Snapshot {
	return Snapshot{ItemCount: h.items, Key: h.ItemKey}
}

func newFixture(kind types.SceneKind) (*listHost, *layoutmanager.LayoutManager, *animator.ItemAnimator, *Tracker) {
	host := newListHost(100)
	lm := layoutmanager.New(host, kind)
	cfg := config.DefaultCardListConfig().Spring
	ia := animator.NewItemAnimator(cfg, host, host)
	lm.SetAnimationSettler(ia)
	return host, lm, ia, NewTracker(lm, ia, host)
}

func TestRelayoutFirstPassHasNoAnimations(t *testing.T) {
	host, lm, ia, tracker := newFixture(types.SceneLinear)

	result := tracker.Relayout(host.snapshot(), host.snapshot())

	if result != (Result{}) {
		t.Errorf("first layout should not animate, got %+v", result)
	}
	if lm.ChildCount() != 4 {
		t.Errorf("children after first layout: got %d, want 4", lm.ChildCount())
	}
	if ia.IsRunning() {
		t.Error("no animation should run after the first layout")
	}
}

// TestRelayoutLinearToGrid 线性切到网格：原有 4 张卡片移动缩放，其余网格卡片出现
func TestRelayoutLinearToGrid(t *testing.T) {
	host, lm, ia, tracker := newFixture(types.SceneLinear)
	tracker.Relayout(host.snapshot(), host.snapshot())

	lm.ShowGrid()
	result := tracker.Relayout(host.snapshot(), host.snapshot())

	gridCount := lm.ChildCount()
	if result.Persisted != 4 {
		t.Errorf("persisted: got %d, want 4", result.Persisted)
	}
	if result.Appeared != gridCount-4 {
		t.Errorf("appeared: got %d, want %d", result.Appeared, gridCount-4)
	}
	if result.Disappeared != 0 {
		t.Errorf("disappeared: got %d, want 0", result.Disappeared)
	}
	if result.Scheduled != gridCount {
		t.Errorf("scheduled: got %d, want %d", result.Scheduled, gridCount)
	}
	if lm.PreviousScene() != nil {
		t.Error("previous scene should be released after the real pass")
	}

	// 卡片 0 从线性的整宽缩放到网格的半宽
	if tr := ia.Transform(0); tr.ScaleX != 2 {
		t.Errorf("item 0 scaleX start: got %v, want 2", tr.ScaleX)
	}

	for frame := 0; frame < 600 && ia.IsRunning(); frame++ {
		ia.Update()
	}
	if ia.IsRunning() {
		t.Fatal("transition did not settle")
	}
	for key, n := range host.finished {
		if n != 1 {
			t.Errorf("item %d finished %d times", key, n)
		}
	}
	if len(host.finished) != gridCount {
		t.Errorf("finished items: got %d, want %d", len(host.finished), gridCount)
	}
}

func TestRelayoutGridToLinearDisappears(t *testing.T) {
	host, lm, ia, tracker := newFixture(types.SceneGrid)
	tracker.Relayout(host.snapshot(), host.snapshot())
	gridCount := lm.ChildCount()

	lm.ShowLinear()
	result := tracker.Relayout(host.snapshot(), host.snapshot())

	if result.Disappeared != gridCount-4 {
		t.Errorf("disappeared: got %d, want %d", result.Disappeared, gridCount-4)
	}
	if len(host.disappeared) != result.Disappeared {
		t.Errorf("host kept %d disappearing items, want %d", len(host.disappeared), result.Disappeared)
	}
	if _, ok := host.disappeared[10]; !ok {
		t.Error("item 10 should be kept for its exit animation")
	}
	if !ia.IsRunning() {
		t.Error("transition animations should be running")
	}

	// 强制重新布局会先结束仍挂载条目的动画
	lm.LayoutChildren(layoutmanager.State{ItemCount: 100})
	for key := types.ItemKey(0); key < 4; key++ {
		if host.finished[key] != 1 {
			t.Errorf("item %d should be settled by the forced relayout", key)
		}
	}
}
