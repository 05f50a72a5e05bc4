package layoutmanager

import (
	"testing"

	"github.com/decker502/cardstack/pkg/types"
)

// childPositions 子视图位置列表
func childPositions(lm *LayoutManager) []int {
	out := make([]int, 0, lm.ChildCount())
	for _, c := range lm.Children() {
		out = append(out, c.Position)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// assertConsistent 子视图与宿主状态一致：降序、等于可见区间、边界与场景几何一致
func assertConsistent(t *testing.T, lm *LayoutManager, host *fakeHost) {
	t.Helper()

	scene := lm.CurrentScene()
	want := scene.VisibleRange(host.items).Positions()
	got := childPositions(lm)
	if !equalInts(got, want) {
		t.Fatalf("children %v, want visible range %v", got, want)
	}

	if len(host.attached) != lm.ChildCount() {
		t.Fatalf("host has %d attached views, layout manager %d", len(host.attached), lm.ChildCount())
	}

	for i, c := range lm.Children() {
		if host.attached[i] != c.View {
			t.Fatalf("child %d: host order mismatch", i)
		}
		if host.bound[c.View] != c.Position {
			t.Fatalf("view %d bound to %d, child says %d", c.View, host.bound[c.View], c.Position)
		}
		if wantBounds := scene.CardBounds(c.Position); host.bounds[c.View] != wantBounds || c.Bounds != wantBounds {
			t.Fatalf("position %d: bounds %+v, want %+v", c.Position, host.bounds[c.View], wantBounds)
		}
	}
}

func TestLayoutChildrenSkipsUnmeasuredContainer(t *testing.T) {
	host := newFakeHost(t, 0, 1920, 100)
	lm := New(host, types.SceneLinear)

	lm.LayoutChildren(host.state())

	if lm.ChildCount() != 0 || len(host.obtained) != 0 {
		t.Error("layout with zero width should be a no-op")
	}
	if lm.CurrentScene().HasCardSize() {
		t.Error("card size must not be computed before the width is known")
	}
}

func TestLayoutChildrenLinear(t *testing.T) {
	host := newFakeHost(t, 1080, 1920, 100)
	lm := New(host, types.SceneLinear)

	lm.LayoutChildren(host.state())

	if got := childPositions(lm); !equalInts(got, []int{3, 2, 1, 0}) {
		t.Fatalf("children: got %v, want [3 2 1 0]", got)
	}
	for _, c := range lm.Children() {
		if host.measured[c.View] != (types.Size{Width: 1080, Height: 688}) {
			t.Errorf("position %d measured as %+v", c.Position, host.measured[c.View])
		}
	}
	assertConsistent(t, lm, host)
}

func TestLayoutChildrenReusesScrap(t *testing.T) {
	host := newFakeHost(t, 1080, 1920, 100)
	lm := New(host, types.SceneGrid)
	lm.LayoutChildren(host.state())

	before := lm.Children()
	host.resetCalls()

	lm.LayoutChildren(host.state())

	if len(host.obtained) != 0 {
		t.Errorf("second identical layout should reuse scrap, obtained %v", host.obtained)
	}
	if len(host.recycled) != 0 {
		t.Errorf("second identical layout should not recycle, recycled %v", host.recycled)
	}
	after := lm.Children()
	for i := range before {
		if before[i].View != after[i].View {
			t.Fatalf("child %d changed view", i)
		}
	}
	assertConsistent(t, lm, host)
}

func TestLayoutChildrenEmptyAdapter(t *testing.T) {
	host := newFakeHost(t, 1080, 1920, 100)
	settler := &fakeSettler{}
	lm := New(host, types.SceneLinear)
	lm.SetAnimationSettler(settler)
	lm.LayoutChildren(host.state())
	attached := lm.ChildCount()

	host.items = 0
	lm.LayoutChildren(host.state())

	if lm.ChildCount() != 0 || len(host.attached) != 0 {
		t.Errorf("all children should be removed, %d left", lm.ChildCount())
	}
	if len(host.recycled) != attached {
		t.Errorf("recycled %d views, want %d", len(host.recycled), attached)
	}
	if len(settler.ended) != attached {
		t.Errorf("settled %d animations, want %d", len(settler.ended), attached)
	}
}

func TestPreLayoutWithoutChildrenIsNoop(t *testing.T) {
	host := newFakeHost(t, 1080, 1920, 100)
	lm := New(host, types.SceneLinear)

	lm.LayoutChildren(State{ItemCount: 100, PreLayout: true})

	if lm.ChildCount() != 0 || len(host.obtained) != 0 {
		t.Error("pre-layout without children should do nothing")
	}
}

// TestSceneSwitchPredictiveLayout 切换场景后，预测布局使用旧场景几何，真实布局使用新场景
func TestSceneSwitchPredictiveLayout(t *testing.T) {
	host := newFakeHost(t, 1080, 1920, 100)
	settler := &fakeSettler{}
	lm := New(host, types.SceneLinear)
	lm.SetAnimationSettler(settler)
	lm.LayoutChildren(host.state())
	lm.ScrollBy(-1500, host.state())
	attached := lm.ChildCount()
	settler.ended = nil

	oldScene := lm.CurrentScene()
	lm.ShowGrid()

	if len(host.notified) != 1 || host.notified[0] != [2]int{0, 100} {
		t.Fatalf("NotifyItemRangeChanged calls: got %v, want [[0 100]]", host.notified)
	}
	if lm.PreviousScene() != oldScene {
		t.Fatal("previous scene should be retained until the next real pass")
	}
	if lm.CurrentScene().Kind() != types.SceneGrid {
		t.Fatalf("current scene: got %v", lm.CurrentScene().Kind())
	}
	if lm.CurrentScene().ScrollOffset() != oldScene.ScrollOffset() {
		t.Errorf("offset should carry over: got %d, want %d", lm.CurrentScene().ScrollOffset(), oldScene.ScrollOffset())
	}
	if len(settler.ended) != attached {
		t.Errorf("scene switch should settle %d animations, settled %d", attached, len(settler.ended))
	}

	lm.LayoutChildren(State{ItemCount: 100, PreLayout: true})
	for _, c := range lm.Children() {
		if c.Bounds != oldScene.CardBounds(c.Position) {
			t.Fatalf("pre-layout position %d should use old geometry", c.Position)
		}
	}
	if !equalInts(childPositions(lm), oldScene.VisibleRange(100).Positions()) {
		t.Fatalf("pre-layout children %v, want old range", childPositions(lm))
	}
	if lm.PreviousScene() == nil {
		t.Fatal("previous scene must survive the predictive pass")
	}

	lm.LayoutChildren(host.state())
	if lm.PreviousScene() != nil {
		t.Error("previous scene should be dropped after the real pass")
	}
	assertConsistent(t, lm, host)
}

func TestSceneSwitchClampsOffset(t *testing.T) {
	host := newFakeHost(t, 1080, 1920, 100)
	lm := New(host, types.SceneLinear)
	lm.LayoutChildren(host.state())
	lm.ScrollBy(-1_000_000, host.state())

	lm.ShowGrid()

	if got, want := lm.CurrentScene().ScrollOffset(), lm.CurrentScene().MaxScroll(); got != want {
		t.Errorf("offset after switch: got %d, want max %d", got, want)
	}
}

func TestLayoutChildrenReclampsAfterWidthChange(t *testing.T) {
	host := newFakeHost(t, 1080, 1920, 100)
	lm := New(host, types.SceneLinear)
	lm.LayoutChildren(host.state())
	lm.ScrollBy(-1_000_000, host.state())

	host.w = 540
	lm.LayoutChildren(host.state())

	scene := lm.CurrentScene()
	if got, want := scene.ScrollOffset(), scene.MaxScroll(); got != want {
		t.Errorf("offset after narrowing: got %d, want max %d", got, want)
	}
	if lm.ChildCount() == 0 {
		t.Fatal("narrowed list should still attach children")
	}
	assertConsistent(t, lm, host)
}
