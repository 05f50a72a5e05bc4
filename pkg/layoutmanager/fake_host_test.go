package layoutmanager

import (
	"testing"

	"github.com/decker502/cardstack/pkg/types"
)

// fakeHost 记录布局引擎发出的全部宿主调用
type fakeHost struct {
	t *testing.T

	w, h  int
	pad   types.Insets
	items int

	nextView View
	attached []View
	pool     []View
	bound    map[View]int
	bounds   map[View]types.Rect
	measured map[View]types.Size

	obtained []int
	recycled []View
	notified [][2]int
}

func newFakeHost(t *testing.T, w, h, items int) *fakeHost {
	return &fakeHost{
		t:        t,
		w:        w,
		h:        h,
		items:    items,
		nextView: 1,
		bound:    make(map[View]int),
		bounds:   make(map[View]types.Rect),
		measured: make(map[View]types.Size),
	}
}

func (f *fakeHost) Width() int                         { return f.w }
func (f *fakeHost) Height() int                        { return f.h }
func (f *fakeHost) Padding() types.Insets              { return f.pad }
func (f *fakeHost) ItemCount() int                     { return f.items }
func (f *fakeHost) ItemKey(position int) types.ItemKey { return types.ItemKey(position + 1000) }

func (f *fakeHost) ObtainView(position int) View {
	var v View
	if n := len(f.pool); n > 0 {
		v = f.pool[n-1]
		f.pool = f.pool[:n-1]
	} else {
		v = f.nextView
		f.nextView++
	}
	f.bound[v] = position
	f.obtained = append(f.obtained, position)
	return v
}

func (f *fakeHost) AttachView(view View, index int) {
	for _, v := range f.attached {
		if v == view {
			f.t.Fatalf("view %d attached twice", view)
		}
	}
	if index < 0 || index > len(f.attached) {
		f.t.Fatalf("attach index %d out of range (%d children)", index, len(f.attached))
	}
	f.attached = append(f.attached, 0)
	copy(f.attached[index+1:], f.attached[index:])
	f.attached[index] = view
}

func (f *fakeHost) DetachView(view View) {
	for i, v := range f.attached {
		if v == view {
			f.attached = append(f.attached[:i], f.attached[i+1:]...)
			return
		}
	}
	f.t.Fatalf("detach of unattached view %d", view)
}

func (f *fakeHost) RecycleView(view View) {
	for _, v := range f.attached {
		if v == view {
			f.t.Fatalf("recycle of attached view %d", view)
		}
	}
	delete(f.bound, view)
	f.pool = append(f.pool, view)
	f.recycled = append(f.recycled, view)
}

func (f *fakeHost) MeasureChild(view View, size types.Size)  { f.measured[view] = size }
func (f *fakeHost) LayoutChild(view View, bounds types.Rect) { f.bounds[view] = bounds }
func (f *fakeHost) NotifyItemRangeChanged(start, count int) {
	f.notified = append(f.notified, [2]int{start, count})
}

func (f *fakeHost) state() State {
	return State{ItemCount: f.items}
}

func (f *fakeHost) resetCalls() {
	f.obtained = nil
	f.recycled = nil
}

// fakeSettler 记录被结束动画的条目
type fakeSettler struct {
	ended []types.ItemKey
}

func (s *fakeSettler) EndAnimation(key types.ItemKey) {
	s.ended = append(s.ended, key)
}
