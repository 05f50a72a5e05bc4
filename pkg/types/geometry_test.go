package types

import "testing"

func TestRectDerivedFields(t *testing.T) {
	r := RectAt(Point{X: 10, Y: 20}, Size{Width: 101, Height: 50})

	if r.Width() != 101 {
		t.Errorf("Width: got %d, want 101", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height: got %d, want 50", r.Height())
	}
	// 奇数宽度向下取整
	if r.CenterX() != 60 {
		t.Errorf("CenterX: got %d, want 60", r.CenterX())
	}
	if r.CenterY() != 45 {
		t.Errorf("CenterY: got %d, want 45", r.CenterY())
	}
}

func TestRectIntersectsVertical(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"完全在内", Rect{Top: 10, Bottom: 20}, true},
		{"跨越顶部", Rect{Top: -5, Bottom: 5}, true},
		{"刚好贴住顶部", Rect{Top: -10, Bottom: 0}, false},
		{"刚好贴住底部", Rect{Top: 100, Bottom: 110}, false},
		{"覆盖整个区间", Rect{Top: -50, Bottom: 500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.IntersectsVertical(0, 100); got != tt.want {
				t.Errorf("IntersectsVertical() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 100, Bottom: 60}.Inset(Insets{Left: 4, Top: 2, Right: 4, Bottom: 2})
	want := Rect{Left: 4, Top: 2, Right: 96, Bottom: 58}
	if r != want {
		t.Errorf("Inset: got %+v, want %+v", r, want)
	}
	if (Rect{Left: 5, Right: 5, Top: 0, Bottom: 10}).Empty() != true {
		t.Error("zero-width rect should be empty")
	}
}

func TestParseSceneKind(t *testing.T) {
	tests := []struct {
		in      string
		want    SceneKind
		wantErr bool
	}{
		{"linear", SceneLinear, false},
		{"Stack", SceneStack, false},
		{" GRID ", SceneGrid, false},
		{"carousel", SceneLinear, true},
	}

	for _, tt := range tests {
		got, err := ParseSceneKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSceneKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSceneKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && got.String() != tt.want.String() {
			t.Errorf("String() mismatch for %q", tt.in)
		}
	}
}
