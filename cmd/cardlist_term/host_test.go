package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cardstack/pkg/animator"
	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/types"
)

// 54x49 单元格 = 540x960 像素（最后一行为状态栏）
func newTestHost(t *testing.T, kind types.SceneKind) *termHost {
	t.Helper()
	cfg := config.DefaultCardListConfig()
	cfg.Items = 30
	return newTermHost(cfg, kind, 54, 49)
}

func settle(t *testing.T, h *termHost) {
	t.Helper()
	for i := 0; i < 2000 && h.animator.IsRunning(); i++ {
		h.step(0)
	}
	if h.animator.IsRunning() {
		t.Fatal("animations did not settle")
	}
}

func assertConsistent(t *testing.T, h *termHost) {
	t.Helper()
	if got, want := len(h.children), h.lm.ChildCount(); got != want {
		t.Fatalf("host children = %d, layout manager children = %d", got, want)
	}
	for i, c := range h.lm.Children() {
		if h.children[i] != c.View {
			t.Fatalf("child %d: host view %d, layout manager view %d", i, h.children[i], c.View)
		}
		if v := h.views[c.View]; v.position != c.Position || v.bounds != c.Bounds {
			t.Fatalf("child %d: view bound to %d %+v, want %d %+v", i, v.position, v.bounds, c.Position, c.Bounds)
		}
	}
}

func TestTermHostGeometry(t *testing.T) {
	h := newTestHost(t, types.SceneLinear)
	if h.Width() != 540 || h.Height() != 960 {
		t.Errorf("size = %dx%d, want 540x960", h.Width(), h.Height())
	}
	if h.ScreenHeight() != h.Height() {
		t.Errorf("ScreenHeight = %d, want %d", h.ScreenHeight(), h.Height())
	}

	h.resize(20, 1)
	if h.Height() != 0 {
		t.Errorf("height with only a status row = %d, want 0", h.Height())
	}
}

func TestTermHostFirstStep(t *testing.T) {
	h := newTestHost(t, types.SceneLinear)
	h.step(0)

	if h.lm.ChildCount() == 0 {
		t.Fatal("first step should attach children")
	}
	if h.animator.IsRunning() {
		t.Error("first layout should not animate")
	}
	assertConsistent(t, h)
}

func TestTermHostSwitchAnimatesAndSettles(t *testing.T) {
	h := newTestHost(t, types.SceneLinear)
	h.step(0)

	h.switchScene(types.SceneGrid)
	if !h.pendingRelayout {
		t.Fatal("switching scene should request a relayout")
	}
	h.step(0)
	if !h.animator.IsRunning() {
		t.Fatal("switching scene should start animations")
	}
	assertConsistent(t, h)

	settle(t, h)
	if len(h.ghosts) != 0 {
		t.Errorf("ghosts left after animations settled: %d", len(h.ghosts))
	}

	h.switchScene(types.SceneLinear)
	h.step(0)
	if len(h.ghosts) == 0 {
		t.Error("grid -> linear should keep disappearing cards")
	}
	settle(t, h)
	if len(h.ghosts) != 0 {
		t.Errorf("ghosts left after animations settled: %d", len(h.ghosts))
	}
	assertConsistent(t, h)
}

func TestTermHostScroll(t *testing.T) {
	h := newTestHost(t, types.SceneLinear)
	h.step(0)

	h.step(-lineScroll)
	if got := h.lm.CurrentScene().ScrollOffset(); got != lineScroll {
		t.Errorf("offset = %d, want %d", got, lineScroll)
	}
	assertConsistent(t, h)
}

func TestHandleEvent(t *testing.T) {
	h := newTestHost(t, types.SceneLinear)
	h.step(0)

	tests := []struct {
		name      string
		ev        tcell.Event
		wantDelta int
		wantQuit  bool
	}{
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), 0, true},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0, true},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), -lineScroll, false},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), lineScroll, false},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), 960, false},
		{"wheel up", tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone), -lineScroll, false},
		{"stack", tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, quit := handleEvent(h, tt.ev)
			if delta != tt.wantDelta || quit != tt.wantQuit {
				t.Errorf("handleEvent = (%d, %v), want (%d, %v)", delta, quit, tt.wantDelta, tt.wantQuit)
			}
		})
	}

	if h.lm.CurrentScene().Kind() != types.SceneStack {
		t.Errorf("scene = %s, want stack", h.lm.CurrentScene().Kind())
	}
}

func TestHandleResize(t *testing.T) {
	h := newTestHost(t, types.SceneGrid)
	h.step(0)

	handleEvent(h, tcell.NewEventResize(108, 49))
	if h.Width() != 1080 {
		t.Fatalf("width after resize = %d, want 1080", h.Width())
	}
	if got := h.lm.CurrentScene().CardSize().Width; got != 540 {
		t.Errorf("grid card width = %d, want 540", got)
	}
	assertConsistent(t, h)
}

func TestResizeAtMaxScrollKeepsCards(t *testing.T) {
	cfg := config.DefaultCardListConfig()
	h := newTermHost(cfg, types.SceneLinear, 108, 97)
	h.step(0)
	h.step(-1_000_000)

	h.resize(54, 97)

	scene := h.lm.CurrentScene()
	if got, want := scene.ScrollOffset(), scene.MaxScroll(); got != want {
		t.Errorf("offset after resize: got %d, want max %d", got, want)
	}
	if len(h.children) == 0 {
		t.Fatal("resize at max scroll should keep cards attached")
	}
	assertConsistent(t, h)
}

func TestCellRect(t *testing.T) {
	bounds := types.Rect{Left: 0, Top: 0, Right: 200, Bottom: 200}

	tests := []struct {
		name   string
		tr     animator.Transform
		want   types.Rect
		wantOK bool
	}{
		{
			name:   "identity",
			tr:     animator.IdentityTransform(),
			want:   types.Rect{Left: 1, Top: 0, Right: 19, Bottom: 10},
			wantOK: true,
		},
		{
			name:   "translated one screen down",
			tr:     animator.Transform{TranslationY: 400, ScaleX: 1, ScaleY: 1, Alpha: 1},
			want:   types.Rect{Left: 1, Top: 20, Right: 19, Bottom: 30},
			wantOK: true,
		},
		{
			name:   "mostly transparent",
			tr:     animator.Transform{ScaleX: 1, ScaleY: 1, Alpha: 0.2},
			wantOK: false,
		},
		{
			name:   "collapsed",
			tr:     animator.Transform{ScaleX: 0, ScaleY: 0, Alpha: 1},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cellRect(bounds, 10, tt.tr)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("cellRect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDrawRendersCardsAndStatus(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(54, 49)

	h := newTestHost(t, types.SceneGrid)
	h.step(0)
	h.draw(screen)
	screen.Show()

	cells, width, height := screen.GetContents()
	if width != 54 || height != 49 {
		t.Fatalf("screen size = %dx%d", width, height)
	}

	foundLabel := false
	for _, cell := range cells {
		if len(cell.Runes) == 0 || cell.Runes[0] != '0' {
			continue
		}
		_, bg, _ := cell.Style.Decompose()
		if bg == h.palette[0] {
			foundLabel = true
			break
		}
	}
	if !foundLabel {
		t.Error("card 0 label not drawn on its palette colour")
	}

	var status []rune
	for x := 0; x < width; x++ {
		if r := cells[(height-1)*width+x].Runes; len(r) > 0 {
			status = append(status, r[0])
		}
	}
	if got := string(status); !strings.Contains(got, "grid") {
		t.Errorf("status line %q does not name the scene", got)
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()

	// 无缓冲且无人接收，转发只能在 done 关闭后放弃
	events := make(chan tcell.Event)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(exited)
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	time.Sleep(20 * time.Millisecond)
	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("pollEvents did not exit after done was closed")
	}
}

func TestPollEventsStopsOnFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}

	exited := make(chan struct{})
	go func() {
		pollEvents(screen, make(chan tcell.Event, 1), make(chan struct{}))
		close(exited)
	}()

	screen.Fini()
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("pollEvents did not exit after Fini")
	}
}
