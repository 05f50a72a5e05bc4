package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/cardstack/pkg/animator"
	"github.com/decker502/cardstack/pkg/components"
	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/ecs"
	"github.com/decker502/cardstack/pkg/types"
)

// TransformSource 提供条目当前的动画变换
type TransformSource interface {
	Transform(key types.ItemKey) animator.Transform
}

// CardRenderSystem 卡片渲染系统
//
// 先绘制仍在播放消失动画的快照卡片，再按子视图序号绘制挂载的卡片，
// 序号越大越靠上。每张卡片在槽位内收缩装饰边距，再叠加动画变换。
type CardRenderSystem struct {
	entityManager *ecs.EntityManager
	transforms    TransformSource
	margin        int
	font          *text.GoTextFace
}

// NewCardRenderSystem 创建卡片渲染系统
//
// 参数：
//   - em: 实体管理器
//   - transforms: 动画变换来源，可为 nil（始终使用单位变换）
//   - margin: 装饰边距，左右各 margin，上下各 margin/2
//   - font: 卡片文字字体，可为 nil
func NewCardRenderSystem(em *ecs.EntityManager, transforms TransformSource, margin int, font *text.GoTextFace) *CardRenderSystem {
	return &CardRenderSystem{
		entityManager: em,
		transforms:    transforms,
		margin:        margin,
		font:          font,
	}
}

// CardFrame 一张卡片最终的绘制区域
type CardFrame struct {
	X, Y, Width, Height float64
	Alpha               float64
}

// Visible 绘制区域是否可见
func (f CardFrame) Visible() bool {
	return f.Width > 0 && f.Height > 0 && f.Alpha > 0
}

// ComputeCardFrame 由槽位矩形、装饰边距和动画变换计算卡片的绘制区域
//
// 缩放以卡片中心为锚点，平移在缩放之后叠加。
func ComputeCardFrame(slot types.Rect, margin int, tr animator.Transform) CardFrame {
	content := slot.Inset(types.Insets{
		Left:   margin,
		Top:    margin / 2,
		Right:  margin,
		Bottom: margin / 2,
	})

	w := float64(content.Width())
	h := float64(content.Height())
	insetX := w * (1 - config.CardContentScale) / 2
	insetY := insetX / config.CardProportion

	x := float64(content.Left) + insetX
	y := float64(content.Top) + insetY
	w -= 2 * insetX
	h -= 2 * insetY

	cx := x + w/2
	cy := y + h/2
	w *= tr.ScaleX
	h *= tr.ScaleY

	alpha := tr.Alpha
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	return CardFrame{
		X:      cx - w/2 + tr.TranslationX,
		Y:      cy - h/2 + tr.TranslationY,
		Width:  w,
		Height: h,
		Alpha:  alpha,
	}
}

// DrawOrder 返回本帧需要绘制的卡片实体（快照在前，挂载卡片按序号升序）
func (s *CardRenderSystem) DrawOrder() []ecs.EntityID {
	entities := ecs.GetEntitiesWith1[*components.CardViewComponent](s.entityManager)

	ghosts := make([]ecs.EntityID, 0)
	attached := make([]ecs.EntityID, 0, len(entities))
	for _, id := range entities {
		if ecs.HasComponent[*components.DisappearingComponent](s.entityManager, id) {
			ghosts = append(ghosts, id)
			continue
		}
		card, _ := ecs.GetComponent[*components.CardViewComponent](s.entityManager, id)
		if card.Attached {
			attached = append(attached, id)
		}
	}

	sort.SliceStable(attached, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.CardViewComponent](s.entityManager, attached[i])
		b, _ := ecs.GetComponent[*components.CardViewComponent](s.entityManager, attached[j])
		return a.ChildIndex < b.ChildIndex
	})

	return append(ghosts, attached...)
}

// Draw 绘制所有卡片
func (s *CardRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.DrawOrder() {
		card, ok := ecs.GetComponent[*components.CardViewComponent](s.entityManager, id)
		if !ok {
			continue
		}
		s.drawCard(screen, card)
	}
}

func (s *CardRenderSystem) drawCard(screen *ebiten.Image, card *components.CardViewComponent) {
	tr := animator.IdentityTransform()
	if s.transforms != nil {
		tr = s.transforms.Transform(card.Key)
	}

	frame := ComputeCardFrame(card.Bounds, s.margin, tr)
	if !frame.Visible() {
		return
	}

	// 阴影
	shadow := color.RGBA{A: uint8(60 * frame.Alpha)}
	vector.DrawFilledRect(screen,
		float32(frame.X+2), float32(frame.Y+3),
		float32(frame.Width), float32(frame.Height),
		shadow, true)

	vector.DrawFilledRect(screen,
		float32(frame.X), float32(frame.Y),
		float32(frame.Width), float32(frame.Height),
		withAlpha(card.Color, frame.Alpha), true)

	vector.StrokeRect(screen,
		float32(frame.X), float32(frame.Y),
		float32(frame.Width), float32(frame.Height),
		1, withAlpha(color.RGBA{A: 0x30}, frame.Alpha), true)

	if s.font == nil || card.Label == "" {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(tr.ScaleX, tr.ScaleY)
	op.GeoM.Translate(frame.X+frame.Width/2, frame.Y+frame.Height/2)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF})
	op.ColorScale.ScaleAlpha(float32(frame.Alpha))
	text.Draw(screen, card.Label, s.font, op)
}

// withAlpha 按 alpha 缩放颜色（预乘）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
