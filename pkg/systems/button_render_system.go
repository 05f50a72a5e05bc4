package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/cardstack/pkg/components"
	"github.com/decker502/cardstack/pkg/ecs"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有场景切换按钮（圆形背景 + 居中文字）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	r := button.Size / 2
	cx := pos.X + r
	cy := pos.Y + r

	fill := button.Fill
	if button.Selected {
		fill = button.SelectedFill
	}
	switch button.State {
	case components.UIHovered:
		fill = lighten(fill, 0.15)
	case components.UIClicked:
		fill = lighten(fill, -0.15)
	case components.UIDisabled:
		fill.A /= 2
	}

	// 阴影
	vector.DrawFilledCircle(screen, float32(cx+1), float32(cy+2), float32(r), color.RGBA{A: 0x50}, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), fill, true)

	if button.Text == "" || button.Font == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(button.TextColor)
	text.Draw(screen, button.Text, button.Font, op)
}

// lighten 调整颜色亮度，amount 为负时变暗
func lighten(c color.RGBA, amount float64) color.RGBA {
	adjust := func(v uint8) uint8 {
		f := float64(v)
		if amount >= 0 {
			f += (255 - f) * amount
		} else {
			f *= 1 + amount
		}
		if f > 255 {
			f = 255
		}
		if f < 0 {
			f = 0
		}
		return uint8(f)
	}
	return color.RGBA{R: adjust(c.R), G: adjust(c.G), B: adjust(c.B), A: c.A}
}
