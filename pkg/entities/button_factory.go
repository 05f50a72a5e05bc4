package entities

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/cardstack/pkg/components"
	"github.com/decker502/cardstack/pkg/ecs"
	"github.com/decker502/cardstack/pkg/types"
)

// 按钮配色
var (
	sceneButtonFill         = color.RGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xE0}
	sceneButtonSelectedFill = color.RGBA{R: 0xFF, G: 0x40, B: 0x81, A: 0xFF}
	sceneButtonTextColor    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// NewSceneButton 创建场景切换按钮实体（圆形矢量按钮）
//
// 参数：
//   - em: 实体管理器
//   - kind: 按钮对应的场景
//   - font: 文字字体，可为 nil（只绘制背景）
//   - x, y: 按钮外接矩形左上角（屏幕坐标）
//   - size: 按钮直径
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewSceneButton(
	em *ecs.EntityManager,
	kind types.SceneKind,
	font *text.GoTextFace,
	x, y float64,
	size float64,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Scene:        kind,
		Text:         buttonLabel(kind),
		Font:         font,
		Size:         size,
		Fill:         sceneButtonFill,
		SelectedFill: sceneButtonSelectedFill,
		TextColor:    sceneButtonTextColor,
		State:        components.UINormal,
		Enabled:      true,
		OnClick:      onClick,
	})

	return entity
}

// buttonLabel 按钮文字：场景名首字母大写
func buttonLabel(kind types.SceneKind) string {
	switch kind {
	case types.SceneLinear:
		return "L"
	case types.SceneStack:
		return "S"
	case types.SceneGrid:
		return "G"
	}
	return "?"
}
