package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/cardstack/pkg/types"
)

// ButtonComponent 场景切换按钮（纯矢量绘制的圆形按钮）
//
// 设计原则：
//   - 纯数据组件，交互由 ButtonSystem 处理，绘制由 ButtonRenderSystem 处理
//   - 选中状态由所属场景根据当前 SceneKind 更新
type ButtonComponent struct {
	// Scene 按钮对应的场景
	Scene types.SceneKind

	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace

	// Size 按钮直径（像素）
	Size float64

	// Fill 背景色，Selected 时使用 SelectedFill
	Fill         color.RGBA
	SelectedFill color.RGBA
	TextColor    color.RGBA

	// State 当前交互状态
	State UIState
	// Enabled 是否启用
	Enabled bool
	// Selected 是否为当前场景
	Selected bool

	// OnClick 点击回调函数
	OnClick func()
}

// Contains 判断屏幕坐标 (x, y) 是否落在以 (left, top) 为外接矩形左上角的按钮圆内
func (b *ButtonComponent) Contains(left, top, x, y float64) bool {
	r := b.Size / 2
	dx := x - (left + r)
	dy := y - (top + r)
	return dx*dx+dy*dy <= r*r
}
