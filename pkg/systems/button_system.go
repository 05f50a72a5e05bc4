package systems

import (
	"github.com/decker502/cardstack/pkg/components"
	"github.com/decker502/cardstack/pkg/ecs"
)

// PointerState 一帧的指针输入
type PointerState struct {
	X, Y float64
	// Pressed 指针处于按下状态
	Pressed bool
	// JustReleased 指针在本帧释放
	JustReleased bool
}

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下和点击
//
// 指针状态由调用者传入，桌面端和移动端共用同一套逻辑
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 更新按钮交互状态并触发回调
//
// 返回：
//   - true: 指针落在某个按钮上（调用者不应再把这次输入当作列表拖拽）
func (s *ButtonSystem) Update(pointer PointerState) bool {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	consumed := false
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !button.Contains(pos.X, pos.Y, pointer.X, pointer.Y) {
			button.State = components.UINormal
			continue
		}

		consumed = true
		switch {
		case pointer.JustReleased:
			// 释放瞬间触发回调
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		case pointer.Pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}

	return consumed
}

// SetSelected 根据场景更新按钮的选中状态
func (s *ButtonSystem) SetSelected(selected func(button *components.ButtonComponent) bool) {
	entities := ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		button.Selected = selected(button)
	}
}
