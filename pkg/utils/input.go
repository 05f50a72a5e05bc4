// Package utils 提供输入、存储目录和平台检测等通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 一帧的原始指针采样
// 同时支持鼠标和触摸，触摸优先
type PointerSample struct {
	// Down 指针处于按下状态
	Down bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// Touch 是否来自触摸输入
	Touch bool
}

// SamplePointer 采样当前帧的指针状态
func SamplePointer() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return PointerSample{Down: true, X: x, Y: y, Touch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:    x,
		Y:    y,
	}
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// IsPointerJustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func IsPointerJustReleased() (bool, int, int) {
	releasedTouchIDs := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(releasedTouchIDs) > 0 {
		// 触摸释放时使用保存的最后触摸位置
		return true, lastTouchX, lastTouchY
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// WheelScrollDelta 返回本帧鼠标滚轮对应的列表滚动量
//
// 返回值采用列表的滚动约定：正值表示内容向上移动。
// 参数 step 为每格滚轮对应的像素数。
func WheelScrollDelta(step float64) int {
	_, dy := ebiten.Wheel()
	return int(-dy * step)
}

// ============================================================================
// 拖拽状态管理器 - 用于列表的拖拽滚动
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// IsTouchInput 是否为触摸输入
	IsTouchInput bool
	// Scrolling 位移超过阈值，已进入滚动
	Scrolling bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态，并把竖直位移换算为列表滚动量
type DragManager struct {
	info DragInfo
	// slop 开始滚动前允许的位移（像素），小于它的按下-释放视为点击
	slop int
	// scrollDelta 本帧的滚动量
	scrollDelta int
}

// NewDragManager 创建拖拽管理器
//
// 参数：
//   - slop: 开始滚动前允许的竖直位移（像素）
func NewDragManager(slop int) *DragManager {
	if slop < 0 {
		slop = 0
	}
	return &DragManager{slop: slop}
}

// Update 采样指针并更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	dm.Step(SamplePointer())
}

// Step 用一帧采样推进拖拽状态机
func (dm *DragManager) Step(sample PointerSample) {
	dm.scrollDelta = 0

	switch dm.info.State {
	case DragStateNone:
		dm.checkDragStart(sample)

	case DragStateStarted, DragStateDragging:
		if !sample.Down {
			dm.info.State = DragStateEnded
			return
		}
		dm.updateCurrentPosition(sample)

	case DragStateEnded:
		// 结束状态只持续一帧
		dm.Reset()
		dm.checkDragStart(sample)
	}
}

// checkDragStart 检测拖拽开始
func (dm *DragManager) checkDragStart(sample PointerSample) {
	if !sample.Down {
		return
	}
	dm.info = DragInfo{
		State:        DragStateStarted,
		StartX:       sample.X,
		StartY:       sample.Y,
		CurrentX:     sample.X,
		CurrentY:     sample.Y,
		IsTouchInput: sample.Touch,
	}
}

// updateCurrentPosition 更新当前位置并计算滚动量
func (dm *DragManager) updateCurrentPosition(sample PointerSample) {
	prevY := dm.info.CurrentY
	dm.info.CurrentX, dm.info.CurrentY = sample.X, sample.Y
	dm.info.State = DragStateDragging

	if !dm.info.Scrolling {
		total := dm.info.CurrentY - dm.info.StartY
		if total < 0 {
			total = -total
		}
		if total < dm.slop {
			return
		}
		dm.info.Scrolling = true
	}

	// 手指向上移动时内容向上移动，对应正的滚动量
	dm.scrollDelta = prevY - dm.info.CurrentY
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{State: DragStateNone}
	dm.scrollDelta = 0
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// IsScrolling 拖拽是否已进入滚动
func (dm *DragManager) IsScrolling() bool {
	return dm.info.Scrolling && dm.info.State != DragStateNone
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// ScrollDelta 本帧的列表滚动量，正值表示内容向上移动
func (dm *DragManager) ScrollDelta() int {
	return dm.scrollDelta
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}
