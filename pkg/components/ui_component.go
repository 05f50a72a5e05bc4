package components

// UIState 按钮等交互元素的状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 指针悬停
	UIHovered
	// UIClicked 正在按下
	UIClicked
	// UIDisabled 禁用
	UIDisabled
)

// String 返回状态名称（调试日志使用）
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIClicked:
		return "clicked"
	case UIDisabled:
		return "disabled"
	}
	return "unknown"
}
