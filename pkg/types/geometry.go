package types

// Point 整数像素坐标
type Point struct {
	X, Y int
}

// Size 整数像素尺寸
type Size struct {
	Width, Height int
}

// Insets 容器的四边内边距
type Insets struct {
	Left, Top, Right, Bottom int
}

// Horizontal 返回左右内边距之和
func (in Insets) Horizontal() int {
	return in.Left + in.Right
}

// Vertical 返回上下内边距之和
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}

// Rect 屏幕矩形，Right/Bottom 为开区间边界
type Rect struct {
	Left, Top, Right, Bottom int
}

// RectAt 根据左上角坐标和尺寸构造矩形
func RectAt(p Point, size Size) Rect {
	return Rect{
		Left:   p.X,
		Top:    p.Y,
		Right:  p.X + size.Width,
		Bottom: p.Y + size.Height,
	}
}

// Width 矩形宽度
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height 矩形高度
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// CenterX 矩形中心 X（整数除法，与宿主视图系统一致）
func (r Rect) CenterX() int {
	return r.Width()/2 + r.Left
}

// CenterY 矩形中心 Y
func (r Rect) CenterY() int {
	return r.Height()/2 + r.Top
}

// Empty 宽或高不为正时返回 true
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// IntersectsVertical 判断矩形的纵向跨度是否与 [top, bottom) 相交
func (r Rect) IntersectsVertical(top, bottom int) bool {
	return r.Top < bottom && r.Bottom > top
}

// Inset 向内收缩矩形
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
}
