package animator

import "github.com/decker502/cardstack/pkg/types"

// 各类结构性事件对应的动画集构建

// buildAppearance 从较近的屏幕边缘进入并淡入
// 上半屏的条目从上方进入，下半屏的从下方进入
func buildAppearance(set *AnimationSet, post types.Rect, screenHeight int) {
	start := float64(screenHeight)
	if post.Top < screenHeight/2 {
		start = -start
	}
	set.translateY(start, 0)
	set.alpha(0, 1)
}

// buildDisappearance 向较近的屏幕边缘离开并淡出
func buildDisappearance(set *AnimationSet, pre types.Rect, screenHeight int) {
	end := float64(screenHeight)
	if pre.Top < screenHeight/2 {
		end = -end
	}
	set.translateY(0, end)
	set.alpha(1, 0)
}

// buildChange 从旧位置和旧尺寸过渡到新位置
// 平移起点为旧中心相对新中心的偏移，缩放起点为旧尺寸与新尺寸之比
func buildChange(set *AnimationSet, pre, post types.Rect) {
	set.translateX(float64(pre.CenterX()-post.CenterX()), 0)
	set.translateY(float64(pre.CenterY()-post.CenterY()), 0)
	set.scaleX(scaleRatio(pre.Width(), post.Width()), 1)
	set.scaleY(scaleRatio(pre.Height(), post.Height()), 1)
}

func scaleRatio(start, end int) float64 {
	if end == 0 {
		return 1
	}
	return float64(start) / float64(end)
}
