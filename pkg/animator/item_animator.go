// Package animator 实现卡片条目的弹簧过渡动画
//
// ItemAnimator 为每个条目（按宿主提供的稳定标识）维护一组并发的属性动画，
// 由宿主每帧调用 Update 推进。条目的全部属性动画完成后，
// 其变换恢复静止，并通过 FinishListener 通知宿主一次。
package animator

import (
	"log"

	"github.com/charmbracelet/harmonica"
	"github.com/decker502/cardstack/pkg/config"
	"github.com/decker502/cardstack/pkg/types"
)

// FinishListener 接收条目动画完成通知
// 宿主据此完成移除、交叉淡入淡出等收尾工作
type FinishListener interface {
	OnAnimationFinished(key types.ItemKey)
}

// ScreenMetrics 提供进出场动画使用的屏幕高度
type ScreenMetrics interface {
	ScreenHeight() int
}

// ItemAnimator 条目动画控制器
//
// 所有方法都必须在 UI 线程上调用，内部不加锁。
type ItemAnimator struct {
	spring   harmonica.Spring
	screen   ScreenMetrics
	listener FinishListener

	animations map[types.ItemKey]*AnimationSet
}

// NewItemAnimator 创建条目动画控制器
//
// 参数：
//   - cfg: 弹簧参数，所有属性动画共用
//   - screen: 屏幕高度来源
//   - listener: 完成通知接收者，可为 nil
func NewItemAnimator(cfg config.SpringConfig, screen ScreenMetrics, listener FinishListener) *ItemAnimator {
	return &ItemAnimator{
		spring:     NewSpring(cfg),
		screen:     screen,
		listener:   listener,
		animations: make(map[types.ItemKey]*AnimationSet),
	}
}

// SetFinishListener 设置完成通知接收者
func (ia *ItemAnimator) SetFinishListener(listener FinishListener) {
	ia.listener = listener
}

// AnimateAppearance 条目出现
// 返回 false 表示没有需要运行的动画（已同步通知完成）
func (ia *ItemAnimator) AnimateAppearance(key types.ItemKey, pre *types.Rect, post types.Rect) bool {
	set := ia.newSet(key)
	buildAppearance(set, post, ia.screenHeight())
	return ia.process(set)
}

// AnimateDisappearance 条目消失
func (ia *ItemAnimator) AnimateDisappearance(key types.ItemKey, pre types.Rect, post *types.Rect) bool {
	set := ia.newSet(key)
	buildDisappearance(set, pre, ia.screenHeight())
	return ia.process(set)
}

// AnimatePersistence 条目在布局前后都存在，位置或尺寸可能变化
func (ia *ItemAnimator) AnimatePersistence(key types.ItemKey, pre, post types.Rect) bool {
	set := ia.newSet(key)
	buildChange(set, pre, post)
	return ia.process(set)
}

// AnimateChange 条目被替换
// 动画作用在新条目上；旧条目与新条目不同时立即通知旧条目完成
func (ia *ItemAnimator) AnimateChange(oldKey, newKey types.ItemKey, pre, post types.Rect) bool {
	if oldKey != newKey {
		ia.EndAnimation(oldKey)
		ia.dispatchFinished(oldKey)
	}
	set := ia.newSet(newKey)
	buildChange(set, pre, post)
	return ia.process(set)
}

// RunPendingAnimations 启动所有尚未启动的动画集
func (ia *ItemAnimator) RunPendingAnimations() {
	for _, set := range ia.snapshot() {
		set.start()
	}
}

// Update 推进一帧
// 完成回调在本次调用中同步触发
func (ia *ItemAnimator) Update() {
	for _, set := range ia.snapshot() {
		set.step()
	}
}

// EndAnimation 立即结束条目的动画
func (ia *ItemAnimator) EndAnimation(key types.ItemKey) {
	if set, ok := ia.animations[key]; ok {
		set.skipToEnd()
	}
}

// EndAnimations 立即结束全部动画
func (ia *ItemAnimator) EndAnimations() {
	for _, set := range ia.snapshot() {
		set.skipToEnd()
	}
}

// IsRunning 是否有动画集尚未完成
func (ia *ItemAnimator) IsRunning() bool {
	return len(ia.animations) > 0
}

// RunningCount 尚未完成的动画集数量
func (ia *ItemAnimator) RunningCount() int {
	return len(ia.animations)
}

// Animation 返回条目当前的动画集
func (ia *ItemAnimator) Animation(key types.ItemKey) (*AnimationSet, bool) {
	set, ok := ia.animations[key]
	return set, ok
}

// Transform 返回条目当前的变换，没有动画时为静止状态
func (ia *ItemAnimator) Transform(key types.ItemKey) Transform {
	if set, ok := ia.animations[key]; ok {
		return set.Transform()
	}
	return IdentityTransform()
}

func (ia *ItemAnimator) newSet(key types.ItemKey) *AnimationSet {
	return newAnimationSet(key, ia.spring, ia.finish)
}

// process 登记动画集
// 条目上仍在进行的旧动画先被结束，保证每次事件恰好通知一次
func (ia *ItemAnimator) process(set *AnimationSet) bool {
	if old, ok := ia.animations[set.key]; ok {
		old.skipToEnd()
	}

	if set.Empty() {
		set.state = SetFinished
		ia.dispatchFinished(set.key)
		return false
	}

	ia.animations[set.key] = set
	return true
}

// finish 动画集完成回调
func (ia *ItemAnimator) finish(set *AnimationSet) {
	if current, ok := ia.animations[set.key]; ok && current == set {
		delete(ia.animations, set.key)
	}
	ia.dispatchFinished(set.key)
}

func (ia *ItemAnimator) dispatchFinished(key types.ItemKey) {
	if ia.listener != nil {
		ia.listener.OnAnimationFinished(key)
	}
}

func (ia *ItemAnimator) snapshot() []*AnimationSet {
	sets := make([]*AnimationSet, 0, len(ia.animations))
	for _, set := range ia.animations {
		sets = append(sets, set)
	}
	return sets
}

func (ia *ItemAnimator) screenHeight() int {
	if ia.screen == nil {
		log.Printf("[ItemAnimator] Warning: no screen metrics, enter/exit animations use height 0")
		return 0
	}
	return ia.screen.ScreenHeight()
}
