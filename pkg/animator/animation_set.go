package animator

import (
	"github.com/charmbracelet/harmonica"
	"github.com/decker502/cardstack/pkg/types"
)

// SetState 动画集状态
type SetState int

const (
	// SetIdle 已创建，尚未启动
	SetIdle SetState = iota
	// SetAnimating 至少一个属性动画仍在运行
	SetAnimating
	// SetFinished 全部属性动画已完成，所有者已收到通知
	SetFinished
)

// String 返回状态名称
func (s SetState) String() string {
	switch s {
	case SetIdle:
		return "idle"
	case SetAnimating:
		return "animating"
	case SetFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// AnimationSet 单个条目的一组并发属性动画
//
// 每个属性动画完成后从集合中移除；集合变为空时进入 finished 状态，
// 变换重置为静止状态，并且只通知所有者一次。
type AnimationSet struct {
	key    types.ItemKey
	spring harmonica.Spring

	springs   []*propertySpring
	transform Transform
	state     SetState

	onEnd func(*AnimationSet)
}

func newAnimationSet(key types.ItemKey, spring harmonica.Spring, onEnd func(*AnimationSet)) *AnimationSet {
	return &AnimationSet{
		key:       key,
		spring:    spring,
		transform: IdentityTransform(),
		onEnd:     onEnd,
	}
}

// Key 条目标识
func (a *AnimationSet) Key() types.ItemKey { return a.key }

// State 当前状态
func (a *AnimationSet) State() SetState { return a.state }

// Empty 没有任何属性动画
func (a *AnimationSet) Empty() bool { return len(a.springs) == 0 }

// Running 仍在运行的属性动画数量
func (a *AnimationSet) Running() int { return len(a.springs) }

// Transform 当前变换
func (a *AnimationSet) Transform() Transform { return a.transform }

// Properties 仍在运行的属性
func (a *AnimationSet) Properties() []Property {
	out := make([]Property, 0, len(a.springs))
	for _, s := range a.springs {
		out = append(out, s.property)
	}
	return out
}

// Target 返回属性动画的目标值
func (a *AnimationSet) Target(p Property) (float64, bool) {
	for _, s := range a.springs {
		if s.property == p {
			return s.target, true
		}
	}
	return 0, false
}

// add 添加属性动画，起点等于终点时忽略
func (a *AnimationSet) add(p Property, start, end float64) {
	if start == end {
		return
	}
	a.transform.set(p, start)
	a.springs = append(a.springs, newPropertySpring(p, a.spring, start, end))
}

func (a *AnimationSet) translateX(start, end float64) { a.add(TranslationX, start, end) }
func (a *AnimationSet) translateY(start, end float64) { a.add(TranslationY, start, end) }
func (a *AnimationSet) scaleX(start, end float64)     { a.add(ScaleX, start, end) }
func (a *AnimationSet) scaleY(start, end float64)     { a.add(ScaleY, start, end) }
func (a *AnimationSet) alpha(start, end float64)      { a.add(Alpha, start, end) }

// start idle -> animating
func (a *AnimationSet) start() {
	if a.state != SetIdle {
		return
	}
	a.state = SetAnimating
	a.checkFinished()
}

// step 推进一帧
// 每个属性完成后立即检查集合是否已空
func (a *AnimationSet) step() {
	if a.state != SetAnimating {
		return
	}

	i := 0
	for i < len(a.springs) {
		s := a.springs[i]
		done := s.step()
		a.transform.set(s.property, s.value)
		if !done {
			i++
			continue
		}
		a.springs = append(a.springs[:i], a.springs[i+1:]...)
		if a.checkFinished() {
			return
		}
	}
}

// skipToEnd 强制完成所有属性动画
// 未启动的集合同样会完成并通知所有者
func (a *AnimationSet) skipToEnd() {
	if a.state == SetFinished {
		return
	}
	for _, s := range a.springs {
		s.skipToEnd()
		a.transform.set(s.property, s.value)
	}
	a.springs = nil
	a.state = SetAnimating
	a.checkFinished()
}

// checkFinished 集合为空时完成并通知，返回是否完成
func (a *AnimationSet) checkFinished() bool {
	if len(a.springs) > 0 || a.state == SetFinished {
		return false
	}
	a.state = SetFinished
	a.transform = IdentityTransform()
	if a.onEnd != nil {
		a.onEnd(a)
	}
	return true
}
