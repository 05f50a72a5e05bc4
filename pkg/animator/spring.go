package animator

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/decker502/cardstack/pkg/config"
)

const (
	// valueThresholdMultiplier 位移阈值 = 最小可见变化 * 0.75
	valueThresholdMultiplier = 0.75
	// velocityThresholdMultiplier 速度阈值 = 位移阈值 * 1000/16
	velocityThresholdMultiplier = 1000.0 / 16.0
)

// NewSpring 根据配置创建弹簧
// 单位质量下角频率 = sqrt(刚度)
func NewSpring(cfg config.SpringConfig) harmonica.Spring {
	fps := cfg.FPS
	if fps <= 0 {
		fps = config.DefaultAnimationFPS
	}
	return harmonica.NewSpring(harmonica.FPS(fps), math.Sqrt(cfg.Stiffness), cfg.DampingRatio)
}

// propertySpring 驱动单个属性的弹簧动画
type propertySpring struct {
	property Property
	spring   harmonica.Spring

	value    float64
	velocity float64
	target   float64

	valueThreshold    float64
	velocityThreshold float64
}

func newPropertySpring(property Property, spring harmonica.Spring, start, target float64) *propertySpring {
	threshold := property.minimumVisibleChange() * valueThresholdMultiplier
	return &propertySpring{
		property:          property,
		spring:            spring,
		value:             start,
		target:            target,
		valueThreshold:    threshold,
		velocityThreshold: threshold * velocityThresholdMultiplier,
	}
}

// step 前进一帧，返回是否已经静止
// 静止时数值被对齐到目标值
func (s *propertySpring) step() bool {
	s.value, s.velocity = s.spring.Update(s.value, s.velocity, s.target)
	if math.Abs(s.value-s.target) < s.valueThreshold && math.Abs(s.velocity) < s.velocityThreshold {
		s.skipToEnd()
		return true
	}
	return false
}

// skipToEnd 立即到达目标值
func (s *propertySpring) skipToEnd() {
	s.value = s.target
	s.velocity = 0
}
