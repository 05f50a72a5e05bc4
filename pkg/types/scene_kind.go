// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// SceneKind 定义卡片列表的布局场景类型
type SceneKind int

const (
	// SceneLinear 单列线性列表
	SceneLinear SceneKind = iota
	// SceneStack 单列堆叠（卡片互相覆盖并向顶部压缩）
	SceneStack
	// SceneGrid 两列网格
	SceneGrid
)

// String 返回场景类型的字符串表示
func (k SceneKind) String() string {
	switch k {
	case SceneLinear:
		return "linear"
	case SceneStack:
		return "stack"
	case SceneGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// ParseSceneKind 从字符串解析场景类型（不区分大小写）
func ParseSceneKind(s string) (SceneKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return SceneLinear, nil
	case "stack":
		return SceneStack, nil
	case "grid":
		return SceneGrid, nil
	default:
		return SceneLinear, fmt.Errorf("unknown scene kind: %q", s)
	}
}

// MarshalYAML 以字符串形式序列化场景类型
func (k SceneKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML 从字符串反序列化场景类型
func (k *SceneKind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseSceneKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ItemKey 是宿主适配器提供的稳定条目标识
// 与视图对象无关，视图回收复用后依然指向同一个数据条目
type ItemKey int64

// NoItemKey 表示无效的条目标识
const NoItemKey ItemKey = -1
