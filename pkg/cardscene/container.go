package cardscene

import "github.com/decker502/cardstack/pkg/types"

// StaticContainer 固定几何信息的容器
// 用于诊断工具和测试，真实宿主应实现 Container 并返回实时值
type StaticContainer struct {
	W, H   int
	Insets types.Insets
	Items  int
}

// Width 容器宽度
func (c *StaticContainer) Width() int { return c.W }

// Height 容器高度
func (c *StaticContainer) Height() int { return c.H }

// Padding 容器内边距
func (c *StaticContainer) Padding() types.Insets { return c.Insets }

// ItemCount 条目数量
func (c *StaticContainer) ItemCount() int { return c.Items }
