package config

// 布局配置常量
// 本文件定义了卡片列表各个场景使用的几何参数
// 这些数值为经验调校的视觉常量，修改会直接改变滚动和堆叠的观感

const (
	// CardProportion 卡片宽高比（宽 / 高）
	CardProportion = 1.57

	// CardContentScale 卡片内容占卡片宽度的比例，剩余部分作为内边距
	CardContentScale = 0.95

	// MaxVisibleStackCards 堆叠场景中同时实例化的卡片数量上限
	// 更深处的卡片被完全遮挡，无需创建视图
	MaxVisibleStackCards = 10

	// GridColumns 网格场景的列数
	GridColumns = 2

	// GridScrollDivisor 网格场景的滚动粒度
	// 原始滚动偏移每 4 个单位对应 1 个内部偏移单位
	GridScrollDivisor = 4
)

// 堆叠压缩（distortion）函数参数
//
// 对深度 x > 0：distortion(x) = 2 / (1 + StackDistortionBase^(StackDistortionExponent*x)) - 1
// 对深度 x <= 0：线性透传，并除以 StackLinearDivisor
const (
	// StackDistortionBase 指数底数
	StackDistortionBase = 0.6

	// StackDistortionExponent 指数系数
	StackDistortionExponent = 1.1

	// StackLinearDivisor x <= 0 时线性段的除数
	StackLinearDivisor = 1.02

	// StackDistortionDomain 深度被缩放到的定义域上界
	// 对应 MaxVisibleStackCards 张卡片的总高度
	StackDistortionDomain = 21.0

	// StackSettleLookahead 列表末尾的卡片数量阈值
	// 距离末尾不足该数量时，卡片不会被压到其自然停靠位置之下
	StackSettleLookahead = 3
)

// 弹簧动画默认参数（与宿主视图系统的 MEDIUM 刚度、LOW_BOUNCY 阻尼一致）
const (
	// SpringStiffnessMedium 中等刚度
	SpringStiffnessMedium = 1500.0

	// SpringDampingLowBouncy 低回弹阻尼比
	SpringDampingLowBouncy = 0.75

	// DefaultAnimationFPS 动画时钟频率，与 ebiten 默认 TPS 一致
	DefaultAnimationFPS = 60
)
