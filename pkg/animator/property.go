package animator

// Property 可动画的视图属性
type Property int

const (
	// TranslationX 水平平移（像素）
	TranslationX Property = iota
	// TranslationY 垂直平移（像素）
	TranslationY
	// ScaleX 水平缩放
	ScaleX
	// ScaleY 垂直缩放
	ScaleY
	// Alpha 不透明度
	Alpha
)

// String 返回属性名称
func (p Property) String() string {
	switch p {
	case TranslationX:
		return "translationX"
	case TranslationY:
		return "translationY"
	case ScaleX:
		return "scaleX"
	case ScaleY:
		return "scaleY"
	case Alpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// minimumVisibleChange 属性值的最小可见变化量
// 平移以像素计，缩放和透明度以比例计
func (p Property) minimumVisibleChange() float64 {
	switch p {
	case ScaleX, ScaleY:
		return 1.0 / 500.0
	case Alpha:
		return 1.0 / 256.0
	default:
		return 1.0
	}
}

// Transform 条目视图的动画变换
type Transform struct {
	TranslationX float64
	TranslationY float64
	ScaleX       float64
	ScaleY       float64
	Alpha        float64
}

// IdentityTransform 静止状态的变换
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1, Alpha: 1}
}

// IsIdentity 是否为静止状态
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}

func (t *Transform) set(p Property, v float64) {
	switch p {
	case TranslationX:
		t.TranslationX = v
	case TranslationY:
		t.TranslationY = v
	case ScaleX:
		t.ScaleX = v
	case ScaleY:
		t.ScaleY = v
	case Alpha:
		t.Alpha = v
	}
}

// Get 读取属性值
func (t Transform) Get(p Property) float64 {
	switch p {
	case TranslationX:
		return t.TranslationX
	case TranslationY:
		return t.TranslationY
	case ScaleX:
		return t.ScaleX
	case ScaleY:
		return t.ScaleY
	case Alpha:
		return t.Alpha
	default:
		return 0
	}
}
