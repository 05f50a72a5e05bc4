package cardscene

// Range 降序的可见条目区间 [Start, End]，Start >= End
// Start < End 表示空区间
type Range struct {
	Start int
	End   int
}

// EmptyRange 空区间
var EmptyRange = Range{Start: -1, End: 0}

// Empty 区间内没有任何条目
func (r Range) Empty() bool {
	return r.Start < r.End
}

// Len 区间内的条目数量
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Start - r.End + 1
}

// Contains 判断 position 是否在区间内
func (r Range) Contains(position int) bool {
	return position <= r.Start && position >= r.End
}

// Positions 按降序列出区间内的全部位置
func (r Range) Positions() []int {
	if r.Empty() {
		return nil
	}
	positions := make([]int, 0, r.Len())
	for p := r.Start; p >= r.End; p-- {
		positions = append(positions, p)
	}
	return positions
}
