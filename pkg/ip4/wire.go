package ip4

import "fmt"

// WireRange 是区间的序列化格式，起止地址为点分十进制字符串。
// 用于 JSON/YAML 输出（如 CLI 的 --json 合并结果）。
type WireRange struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// WireRangeFrom 从 [Range] 创建 WireRange。
// Range 的构造已保证 start <= end，无需再校验。
func WireRangeFrom(r Range) WireRange {
	return WireRange{
		Start: r.start.String(),
		End:   r.end.String(),
	}
}

// WireRangesFrom 批量转换区间切片。nil 返回 nil。
func WireRangesFrom(ranges []Range) []WireRange {
	if ranges == nil {
		return nil
	}
	wrs := make([]WireRange, len(ranges))
	for i, r := range ranges {
		wrs[i] = WireRangeFrom(r)
	}
	return wrs
}

// ToRange 将 WireRange 还原为 [Range]。
// 端点接受 [ParseAddr] 的全部三种文法；
// 端点无效或 Start > End 返回 [ErrInvalidRange]。
func (w WireRange) ToRange() (Range, error) {
	start, err := ParseAddr(w.Start)
	if err != nil {
		return Range{}, fmt.Errorf("%w: invalid start address %q", ErrInvalidRange, w.Start)
	}
	end, err := ParseAddr(w.End)
	if err != nil {
		return Range{}, fmt.Errorf("%w: invalid end address %q", ErrInvalidRange, w.End)
	}
	return RangeFrom(start, end)
}

// String 返回 "start-end" 表示；起止相同只返回单个地址。
func (w WireRange) String() string {
	if w.Start == w.End {
		return w.Start
	}
	return w.Start + "-" + w.End
}
