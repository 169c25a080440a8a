package ip4

import "slices"

// MergeRanges 将区间集合合并为覆盖相同地址集的最少数量的
// 极大不相交区间。重叠与相邻（间隔恰为 1）的区间都会合并。
//
// 返回的切片按起始地址升序排列，任意两个相邻元素既不重叠也不相邻。
// 输入不会被修改；空输入或 nil 返回 nil。
//
// 合并满足幂等性：MergeRanges(MergeRanges(rs)) 与 MergeRanges(rs) 相等。
// 子网参与合并时先经 [Cidr.Range] 转为区间。
func MergeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	// 按 start 升序排序，start 相同按 end 升序。
	// 第二关键字与正确性无关，仅固定输出的确定性。
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		return a.end.Compare(b.end)
	})

	merged := make([]Range, 0, len(sorted))
	merged = append(merged, sorted[0])
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		// last.end == 255.255.255.255 时 last.end+1 会回绕到 0；
		// 此时任何 r.start 都不可能在尾部之后，直接并入。
		if last.end == MaxAddr || r.start <= last.end+1 {
			if r.end > last.end {
				last.end = r.end
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// MergedCidrs 合并区间集合后，将每个合并区间分解为 CIDR 块，
// 按顺序拼接返回。等价于对 [MergeRanges] 的每个结果调用 [Range.Cidrs]。
func MergedCidrs(ranges []Range) []Cidr {
	var cidrs []Cidr
	for _, r := range MergeRanges(ranges) {
		cidrs = append(cidrs, r.Cidrs()...)
	}
	return cidrs
}
