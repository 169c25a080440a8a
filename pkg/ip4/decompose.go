package ip4

import "math/bits"

// Cidrs 将区间精确分解为不相交的 CIDR 块，按基地址升序返回。
// 各块的并集恰好等于区间 [start, end]。
//
// 贪心算法：每步取以当前位置为基地址、对齐且不超出区间尾部的
// 最大 2^k 块。该选择产生基数最小的不相交 CIDR 划分。
// 循环至多 32 次迭代（每个前缀长度至多出现两次方向各一）。
//
// 区间恰好是单个子网时返回长度为 1 的切片；
// 全地址空间返回 [0.0.0.0/0]。
func (r Range) Cidrs() []Cidr {
	cidrs := make([]Cidr, 0, 1)

	// 用 uint64 游标规避 end == 255.255.255.255 时 cur+2^k 的回绕。
	cur := uint64(r.start)
	end := uint64(r.end)
	for cur <= end {
		// 对齐约束：块大小不得超过 cur 的最低置位（cur==0 时无约束）。
		k := uint(bits.TrailingZeros64(cur))
		if k > 32 {
			k = 32
		}
		// 覆盖约束：块尾 cur+2^k-1 不得越过 end。
		if rem := end - cur + 1; uint64(1)<<k > rem {
			k = uint(bits.Len64(rem)) - 1
		}
		cidrs = append(cidrs, Cidr{base: Addr(cur), bits: uint8(32 - k)})
		cur += uint64(1) << k
	}
	return cidrs
}
