package ip4

import (
	"fmt"
	"math/bits"
	"strings"
)

// Range 表示一个任意的 IPv4 闭区间 [start, end]，
// 不要求对齐到任何子网边界。
//
// Range 是不可变值类型，构造时保证 start <= end（按无符号整数比较）。
// 零值为单地址区间 [0.0.0.0, 0.0.0.0]。
type Range struct {
	start, end Addr
}

// RangeFrom 从起止地址创建区间。
// start > end 返回 [ErrInvalidRange]。
func RangeFrom(start, end Addr) (Range, error) {
	if start > end {
		return Range{}, fmt.Errorf("%w: start %s > end %s", ErrInvalidRange, start, end)
	}
	return Range{start: start, end: end}, nil
}

// ParseRange 解析 "<address> - <address>" 格式的区间 token，
// '-' 两侧空白可选。端点接受 [ParseAddr] 的全部三种文法。
// 端点解析失败或 start > end 时返回 [ErrInvalidRange]。
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	startPart, endPart, found := strings.Cut(s, "-")
	if !found {
		return Range{}, fmt.Errorf("%w: missing '-': %s", ErrInvalidRange, s)
	}
	start, err := ParseAddr(startPart)
	if err != nil {
		return Range{}, fmt.Errorf("%w: invalid range start: %w", ErrInvalidRange, err)
	}
	end, err := ParseAddr(endPart)
	if err != nil {
		return Range{}, fmt.Errorf("%w: invalid range end: %w", ErrInvalidRange, err)
	}
	if start > end {
		return Range{}, fmt.Errorf("%w: start %s > end %s", ErrInvalidRange, start, end)
	}
	return Range{start: start, end: end}, nil
}

// MustParseRange 类似 [ParseRange]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParseRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(fmt.Sprintf("ip4.MustParseRange(%q): %v", s, err))
	}
	return r
}

// Start 返回区间起始地址。
func (r Range) Start() Addr {
	return r.start
}

// End 返回区间结束地址（含）。
func (r Range) End() Addr {
	return r.end
}

// Contains 报告地址 a 是否落在区间内。
func (r Range) Contains(a Addr) bool {
	return a >= r.start && a <= r.end
}

// Size 返回区间包含的地址数量（end - start + 1）。
// 全地址空间区间返回 2^32，因此结果为 uint64。
func (r Range) Size() uint64 {
	return uint64(r.end-r.start) + 1
}

// EnclosingCidr 返回覆盖整个区间的最小子网（最小包围子网）。
//
// 前缀长度为 start 与 end 的公共前缀位数：两者异或后剩余的
// 最高位差异决定了子网必须放宽到的宽度。结果可能严格大于原区间；
// 用 [Range.IsExactCidr] 判断区间是否恰好等于一个子网。
func (r Range) EnclosingCidr() Cidr {
	p := uint8(32 - bits.Len32(uint32(r.start^r.end)))
	return Cidr{base: r.start &^ hostMask(p), bits: p}
}

// IsExactCidr 报告区间是否恰好可表示为单个子网，
// 即最小包围子网的主机区间与 r 完全相等。
func (r Range) IsExactCidr() bool {
	return r.EnclosingCidr().Range() == r
}

// String 返回 "<start> - <end>" 表示（点分十进制）。
func (r Range) String() string {
	return r.start.String() + " - " + r.end.String()
}
