package ip4

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Netip 返回地址的 [netip.Addr] 表示（纯 IPv4）。
func (a Addr) Netip() netip.Addr {
	return netip.AddrFrom4(a.Octets())
}

// AddrFromNetip 从 [netip.Addr] 创建地址。
// 接受纯 IPv4 与 IPv4-mapped IPv6（自动 Unmap）；
// 其他地址返回 (0, false)。
func AddrFromNetip(addr netip.Addr) (Addr, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	return AddrFrom4(addr.Unmap().As4()), true
}

// Prefix 返回子网的 [netip.Prefix] 表示。
func (c Cidr) Prefix() netip.Prefix {
	return netip.PrefixFrom(c.base.Netip(), int(c.bits))
}

// CidrFromPrefix 从 [netip.Prefix] 创建子网。
// 非 IPv4 前缀或无效前缀返回 [ErrInvalidCidr]。
// 非对齐的前缀地址会被掩码为规范形式。
func CidrFromPrefix(p netip.Prefix) (Cidr, error) {
	if !p.IsValid() {
		return Cidr{}, fmt.Errorf("%w: invalid prefix", ErrInvalidCidr)
	}
	base, ok := AddrFromNetip(p.Addr())
	if !ok {
		return Cidr{}, fmt.Errorf("%w: not an IPv4 prefix: %s", ErrInvalidCidr, p)
	}
	return CidrFrom(base, uint8(p.Bits()))
}

// IPRange 返回区间的 [netipx.IPRange] 表示。
func (r Range) IPRange() netipx.IPRange {
	return netipx.IPRangeFrom(r.start.Netip(), r.end.Netip())
}

// RangeFromIPRange 从 [netipx.IPRange] 创建区间。
// 无效或非 IPv4 的范围返回 [ErrInvalidRange]。
func RangeFromIPRange(r netipx.IPRange) (Range, error) {
	if !r.IsValid() {
		return Range{}, fmt.Errorf("%w: invalid IPRange", ErrInvalidRange)
	}
	start, ok1 := AddrFromNetip(r.From())
	end, ok2 := AddrFromNetip(r.To())
	if !ok1 || !ok2 {
		return Range{}, fmt.Errorf("%w: not an IPv4 range: %s", ErrInvalidRange, r)
	}
	return RangeFrom(start, end)
}

// IPSet 将区间集合构建为 [*netipx.IPSet]，
// 用于与既有 netipx 代码协作及 O(log n) 的包含查询。
// 重叠与相邻区间由 IPSetBuilder 自动合并。
func IPSet(ranges []Range) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, r := range ranges {
		b.AddRange(r.IPRange())
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}
