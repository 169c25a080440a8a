package ip4

import (
	"fmt"
	"strconv"
	"strings"
)

// Cidr 表示一个 IPv4 子网：(基地址, 前缀长度) 对，
// 对应一个按 2 的幂对齐的连续地址块。
//
// Cidr 是不可变值类型，始终以规范形式存储：
// 基地址的低 (32-bits) 位为零。非对齐的基地址在构造时被静默掩码
// （"192.168.1.1/24" → "192.168.1.0/24"），与 netip.Prefix.Masked 语义一致。
//
// 零值为 0.0.0.0/0，即全部 IPv4 地址空间。
type Cidr struct {
	base Addr
	bits uint8
}

// CidrFrom 从基地址和前缀长度创建子网。
// base 会被掩码为规范形式。bits > 32 返回 [ErrInvalidCidr]。
func CidrFrom(base Addr, bits uint8) (Cidr, error) {
	if bits > 32 {
		return Cidr{}, fmt.Errorf("%w: prefix length %d out of range [0,32]", ErrInvalidCidr, bits)
	}
	return Cidr{base: base &^ hostMask(bits), bits: bits}, nil
}

// ParseCidr 解析 "<address>/<prefixLen>" 格式的子网 token。
// 地址部分接受 [ParseAddr] 的全部三种文法；前缀长度必须在 [0,32]。
// 基地址被静默掩码为规范形式，非对齐基地址不报错。
func ParseCidr(s string) (Cidr, error) {
	s = strings.TrimSpace(s)
	addrPart, bitsPart, found := strings.Cut(s, "/")
	if !found {
		return Cidr{}, fmt.Errorf("%w: missing '/': %s", ErrInvalidCidr, s)
	}
	base, err := ParseAddr(addrPart)
	if err != nil {
		return Cidr{}, fmt.Errorf("%w: %w", ErrInvalidCidr, err)
	}
	bits, err := strconv.ParseUint(strings.TrimSpace(bitsPart), 10, 8)
	if err != nil || bits > 32 {
		return Cidr{}, fmt.Errorf("%w: invalid prefix length %q", ErrInvalidCidr, bitsPart)
	}
	return Cidr{base: base &^ hostMask(uint8(bits)), bits: uint8(bits)}, nil
}

// MustParseCidr 类似 [ParseCidr]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParseCidr(s string) Cidr {
	c, err := ParseCidr(s)
	if err != nil {
		panic(fmt.Sprintf("ip4.MustParseCidr(%q): %v", s, err))
	}
	return c
}

// Base 返回子网的规范基地址（低位已清零）。
func (c Cidr) Base() Addr {
	return c.base
}

// Bits 返回前缀长度（0-32）。
func (c Cidr) Bits() uint8 {
	return c.bits
}

// HostMask 返回主机掩码：低 (32-bits) 位全 1，即 2^(32-bits) - 1。
func (c Cidr) HostMask() Addr {
	return hostMask(c.bits)
}

// Range 返回子网的主机区间 [base, base|hostMask]。
func (c Cidr) Range() Range {
	return Range{start: c.base, end: c.base | hostMask(c.bits)}
}

// Contains 报告地址 a 是否属于子网 c。
func (c Cidr) Contains(a Addr) bool {
	return a&^hostMask(c.bits) == c.base
}

// Size 返回子网包含的地址数量（2^(32-bits)）。
func (c Cidr) Size() uint64 {
	return uint64(hostMask(c.bits)) + 1
}

// String 返回 "<点分基地址>/<前缀长度>" 表示。
func (c Cidr) String() string {
	return c.base.String() + "/" + strconv.Itoa(int(c.bits))
}

// hostMask 返回前缀长度对应的主机掩码。
// bits == 0 时为全 1（1<<32 会溢出 uint32，需单独处理）。
func hostMask(bits uint8) Addr {
	if bits == 0 {
		return MaxAddr
	}
	return Addr(1)<<(32-bits) - 1
}
