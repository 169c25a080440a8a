package ip4

import "math/bits"

// Addr 表示一个 IPv4 地址：32 位无符号整数，网络字节序。
//
// Addr 是不可变值类型：
//   - 可直接比较（==、<）和用作 map key
//   - 并发安全，无需加锁
//   - 0 即 0.0.0.0，是合法地址；Addr 没有"无效"状态
//
// 使用 [ParseAddr] 或 [MustParseAddr] 从文本创建：
//
//	addr, err := ip4.ParseAddr("192.168.2.4")
//	addr := ip4.MustParseAddr("0xc0a80204")
type Addr uint32

// MaxAddr 是最大的 IPv4 地址 255.255.255.255。
const MaxAddr Addr = 0xffffffff

// AddrFrom4 从 4 字节数组创建地址（b[0] 为最高位字节）。
func AddrFrom4(b [4]byte) Addr {
	return Addr(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// Octets 返回地址的 4 个字节（网络字节序，[0] 为最高位字节）。
func (a Addr) Octets() [4]byte {
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

// ReverseBytes 返回字节序反转后的地址：byte0↔byte3、byte1↔byte2。
// 这是纯粹的位置换，不是对地址语义的运算。
// 满足对合性：a.ReverseBytes().ReverseBytes() == a。
func (a Addr) ReverseBytes() Addr {
	return Addr(bits.ReverseBytes32(uint32(a)))
}

// Compare 按无符号整数顺序比较两个地址。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Next 返回下一个地址（当前地址 +1）。
// 如果 a 是 255.255.255.255，返回 [ErrOverflow]。
func (a Addr) Next() (Addr, error) {
	if a == MaxAddr {
		return 0, ErrOverflow
	}
	return a + 1, nil
}

// Prev 返回前一个地址（当前地址 -1）。
// 如果 a 是 0.0.0.0，返回 [ErrUnderflow]。
func (a Addr) Prev() (Addr, error) {
	if a == 0 {
		return 0, ErrUnderflow
	}
	return a - 1, nil
}
