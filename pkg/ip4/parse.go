package ip4

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAddr 解析单个 IPv4 地址 token。
//
// 按固定顺序尝试三种文法，接受第一个完整匹配 token 的文法：
//
//  1. 点分十进制："192.168.2.4"（四段，每段 0-255，无前导零）
//  2. 十进制整数："3232236036"（纯数字，值 ≤ 2^32-1）
//  3. 十六进制整数："0xc0a80204"、"0XC0A80204" 或无前缀的 "a141e28"
//
// 输入会自动去除首尾空白。
//
// 平局裁决：纯数字 token（如 "12345"）同时是合法十进制与十六进制时
// 按十进制处理；只有带 0x/0X 前缀或含 a-f 字母的 token 才按十六进制处理。
// 十进制数值溢出 uint32 的 token 会继续尝试十六进制文法，两者都失败
// 才返回 [ErrInvalidAddress]。
func ParseAddr(s string) (Addr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidAddress)
	}

	// 文法 1: 点分十进制。含 '.' 的 token 不可能匹配其余两种文法，
	// 解析失败时直接报错，不再回退。
	if strings.IndexByte(s, '.') >= 0 {
		return parseQuad(s)
	}

	// 文法 2: 十进制整数
	if a, ok := parseDecimal(s); ok {
		return a, nil
	}

	// 文法 3: 十六进制整数（可带 0x/0X 前缀）
	if a, ok := parseHex(s); ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrInvalidAddress, s)
}

// MustParseAddr 类似 [ParseAddr]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParseAddr(s string) Addr {
	addr, err := ParseAddr(s)
	if err != nil {
		panic(fmt.Sprintf("ip4.MustParseAddr(%q): %v", s, err))
	}
	return addr
}

// parseQuad 解析点分十进制格式（a.b.c.d）。
func parseQuad(s string) (Addr, error) {
	var b [4]byte
	rest := s
	for i := range 4 {
		part := rest
		if i < 3 {
			dot := strings.IndexByte(rest, '.')
			if dot < 0 {
				return 0, fmt.Errorf("%w: expected 4 octets: %s", ErrInvalidAddress, s)
			}
			part, rest = rest[:dot], rest[dot+1:]
		} else if strings.IndexByte(rest, '.') >= 0 {
			return 0, fmt.Errorf("%w: too many octets: %s", ErrInvalidAddress, s)
		}
		v, ok := parseOctet(part)
		if !ok {
			return 0, fmt.Errorf("%w: invalid octet %q", ErrInvalidAddress, part)
		}
		b[i] = v
	}
	return AddrFrom4(b), nil
}

// parseOctet 解析单个十进制八位段（0-255）。
// 拒绝空段、前导零、非数字字符和超出 255 的值。
func parseOctet(s string) (byte, bool) {
	if len(s) == 0 || len(s) > 3 {
		return 0, false
	}
	// 规范形式无前导零（"01" 无效，"0" 有效），
	// 保证 ParseAddr/String 的往返一致性。
	if len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if n > 255 {
		return 0, false
	}
	return byte(n), true
}

// parseDecimal 解析十进制整数格式。
// 不匹配（含非数字字符）或数值溢出 uint32 时返回 false，
// 由调用方回退到十六进制文法。
func parseDecimal(s string) (Addr, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return Addr(v), true
}

// parseHex 解析十六进制整数格式，0x/0X 前缀可选。
func parseHex(s string) (Addr, bool) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "0X"); ok {
		s = rest
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return Addr(v), true
}
