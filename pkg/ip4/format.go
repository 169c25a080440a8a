package ip4

import (
	"fmt"
	"strconv"
	"strings"
)

// Format 定义 IPv4 地址的输出风格。
type Format uint8

const (
	// FormatQuad 点分十进制：192.168.2.4
	FormatQuad Format = iota
	// FormatHex 十六进制整数，0x 前缀，小写：0xc0a80204
	FormatHex
	// FormatDecimal 十进制整数：3232236036
	FormatDecimal
)

// String 返回格式名称（quad/hex/decimal）。
func (f Format) String() string {
	switch f {
	case FormatQuad:
		return "quad"
	case FormatHex:
		return "hex"
	case FormatDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// ParseFormat 解析格式名称。
// 接受 quad/ipv4、hex、decimal/integer（大小写不敏感）。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quad", "ipv4":
		return FormatQuad, nil
	case "hex":
		return FormatHex, nil
	case "decimal", "integer":
		return FormatDecimal, nil
	default:
		return FormatQuad, fmt.Errorf("ip4: unknown format %q", s)
	}
}

// String 返回点分十进制表示（无前导零）。
func (a Addr) String() string {
	// "xxx.xxx.xxx.xxx" 最长 15 字节，栈上缓冲避免中间分配。
	buf := make([]byte, 0, 15)
	b := a.Octets()
	for i := range 4 {
		if i > 0 {
			buf = append(buf, '.')
		}
		buf = strconv.AppendUint(buf, uint64(b[i]), 10)
	}
	return string(buf)
}

// Hex 返回十六进制整数表示："0x" + 小写十六进制，
// 除零值的单个 "0" 外无前导零（如 "0xc0a80204"、"0x0"）。
func (a Addr) Hex() string {
	return "0x" + strconv.FormatUint(uint64(a), 16)
}

// Decimal 返回十进制无符号整数表示（如 "3232236036"）。
func (a Addr) Decimal() string {
	return strconv.FormatUint(uint64(a), 10)
}

// FormatString 按指定格式返回地址字符串。
func (a Addr) FormatString(f Format) string {
	switch f {
	case FormatHex:
		return a.Hex()
	case FormatDecimal:
		return a.Decimal()
	default:
		return a.String()
	}
}
