package ip4

import (
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出点分十进制格式。
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受 [ParseAddr] 的全部三种文法。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseAddr(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的点分十进制字符串。
// 地址字符串仅含 [0-9.] 字符，无需 JSON 转义，直接构造。
func (a Addr) MarshalJSON() ([]byte, error) {
	s := a.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 接受 [ParseAddr] 的全部三种文法；null 保持原值不变。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	parsed, err := ParseAddr(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]，输出 "<base>/<bits>" 格式。
func (c Cidr) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (c *Cidr) UnmarshalText(text []byte) error {
	if c == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseCidr(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]，输出 "<start> - <end>" 格式。
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (r *Range) UnmarshalText(text []byte) error {
	if r == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
