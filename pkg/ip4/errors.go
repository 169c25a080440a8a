package ip4

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidAddress 表示 token 不匹配任何单地址文法，
	// 或数值超出 32 位无符号整数范围。
	ErrInvalidAddress = errors.New("ip4: invalid IP address")

	// ErrInvalidCidr 表示子网格式无效（地址部分解析失败或前缀长度不在 [0,32]）。
	ErrInvalidCidr = errors.New("ip4: invalid CIDR")

	// ErrInvalidRange 表示区间格式无效（端点解析失败或 start > end）。
	ErrInvalidRange = errors.New("ip4: invalid IP range")

	// ErrOverflow 表示地址运算上溢（超过 255.255.255.255）。
	ErrOverflow = errors.New("ip4: address overflow")

	// ErrUnderflow 表示地址运算下溢（低于 0.0.0.0）。
	ErrUnderflow = errors.New("ip4: address underflow")

	// ErrNilReceiver 表示对 nil 接收者调用了反序列化方法。
	ErrNilReceiver = errors.New("ip4: nil receiver")
)
