// Package ip4 提供 IPv4 地址、子网与区间的纯值计算工具库。
//
// ip4 以 uint32 为底层表示（网络字节序），提供三种文本表示之间的互转
// （点分十进制、十六进制整数、十进制整数）、子网与区间互转、
// 区间到 CIDR 块的精确分解，以及区间集合的合并。
//
// # 核心功能
//
//   - addr.go: 地址值类型 [Addr] 及字节序反转、前驱/后继运算
//   - parse.go: [ParseAddr] 按文法顺序解析三种文本表示
//   - format.go: [Format] 输出风格及 [Addr.FormatString]
//   - cidr.go: 子网值类型 [Cidr]，始终以规范（掩码后）形式存储
//   - range.go: 闭区间值类型 [Range] 及最小覆盖子网计算
//   - decompose.go: [Range.Cidrs] 贪心分解为最少数量的不相交 CIDR 块
//   - merge.go: [MergeRanges] 合并重叠与相邻区间
//   - convert.go: 与 [net/netip] / [go4.org/netipx] 的互转
//   - encoding.go / wire.go: JSON/文本序列化
//
// # 快速示例
//
// 地址解析与格式转换：
//
//	addr, _ := ip4.ParseAddr("192.168.2.4")
//	fmt.Println(addr.Hex())      // 0xc0a80204
//	fmt.Println(addr.Decimal())  // 3232236036
//
// 子网与区间互转：
//
//	c, _ := ip4.ParseCidr("192.168.1.0/24")
//	fmt.Println(c.Range())       // 192.168.1.0 - 192.168.1.255
//
//	r, _ := ip4.ParseRange("192.168.1.1 - 192.168.1.127")
//	fmt.Println(r.EnclosingCidr())  // 192.168.1.0/25
//
// 区间分解与合并：
//
//	r, _ := ip4.ParseRange("192.168.1.1 - 192.168.1.127")
//	for _, c := range r.Cidrs() {
//	    fmt.Println(c)  // 192.168.1.1/32, 192.168.1.2/31, ...
//	}
//
//	merged := ip4.MergeRanges(ranges)  // 已排序、不相交、互不相邻
//
// # 解析文法
//
// [ParseAddr] 按固定顺序尝试三种文法，接受第一个完整匹配者：
//
//  1. 点分十进制："192.168.2.4"（四段，每段 0-255，无前导零）
//  2. 十进制整数："3232236036"（纯数字，≤ 2^32-1）
//  3. 十六进制整数："0xc0a80204" 或无前缀的 "a141e28"
//
// 纯数字 token 同时是合法十进制与十六进制时按十进制处理；
// 带 0x/0X 前缀的 token 只按十六进制处理。十进制解析溢出 uint32 时
// 回退尝试十六进制文法。
//
// # 设计决策
//
//   - 所有类型均为不可变值类型：可直接比较（==）、可作 map key、
//     并发安全，无需加锁。构造后不可变，无共享可变状态。
//   - 所有运算均为有界的 32 位整数算术（分解循环至多 32 步），
//     无递归、无 I/O、无阻塞点。
//   - [Cidr] 构造时静默掩码为规范形式（"192.168.1.1/24" → "192.168.1.0/24"），
//     与 netip.Prefix.Masked 的语义一致。
//   - 与 [go4.org/netipx] 互转而非依赖其实现核心算法：
//     核心算法在 uint32 上实现，netipx 用于与既有 IPSet/IPRange
//     代码协作以及测试中的交叉验证。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := ip4.ParseAddr("300.1.1.1")
//	if errors.Is(err, ip4.ErrInvalidAddress) {
//	    // 处理无效地址
//	}
//
// 解析失败均为局部、可恢复错误；批量输入中单个坏 token 不影响
// 其余 token 的处理。Must* 构造函数仅在违反程序契约时 panic。
package ip4
