package ip4

import "iter"

// Addrs 返回区间内全部地址的迭代器，从 start 到 end（含）升序。
//
// 大区间（如 0.0.0.0/0 的 2^32 个地址）完整迭代代价很高，
// 调用方应在循环内自行限制数量。
//
// 示例：
//
//	r := ip4.MustParseRange("10.0.0.1 - 10.0.0.5")
//	for addr := range r.Addrs() {
//	    fmt.Println(addr)
//	}
func (r Range) Addrs() iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		for cur := r.start; ; cur++ {
			if !yield(cur) {
				return
			}
			// 先比较再递增，end == 255.255.255.255 时避免回绕成死循环。
			if cur == r.end {
				return
			}
		}
	}
}
