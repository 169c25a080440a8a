package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/omeyang/ripcal/pkg/ip4"
	"github.com/urfave/cli/v3"
)

// invalidAddressFmt 是解析失败时的用户可见错误文本。
// 拼写错误（Invaid）是对外承诺的输出格式，下游脚本按字面匹配，
// 必须按字节保留，不得更正。
const invalidAddressFmt = "Invaid IP address: %s\n"

// options 是一次调用生效的换算选项，由配置文件与命令行标志合成。
type options struct {
	output    ip4.Format
	hasOutput bool // 显式指定了输出格式（标志或配置）
	reverse   bool
	jsonOut   bool
}

// resolveOptions 合成换算选项：配置文件提供默认值，命令行标志覆盖。
func resolveOptions(cmd *cli.Command, cfg fileConfig, logger *slog.Logger) options {
	var opts options
	if cfg.Output != "" {
		f, err := ip4.ParseFormat(cfg.Output)
		if err != nil {
			logger.Warn("配置中的输出格式无效，忽略", slog.String("output", cfg.Output))
		} else {
			opts.output, opts.hasOutput = f, true
		}
	}
	opts.reverse = cfg.Reverse
	opts.jsonOut = cfg.JSON

	if cmd.Bool("integer") {
		opts.output, opts.hasOutput = ip4.FormatDecimal, true
	}
	if cmd.Bool("hex") {
		opts.output, opts.hasOutput = ip4.FormatHex, true
	}
	if cmd.Bool("ipv4") {
		opts.output, opts.hasOutput = ip4.FormatQuad, true
	}
	if cmd.Bool("reverse-bytes") {
		opts.reverse = true
	}
	if cmd.Bool("json") {
		opts.jsonOut = true
	}
	return opts
}

// runConvert 依次换算每个参数 token。
// 单个坏 token 不中断其余 token 的处理；存在失败时退出码为 1。
func runConvert(w io.Writer, args []string, opts options) error {
	failed := false
	for _, token := range args {
		if !processToken(w, token, opts, false) {
			failed = true
		}
	}
	if failed {
		return &exitError{code: 1}
	}
	return nil
}

// processToken 换算单个 token 并写出结果，返回是否成功。
// filter 为 true 时输出裸结果，否则输出 "<input> = <output>" 行。
func processToken(w io.Writer, token string, opts options, filter bool) bool {
	if sub, rng, ok := convertRangeToken(token); ok {
		if filter {
			fmt.Fprintf(w, "%s\n%s = %s\n", sub, sub, rng)
		} else {
			fmt.Fprintf(w, "%s = %s\n%s = %s\n", token, sub, sub, rng)
		}
		return true
	}
	if out, ok := convertAddrToken(token, opts); ok {
		if filter {
			fmt.Fprintln(w, out)
		} else {
			prefix := ""
			if opts.reverse {
				prefix = "Reverse "
			}
			fmt.Fprintf(w, "%s%s = %s\n", prefix, token, out)
		}
		return true
	}
	fmt.Fprintf(w, invalidAddressFmt, token)
	return false
}

// convertRangeToken 处理子网/区间 token。
//
// 子网换算为其主机区间；区间换算为最小包围子网。
// 返回 (最小包围子网, 该子网的主机区间, ok)：第二个返回值同时
// 充当非精确换算的提示——当它与输入区间不同，说明区间无法精确
// 表示为单个子网，展示子网实际覆盖的区间。
func convertRangeToken(token string) (ip4.Cidr, ip4.Range, bool) {
	var r ip4.Range
	switch {
	case strings.Contains(token, "/"):
		c, err := ip4.ParseCidr(token)
		if err != nil {
			return ip4.Cidr{}, ip4.Range{}, false
		}
		r = c.Range()
	case strings.Contains(token, "-"):
		var err error
		r, err = ip4.ParseRange(token)
		if err != nil {
			return ip4.Cidr{}, ip4.Range{}, false
		}
	default:
		return ip4.Cidr{}, ip4.Range{}, false
	}
	c := r.EnclosingCidr()
	slog.Debug("区间换算",
		slog.String("token", token),
		slog.String("subnet", c.String()),
		slog.Bool("exact", r.IsExactCidr()))
	return c, c.Range(), true
}

// convertAddrToken 处理单地址 token，返回换算结果字符串。
func convertAddrToken(token string, opts options) (string, bool) {
	addr, err := ip4.ParseAddr(token)
	if err != nil {
		return "", false
	}
	out := outputFormat(inputFormat(token), opts)
	if opts.reverse {
		addr = addr.ReverseBytes()
	}
	slog.Debug("地址换算",
		slog.String("token", token),
		slog.String("output", out.String()))
	return addr.FormatString(out), true
}

// inputFormat 判断已成功解析的 token 属于哪种输入文法。
// 与 ParseAddr 的尝试顺序一致：含 '.' 为点分十进制，
// 纯数字为十进制，其余为十六进制。
func inputFormat(token string) ip4.Format {
	token = strings.TrimSpace(token)
	if strings.Contains(token, ".") {
		return ip4.FormatQuad
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return ip4.FormatHex
		}
	}
	return ip4.FormatDecimal
}

// outputFormat 返回生效的输出格式。
// 未显式指定时按输入类型取默认值：点分十进制输入输出十六进制，
// 其余输入输出点分十进制。
func outputFormat(in ip4.Format, opts options) ip4.Format {
	if opts.hasOutput {
		return opts.output
	}
	if in == ip4.FormatQuad {
		return ip4.FormatHex
	}
	return ip4.FormatQuad
}

// mergeResult 是 --json 模式下合并结果的输出结构。
type mergeResult struct {
	Ranges  []ip4.WireRange `json:"ranges"`
	Subnets []ip4.Cidr      `json:"subnets"`
}

// runMerge 实现 -m 合并模式。
//
// 连续的区间/子网 token 累积为一组；遇到非区间 token 时先输出
// 当前组的合并结果，再把该 token 按单地址换算。
func runMerge(w io.Writer, args []string, opts options) error {
	var ranges []ip4.Range
	failed := false

	flush := func() {
		if len(ranges) == 0 {
			return
		}
		printMerged(w, ranges, opts)
		ranges = ranges[:0]
	}

	for _, token := range args {
		if r, ok := parseRangeOrCidr(token); ok {
			ranges = append(ranges, r)
			continue
		}
		flush()
		if !processToken(w, token, opts, false) {
			failed = true
		}
	}
	flush()

	if failed {
		return &exitError{code: 1}
	}
	return nil
}

// parseRangeOrCidr 把 token 解析为区间（子网先转主机区间）。
func parseRangeOrCidr(token string) (ip4.Range, bool) {
	if strings.Contains(token, "/") {
		c, err := ip4.ParseCidr(token)
		if err != nil {
			return ip4.Range{}, false
		}
		return c.Range(), true
	}
	r, err := ip4.ParseRange(token)
	if err != nil {
		return ip4.Range{}, false
	}
	return r, true
}

// printMerged 输出一组区间的合并结果：合并后的区间列表及其 CIDR 分解。
func printMerged(w io.Writer, ranges []ip4.Range, opts options) {
	merged := ip4.MergeRanges(ranges)
	var cidrs []ip4.Cidr
	for _, r := range merged {
		cidrs = append(cidrs, r.Cidrs()...)
	}

	if opts.jsonOut {
		enc := json.NewEncoder(w)
		// Cidr 实现 TextMarshaler，JSON 中呈现为 "base/bits" 字符串
		_ = enc.Encode(mergeResult{
			Ranges:  ip4.WireRangesFrom(merged),
			Subnets: cidrs,
		})
		return
	}

	fmt.Fprintln(w, formatRangeList(merged))
	fmt.Fprintln(w, formatCidrList(cidrs))
}

func formatRangeList(ranges []ip4.Range) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatCidrList(cidrs []ip4.Cidr) string {
	parts := make([]string, len(cidrs))
	for i, c := range cidrs {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
