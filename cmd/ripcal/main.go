// ripcal 是 IPv4 地址/区间/子网换算命令行工具。
//
// 用法:
//
//	ripcal [-i | -x | -q] [-r] [<ip-address>...]
//	        把每个 <ip-address> 换算为其他文本表示。
//	        点分十进制输入默认输出十六进制，其余输入默认输出点分十进制。
//
//	选项:
//	        --integer / -i        输出十进制整数
//	        --hex / -x            输出十六进制整数
//	        --ipv4 / -q           输出点分十进制
//	        --reverse-bytes / -r  反转字节序
//	        --verbose             输出调试日志（stderr）
//
//	        不带地址参数时进入过滤模式：逐行读取 stdin，
//	        换算后写到 stdout。
//
//	ripcal <ip-addr/subnet> | "<ip-start - ip-end>"
//	        子网换算为对应的地址区间（"start - end"）；
//	        区间换算为覆盖它的最小子网。
//
//	ripcal -m (<ip-addr/subnet> | <ip-range>)...
//	        合并所有区间/子网，输出恰好覆盖它们的最小区间集合
//	        及其 CIDR 分解。--json / -j 以 JSON 输出合并结果。
//
//	ripcal --version
//	        输出版本信息
//
// 可选配置文件 $XDG_CONFIG_HOME/ripcal/config.yaml 提供默认值
// （output: quad|hex|integer、reverse、json），命令行标志优先。
//
// 退出码:
//
//	0: 全部 token 换算成功
//	1: 存在换算失败的 token
//	2: 参数错误
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:      "ripcal",
		Usage:     "IPv4 地址/区间/子网换算工具",
		ArgsUsage: "[<ip-address> | <ip-addr/subnet> | \"<ip-start - ip-end>\"]...",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "integer",
				Aliases: []string{"i"},
				Usage:   "输出十进制整数",
			},
			&cli.BoolFlag{
				Name:    "hex",
				Aliases: []string{"x"},
				Usage:   "输出十六进制整数",
			},
			&cli.BoolFlag{
				Name:    "ipv4",
				Aliases: []string{"q"},
				Usage:   "输出点分十进制",
			},
			&cli.BoolFlag{
				Name:    "reverse-bytes",
				Aliases: []string{"r"},
				Usage:   "反转字节序",
			},
			&cli.BoolFlag{
				Name:    "merge-ranges",
				Aliases: []string{"m"},
				Usage:   "合并区间/子网",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "合并结果以 JSON 输出",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "输出调试日志到 stderr",
			},
		},
		Action: rootAction,
	}
}

func rootAction(ctx context.Context, cmd *cli.Command) error {
	logger := setupLogging(cmd.Bool("verbose"))

	cfg, err := loadConfig(configPath())
	if err != nil {
		// 配置文件损坏不阻断换算，降级为默认值并告警
		logger.Warn("加载配置失败", slog.String("error", err.Error()))
		cfg = fileConfig{}
	}
	opts := resolveOptions(cmd, cfg, logger)

	args := cmd.Args().Slice()
	if cmd.Bool("merge-ranges") {
		return runMerge(os.Stdout, args, opts)
	}
	if len(args) == 0 {
		return runFilter(os.Stdin, os.Stdout, opts)
	}
	return runConvert(os.Stdout, args, opts)
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 2
	}
	return 0
}

// setupLogging 配置全局 slog：默认 Warn，--verbose 时 Debug，输出到 stderr。
func setupLogging(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
