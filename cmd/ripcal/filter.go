package main

import (
	"bufio"
	"fmt"
	"io"
)

// runFilter 实现过滤模式：逐行读取输入，换算后写出裸结果。
//
// 空行原样透传；换算失败的行输出错误文本后继续处理后续行，
// 不影响退出码（流式处理语义）。
func runFilter(r io.Reader, w io.Writer, opts options) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		processToken(w, line, opts, true)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("读取输入失败: %w", err)
	}
	return nil
}
