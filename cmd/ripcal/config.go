package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// fileConfig 是配置文件提供的默认换算选项。
//
//	output: quad | ipv4 | hex | integer | decimal
//	reverse: true 时默认反转字节序
//	json: true 时合并结果默认以 JSON 输出
type fileConfig struct {
	Output  string `koanf:"output"`
	Reverse bool   `koanf:"reverse"`
	JSON    bool   `koanf:"json"`
}

// configPath 返回配置文件路径：<用户配置目录>/ripcal/config.yaml。
// 用户配置目录不可用时返回空串（视为无配置）。
func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ripcal", "config.yaml")
}

// loadConfig 读取并解析配置文件。
// 文件不存在或路径为空不是错误，返回零值配置；
// 读取或解析失败返回错误，由调用方决定降级策略。
func loadConfig(path string) (fileConfig, error) {
	if path == "" {
		return fileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("读取配置文件: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return fileConfig{}, fmt.Errorf("解析配置文件: %w", err)
	}
	var cfg fileConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("映射配置字段: %w", err)
	}
	return cfg, nil
}
