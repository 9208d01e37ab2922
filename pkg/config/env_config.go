package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig 环境变量覆盖项
//
// 命令行参数优先于环境变量。
type EnvConfig struct {
	// ConfigPath 外部旅程配置路径，为空时使用内嵌的 data/journey.yaml
	ConfigPath string `env:"SCROLLPATH_CONFIG"`

	// ContentPath 外部内容配置路径，为空时使用内嵌的 data/content.yaml
	ContentPath string `env:"SCROLLPATH_CONTENT"`

	// Verbose 启用详细日志
	Verbose bool `env:"SCROLLPATH_VERBOSE" envDefault:"false"`

	// AppName gdata 存档目录名
	AppName string `env:"SCROLLPATH_APP_NAME" envDefault:"scrollpath"`
}

// ParseEnv 从环境变量加载配置
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnvConfig 读取 EnvConfig
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := ParseEnv(&cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}
