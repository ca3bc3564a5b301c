// Package config は config.toml によるアプリケーション設定を提供します。
// 設定ファイルは実行ファイルと同じディレクトリに置きます。
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig アプリケーション設定
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Analysis AnalysisConfig `toml:"analysis"`
}

// ServerConfig サーバ設定
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// AnalysisConfig 分析パラメータ
type AnalysisConfig struct {
	BulkThreshold int `toml:"bulk_threshold"` // 大口発注基準（同日・同教材の冊数、1〜50）
	UnitPrice     int `toml:"unit_price"`     // 売上増見込の単価（円/冊）
}

// 大口発注基準の定義域
const (
	MinBulkThreshold = 1
	MaxBulkThreshold = 50
)

// DefaultConfig 既定設定
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20372,
			DevMode: false,
		},
		Analysis: AnalysisConfig{
			BulkThreshold: 5,
			UnitPrice:     1500,
		},
	}
}

// ValidBulkThreshold 大口発注基準が定義域内かどうか
func ValidBulkThreshold(v int) bool {
	return v >= MinBulkThreshold && v <= MaxBulkThreshold
}

// GetExeDir 実行ファイルのあるディレクトリ
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func configPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfig config.toml から設定を読み込む
// ファイルがなければ既定設定。環境変数 KYOZAI_PORT / KYOZAI_BULK_THRESHOLD
// が設定されていれば上書きする
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)
	return config, nil
}

func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("KYOZAI_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("KYOZAI_BULK_THRESHOLD"); v != "" {
		if threshold, err := strconv.Atoi(v); err == nil && ValidBulkThreshold(threshold) {
			config.Analysis.BulkThreshold = threshold
		}
	}
}

// SaveConfig 設定を config.toml に保存する
func SaveConfig(config *AppConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
