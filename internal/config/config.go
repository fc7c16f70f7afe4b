package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	fileName  = "hammerforce"
	envPrefix = "HAMMERFORCE"
)

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	TLSCert         string        `mapstructure:"tlsCert"`
	TLSKey          string        `mapstructure:"tlsKey"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type CalcConfig struct {
	ClampConeTip               bool    `mapstructure:"clampConeTip"`
	DefaultFrictionCoefficient float64 `mapstructure:"defaultFrictionCoefficient"`
}

type BatchConfig struct {
	MaxItems int `mapstructure:"maxItems"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
	LogLevel  string          `mapstructure:"logLevel"`
	LogFile   string          `mapstructure:"logFile"`
	Calc      CalcConfig      `mapstructure:"calc"`
	Batch     BatchConfig     `mapstructure:"batch"`
}

// TLS reports whether both certificate and key are configured.
func (s ServerConfig) TLS() bool {
	return s.TLSCert != "" && s.TLSKey != ""
}

func setDefaults() {
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.tlsCert", "")
	viper.SetDefault("server.tlsKey", "")
	viper.SetDefault("server.shutdownTimeout", "5s")

	viper.SetDefault("rateLimit.rps", 5)
	viper.SetDefault("rateLimit.burst", 10)

	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")

	viper.SetDefault("calc.clampConeTip", false)
	viper.SetDefault("calc.defaultFrictionCoefficient", 0.4)

	viper.SetDefault("batch.maxItems", 1000)
}

// Load reads configDir/.env, then configDir/hammerforce.yaml, then HAMMERFORCE_* variables.
// Both files are optional.
func Load(configDir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(configDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error reading .env: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.Calc.DefaultFrictionCoefficient <= 0 {
		return Config{}, fmt.Errorf("calc.defaultFrictionCoefficient must be > 0, got %v", cfg.Calc.DefaultFrictionCoefficient)
	}
	return cfg, nil
}
