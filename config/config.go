package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Minio      MinioConfig      `yaml:"minio"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Stripe     StripeConfig     `yaml:"stripe"`
	Auth       AuthConfig       `yaml:"auth"`
	Generation GenerationConfig `yaml:"generation"`
	Log        LogConfig        `yaml:"log"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type MinioConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
	MaxSize    int64  `yaml:"max_size"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type StripeConfig struct {
	SecretKey    string `yaml:"secret_key"`
	MonthlyPrice int64  `yaml:"monthly_price"` // cents
	YearlyPrice  int64  `yaml:"yearly_price"`  // cents
	Currency     string `yaml:"currency"`
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type GenerationConfig struct {
	Denylist []string `yaml:"denylist"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var GlobalConfig *Config

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "contractgpt.db"
	}
	if cfg.Minio.ExpireDays == 0 {
		cfg.Minio.ExpireDays = 7
	}
	if cfg.Minio.MaxSize == 0 {
		cfg.Minio.MaxSize = 5 * 1024 * 1024 // 5 MiB
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-3.5-turbo"
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 24
	}
	if len(cfg.Generation.Denylist) == 0 {
		cfg.Generation.Denylist = []string{"recipe", "ingredients"}
	}
	if cfg.Stripe.MonthlyPrice == 0 {
		cfg.Stripe.MonthlyPrice = 999 // $9.99
	}
	if cfg.Stripe.YearlyPrice == 0 {
		cfg.Stripe.YearlyPrice = 9999 // $99.99
	}
	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = "usd"
	}

	// Secrets may come from the environment instead of the file
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		cfg.Stripe.SecretKey = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}

	GlobalConfig = &cfg
	return &cfg, nil
}
