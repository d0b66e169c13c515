package config

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir     = ".classkit"
	DefaultRows        = 4
	DefaultCols        = 6
	DefaultMaxAttempts = 1000
	DefaultGroupSize   = 4
	DefaultRedisAddr   = "127.0.0.1:6379"
	MaxGridSide        = 10
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	DataDir  string         `yaml:"data_dir" validate:"required"`
	LogLevel string         `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Store    StoreConfig    `yaml:"store"`
	Seating  SeatingConfig  `yaml:"seating"`
	Grouping GroupingConfig `yaml:"grouping"`
}

type StoreConfig struct {
	Backend   string `yaml:"backend" validate:"oneof=file redis"`
	RedisAddr string `yaml:"redis_addr" validate:"required_if=Backend redis"`
	RedisDB   int    `yaml:"redis_db" validate:"gte=0"`
	Key       string `yaml:"key"`
}

type SeatingConfig struct {
	Rows        int      `yaml:"rows" validate:"gte=1,lte=10"`
	Cols        int      `yaml:"cols" validate:"gte=1,lte=10"`
	MaxAttempts int      `yaml:"max_attempts" validate:"gte=1"`
	Blocked     []string `yaml:"blocked"`
}

type GroupingConfig struct {
	Size  int `yaml:"size" validate:"gte=0"`
	Count int `yaml:"count" validate:"gte=0"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		LogLevel: "info",
		Store: StoreConfig{
			Backend:   BackendFile,
			RedisAddr: DefaultRedisAddr,
		},
		Seating: SeatingConfig{
			Rows:        DefaultRows,
			Cols:        DefaultCols,
			MaxAttempts: DefaultMaxAttempts,
		},
		Grouping: GroupingConfig{
			Size: DefaultGroupSize,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Environment variables that override file settings.
const (
	EnvDataDir   = "CLASSKIT_DATA"
	EnvStore     = "CLASSKIT_STORE"
	EnvRedisAddr = "CLASSKIT_REDIS_ADDR"
	EnvRedisDB   = "CLASSKIT_REDIS_DB"
	EnvLogLevel  = "CLASSKIT_LOG_LEVEL"
)

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding the real environment. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from CLASSKIT_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvStore); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Store.RedisAddr = v
	}
	if v := os.Getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvRedisDB, v, err)
		}
		c.Store.RedisDB = db
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

var validate = validator.New()

// Validate checks ranges and enums declared in the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
