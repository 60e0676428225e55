package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to .cart/).
	userConfigFile = ".cartconfig.yaml"
	// envFile optionally supplies CART_* overrides (sibling to .cart/).
	envFile = ".env"

	// Default configuration values
	DefaultAPIURL     = "http://localhost:3333"
	DefaultTimeout    = 10 * time.Second
	DefaultRetries    = 0
	DefaultStorage    = BackendFile
	DefaultStorageKey = "@RocketShoes:cart"
	DefaultRedisURL   = "redis://localhost:6379/0"
	DefaultMongoURI   = "mongodb://localhost:27017"
	DefaultMongoDB    = "rocketcart"
	DefaultLogLevel   = "warn"
)

// Config represents user configuration from .cartconfig.yaml.
// This file is user-managed and never written by cart.
type Config struct {
	// APIURL is the base URL of the product/stock service.
	APIURL string `yaml:"api_url"`

	// Timeout bounds each catalog request.
	Timeout time.Duration `yaml:"timeout"`

	// Retries is how many times a failed catalog request is retried.
	Retries int `yaml:"retries"`

	// Storage selects the KV backend: file, bunt, redis or mongo.
	Storage string `yaml:"storage"`

	// StorageKey is the key the cart is persisted under.
	StorageKey string `yaml:"storage_key"`

	RedisURL string `yaml:"redis_url"`
	MongoURI string `yaml:"mongo_uri"`
	MongoDB  string `yaml:"mongo_db"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		APIURL:     DefaultAPIURL,
		Timeout:    DefaultTimeout,
		Retries:    DefaultRetries,
		Storage:    DefaultStorage,
		StorageKey: DefaultStorageKey,
		RedisURL:   DefaultRedisURL,
		MongoURI:   DefaultMongoURI,
		MongoDB:    DefaultMongoDB,
		LogLevel:   DefaultLogLevel,
	}
}

// LoadConfig loads .cartconfig.yaml if it exists, otherwise starts from defaults.
// Partial config files are merged with defaults. CART_* variables, from the
// process environment or a .env file beside .cart/, override file values;
// the process environment wins over .env.
func (s *Storage) LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(s.ConfigPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	}

	dotenv, err := godotenv.Read(filepath.Join(s.root, envFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		dotenv = nil
	}

	if err := cfg.applyEnv(func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from CART_* variables.
func (c *Config) applyEnv(getenv func(string) string) error {
	strs := map[string]*string{
		"CART_API_URL":     &c.APIURL,
		"CART_STORAGE":     &c.Storage,
		"CART_STORAGE_KEY": &c.StorageKey,
		"CART_REDIS_URL":   &c.RedisURL,
		"CART_MONGO_URI":   &c.MongoURI,
		"CART_MONGO_DB":    &c.MongoDB,
		"CART_LOG_LEVEL":   &c.LogLevel,
	}
	for key, field := range strs {
		if v := getenv(key); v != "" {
			*field = v
		}
	}

	if v := getenv("CART_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CART_TIMEOUT %q: %w", v, err)
		}
		c.Timeout = d
	}
	if v := getenv("CART_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CART_RETRIES %q: %w", v, err)
		}
		c.Retries = n
	}
	return nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.APIURL == "" {
		return errors.New("api_url must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.Retries)
	}
	if c.StorageKey == "" {
		return errors.New("storage_key must not be empty")
	}

	switch c.Storage {
	case BackendFile, BackendBunt:
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("redis_url must be provided for the redis backend")
		}
	case BackendMongo:
		if c.MongoURI == "" || c.MongoDB == "" {
			return errors.New("mongo_uri and mongo_db must be provided for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q (expected file, bunt, redis or mongo)", c.Storage)
	}
	return nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
