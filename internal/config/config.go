package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const minJWTSecretLength = 10

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTUserSecret string `env:"JWT_SECRET"`
	// RedisURL адрес redis для кеша чеков. Пустое значение - кеш в памяти процесса.
	RedisURL string `env:"REDIS_URL"`

	JWTExpire time.Duration `env:"JWT_EXPIRE" envDefault:"1h"`
	CacheSize int           `env:"CACHE_SIZE" envDefault:"1024"`
	// CacheTTL ограничивает время, в течение которого публичный просмотр отдает чек, удаленный вместе
	// с владельцем в обход сервиса.
	CacheTTL  time.Duration `env:"CACHE_TTL"  envDefault:"10m"`
	// CORSAllowedOrigins пустой список разрешает любой origin.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	PublicRateLimit    float64  `env:"PUBLIC_RATE_LIMIT"    envDefault:"5"`
	PublicRateBurst    int      `env:"PUBLIC_RATE_BURST"    envDefault:"10"`
}

// LoadConfig собирает конфигурацию из переменных окружения и флагов args. Переменные окружения
// приоритетнее флагов.
func LoadConfig(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig(args []string) *Config {
	config, err := LoadConfig(args)
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config, args []string) error {
	fs := flag.NewFlagSet("receipts", flag.ContinueOnError)
	fs.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fs.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fs.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fs.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT secret key")
	fs.StringVar(&flagConfig.RedisURL, "r", "", "Redis URL for receipt cache")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig строковые параметры берутся из окружения, если заданы, иначе из флагов. Остальные параметры
// задаются только окружением.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	merged := *envConfig
	merged.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	merged.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	merged.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	merged.JWTUserSecret = defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret)
	merged.RedisURL = defaultIfBlank(envConfig.RedisURL, flagsConfig.RedisURL)
	merged.CORSAllowedOrigins = normalizeOrigins(envConfig.CORSAllowedOrigins)
	return &merged
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is not set"))
	}
	if len(c.JWTUserSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Errorf("jwt secret must be at least %d characters", minJWTSecretLength))
	}
	if c.JWTExpire <= 0 {
		errs = append(errs, errors.New("jwt expire must be positive"))
	}
	if c.CacheSize <= 0 {
		errs = append(errs, errors.New("cache size must be positive"))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, errors.New("cache ttl must be positive"))
	}
	if c.PublicRateLimit <= 0 {
		errs = append(errs, errors.New("public rate limit must be positive"))
	}
	if c.PublicRateBurst < 1 {
		errs = append(errs, errors.New("public rate burst must be at least 1"))
	}
	for _, origin := range c.CORSAllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, fmt.Errorf("cors origin `%s` must start with http:// or https://", origin))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// normalizeOrigins убирает пробелы и пустые значения. "*" равносилен пустому списку.
func normalizeOrigins(origins []string) []string {
	var result []string
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			return nil
		}
		if origin != "" {
			result = append(result, origin)
		}
	}
	return result
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
