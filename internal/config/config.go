// config предоставляет структуру конфигурации discovery-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string         `yaml:"env"      env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	DB       DBConfig       `yaml:"db"`
	Redis    RedisConfig    `yaml:"redis"`
	Geo      GeoConfig      `yaml:"geo"`
	Feed     FeedConfig     `yaml:"feed"`
	Position PositionConfig `yaml:"position"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig — настройки подключения к Redis (слот последней позиции).
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL" env-required:"true"`
}

// GeoConfig — настройки прогрессивного геопоиска.
type GeoConfig struct {
	// InitialRadiusM — стартовый радиус запроса, метры.
	InitialRadiusM float64 `yaml:"initial_radius_m" env:"GEO_INITIAL_RADIUS_M" env-default:"2000"`
	// MaxRadiusM — потолок расширения радиуса, метры.
	MaxRadiusM float64 `yaml:"max_radius_m" env:"GEO_MAX_RADIUS_M" env-default:"50000"`
	// MinResults — порог «достаточно результатов» для остановки расширения.
	MinResults int32 `yaml:"min_results" env:"GEO_MIN_RESULTS" env-default:"5"`
	// ResultLimit — верхняя граница размера выдачи.
	ResultLimit int32 `yaml:"result_limit" env:"GEO_RESULT_LIMIT" env-default:"50"`
}

// FeedConfig — настройки роуминговой ленты.
type FeedConfig struct {
	// PageSize — размер страницы ленты.
	PageSize int32 `yaml:"page_size" env:"FEED_PAGE_SIZE" env-default:"10"`
	// RadiusM — радиус выборки ленты, метры.
	RadiusM float64 `yaml:"radius_m" env:"FEED_RADIUS_M" env-default:"50000"`
	// MovementThresholdM — смещение позиции, инвалидирующее накопленные страницы.
	MovementThresholdM float64 `yaml:"movement_threshold_m" env:"FEED_MOVEMENT_THRESHOLD_M" env-default:"100"`
	// CacheTTL — срок свежести страницы для ключа (origin, offset).
	CacheTTL time.Duration `yaml:"cache_ttl" env:"FEED_CACHE_TTL" env-default:"5m"`
}

// PositionConfig — настройки провайдера позиции.
type PositionConfig struct {
	// FreshnessTTL — потолок свежести сохранённой позиции: старше — отбрасываем.
	FreshnessTTL time.Duration `yaml:"freshness_ttl" env:"POSITION_FRESHNESS_TTL" env-default:"24h"`
	// DefaultLatitude/DefaultLongitude — стартовая позиция по умолчанию
	// (центр основного рынка сервиса — Либревиль).
	DefaultLatitude  float64 `yaml:"default_latitude"  env:"POSITION_DEFAULT_LAT" env-default:"0.4162"`
	DefaultLongitude float64 `yaml:"default_longitude" env:"POSITION_DEFAULT_LNG" env-default:"9.4673"`
	// RequestTimeout — таймаут одиночного запроса позиции к источнику.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"POSITION_REQUEST_TIMEOUT" env-default:"10s"`
	// MaxFixAge — допустимый возраст кэшированной фиксации источника.
	MaxFixAge time.Duration `yaml:"max_fix_age" env:"POSITION_MAX_FIX_AGE" env-default:"1m"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Redis.URL == "" {
		return fmt.Errorf("redis.url is required")
	}
	if c.Geo.InitialRadiusM <= 0 {
		return fmt.Errorf("geo.initial_radius_m must be > 0")
	}
	if c.Geo.InitialRadiusM > c.Geo.MaxRadiusM {
		return fmt.Errorf("geo.initial_radius_m must be <= geo.max_radius_m")
	}
	if c.Geo.MinResults < 1 {
		return fmt.Errorf("geo.min_results must be >= 1")
	}
	if c.Geo.ResultLimit < 1 {
		return fmt.Errorf("geo.result_limit must be >= 1")
	}
	if c.Feed.PageSize < 1 {
		return fmt.Errorf("feed.page_size must be >= 1")
	}
	if c.Feed.MovementThresholdM <= 0 {
		return fmt.Errorf("feed.movement_threshold_m must be > 0")
	}
	if c.Feed.CacheTTL <= 0 {
		return fmt.Errorf("feed.cache_ttl must be > 0")
	}
	if c.Position.FreshnessTTL <= 0 {
		return fmt.Errorf("position.freshness_ttl must be > 0")
	}
	if c.Position.DefaultLatitude < -90 || c.Position.DefaultLatitude > 90 ||
		c.Position.DefaultLongitude < -180 || c.Position.DefaultLongitude > 180 {
		return fmt.Errorf("position.default coordinates are out of range")
	}

	return nil
}
