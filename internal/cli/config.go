package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/matzehuels/starchart/pkg/cache"
)

// envPrefix namespaces every environment variable, e.g. STARCHART_CACHE_DIR.
const envPrefix = "starchart"

// Config is the CLI's environment configuration.
type Config struct {
	// CacheDir overrides the per-user cache directory.
	CacheDir string `envconfig:"CACHE_DIR"`

	// RedisAddr switches the artifact cache to Redis.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB"`
	RedisPrefix   string `envconfig:"REDIS_PREFIX" default:"starchart:"`

	// CacheTTL replaces the per-entry lifetimes when set.
	CacheTTL time.Duration `envconfig:"CACHE_TTL"`

	NoCache bool `envconfig:"NO_CACHE"`

	// Style is the preset used when a command names none.
	Style string `envconfig:"STYLE"`

	// Resolution is the default canvas width in pixels.
	Resolution int `envconfig:"RESOLUTION"`
}

// loadConfig reads the STARCHART_* environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// cacheDir returns the file cache directory: STARCHART_CACHE_DIR, or the
// user cache directory (~/.cache/starchart on Linux).
func (cfg Config) cacheDir() (string, error) {
	if cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	return cache.DefaultDir()
}

// openCache opens the configured backend. Redis wins over the file cache
// when an address is set.
func (cfg Config) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || cfg.NoCache {
		return cache.NewNullCache(), nil
	}

	var c cache.Cache
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return nil, err
		}
		c = rc
	} else {
		dir, err := cfg.cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		c = fc
	}

	if cfg.CacheTTL > 0 {
		c = fixedTTL{Cache: c, ttl: cfg.CacheTTL}
	}
	return c, nil
}

// fixedTTL stores every entry with the same lifetime.
type fixedTTL struct {
	cache.Cache
	ttl time.Duration
}

func (f fixedTTL) Set(ctx context.Context, key string, data []byte, _ time.Duration) error {
	return f.Cache.Set(ctx, key, data, f.ttl)
}
