package config

import (
	"os"
	"time"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/aquasecurity/node-lifecycle/utils"
)

const DefaultCacheTTL = 24 * time.Hour

// Config holds the options of the schedule repository.
type Config struct {
	CacheTTL time.Duration
	CacheDir string
}

type Option func(*Config)

// WithCacheTTL sets how long a cached feed stays fresh. A zero TTL disables reads from the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.CacheTTL = ttl
	}
}

func WithCacheDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.CacheDir = dir
		}
	}
}

func New(opts ...Option) Config {
	c := Config{
		CacheTTL: DefaultCacheTTL,
		CacheDir: utils.CacheDir(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Load reads a YAML config file on top of the defaults, then applies opts.
//
//	cache_ttl: 12h
//	cache_dir: /var/cache/node-lifecycle
func Load(path string, opts ...Option) (Config, error) {
	c := New()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, xerrors.Errorf("unable to read config file: %w", err)
	}

	var file struct {
		CacheTTL string `yaml:"cache_ttl"`
		CacheDir string `yaml:"cache_dir"`
	}
	if err = yaml.Unmarshal(b, &file); err != nil {
		return Config{}, xerrors.Errorf("unable to parse config file %s: %w", path, err)
	}

	if file.CacheTTL != "" {
		ttl, err := time.ParseDuration(file.CacheTTL)
		if err != nil {
			return Config{}, xerrors.Errorf("invalid cache_ttl %q: %w", file.CacheTTL, err)
		}
		if ttl < 0 {
			return Config{}, xerrors.Errorf("invalid cache_ttl %q: must not be negative", file.CacheTTL)
		}
		c.CacheTTL = ttl
	}
	if file.CacheDir != "" {
		c.CacheDir = file.CacheDir
	}

	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}
