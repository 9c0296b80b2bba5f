// Package config loads newsdata command configuration from TOML files.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pelletier/go-toml/v2"

	"github.com/hupe1980/newsdata/blobstore"
	minioblob "github.com/hupe1980/newsdata/blobstore/minio"
	"github.com/hupe1980/newsdata/blobstore/s3"
)

// Store kinds.
const (
	StoreLocal = "local"
	StoreS3    = "s3"
	StoreMinIO = "minio"
)

// Config is the command configuration.
type Config struct {
	Threshold   float64     `toml:"threshold"`
	LogLevel    string      `toml:"log_level"`
	Concurrency int         `toml:"concurrency"`
	IOLimit     int64       `toml:"io_limit"`
	MemoryLimit int64       `toml:"memory_limit"`
	Store       StoreConfig `toml:"store"`
}

// StoreConfig selects where sources are read from.
type StoreConfig struct {
	Kind      string `toml:"kind"`
	Root      string `toml:"root"`
	Bucket    string `toml:"bucket"`
	Prefix    string `toml:"prefix"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Secure    bool   `toml:"secure"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Threshold:   1,
		LogLevel:    "warn",
		Concurrency: 4,
		Store:       StoreConfig{Kind: StoreLocal},
	}
}

// Load reads path on top of Default. A missing path is not an error when
// path is empty.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if math.IsNaN(c.Threshold) {
		errs = append(errs, errors.New("threshold must be a number"))
	}
	if c.Concurrency < 1 {
		errs = append(errs, errors.New("concurrency must be positive"))
	}
	if c.IOLimit < 0 {
		errs = append(errs, errors.New("io_limit must not be negative"))
	}
	if c.MemoryLimit < 0 {
		errs = append(errs, errors.New("memory_limit must not be negative"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	switch c.Store.Kind {
	case "", StoreLocal:
	case StoreS3, StoreMinIO:
		if c.Store.Bucket == "" {
			errs = append(errs, fmt.Errorf("store %s requires a bucket", c.Store.Kind))
		}
		if c.Store.Kind == StoreMinIO && c.Store.Endpoint == "" {
			errs = append(errs, errors.New("store minio requires an endpoint"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store kind %q", c.Store.Kind))
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return l, nil
}

// Open connects to the configured blob store.
func (s StoreConfig) Open(ctx context.Context) (blobstore.BlobStore, error) {
	switch s.Kind {
	case "", StoreLocal:
		return blobstore.NewLocalStore(s.Root), nil
	case StoreS3:
		var opts []func(*s3.Options)
		if s.Prefix != "" {
			opts = append(opts, s3.WithPrefix(s.Prefix))
		}
		if s.Region != "" {
			opts = append(opts, s3.WithRegion(s.Region))
		}
		if s.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(s.Endpoint))
		}
		return s3.New(ctx, s.Bucket, opts...)
	case StoreMinIO:
		client, err := minio.New(s.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(s.AccessKey, s.SecretKey, ""),
			Secure: s.Secure,
			Region: s.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return minioblob.NewStore(client, s.Bucket, s.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", s.Kind)
	}
}
