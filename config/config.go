/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvBucket         = "SWISSTD_BUCKET"
	EnvCacheBucket    = "SWISSTD_CACHE_BUCKET"
	EnvDiscordWebhook = "SWISSTD_DISCORD_WEBHOOK"
	EnvDiscordKey     = "SWISSTD_DISCORD_PUBLIC_KEY"
	EnvListen         = "SWISSTD_LISTEN"
	EnvSeed           = "SWISSTD_SEED"
	EnvCacheTTL       = "SWISSTD_CACHE_TTL"

	DefaultListen       = ":8080"
	DefaultCacheTTL     = time.Hour
	DefaultReportPrefix = "swisstd"
	DefaultEnvFile      = ".env"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every setting of the swisstd tool. Values are layered as
// defaults, then the YAML file, then the .env file, then the process
// environment; command line flags are applied last by the caller.
type Config struct {
	Title            string        `yaml:"title"`
	Feeds            []string      `yaml:"feeds"`
	Bucket           string        `yaml:"bucket"`
	ReportPrefix     string        `yaml:"reportPrefix"`
	CacheBucket      string        `yaml:"cacheBucket"`
	CacheTTL         time.Duration `yaml:"cacheTTL"`
	DiscordWebhook   string        `yaml:"discordWebhook"`
	DiscordPublicKey string        `yaml:"discordPublicKey"`
	Listen           string        `yaml:"listen"`
	CORSOrigins      []string      `yaml:"corsOrigins"`
	// Seed makes roster shuffling reproducible; nil seeds from the clock.
	Seed *int64 `yaml:"seed"`
}

func Default() *Config {
	return &Config{
		ReportPrefix: DefaultReportPrefix,
		CacheTTL:     DefaultCacheTTL,
		Listen:       DefaultListen,
		CORSOrigins:  []string{"*"},
	}
}

// Load builds a Config from the YAML file at path (skipped when empty) and
// the environment, after loading envFile into the environment when it
// exists. The result is validated.
func Load(path string, envFile string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to load %v: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%w: %v: %v", ErrInvalidConfig, path, err)
	}

	return nil
}

func (cfg *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		EnvBucket:         &cfg.Bucket,
		EnvCacheBucket:    &cfg.CacheBucket,
		EnvDiscordWebhook: &cfg.DiscordWebhook,
		EnvDiscordKey:     &cfg.DiscordPublicKey,
		EnvListen:         &cfg.Listen,
	}
	for name, dst := range strs {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %v: %v", ErrInvalidConfig, EnvSeed, err)
		}
		cfg.Seed = &seed
	}
	if v, ok := lookup(EnvCacheTTL); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %v: %v", ErrInvalidConfig, EnvCacheTTL, err)
		}
		cfg.CacheTTL = ttl
	}

	return nil
}

// Validate reports the first setting that cannot work.
func (cfg *Config) Validate() error {
	if cfg.CacheTTL < 0 {
		return fmt.Errorf("%w: negative cache ttl %v", ErrInvalidConfig,
			cfg.CacheTTL)
	}
	if cfg.Listen != "" {
		if _, _, err := net.SplitHostPort(cfg.Listen); err != nil {
			return fmt.Errorf("%w: listen address %q: %v", ErrInvalidConfig,
				cfg.Listen, err)
		}
	}
	if cfg.DiscordWebhook != "" {
		u, err := url.Parse(cfg.DiscordWebhook)
		if err != nil || (u.Scheme != "https" && u.Scheme != "http") {
			return fmt.Errorf("%w: discord webhook %q is not an http(s) url",
				ErrInvalidConfig, cfg.DiscordWebhook)
		}
	}
	if cfg.DiscordPublicKey != "" {
		key, err := hex.DecodeString(cfg.DiscordPublicKey)
		if err != nil || len(key) != 32 {
			return fmt.Errorf("%w: discord public key must be 64 hex digits",
				ErrInvalidConfig)
		}
	}

	return nil
}

// PublicKey decodes DiscordPublicKey; it returns nil when unset.
func (cfg *Config) PublicKey() []byte {
	key, err := hex.DecodeString(cfg.DiscordPublicKey)
	if err != nil || len(key) == 0 {
		return nil
	}
	return key
}

// ReportKey joins the report prefix and name into an object key.
func (cfg *Config) ReportKey(name string) string {
	if cfg.ReportPrefix == "" {
		return name
	}
	return cfg.ReportPrefix + "/" + name
}
