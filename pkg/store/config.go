package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the resolved runtime configuration.
type Config interface {
	BasePath() string
	Backend() string
	// AuthorName prefills the name field when none is given.
	AuthorName() string
	LogLevel() string
}

// LoadConfig reads .eod.yaml, EOD_* environment variables and a local .env
// file into the global viper instance, which also carries bound CLI flags.
func LoadConfig() (Config, error) {
	return loadConfig(viper.GetViper())
}

func loadConfig(v *viper.Viper) (Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	v.SetDefault("path", "~/.eod")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("name", "")
	v.SetDefault("log-level", "warn")
	v.SetConfigName(".eod") // .yaml is implicit
	v.SetEnvPrefix("EOD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("EOD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	backend := strings.ToLower(strings.TrimSpace(v.GetString("backend")))
	switch backend {
	case BackendDiskv, BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}

	return &fileConfig{
		Path:   path,
		Kind:   backend,
		Author: strings.TrimSpace(v.GetString("name")),
		Level:  v.GetString("log-level"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Kind   string `json:"backend"`
	Author string `json:"name"`
	Level  string `json:"logLevel"`
}

func (f *fileConfig) BasePath() string   { return f.Path }
func (f *fileConfig) Backend() string    { return f.Kind }
func (f *fileConfig) AuthorName() string { return f.Author }
func (f *fileConfig) LogLevel() string   { return f.Level }

// StaticConfig is a Config assembled in code.
type StaticConfig struct {
	Path   string
	Kind   string
	Author string
	Level  string
}

func (s StaticConfig) BasePath() string   { return s.Path }
func (s StaticConfig) Backend() string    { return s.Kind }
func (s StaticConfig) AuthorName() string { return s.Author }
func (s StaticConfig) LogLevel() string   { return s.Level }
