// Package config loads catadmin settings from a YAML file and CATADMIN_*
// environment variables.
package config

import (
	"catadmin/internal/catalog"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL  = "https://api.escuelajs.co/api/v1"
	DefaultTimeout = 30 * time.Second
	envPrefix      = "CATADMIN_"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	APIURL    string        `yaml:"api_url"`
	PerPage   int           `yaml:"per_page"`
	Timeout   time.Duration `yaml:"timeout"`
	ExportDir string        `yaml:"export_dir"`
	LogLevel  string        `yaml:"log_level"`
	LogFormat string        `yaml:"log_format"`
	LogFile   string        `yaml:"log_file,omitempty"`
}

func Default() Config {
	return Config{
		APIURL:    DefaultAPIURL,
		PerPage:   catalog.DefaultPerPage,
		Timeout:   DefaultTimeout,
		ExportDir: DefaultExportDir(),
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads path over the defaults and then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("API_URL", &c.APIURL)
	str("EXPORT_DIR", &c.ExportDir)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("LOG_FILE", &c.LogFile)

	if v, ok := lookup(envPrefix + "PER_PAGE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %sPER_PAGE=%q", ErrInvalidConfig, envPrefix, v)
		}
		c.PerPage = n
	}
	if v, ok := lookup(envPrefix + "TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sTIMEOUT=%q", ErrInvalidConfig, envPrefix, v)
		}
		c.Timeout = d
	}
	return nil
}

func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.APIURL) == "" {
		problems = append(problems, "api_url is empty")
	}
	if !catalog.ValidPerPage(c.PerPage) {
		problems = append(problems, fmt.Sprintf("per_page must be one of %v", catalog.PerPageChoices))
	}
	if c.Timeout <= 0 {
		problems = append(problems, "timeout must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Write saves c to path as YAML, creating parent directories.
func Write(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
