package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/taigram/docs-theme/internal/i18n"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every site configuration problem: unreadable
// files, unsupported formats and failed validation.
var ErrInvalidConfig = errors.New("invalid site configuration")

// SiteConfig is the site-wide configuration shared by every page render.
// It is read-only once loaded.
type SiteConfig struct {
	// PageTitle is optional. A nil value means "use the locale default";
	// an explicit empty string is kept as is.
	PageTitle *string `yaml:"pageTitle" toml:"pageTitle"`
	Locale    string  `yaml:"locale" toml:"locale" validate:"required,locale"`
	BaseURL   string  `yaml:"baseUrl" toml:"baseUrl"`
}

// Title returns the configured page title and whether one was set.
func (c *SiteConfig) Title() (string, bool) {
	if c == nil || c.PageTitle == nil {
		return "", false
	}
	return *c.PageTitle, true
}

// LoadSite reads a YAML or TOML site configuration from fsys, applies the
// SITE_* environment overrides and validates the result.
func LoadSite(fsys afero.Fs, path string) (*SiteConfig, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	}

	cfg, err := ParseSite(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseSite decodes a site configuration in the format implied by ext
// (".yaml", ".yml" or ".toml"), then applies overrides and defaults and
// validates it.
func ParseSite(data []byte, ext string) (*SiteConfig, error) {
	cfg := &SiteConfig{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %v", ErrInvalidConfig, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("%w: toml: %v", ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SiteConfig) applyEnv() {
	if v, ok := os.LookupEnv("SITE_PAGE_TITLE"); ok {
		c.PageTitle = &v
	}
	if v := os.Getenv("SITE_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("SITE_BASE_URL"); v != "" {
		c.BaseURL = v
	}
}

func (c *SiteConfig) applyDefaults() {
	if c.Locale == "" {
		c.Locale = i18n.DefaultLocale
	}
}
