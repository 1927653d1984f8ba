package preview

import (
	"log/slog"
	"sync/atomic"

	"github.com/spf13/afero"
	"github.com/taigram/docs-theme/internal/config"
)

// SiteSource holds the current site configuration and swaps it atomically
// on reload, so in-flight renders keep the config they started with.
type SiteSource struct {
	fs      afero.Fs
	path    string
	current atomic.Pointer[config.SiteConfig]
}

// NewSiteSource loads the site configuration at path.
func NewSiteSource(fs afero.Fs, path string) (*SiteSource, error) {
	s := &SiteSource{fs: fs, path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path is the configuration file being served.
func (s *SiteSource) Path() string { return s.path }

// Site returns the current configuration. Callers must not modify it.
func (s *SiteSource) Site() *config.SiteConfig { return s.current.Load() }

// Reload re-reads the configuration file. On failure the previous
// configuration stays active.
func (s *SiteSource) Reload() error {
	cfg, err := config.LoadSite(s.fs, s.path)
	if err != nil {
		return err
	}
	s.current.Store(cfg)
	slog.Debug("Loaded site configuration", "path", s.path, "locale", cfg.Locale)
	return nil
}
