// Package stylesheet aggregates the static CSS owned by page components
// into a single bundle for the page layout.
package stylesheet

import (
	"log/slog"
	"strings"
	"sync"
)

// Sheet collects component CSS in registration order. Registering the same
// component name twice keeps the first rules. It is safe for concurrent
// use.
type Sheet struct {
	mu    sync.RWMutex
	order []string
	rules map[string]string
}

// New creates an empty Sheet.
func New() *Sheet {
	return &Sheet{rules: make(map[string]string)}
}

// Register adds the rules for a component. Empty CSS is ignored.
func (s *Sheet) Register(name, css string) {
	css = strings.TrimSpace(css)
	if css == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[name]; exists {
		slog.Debug("Stylesheet already has rules for component, skipping", "component", name)
		return
	}
	s.rules[name] = css
	s.order = append(s.order, name)
	slog.Debug("Registered component stylesheet", "component", name, "bytes", len(css))
}

// Get returns the rules registered for a component.
func (s *Sheet) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	css, ok := s.rules[name]
	return css, ok
}

// Components lists the registered component names in registration order.
func (s *Sheet) Components() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Bundle joins all registered rules, separated by a blank line, ending in
// a newline. An empty sheet yields an empty string.
func (s *Sheet) Bundle() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return ""
	}

	var b strings.Builder
	for i, name := range s.order {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(s.rules[name])
	}
	b.WriteString("\n")
	return b.String()
}
