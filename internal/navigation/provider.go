// Package navigation loads the console navigation tree.
package navigation

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mazadclick/admin-access/internal/model"
)

//go:embed default_nav.yaml
var defaultTree []byte

// Provider supplies the static navigation tree. The tree is read on first use
// and kept for the life of the process.
type Provider struct {
	path string
	log  zerolog.Logger

	once  sync.Once
	items []model.NavItem
	err   error
}

// NewProvider creates a Provider reading path, or the built-in tree when path
// is empty.
func NewProvider(path string, log zerolog.Logger) *Provider {
	return &Provider{path: path, log: log}
}

// Items returns the navigation tree. Callers must not modify the result.
func (p *Provider) Items() ([]model.NavItem, error) {
	p.once.Do(func() {
		p.items, p.err = p.load()
		if p.err != nil {
			p.log.Error().Err(p.err).Str("path", p.path).Msg("Failed to load navigation tree")
			return
		}
		p.log.Info().
			Str("path", p.source()).
			Int("top_level_items", len(p.items)).
			Msg("Navigation tree loaded")
	})
	return p.items, p.err
}

func (p *Provider) source() string {
	if p.path == "" {
		return "builtin"
	}
	return p.path
}

func (p *Provider) load() ([]model.NavItem, error) {
	raw := defaultTree
	if p.path != "" {
		b, err := os.ReadFile(p.path)
		if err != nil {
			return nil, fmt.Errorf("read navigation config: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML navigation tree.
func Parse(raw []byte) ([]model.NavItem, error) {
	var items []model.NavItem
	if err := yaml.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode navigation config: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("navigation config is empty")
	}

	v := govalidator.New()
	for i := range items {
		if err := v.Struct(items[i]); err != nil {
			return nil, fmt.Errorf("invalid navigation item %d: %w", i, err)
		}
	}
	return items, nil
}
