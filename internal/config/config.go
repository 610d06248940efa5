// Package config loads and validates the hop route configuration.
//
// The configuration is a YAML document naming the bind and public addresses,
// an optional default route, and an ordered list of route groups. A route
// value is either a bare string (shorthand for a route with no constraints)
// or a mapping with path, hidden, description, and argument-count bounds.
// Size guards reject empty and oversized documents before any parsing is
// attempted.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/hop/internal/errors"
	"github.com/conneroisu/hop/internal/routes"
)

// DefaultMaxSize is the config size limit applied unless the caller allows
// large configs.
const DefaultMaxSize int64 = 100 * 1024 * 1024

// Config is a fully parsed and validated route configuration.
type Config struct {
	BindAddress   string
	PublicAddress string
	DefaultRoute  string
	Groups        []routes.Group
}

type rawConfig struct {
	BindAddress   string     `yaml:"bind_address"`
	PublicAddress string     `yaml:"public_address"`
	DefaultRoute  string     `yaml:"default_route"`
	Groups        []rawGroup `yaml:"groups"`
}

type rawGroup struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Hidden      bool                `yaml:"hidden"`
	Routes      map[string]rawRoute `yaml:"routes"`
}

type rawRoute struct {
	Path        string `yaml:"path"`
	Hidden      bool   `yaml:"hidden"`
	Description string `yaml:"description"`
	MinArgs     *uint  `yaml:"min_args"`
	MaxArgs     *uint  `yaml:"max_args"`
}

// UnmarshalYAML accepts both route forms: a bare string is shorthand for a
// route with that path and no constraints.
func (r *rawRoute) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var path string
		if err := value.Decode(&path); err != nil {
			return err
		}
		*r = rawRoute{Path: path}
		return nil
	}

	type plainRoute rawRoute
	var plain plainRoute
	if err := value.Decode(&plain); err != nil {
		return err
	}
	*r = rawRoute(plain)
	return nil
}

// Parse decodes and validates a configuration document. Route kinds are
// classified here, once, by probing the filesystem for each route path.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewParseError("decoding config document", err)
	}

	if raw.BindAddress == "" {
		return nil, errors.NewValidationError("bind_address is required")
	}
	if raw.PublicAddress == "" {
		return nil, errors.NewValidationError("public_address is required")
	}

	groups := make([]routes.Group, 0, len(raw.Groups))
	for _, rg := range raw.Groups {
		group := routes.Group{
			Name:        rg.Name,
			Description: rg.Description,
			Hidden:      rg.Hidden,
			Routes:      make(map[string]routes.Route, len(rg.Routes)),
		}
		for keyword, rr := range rg.Routes {
			route := routes.Route{
				Kind:        routes.ClassifyKind(rr.Path),
				Path:        rr.Path,
				Hidden:      rr.Hidden,
				Description: rr.Description,
				MinArgs:     rr.MinArgs,
				MaxArgs:     rr.MaxArgs,
			}
			if err := route.Validate(); err != nil {
				return nil, fmt.Errorf("group %q, keyword %q: %w", rg.Name, keyword, err)
			}
			group.Routes[keyword] = route
		}
		groups = append(groups, group)
	}

	return &Config{
		BindAddress:   raw.BindAddress,
		PublicAddress: raw.PublicAddress,
		DefaultRoute:  raw.DefaultRoute,
		Groups:        groups,
	}, nil
}

// Load reads and parses the config at path. The size guards run before
// parsing: a zero-byte file and a file larger than maxSize are distinct
// errors, raised without attempting a parse. maxSize <= 0 disables the
// upper bound.
func Load(path string, maxSize int64) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewIOError("reading config", err).WithPath(path)
	}
	if info.Size() == 0 {
		return nil, errors.NewConfigEmptyError().WithPath(path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, errors.NewConfigTooBigError(info.Size(), maxSize).WithPath(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("reading config", err).WithPath(path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
