// Package source supplies the profile value to check.
//
// A Source either produces a value, declines (ok == false), or fails. Chain
// composes sources in precedence order.
package source

import (
	"context"
	"fmt"
	"os"

	"github.com/dshills/profilecheck/internal/config"
)

// EnvProfile names the environment variable that may carry the profile.
const EnvProfile = "PROFILECHECK_PROFILE"

// Source produces a profile value.
type Source interface {
	Fetch(ctx context.Context) (value any, ok bool, err error)
	Name() string
}

type staticSource struct {
	value any
	name  string
}

// Static returns a source that always yields v.
func Static(name string, v any) Source {
	return &staticSource{value: v, name: name}
}

func (s *staticSource) Fetch(context.Context) (any, bool, error) { return s.value, true, nil }

func (s *staticSource) Name() string { return s.name }

type envSource struct {
	key string
}

// Env returns a source backed by an environment variable. An unset variable
// declines; a set but empty variable yields "".
func Env(key string) Source {
	return &envSource{key: key}
}

func (s *envSource) Fetch(context.Context) (any, bool, error) {
	v, ok := os.LookupEnv(s.key)
	return v, ok, nil
}

func (s *envSource) Name() string { return "env " + s.key }

type configSource struct {
	cfg *config.Config
}

// Config returns a source backed by an already loaded config file. It
// declines when the file has no profile key.
func Config(cfg *config.Config) Source {
	return &configSource{cfg: cfg}
}

func (s *configSource) Fetch(context.Context) (any, bool, error) {
	if s.cfg == nil || !s.cfg.HasProfile() {
		return nil, false, nil
	}
	return s.cfg.Profile, true, nil
}

func (s *configSource) Name() string { return "config file" }

type chainSource struct {
	sources []Source
	last    string
}

// Chain tries each source in order and returns the first value supplied.
// A source error stops the chain.
func Chain(sources ...Source) Source {
	return &chainSource{sources: sources}
}

func (c *chainSource) Fetch(ctx context.Context) (any, bool, error) {
	for _, s := range c.sources {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		v, ok, err := s.Fetch(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", s.Name(), err)
		}
		if ok {
			c.last = s.Name()
			return v, true, nil
		}
	}
	return nil, false, nil
}

// Name reports the source that supplied the last fetched value, or "chain".
func (c *chainSource) Name() string {
	if c.last == "" {
		return "chain"
	}
	return c.last
}

// Resolve fetches a value from src. When no source supplies one the profile
// is absent and nil is returned.
func Resolve(ctx context.Context, src Source) (any, error) {
	v, ok, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return v, nil
}
