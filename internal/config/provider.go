// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions pins a load to explicit sources. The CLI passes its --config
// flag through ConfigFilePath; tests pass temp directories through
// ConfigDirPath.
type LoadOptions struct {
	// ConfigFilePath forces loading from this file when set. Unlike the
	// directory lookup, a missing explicit file is an error.
	ConfigFilePath string
	// ConfigDirPath overrides the platform config directory lookup.
	ConfigDirPath string
}

// Provider resolves and loads the effective configuration. The string
// result is the path of the file actually read, or empty when only
// built-in defaults applied.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, string, error)
}

type fileProvider struct{}

// NewProvider returns the file-backed provider.
func NewProvider() Provider {
	return &fileProvider{}
}

func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return loadWithOptions(ctx, opts)
}
