// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates the epochx settings file from EPOCHX_CONFIG or a
//              fixed list of candidate paths.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-14 v0.2.0: Fixed epochx search order, defaults when absent

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/epochx/foundation/core/error"
)

// EnvConfigPath names the environment variable holding an explicit config path
const EnvConfigPath = "EPOCHX_CONFIG"

// DiscoveryOptions defines where Discover looks for a settings file
type DiscoveryOptions struct {
	Paths    []string // Candidate files, tried in order
	Required bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the standard epochx search order
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{
		filepath.Join("configs", "epochx.toml"),
		"epochx.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "epochx", "config.toml"))
	}
	return DiscoveryOptions{Paths: paths}
}

// FindConfigFile returns the first existing candidate. EPOCHX_CONFIG wins
// over the candidate list and must name an existing file.
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		if info, err := os.Stat(p); err != nil || info.IsDir() {
			return "", mdwerror.New("config file named by "+EnvConfigPath+" not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.FindConfigFile").
				WithDetail("filePath", p)
		}
		return p, nil
	}

	for _, p := range options.Paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	return "", mdwerror.New("no configuration file found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchedPaths", options.Paths)
}

// Discover loads the first settings file found. Without one it returns the
// defaults (environment applied) unless options.Required is set.
func Discover(options DiscoveryOptions) (*Settings, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if !options.Required && mdwerror.HasCode(err, mdwerror.CodeNotFound) && os.Getenv(EnvConfigPath) == "" {
			return LoadFromEnv()
		}
		return nil, err
	}
	return Load(path)
}

// LoadFromEnv returns the defaults with EPOCHX_* overrides applied
func LoadFromEnv() (*Settings, error) {
	s := Default()
	if err := s.applyEnv(); err != nil {
		return nil, err
	}
	return s, nil
}
