package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const keirakuFile = "keiraku.yaml"

// SourceEmbedded is reported when no config file was found.
const SourceEmbedded = "embedded"

// LoadKeiraku loads the simulation configuration.
// Search order: customPath -> ~/.keiraku/configs/keiraku.yaml -> ./configs/keiraku.yaml -> embedded default
func LoadKeiraku(customPath string) (KeirakuConfig, error) {
	cfg, _, err := ResolveKeiraku(customPath)
	return cfg, err
}

// ResolveKeiraku is LoadKeiraku that also reports which file was used,
// or SourceEmbedded.
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it names. An explicit customPath must exist and parse;
// a broken file on the search path is skipped.
func ResolveKeiraku(customPath string) (KeirakuConfig, string, error) {
	if customPath != "" {
		cfg, err := decodeKeiraku(customPath)
		if err != nil {
			return DefaultKeirakuConfig(), "", err
		}
		return cfg, customPath, nil
	}
	return searchKeiraku(searchPaths())
}

func searchKeiraku(paths []string) (KeirakuConfig, string, error) {
	for _, path := range paths {
		if cfg, err := decodeKeiraku(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultKeirakuConfig()
	if err := yaml.Unmarshal(defaultKeirakuYAML, &cfg); err != nil {
		return DefaultKeirakuConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func decodeKeiraku(path string) (KeirakuConfig, error) {
	cfg := DefaultKeirakuConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultKeirakuConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations, user directory first.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".keiraku", "configs", keirakuFile))
	}
	return append(paths, filepath.Join("configs", keirakuFile))
}
