package config

import (
	"github.com/gobwas/glob"
)

// Merge merges a loaded config on top of defaults. Settings and metric
// selection in loaded override the defaults field by field; Overrides
// come from the loaded config only.
func Merge(defaults, loaded *Config) *Config {
	if loaded == nil {
		out := *defaults
		out.Metrics = append([]string(nil), defaults.Metrics...)
		out.Overrides = nil
		return &out
	}

	wordList := defaults.WordList
	if loaded.WordList != "" {
		wordList = loaded.WordList
	}
	metrics := defaults.Metrics
	if len(loaded.Metrics) > 0 {
		metrics = loaded.Metrics
	}

	return &Config{
		WordList:  wordList,
		Metrics:   append([]string(nil), metrics...),
		Settings:  defaults.Settings.overlay(loaded.Settings),
		Overrides: loaded.Overrides,
	}
}

// Effective returns the configuration that applies to the document at
// docPath. It starts with the top-level settings and then applies each
// override whose file patterns match, in order. Later overrides take
// precedence. The result has no overrides of its own.
func Effective(cfg *Config, docPath string) *Config {
	out := &Config{
		WordList: cfg.WordList,
		Metrics:  append([]string(nil), cfg.Metrics...),
		Settings: cfg.Settings,
	}

	for _, o := range cfg.Overrides {
		if !matchesAny(o.Files, docPath) {
			continue
		}
		if len(o.Metrics) > 0 {
			out.Metrics = append([]string(nil), o.Metrics...)
		}
		out.Settings = out.Settings.overlay(o.Settings)
	}

	return out
}

// matchesAny returns true if docPath matches any of the given glob patterns.
func matchesAny(patterns []string, docPath string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			// Skip invalid patterns silently.
			continue
		}
		if g.Match(docPath) {
			return true
		}
	}
	return false
}
