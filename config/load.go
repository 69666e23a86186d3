package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/jeduden/readability"
	"github.com/jeduden/readability/log"
	"github.com/jeduden/readability/wordlist"
	"gopkg.in/yaml.v3"
)

const configFileName = ".readability.yml"

// Load reads and parses a config file at the given path. A relative
// word-list path is resolved against the config file's directory.
func Load(path string, logger *log.Logger) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if cfg.WordList != "" && !filepath.IsAbs(cfg.WordList) {
		cfg.WordList = filepath.Join(filepath.Dir(path), cfg.WordList)
	}

	logger.Printf("config: %s", path)
	return &cfg, nil
}

// validate checks the top-level settings and every override as it would
// apply on top of them.
func (c *Config) validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	if _, err := c.Definitions(); err != nil {
		return err
	}
	for i, o := range c.Overrides {
		for _, pattern := range o.Files {
			if _, err := glob.Compile(pattern, '/'); err != nil {
				return fmt.Errorf("overrides[%d]: invalid file pattern %q: %w", i, pattern, err)
			}
		}
		if len(o.Metrics) > 0 {
			if _, err := readability.Resolve(o.Metrics); err != nil {
				return fmt.Errorf("overrides[%d]: %w", i, err)
			}
		}
		if _, err := c.Settings.overlay(o.Settings).Options(); err != nil {
			return fmt.Errorf("overrides[%d]: %w", i, err)
		}
	}
	return nil
}

// Discover walks up the directory tree from startDir looking for a
// .readability.yml config file. It stops searching when it encounters a
// .git directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns a Config with every metric selected and the engine's
// default formula settings spelled out.
func Defaults() *Config {
	opts := readability.DefaultOptions()
	defs := readability.All()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	return &Config{
		Metrics: names,
		Settings: Settings{
			SMOG:         SMOGCfg{MinSentences: opts.SMOGMinSentences},
			Forcast:      ForcastCfg{Sample: opts.ForcastSample, Window: string(opts.ForcastWindow)},
			LinsearWrite: LinsearCfg{Sample: opts.LinsearSample},
		},
	}
}

// ErrNoWordList is returned by LoadWordList when no word-list is configured.
var ErrNoWordList = errors.New("config: no word-list configured")

// LoadWordList loads the configured easy-word list.
func (c *Config) LoadWordList(logger *log.Logger) (*wordlist.Set, error) {
	if c.WordList == "" {
		return nil, ErrNoWordList
	}
	return wordlist.Load(c.WordList, logger)
}
