package config

import (
	"fmt"

	"github.com/jeduden/readability"
)

// Config is the top-level configuration.
type Config struct {
	Settings `yaml:",inline"`

	WordList  string     `yaml:"word-list,omitempty"`
	Metrics   []string   `yaml:"metrics,omitempty"`
	Overrides []Override `yaml:"overrides,omitempty"`
}

// Override applies metric selection and formula settings to documents
// whose path matches one of Files (glob patterns).
type Override struct {
	Settings `yaml:",inline"`

	Files   []string `yaml:"files"`
	Metrics []string `yaml:"metrics,omitempty"`
}

// Settings holds the tunable parameters of the sample-based formulas.
// A zero field means "inherit".
type Settings struct {
	SMOG         SMOGCfg    `yaml:"smog,omitempty"`
	Forcast      ForcastCfg `yaml:"forcast,omitempty"`
	LinsearWrite LinsearCfg `yaml:"linsear-write,omitempty"`
}

// SMOGCfg configures the SMOG grade.
type SMOGCfg struct {
	MinSentences int `yaml:"min-sentences,omitempty"`
}

// ForcastCfg configures the FORCAST grade.
type ForcastCfg struct {
	Sample int    `yaml:"sample,omitempty"`
	Window string `yaml:"window,omitempty"`
}

// LinsearCfg configures the Linsear Write grade.
type LinsearCfg struct {
	Sample int `yaml:"sample,omitempty"`
}

// Options converts s to engine options, rejecting invalid values.
// Zero fields take the engine defaults.
func (s Settings) Options() (readability.Options, error) {
	opts := readability.DefaultOptions()
	if s.SMOG.MinSentences != 0 {
		opts.SMOGMinSentences = s.SMOG.MinSentences
	}
	if s.Forcast.Sample != 0 {
		opts.ForcastSample = s.Forcast.Sample
	}
	if s.Forcast.Window != "" {
		w, err := readability.ParseWindow(s.Forcast.Window)
		if err != nil {
			return readability.Options{}, fmt.Errorf("forcast: %w", err)
		}
		opts.ForcastWindow = w
	}
	if s.LinsearWrite.Sample != 0 {
		opts.LinsearSample = s.LinsearWrite.Sample
	}
	if err := opts.Validate(); err != nil {
		return readability.Options{}, err
	}
	return opts, nil
}

// overlay returns s with every non-zero field of o applied on top.
func (s Settings) overlay(o Settings) Settings {
	if o.SMOG.MinSentences != 0 {
		s.SMOG.MinSentences = o.SMOG.MinSentences
	}
	if o.Forcast.Sample != 0 {
		s.Forcast.Sample = o.Forcast.Sample
	}
	if o.Forcast.Window != "" {
		s.Forcast.Window = o.Forcast.Window
	}
	if o.LinsearWrite.Sample != 0 {
		s.LinsearWrite.Sample = o.LinsearWrite.Sample
	}
	return s
}

// Definitions resolves the configured metric selection. An empty
// selection means every metric.
func (c *Config) Definitions() ([]readability.Definition, error) {
	return readability.Resolve(c.Metrics)
}
