package readability

import "fmt"

// Options tunes the sample sizes of the sample-based formulas.
type Options struct {
	// SMOGMinSentences is the sentence count below which SMOG returns 0.
	SMOGMinSentences int
	// ForcastSample is both the minimum word count and the window size
	// for Forcast.
	ForcastSample int
	// ForcastWindow selects the tokens the Forcast window is drawn from.
	ForcastWindow Window
	// LinsearSample caps the number of words Linsear Write reads.
	LinsearSample int
}

// DefaultOptions returns the published parameters of each formula.
func DefaultOptions() Options {
	return Options{
		SMOGMinSentences: 30,
		ForcastSample:    150,
		ForcastWindow:    WindowTokens,
		LinsearSample:    100,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if o.SMOGMinSentences < 1 {
		return fmt.Errorf("smog min-sentences must be at least 1, got %d", o.SMOGMinSentences)
	}
	if o.ForcastSample < 1 {
		return fmt.Errorf("forcast sample must be at least 1, got %d", o.ForcastSample)
	}
	if _, err := ParseWindow(string(o.ForcastWindow)); err != nil {
		return fmt.Errorf("forcast: %w", err)
	}
	if o.LinsearSample < 1 {
		return fmt.Errorf("linsear-write sample must be at least 1, got %d", o.LinsearSample)
	}
	return nil
}
