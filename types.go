package readability

import (
	"fmt"
	"strings"
)

// Window selects which tokens the fixed-size Forcast sample is drawn from.
type Window string

const (
	// WindowTokens samples the first tokens of the document, punctuation
	// included.
	WindowTokens Window = "tokens"
	// WindowWords samples the first tokens that pass the word filter.
	WindowWords Window = "words"
)

// ParseWindow parses a user-provided window value.
func ParseWindow(raw string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(WindowTokens):
		return WindowTokens, nil
	case string(WindowWords):
		return WindowWords, nil
	default:
		return "", fmt.Errorf("unknown window %q (supported: tokens, words)", raw)
	}
}

// Value is a computed score. Available is false when the metric's guard
// short-circuited; Number is then 0.
type Value struct {
	Number    float64
	Available bool
}

// AvailableValue constructs an available metric value.
func AvailableValue(n float64) Value {
	return Value{
		Number:    n,
		Available: true,
	}
}

// UnavailableValue constructs the zero sentinel returned by a failed guard.
func UnavailableValue() Value {
	return Value{}
}

// Definition describes a metric and how to compute it.
type Definition struct {
	ID          string
	Name        string
	Description string
	Precision   int
	Compute     func(a *Analysis) Value
}
