// Package testutil provides a naive tokenizer that stands in for the
// external NLP pipeline in tests. It is good enough for short, clean
// English fixtures and nothing else.
package testutil

import (
	"strings"
	"unicode"

	"github.com/jeduden/readability"
)

// Tokenize splits text on whitespace, peels leading and trailing
// punctuation into their own tokens and ends a sentence after any token
// followed by '.', '?' or '!'.
func Tokenize(text string) readability.Document {
	var (
		sentences []readability.Sentence
		current   readability.Sentence
	)
	for _, field := range strings.Fields(text) {
		lead, core, trail := splitPunct(field)
		current = append(current, punctTokens(lead)...)
		if core != "" {
			current = append(current, readability.Token{
				Text:    core,
				IsDigit: isNumber(core),
			})
		}
		current = append(current, punctTokens(trail)...)
		if strings.ContainsAny(trail, ".?!") && len(current) > 0 {
			sentences = append(sentences, current)
			current = nil
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, current)
	}
	return readability.NewDocument(sentences...)
}

// Words returns a single-sentence document of n copies of word.
func Words(word string, n int) readability.Document {
	s := make(readability.Sentence, n)
	for i := range s {
		s[i] = readability.Token{Text: word}
	}
	return readability.NewDocument(s)
}

func splitPunct(field string) (lead, core, trail string) {
	runes := []rune(field)
	start, end := 0, len(runes)
	for start < end && isPunct(runes[start]) {
		start++
	}
	for end > start && isPunct(runes[end-1]) {
		end--
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

func punctTokens(s string) []readability.Token {
	var out []readability.Token
	for _, r := range s {
		out = append(out, readability.Token{Text: string(r), IsPunct: true})
	}
	return out
}

// isPunct treats apostrophes inside a word as part of the word; only
// runs at the edges reach this function.
func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
