package readability

import (
	"strings"
	"unicode/utf8"

	"github.com/jeduden/readability/syllable"
	"github.com/jeduden/readability/wordlist"
)

// Counts holds the aggregate values every formula is computed from.
// It is a plain value: once computed for a document it does not change.
type Counts struct {
	Sentences         int
	Words             int
	Syllables         int
	Polysyllables     int // words with 3 or more syllables
	Letters           int // runes in tokens that are neither punctuation nor digits
	LettersWithDigits int // runes in tokens that are not punctuation
	DifficultWords    int
}

// Count reduces doc to its aggregate counts. easy is the reference list
// for difficult-word detection; a nil set marks every word difficult.
func Count(doc Document, easy *wordlist.Set) Counts {
	c := Counts{Sentences: len(doc.Sentences)}

	for _, t := range doc.Tokens {
		if t.IsPunct {
			continue
		}
		n := utf8.RuneCountInString(t.Text)
		c.LettersWithDigits += n
		if !t.IsDigit {
			c.Letters += n
		}

		if !t.IsWord() {
			continue
		}
		c.Words++
		syl := syllables(t.Text)
		c.Syllables += syl
		if syl >= 3 {
			c.Polysyllables++
		}
		if isDifficult(t, easy) {
			c.DifficultWords++
		}
	}
	return c
}

// syllables is syllable.Count with empty words counted as zero.
func syllables(text string) int {
	n, err := syllable.Count(text)
	if err != nil {
		return 0
	}
	return n
}

// isDifficult reports whether neither the surface form nor the lemma of
// t is on the easy list.
func isDifficult(t Token, easy *wordlist.Set) bool {
	if easy.Contains(strings.ToLower(t.Text)) {
		return false
	}
	if t.Lemma != "" && easy.Contains(strings.ToLower(t.Lemma)) {
		return false
	}
	return true
}
