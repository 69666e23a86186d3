// Package syllable estimates English syllable counts with a vowel-group
// heuristic. The estimate is not dictionary-exact; every score in this
// module is computed from it so the scores stay consistent with each other.
package syllable

import (
	"errors"
	"strings"
)

// ErrEmptyWord is returned when a word is empty after normalization.
var ErrEmptyWord = errors.New("syllable: empty word")

// trailing runes stripped from the end of a word before counting.
const trailing = ".,:;?!"

// Rule is a post-processing adjustment applied to the raw vowel-group
// count. Rules run in the order returned by Rules.
type Rule struct {
	Name  string
	Apply func(word []rune, count int) int
}

var rules = []Rule{
	{Name: "silent-e", Apply: silentE},
	{Name: "consonant-le", Apply: consonantLE},
	{Name: "at-least-one", Apply: atLeastOne},
}

// Rules returns the adjustment rules in application order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// Count returns the estimated syllable count of word. The result is at
// least 1 unless err is ErrEmptyWord, in which case it is 0.
func Count(word string) (int, error) {
	w := Normalize(word)
	if strings.TrimSpace(w) == "" {
		return 0, ErrEmptyWord
	}

	runes := []rune(w)
	count := vowelGroups(runes)
	for _, r := range rules {
		count = r.Apply(runes, count)
	}
	return count, nil
}

// Normalize lowercases word and strips trailing sentence punctuation.
// Interior punctuation is left alone.
func Normalize(word string) string {
	return strings.TrimRight(strings.ToLower(word), trailing)
}

// vowelGroups counts the positions that start a run of vowels.
func vowelGroups(word []rune) int {
	count := 0
	for i, r := range word {
		if isVowel(r) && (i == 0 || !isVowel(word[i-1])) {
			count++
		}
	}
	return count
}

func silentE(word []rune, count int) int {
	if word[len(word)-1] == 'e' {
		return count - 1
	}
	return count
}

// consonantLE restores the syllable silentE removed from words such as
// "bubble" or "table".
func consonantLE(word []rune, count int) int {
	n := len(word)
	if n > 2 && word[n-2] == 'l' && word[n-1] == 'e' && !isVowel(word[n-3]) {
		return count + 1
	}
	return count
}

func atLeastOne(_ []rune, count int) int {
	if count <= 0 {
		return 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
