package readability

import "strings"

// Token is a single lexical unit as emitted by an external tokenizer.
type Token struct {
	Text    string // surface text, case preserved
	IsPunct bool   // token is pure punctuation
	IsDigit bool   // token is a numeric literal
	Lemma   string // normalized base form; empty when unknown
}

// Sentence is an ordered run of tokens. Boundaries come from the caller
// and are never re-segmented.
type Sentence []Token

// Document is the read-only input to an Analysis. Tokens is the
// document-level token sequence; NewDocument derives it from Sentences,
// but a caller may supply its own.
type Document struct {
	Sentences []Sentence
	Tokens    []Token
}

// NewDocument builds a Document whose Tokens are the concatenation of
// sentences in order.
func NewDocument(sentences ...Sentence) Document {
	n := 0
	for _, s := range sentences {
		n += len(s)
	}
	tokens := make([]Token, 0, n)
	for _, s := range sentences {
		tokens = append(tokens, s...)
	}
	return Document{
		Sentences: sentences,
		Tokens:    tokens,
	}
}

// IsWord reports whether t passes the word filter: it is not punctuation
// and its text has no apostrophe. Contractions and possessives are left
// out of word counts on purpose.
func (t Token) IsWord() bool {
	return !t.IsPunct && !strings.ContainsRune(t.Text, '\'')
}

// words returns the tokens of doc that pass the word filter.
func (d Document) words() []Token {
	out := make([]Token, 0, len(d.Tokens))
	for _, t := range d.Tokens {
		if t.IsWord() {
			out = append(out, t)
		}
	}
	return out
}
