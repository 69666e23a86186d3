// Package readability reduces a tokenized English document to standard
// readability scores: Flesch-Kincaid grade and reading ease, Dale-Chall,
// SMOG, Coleman-Liau, the Automated Readability Index, FORCAST and
// Linsear Write.
//
// The package never segments or tokenizes text. Callers build a Document
// from their own tokenizer's output and a wordlist.Set of easy words, then
// either call Analyze for every score or query an Analysis one metric at
// a time. Formulas whose guard fails (no sentences, no words, a sample
// too small) score 0 and report Available == false through Value.
package readability
