// Package ingest holds the word-level tokenization shared by the
// frequency aggregator and the prohibition extractor.
package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a normalized word plus the canonical byte offset of its first
// rune. The offset is the deterministic tie-break for equal counts.
type Token struct {
	Text   string
	Offset int
}

// Tokenizer handles text tokenization and normalization.
type Tokenizer struct {
	stopwords map[string]struct{}
	minLen    int
}

// NewTokenizer creates a tokenizer with the given stopword list. Words
// shorter than minLen runes are dropped; minLen below 1 means 1.
func NewTokenizer(stopwords []string, minLen int) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	if minLen < 1 {
		minLen = 1
	}
	return &Tokenizer{stopwords: stops, minLen: minLen}
}

// Tokenize splits text into case-folded tokens, removing stopwords and
// pure-numeric tokens. Hyphenated words stay whole ("undang-undang").
func (t *Tokenizer) Tokenize(text string) []Token {
	var tokens []Token
	var current strings.Builder
	start := 0

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := t.processToken(current.String())
		if word != "" {
			tokens = append(tokens, Token{Text: word, Offset: start})
		}
		current.Reset()
	}

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			if current.Len() == 0 {
				start = i
			}
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
		i += size
	}
	flush()

	return tokens
}

// processToken applies cleaning and stopword filtering. Returns "" for
// tokens that should be dropped.
func (t *Tokenizer) processToken(token string) string {
	word := strings.Trim(token, "-")
	for strings.Contains(word, "--") {
		word = strings.ReplaceAll(word, "--", "-")
	}
	if word == "" || utf8.RuneCountInString(word) < t.minLen {
		return ""
	}
	// Pure-numeric tokens carry no word-cloud value; mixed tokens like
	// "pp-82" are kept.
	if isNumericOnly(word) {
		return ""
	}
	if _, ok := t.stopwords[word]; ok {
		return ""
	}
	return word
}

func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}
