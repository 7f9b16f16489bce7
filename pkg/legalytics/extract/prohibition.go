package extract

import (
	"strings"
	"unicode"

	"github.com/legalytics/legalytics/pkg/legalytics/segment"
	"github.com/legalytics/legalytics/pkg/legalytics/textnorm"
)

// ProhibitionLemmas is the closed marker set, loaded from configuration.
// A clause matches when it contains a direct marker ("dilarang") or a
// negation followed by an obligation/permission modal within the window.
type ProhibitionLemmas struct {
	Markers     []string
	Negations   []string
	Modals      []string
	ModalWindow int
}

// ProhibitionExtractor finds prohibition clauses. It deliberately emits
// at most one match per segment: the clause is the unit, and splitting
// grammatical sub-clauses reliably is out of scope.
type ProhibitionExtractor struct {
	markers   map[string]struct{}
	negations map[string]struct{}
	modals    map[string]struct{}
	window    int
}

// NewProhibitionExtractor builds an extractor from the configured lemma
// sets.
func NewProhibitionExtractor(lemmas ProhibitionLemmas) *ProhibitionExtractor {
	window := lemmas.ModalWindow
	if window <= 0 {
		window = 3
	}
	return &ProhibitionExtractor{
		markers:   lowerSet(lemmas.Markers),
		negations: lowerSet(lemmas.Negations),
		modals:    lowerSet(lemmas.Modals),
		window:    window,
	}
}

func lowerSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Kind implements Extractor.
func (e *ProhibitionExtractor) Kind() Kind { return KindProhibition }

// Extract implements Extractor.
func (e *ProhibitionExtractor) Extract(doc *textnorm.Doc, segs []segment.Segment) ([]Match, error) {
	var matches []Match
	for _, seg := range segs {
		words := clauseWords(seg.Text)
		if !e.prohibits(words) {
			continue
		}

		// Trim the clause to its content, keeping offsets aligned.
		from := seg.Start + leadingSpace(seg.Text)
		trimmed := strings.TrimSpace(seg.Text)
		to := from + len(trimmed)

		start, end := doc.OrigRange(from, to)
		matches = append(matches, Match{
			Kind:         KindProhibition,
			RawText:      trimmed,
			SegmentIndex: seg.Index,
			Start:        start,
			End:          end,
			Clause:       strings.ReplaceAll(trimmed, "\n", " "),
		})
	}
	return matches, nil
}

// prohibits checks the marker lemmas against the clause word list.
func (e *ProhibitionExtractor) prohibits(words []string) bool {
	for i, w := range words {
		if _, ok := e.markers[w]; ok {
			return true
		}
		if _, ok := e.negations[w]; !ok {
			continue
		}
		for j := i + 1; j <= i+e.window && j < len(words); j++ {
			if _, ok := e.modals[words[j]]; ok {
				return true
			}
		}
	}
	return false
}

// clauseWords lowercases and splits on non-letters. The tokenizer in
// the ingest package is not reused here: it filters stopwords, and the
// negation lemmas are stopwords.
func clauseWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \n\t"))
}
