// Package segment splits canonical document text into an ordered,
// gap-free sequence of sentence-like spans. Legal prose is full of
// abbreviations and numbered markers ("Pasal 1", "ayat (2)"), so the
// boundary heuristic carries guards for both; when no boundary shows up
// within the configured maximum length the splitter degrades to a hard
// split rather than dropping text.
package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/legalytics/legalytics/pkg/legalytics/textnorm"
)

// Segment is one contiguous span of the canonical text. Start/End are
// canonical byte offsets; OrigStart/OrigEnd locate the same span in the
// raw input so matches stay verifiable against the source.
type Segment struct {
	Index     int
	Start     int
	End       int
	OrigStart int
	OrigEnd   int
	Text      string
}

// Options configures a Segmenter.
type Options struct {
	MaxLen        int
	Abbreviations []string
}

// Segmenter splits normalized documents. Safe for concurrent use.
type Segmenter struct {
	maxLen  int
	abbrevs map[string]struct{}
}

// New creates a Segmenter. Abbreviations are matched case-insensitively
// against the whole token preceding a period, including the period.
func New(opts Options) *Segmenter {
	abbrevs := make(map[string]struct{}, len(opts.Abbreviations))
	for _, a := range opts.Abbreviations {
		abbrevs[strings.ToLower(a)] = struct{}{}
	}
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 2000
	}
	return &Segmenter{maxLen: maxLen, abbrevs: abbrevs}
}

// Split segments a normalized document. The returned segments partition
// the canonical text exactly: segment i ends where segment i+1 starts,
// the first starts at 0 and the last ends at len(doc.Text). The boolean
// reports whether the hard-split fallback fired.
func (s *Segmenter) Split(doc *textnorm.Doc) ([]Segment, bool) {
	if doc.Empty() {
		return nil, false
	}
	text := doc.Text

	bounds := []int{0}
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r != '.' && r != '?' && r != '!' {
			i += size
			continue
		}
		if r == '.' && s.guarded(text, i) {
			i += size
			continue
		}

		// Allow closing quotes or brackets between the terminal
		// punctuation and the whitespace.
		j := i + size
		for j < len(text) {
			cr, csize := utf8.DecodeRuneInString(text[j:])
			if cr == '"' || cr == '\'' || cr == ')' || cr == ']' || cr == '”' {
				j += csize
				continue
			}
			break
		}
		if j >= len(text) {
			i = j
			continue
		}
		if text[j] != ' ' && text[j] != '\n' {
			i += size
			continue
		}
		k := j
		for k < len(text) && (text[k] == ' ' || text[k] == '\n') {
			k++
		}
		if k >= len(text) {
			i = k
			continue
		}
		next, _ := utf8.DecodeRuneInString(text[k:])
		if !unicode.IsUpper(next) && !unicode.IsDigit(next) && next != '(' {
			i += size
			continue
		}
		bounds = append(bounds, k)
		i = k
	}
	bounds = append(bounds, len(text))

	raw := make([][2]int, 0, len(bounds)-1)
	for b := 0; b+1 < len(bounds); b++ {
		if bounds[b] < bounds[b+1] {
			raw = append(raw, [2]int{bounds[b], bounds[b+1]})
		}
	}

	spans, fellBack := s.hardSplit(text, raw)

	segs := make([]Segment, len(spans))
	for idx, sp := range spans {
		origStart := 0
		if idx > 0 {
			origStart = segs[idx-1].OrigEnd
		}
		origEnd := doc.OrigLen()
		if idx+1 < len(spans) {
			origEnd = doc.Orig(spans[idx+1][0])
		}
		segs[idx] = Segment{
			Index:     idx,
			Start:     sp[0],
			End:       sp[1],
			OrigStart: origStart,
			OrigEnd:   origEnd,
			Text:      text[sp[0]:sp[1]],
		}
	}
	return segs, fellBack
}

// guarded reports whether the period at pos must not end a sentence:
// it closes a known abbreviation or a numbered-list marker.
func (s *Segmenter) guarded(text string, pos int) bool {
	start := pos
	for start > 0 && text[start-1] != ' ' && text[start-1] != '\n' {
		start--
	}
	token := strings.ToLower(text[start : pos+1])
	if _, ok := s.abbrevs[token]; ok {
		return true
	}
	digits := strings.TrimSuffix(token, ".")
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// hardSplit enforces the maximum segment length, cutting at the last
// whitespace before the limit when possible, at a rune boundary
// otherwise. Content is never dropped.
func (s *Segmenter) hardSplit(text string, spans [][2]int) ([][2]int, bool) {
	out := make([][2]int, 0, len(spans))
	fellBack := false
	for _, sp := range spans {
		start, end := sp[0], sp[1]
		for end-start > s.maxLen {
			fellBack = true
			cut := -1
			for p := start + s.maxLen; p > start; p-- {
				if text[p-1] == ' ' || text[p-1] == '\n' {
					cut = p
					break
				}
			}
			if cut <= start {
				cut = start + s.maxLen
				for cut > start && !utf8.RuneStart(text[cut]) {
					cut--
				}
				if cut == start {
					cut = end
				}
			}
			out = append(out, [2]int{start, cut})
			start = cut
		}
		if start < end {
			out = append(out, [2]int{start, end})
		}
	}
	return out, fellBack
}
