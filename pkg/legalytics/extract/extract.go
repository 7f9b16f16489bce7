// Package extract implements the three classified-fact extractors. Each
// extractor is a pure function over the segment sequence producing its
// own Match variant; the variants share one offset/context contract so
// downstream merging and assembly treat them uniformly.
package extract

import (
	"fmt"

	"github.com/legalytics/legalytics/pkg/legalytics/segment"
	"github.com/legalytics/legalytics/pkg/legalytics/textnorm"
)

// Kind discriminates the Match variants.
type Kind string

const (
	KindMoney       Kind = "money"
	KindDate        Kind = "date"
	KindProhibition Kind = "prohibition"
)

// CurrencyUnknown marks amounts whose currency marker was not in the
// configured set; the amount is still reported.
const CurrencyUnknown = "unknown"

// MoneyValue is the normalized payload of a money match. Amount is a
// canonical decimal string: no grouping separators, '.' as the decimal
// point, never negative.
type MoneyValue struct {
	Amount   string
	Currency string
}

// DateValue is a resolved calendar date.
type DateValue struct {
	Year  int
	Month int
	Day   int
}

// ISO renders the date in its unambiguous canonical form.
func (d DateValue) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Match is one classified fact. Exactly one of the kind payloads is set,
// according to Kind. Start/End are byte offsets into the original raw
// text so every match can be verified against the source.
type Match struct {
	Kind         Kind
	RawText      string
	SegmentIndex int
	Start        int
	End          int

	Money  *MoneyValue
	Date   *DateValue
	Clause string

	// Approximate marks values introduced by an approximation word
	// ("sekitar"); LowConfidence marks ambiguous numeric parses that
	// fell back to the conservative interpretation.
	Approximate   bool
	LowConfidence bool

	// Insight is a short derived explanation attached by the
	// deduplicator; never required for correctness.
	Insight string
}

// Key returns the normalized identity used to count restatements of the
// same fact across the document.
func (m Match) Key() string {
	switch m.Kind {
	case KindMoney:
		if m.Money != nil {
			return string(m.Kind) + "|" + m.Money.Currency + "|" + m.Money.Amount
		}
	case KindDate:
		if m.Date != nil {
			return string(m.Kind) + "|" + m.Date.ISO()
		}
	case KindProhibition:
		return string(m.Kind) + "|" + m.Clause
	}
	return string(m.Kind) + "|" + m.RawText
}

// Extractor is the common contract of the three matchers. Extract must
// be read-only over its inputs so extractors can run in parallel.
type Extractor interface {
	Kind() Kind
	Extract(doc *textnorm.Doc, segs []segment.Segment) ([]Match, error)
}
