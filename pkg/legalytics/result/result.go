// Package result defines the terminal output shape every presentation
// layer consumes, and assembles it from the upstream components. All
// four sequences are always present, even when empty; a consumer can
// rely on the shape without probing.
package result

import (
	"github.com/legalytics/legalytics/pkg/legalytics/extract"
	"github.com/legalytics/legalytics/pkg/legalytics/freq"
)

// WordCloudEntry is one weighted word.
type WordCloudEntry struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// MoneyEntry is one row of the money table.
type MoneyEntry struct {
	Value   string `json:"value"`
	Insight string `json:"insight,omitempty"`
}

// ProhibitionEntry is one row of the prohibitions table.
type ProhibitionEntry struct {
	Text    string `json:"text"`
	Insight string `json:"insight,omitempty"`
}

// DateEntry is one row of the dates table.
type DateEntry struct {
	Date    string `json:"date"`
	Insight string `json:"insight,omitempty"`
}

// Tables groups the three fact tables.
type Tables struct {
	Money        []MoneyEntry       `json:"money"`
	Prohibitions []ProhibitionEntry `json:"prohibitions"`
	Dates        []DateEntry        `json:"dates"`
}

// Diagnostic records a non-fatal failure alongside, not inside, the data
// tables.
type Diagnostic struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Result is the terminal extraction output.
type Result struct {
	WordCloud   []WordCloudEntry `json:"wordCloud"`
	Tables      Tables           `json:"tables"`
	Diagnostics []Diagnostic     `json:"diagnostics,omitempty"`
}

// ErrorObject is returned instead of a Result on fatal failure. Callers
// distinguish the two by the presence of the error key.
type ErrorObject struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// New returns an empty result with every sequence present.
func New() *Result {
	return &Result{
		WordCloud: []WordCloudEntry{},
		Tables: Tables{
			Money:        []MoneyEntry{},
			Prohibitions: []ProhibitionEntry{},
			Dates:        []DateEntry{},
		},
	}
}

// Assemble merges the four upstream outputs. Inputs are expected in
// their final order; nil slices produce empty tables, never missing
// keys.
func Assemble(words []freq.WordStat, money, prohibitions, dates []extract.Match, diags []Diagnostic) *Result {
	r := New()
	for _, w := range words {
		r.WordCloud = append(r.WordCloud, WordCloudEntry{Text: w.Word, Value: w.Weight})
	}
	for _, m := range money {
		r.Tables.Money = append(r.Tables.Money, MoneyEntry{Value: moneyValue(m), Insight: m.Insight})
	}
	for _, m := range prohibitions {
		r.Tables.Prohibitions = append(r.Tables.Prohibitions, ProhibitionEntry{Text: m.Clause, Insight: m.Insight})
	}
	for _, m := range dates {
		if m.Date == nil {
			continue
		}
		r.Tables.Dates = append(r.Tables.Dates, DateEntry{Date: m.Date.ISO(), Insight: m.Insight})
	}
	r.Diagnostics = diags
	return r
}

// moneyValue renders a money match for the table: "IDR 10000000", or
// the bare amount when the currency was not recognized.
func moneyValue(m extract.Match) string {
	if m.Money == nil {
		return m.RawText
	}
	if m.Money.Currency == extract.CurrencyUnknown {
		return m.Money.Amount
	}
	return m.Money.Currency + " " + m.Money.Amount
}
