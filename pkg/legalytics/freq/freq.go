// Package freq computes the word-frequency distribution behind the word
// cloud.
package freq

import (
	"sort"

	"github.com/legalytics/legalytics/pkg/legalytics/ingest"
)

// WordStat is one distinct word with its count and display weight. The
// weight is linear in count and bounded: the most frequent word maps
// exactly to the configured maximum.
type WordStat struct {
	Word   string
	Count  int
	Weight float64
}

// Aggregator counts case-folded, stopword-filtered words.
type Aggregator struct {
	tok       *ingest.Tokenizer
	maxWords  int
	maxWeight float64
}

// NewAggregator creates an aggregator over the given tokenizer, keeping
// the maxWords most frequent words and scaling weights into
// (0, maxWeight].
func NewAggregator(tok *ingest.Tokenizer, maxWords int, maxWeight float64) *Aggregator {
	if maxWords <= 0 {
		maxWords = 30
	}
	if maxWeight <= 0 {
		maxWeight = 100
	}
	return &Aggregator{tok: tok, maxWords: maxWords, maxWeight: maxWeight}
}

// Aggregate tokenizes the canonical text and returns word stats ordered
// by descending count; equal counts order by first occurrence, which
// keeps output deterministic across runs and across extractor
// parallelism.
func (a *Aggregator) Aggregate(text string) []WordStat {
	tokens := a.tok.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	firstAt := make(map[string]int, len(tokens))
	for _, t := range tokens {
		if _, ok := firstAt[t.Text]; !ok {
			firstAt[t.Text] = t.Offset
		}
		counts[t.Text]++
	}

	stats := make([]WordStat, 0, len(counts))
	for word, count := range counts {
		stats = append(stats, WordStat{Word: word, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return firstAt[stats[i].Word] < firstAt[stats[j].Word]
	})

	if len(stats) > a.maxWords {
		stats = stats[:a.maxWords]
	}

	max := stats[0].Count
	for i := range stats {
		stats[i].Weight = float64(stats[i].Count) / float64(max) * a.maxWeight
	}
	return stats
}
