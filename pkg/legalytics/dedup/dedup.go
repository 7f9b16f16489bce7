// Package dedup merges matches that restate the same fact and fixes the
// final, deterministic ordering of each table.
package dedup

import (
	"fmt"
	"sort"

	"github.com/legalytics/legalytics/pkg/legalytics/extract"
)

// Merge collapses matches of one kind whose source offset ranges overlap
// by more than threshold (a fraction of the smaller range), keeping the
// earliest-appearing instance. Survivors are ordered by ascending source
// offset, ties broken by end offset then segment index, and the earliest
// mention of a fact restated in later clauses gets an insight string.
func Merge(matches []extract.Match, threshold float64) []extract.Match {
	if len(matches) == 0 {
		return nil
	}

	sorted := make([]extract.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		if sorted[i].End != sorted[j].End {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].SegmentIndex < sorted[j].SegmentIndex
	})

	var survivors []extract.Match
	for _, m := range sorted {
		dup := false
		for _, s := range survivors {
			if overlapFraction(s, m) > threshold {
				dup = true
				break
			}
		}
		if !dup {
			survivors = append(survivors, m)
		}
	}

	attachInsights(survivors)
	return survivors
}

// overlapFraction is the intersection length over the smaller range
// length. Empty ranges never overlap.
func overlapFraction(a, b extract.Match) float64 {
	lo := a.Start
	if b.Start > lo {
		lo = b.Start
	}
	hi := a.End
	if b.End < hi {
		hi = b.End
	}
	if hi <= lo {
		return 0
	}
	smaller := a.End - a.Start
	if l := b.End - b.Start; l < smaller {
		smaller = l
	}
	if smaller <= 0 {
		return 0
	}
	return float64(hi-lo) / float64(smaller)
}

// attachInsights marks the earliest mention of each normalized fact with
// the number of later clauses restating it. Derived only; later mentions
// stay in the table.
func attachInsights(matches []extract.Match) {
	first := make(map[string]int, len(matches))
	restated := make(map[string]int, len(matches))
	for i, m := range matches {
		key := m.Key()
		if fi, ok := first[key]; ok {
			if m.SegmentIndex != matches[fi].SegmentIndex {
				restated[key]++
			}
			continue
		}
		first[key] = i
	}
	for key, n := range restated {
		if n == 0 {
			continue
		}
		i := first[key]
		if n == 1 {
			matches[i].Insight = "restated in 1 later clause"
		} else {
			matches[i].Insight = fmt.Sprintf("restated in %d later clauses", n)
		}
	}
}
