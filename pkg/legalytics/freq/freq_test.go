package freq

import (
	"strings"
	"testing"

	"github.com/legalytics/legalytics/pkg/legalytics/ingest"
)

func newTestAggregator(maxWords int) *Aggregator {
	tok := ingest.NewTokenizer([]string{"yang", "dan", "untuk"}, 2)
	return NewAggregator(tok, maxWords, 100)
}

func TestAggregateMaxWeightBound(t *testing.T) {
	stats := newTestAggregator(30).Aggregate("denda denda denda pajak pajak izin")
	if len(stats) == 0 {
		t.Fatal("no stats produced")
	}
	if stats[0].Weight != 100 {
		t.Errorf("top weight = %v, want exactly the configured bound 100", stats[0].Weight)
	}
	for _, s := range stats {
		if s.Weight < 0 || s.Weight > 100 {
			t.Errorf("weight %v outside [0, 100]", s.Weight)
		}
	}
}

func TestAggregateCountsAndOrder(t *testing.T) {
	stats := newTestAggregator(30).Aggregate("denda denda denda pajak pajak izin")
	want := []string{"denda", "pajak", "izin"}
	if len(stats) != len(want) {
		t.Fatalf("got %d stats, want %d", len(stats), len(want))
	}
	for i, w := range want {
		if stats[i].Word != w {
			t.Errorf("stat %d = %q, want %q", i, stats[i].Word, w)
		}
	}
	if stats[0].Count != 3 || stats[1].Count != 2 || stats[2].Count != 1 {
		t.Errorf("counts = %d, %d, %d", stats[0].Count, stats[1].Count, stats[2].Count)
	}
}

func TestAggregateTieBreakByFirstOccurrence(t *testing.T) {
	stats := newTestAggregator(30).Aggregate("izin limbah sungai")
	want := []string{"izin", "limbah", "sungai"}
	for i, w := range want {
		if stats[i].Word != w {
			t.Errorf("equal counts must order by first occurrence: stat %d = %q, want %q",
				i, stats[i].Word, w)
		}
	}
}

func TestAggregateFiltersStopwords(t *testing.T) {
	stats := newTestAggregator(30).Aggregate("peraturan yang berlaku dan mengikat untuk semua")
	for _, s := range stats {
		if s.Word == "yang" || s.Word == "dan" || s.Word == "untuk" {
			t.Errorf("stopword %q survived aggregation", s.Word)
		}
	}
}

func TestAggregateDeduplicatesByCaseFoldedForm(t *testing.T) {
	stats := newTestAggregator(30).Aggregate("Denda DENDA denda")
	if len(stats) != 1 {
		t.Fatalf("got %d distinct words, want 1", len(stats))
	}
	if stats[0].Count != 3 {
		t.Errorf("count = %d, want 3", stats[0].Count)
	}
}

func TestAggregateTruncatesToMaxWords(t *testing.T) {
	words := []string{"satu", "duo", "tiga", "empat", "lima", "enam"}
	text := strings.Join(words, " ")
	stats := newTestAggregator(3).Aggregate(text)
	if len(stats) != 3 {
		t.Errorf("got %d stats, want the 3 most frequent", len(stats))
	}
}

func TestAggregateEmptyText(t *testing.T) {
	if stats := newTestAggregator(30).Aggregate(""); stats != nil {
		t.Errorf("empty text should aggregate to nil, got %v", stats)
	}
}
