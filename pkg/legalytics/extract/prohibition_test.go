package extract

import (
	"strings"
	"testing"
)

func testLemmas() ProhibitionLemmas {
	return ProhibitionLemmas{
		Markers:     []string{"dilarang"},
		Negations:   []string{"tidak", "tak", "tanpa", "bukan"},
		Modals:      []string{"boleh", "dapat", "diperkenankan", "diizinkan"},
		ModalWindow: 3,
	}
}

func extractProhibitions(t *testing.T, raw string) []Match {
	t.Helper()
	doc, segs := prepare(t, raw)
	matches, err := NewProhibitionExtractor(testLemmas()).Extract(doc, segs)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	return matches
}

func TestProhibitionDirectMarker(t *testing.T) {
	raw := "Dilarang melakukan kegiatan tersebut tanpa izin."
	matches := extractProhibitions(t, raw)

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.Clause != raw {
		t.Errorf("clause = %q, want the full sentence", m.Clause)
	}
	if raw[m.Start:m.End] != raw {
		t.Errorf("source span = %q, not the full clause", raw[m.Start:m.End])
	}
}

func TestProhibitionNegationPlusModal(t *testing.T) {
	matches := extractProhibitions(t, "Setiap orang tidak boleh membuang limbah ke sungai.")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
}

func TestProhibitionModalWindow(t *testing.T) {
	// The modal sits within the window after the negation.
	matches := extractProhibitions(t, "Pihak ketiga tidak akan pernah diperkenankan mengakses data.")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	// Too far apart: no prohibition reading.
	matches = extractProhibitions(t, "Tidak satu pun ketentuan dalam pasal ini yang membuat kegiatan boleh dilakukan.")
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0 when the modal is outside the window", len(matches))
	}
}

func TestProhibitionOnePerSegment(t *testing.T) {
	raw := "Dilarang membuang limbah dan dilarang membakar sampah di kawasan ini."
	matches := extractProhibitions(t, raw)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1 (the clause, not the markers)", len(matches))
	}
	if !strings.Contains(matches[0].Clause, "membakar sampah") {
		t.Error("the single match should span the whole clause")
	}
}

func TestProhibitionNoFalsePositive(t *testing.T) {
	cases := []string{
		"Kegiatan tersebut diperbolehkan dengan izin tertulis.",
		"Setiap orang boleh mengajukan keberatan.",
		"Larangan ini dicabut sejak tahun lalu.",
	}
	for _, raw := range cases {
		if matches := extractProhibitions(t, raw); len(matches) != 0 {
			t.Errorf("%q: got %d matches, want 0", raw, len(matches))
		}
	}
}

func TestProhibitionPerSegmentAcrossDocument(t *testing.T) {
	raw := "Dilarang merokok di area ini. Pengunjung wajib lapor. Pengunjung tidak diperkenankan membawa senjata."
	matches := extractProhibitions(t, raw)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].SegmentIndex == matches[1].SegmentIndex {
		t.Error("matches should come from distinct segments")
	}
}
