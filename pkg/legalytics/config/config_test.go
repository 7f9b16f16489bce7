package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/legalytics/legalytics/pkg/legalytics/internalerr"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultCoversRequiredTables(t *testing.T) {
	cfg := Default()

	codes := make(map[string]bool)
	for _, c := range cfg.Currencies {
		codes[c.Code] = true
	}
	for _, want := range []string{"IDR", "USD", "EUR", "GBP", "JPY"} {
		if !codes[want] {
			t.Errorf("default currency table missing %s", want)
		}
	}
	if cfg.Date.MonthNames["januari"] != 1 || cfg.Date.MonthNames["desember"] != 12 {
		t.Error("default month names incomplete")
	}
	if !cfg.Date.DayFirst {
		t.Error("the documented numeric-date default is day-first")
	}
	if len(cfg.Stopwords) == 0 {
		t.Error("default stopword list is empty")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legalytics.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
stopwords: [alpha, beta]
date:
  day_first: false
wordcloud:
  max_words: 10
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Stopwords) != 2 || cfg.Stopwords[0] != "alpha" {
		t.Errorf("stopwords = %v", cfg.Stopwords)
	}
	if cfg.Date.DayFirst {
		t.Error("day_first override ignored")
	}
	if cfg.WordCloud.MaxWords != 10 {
		t.Errorf("max_words = %d, want 10", cfg.WordCloud.MaxWords)
	}
	// Untouched keys keep their defaults.
	if cfg.WordCloud.MaxWeight != 100 {
		t.Errorf("max_weight = %v, want the default 100", cfg.WordCloud.MaxWeight)
	}
	if len(cfg.Currencies) == 0 {
		t.Error("currency table should keep its default")
	}
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	path := writeConfig(t, "dedup:\n  overlap_threshold: 1.5\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestComponentsAssemble(t *testing.T) {
	comp := Default().Components()
	if comp.Segmenter == nil || comp.Money == nil || comp.Date == nil ||
		comp.Prohibition == nil || comp.Aggregator == nil {
		t.Fatal("components incomplete")
	}
	if comp.OverlapThreshold != 0.5 {
		t.Errorf("overlap threshold = %v, want 0.5", comp.OverlapThreshold)
	}
}

func TestLoaderDefaults(t *testing.T) {
	comp, err := (&Loader{}).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if comp.Aggregator == nil {
		t.Fatal("loader without a path should fall back to defaults")
	}
}
