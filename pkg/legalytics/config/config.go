package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/legalytics/legalytics/pkg/legalytics/internalerr"
)

// Config holds every tunable the extraction engine reads. It is loaded
// once at startup and must not be mutated afterwards; concurrent document
// analyses share it read-only.
type Config struct {
	Stopwords   []string          `yaml:"stopwords"`
	Currencies  []Currency        `yaml:"currencies"`
	Date        DateConfig        `yaml:"date"`
	Prohibition ProhibitionConfig `yaml:"prohibition"`
	Dedup       DedupConfig       `yaml:"dedup"`
	WordCloud   WordCloudConfig   `yaml:"wordcloud"`
	Segment     SegmentConfig     `yaml:"segment"`
}

// Currency describes one recognized currency and its parsing convention.
type Currency struct {
	Code    string   `yaml:"code"`
	Markers []string `yaml:"markers"`
	// DecimalComma selects comma-as-decimal / dot-as-thousands parsing
	// (the Indonesian convention) instead of the reverse.
	DecimalComma bool `yaml:"decimal_comma"`
	// Multipliers allows scale words (ribu, juta, ...) after the amount.
	Multipliers bool `yaml:"multipliers"`
}

// DateConfig fixes the date-resolution policy so ambiguous numeric dates
// are never guessed per match.
type DateConfig struct {
	// DayFirst is the documented default ordering for ambiguous numeric
	// dates (DD/MM/YYYY when true). A field value above 12 overrides it.
	DayFirst   bool           `yaml:"day_first"`
	MonthNames map[string]int `yaml:"month_names"`
	DayNames   []string       `yaml:"day_names"`
}

// ProhibitionConfig holds the closed marker lemma sets. Extending the
// sets is a configuration change, not a code change.
type ProhibitionConfig struct {
	Markers   []string `yaml:"markers"`
	Negations []string `yaml:"negations"`
	Modals    []string `yaml:"modals"`
	// ModalWindow is how many tokens after a negation a modal may appear.
	ModalWindow int `yaml:"modal_window"`
}

// DedupConfig controls match merging.
type DedupConfig struct {
	// OverlapThreshold is the fraction of the smaller offset range that
	// must be covered by the intersection for two matches to merge.
	OverlapThreshold float64 `yaml:"overlap_threshold"`
}

// WordCloudConfig controls frequency aggregation.
type WordCloudConfig struct {
	MaxWords   int     `yaml:"max_words"`
	MaxWeight  float64 `yaml:"max_weight"`
	MinWordLen int     `yaml:"min_word_len"`
}

// SegmentConfig controls sentence segmentation.
type SegmentConfig struct {
	// MaxLen is the hard-split fallback length in bytes.
	MaxLen        int      `yaml:"max_len"`
	Abbreviations []string `yaml:"abbreviations"`
}

// Default returns the compiled-in configuration tuned for Indonesian
// legal and regulatory documents.
func Default() *Config {
	return &Config{
		Stopwords: defaultStopwords(),
		Currencies: []Currency{
			{Code: "IDR", Markers: []string{"Rp", "IDR", "Rupiah"}, DecimalComma: true, Multipliers: true},
			{Code: "USD", Markers: []string{"$", "USD", "US$"}},
			{Code: "EUR", Markers: []string{"€", "EUR"}},
			{Code: "GBP", Markers: []string{"£", "GBP"}},
			{Code: "JPY", Markers: []string{"¥", "JPY"}},
		},
		Date: DateConfig{
			DayFirst: true,
			MonthNames: map[string]int{
				"januari": 1, "februari": 2, "maret": 3, "april": 4,
				"mei": 5, "juni": 6, "juli": 7, "agustus": 8,
				"september": 9, "oktober": 10, "november": 11, "desember": 12,
			},
			DayNames: []string{"senin", "selasa", "rabu", "kamis", "jumat", "sabtu", "minggu"},
		},
		Prohibition: ProhibitionConfig{
			Markers:     []string{"dilarang"},
			Negations:   []string{"tidak", "tak", "tanpa", "bukan"},
			Modals:      []string{"boleh", "dapat", "diperkenankan", "diizinkan", "dibenarkan", "diperbolehkan"},
			ModalWindow: 3,
		},
		Dedup:     DedupConfig{OverlapThreshold: 0.5},
		WordCloud: WordCloudConfig{MaxWords: 30, MaxWeight: 100, MinWordLen: 2},
		Segment: SegmentConfig{
			MaxLen: 2000,
			Abbreviations: []string{
				"no.", "nomor.", "psl.", "hal.", "tgl.", "jl.",
				"dll.", "dsb.", "dst.", "sdr.", "tsb.", "ttd.",
				"a.n.", "u.b.", "u.p.", "s.d.", "d.a.", "q.q.",
				"prof.", "dr.", "drs.", "ir.", "h.", "st.",
			},
		},
	}
}

// Load reads a YAML file over the defaults: keys present in the file
// override, absent keys keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that would otherwise fail deep inside the
// pipeline.
func (c *Config) Validate() error {
	if c.Dedup.OverlapThreshold < 0 || c.Dedup.OverlapThreshold > 1 {
		return fmt.Errorf("%w: dedup.overlap_threshold %v outside [0,1]",
			internalerr.ErrInvalidConfig, c.Dedup.OverlapThreshold)
	}
	if c.WordCloud.MaxWeight <= 0 {
		return fmt.Errorf("%w: wordcloud.max_weight must be positive", internalerr.ErrInvalidConfig)
	}
	if c.WordCloud.MaxWords <= 0 {
		return fmt.Errorf("%w: wordcloud.max_words must be positive", internalerr.ErrInvalidConfig)
	}
	if c.Segment.MaxLen <= 0 {
		return fmt.Errorf("%w: segment.max_len must be positive", internalerr.ErrInvalidConfig)
	}
	for _, cur := range c.Currencies {
		if cur.Code == "" || len(cur.Markers) == 0 {
			return fmt.Errorf("%w: currency entries need a code and at least one marker",
				internalerr.ErrInvalidConfig)
		}
	}
	for name, m := range c.Date.MonthNames {
		if m < 1 || m > 12 {
			return fmt.Errorf("%w: month %q maps to %d", internalerr.ErrInvalidConfig, name, m)
		}
	}
	return nil
}
