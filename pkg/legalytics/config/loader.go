package config

import (
	"github.com/legalytics/legalytics/pkg/legalytics/extract"
	"github.com/legalytics/legalytics/pkg/legalytics/freq"
	"github.com/legalytics/legalytics/pkg/legalytics/ingest"
	"github.com/legalytics/legalytics/pkg/legalytics/segment"
)

// Components holds the ready-to-use pipeline components a Config
// describes.
type Components struct {
	Segmenter        *segment.Segmenter
	Money            *extract.MoneyExtractor
	Date             *extract.DateExtractor
	Prohibition      *extract.ProhibitionExtractor
	Aggregator       *freq.Aggregator
	OverlapThreshold float64
}

// Loader loads configuration and constructs components. An empty
// ConfigPath means compiled-in defaults.
type Loader struct {
	ConfigPath string
}

// Load reads the configuration and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	cfg := Default()
	if l.ConfigPath != "" {
		loaded, err := Load(l.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return cfg.Components(), nil
}

// Components assembles pipeline components from the configuration
// values.
func (c *Config) Components() *Components {
	currencies := make([]extract.CurrencySpec, len(c.Currencies))
	for i, cur := range c.Currencies {
		currencies[i] = extract.CurrencySpec{
			Code:         cur.Code,
			Markers:      cur.Markers,
			DecimalComma: cur.DecimalComma,
			Multipliers:  cur.Multipliers,
		}
	}

	tokenizer := ingest.NewTokenizer(c.Stopwords, c.WordCloud.MinWordLen)

	return &Components{
		Segmenter: segment.New(segment.Options{
			MaxLen:        c.Segment.MaxLen,
			Abbreviations: c.Segment.Abbreviations,
		}),
		Money: extract.NewMoneyExtractor(currencies),
		Date: extract.NewDateExtractor(extract.DatePolicy{
			DayFirst:   c.Date.DayFirst,
			MonthNames: c.Date.MonthNames,
			DayNames:   c.Date.DayNames,
		}),
		Prohibition: extract.NewProhibitionExtractor(extract.ProhibitionLemmas{
			Markers:     c.Prohibition.Markers,
			Negations:   c.Prohibition.Negations,
			Modals:      c.Prohibition.Modals,
			ModalWindow: c.Prohibition.ModalWindow,
		}),
		Aggregator:       freq.NewAggregator(tokenizer, c.WordCloud.MaxWords, c.WordCloud.MaxWeight),
		OverlapThreshold: c.Dedup.OverlapThreshold,
	}
}
