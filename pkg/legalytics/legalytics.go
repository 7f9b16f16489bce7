// Package legalytics is the document entity-extraction and aggregation
// engine: given raw legal or regulatory text it produces a ranked
// word-frequency distribution and three classified fact tables (monetary
// amounts, prohibitions, dates), each entry traceable to its source
// offsets.
//
// Processing one document is a pure pipeline:
//
//	raw text → normalize → segment → {money, dates, prohibitions, word
//	frequency} → merge/rank → assemble
//
// The engine is stateless across documents; everything it shares is
// read-only configuration, so any number of documents may be analyzed
// concurrently on one Engine.
package legalytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/legalytics/legalytics/pkg/legalytics/config"
	"github.com/legalytics/legalytics/pkg/legalytics/dedup"
	"github.com/legalytics/legalytics/pkg/legalytics/extract"
	"github.com/legalytics/legalytics/pkg/legalytics/freq"
	"github.com/legalytics/legalytics/pkg/legalytics/result"
	"github.com/legalytics/legalytics/pkg/legalytics/segment"
	"github.com/legalytics/legalytics/pkg/legalytics/store"
	"github.com/legalytics/legalytics/pkg/legalytics/textnorm"
)

// Engine runs the extraction pipeline.
type Engine struct {
	segmenter  *segment.Segmenter
	extractors []extract.Extractor
	aggregator *freq.Aggregator
	overlap    float64
}

// Options configures an Engine.
type Options struct {
	Segmenter        *segment.Segmenter
	Money            extract.Extractor
	Date             extract.Extractor
	Prohibition      extract.Extractor
	Aggregator       *freq.Aggregator
	OverlapThreshold float64
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	return &Engine{
		segmenter:  opts.Segmenter,
		extractors: []extract.Extractor{opts.Money, opts.Date, opts.Prohibition},
		aggregator: opts.Aggregator,
		overlap:    opts.OverlapThreshold,
	}
}

// FromComponents creates an Engine from loaded configuration components.
func FromComponents(c *config.Components) *Engine {
	return New(Options{
		Segmenter:        c.Segmenter,
		Money:            c.Money,
		Date:             c.Date,
		Prohibition:      c.Prohibition,
		Aggregator:       c.Aggregator,
		OverlapThreshold: c.OverlapThreshold,
	})
}

// NewDefault creates an Engine from the compiled-in configuration.
func NewDefault() *Engine {
	return FromComponents(config.Default().Components())
}

// Analyze runs the full pipeline over raw document text. Undecodable
// input fails with internalerr.ErrEncoding and no partial result; every
// other failure degrades into an empty table plus a diagnostic, so
// syntactically valid input always yields a well-shaped result. Empty or
// whitespace-only input is a valid document with empty tables.
func (e *Engine) Analyze(ctx context.Context, raw string) (*result.Result, error) {
	doc, err := textnorm.Normalize(raw)
	if err != nil {
		return nil, err
	}
	if doc.Empty() {
		return result.New(), nil
	}

	segs, fellBack := e.segmenter.Split(doc)
	var diags []result.Diagnostic
	if fellBack {
		diags = append(diags, result.Diagnostic{
			Stage:   "segment",
			Message: "no sentence boundary within the maximum segment length; hard split applied",
		})
	}

	// The extractors and the aggregator are read-only over the same
	// immutable artifacts; running them in parallel cannot change the
	// output ordering, which the merge stage fixes deterministically.
	g, gctx := errgroup.WithContext(ctx)
	matches := make([][]extract.Match, len(e.extractors))
	extractErrs := make([]error, len(e.extractors))
	for i := range e.extractors {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ms, err := e.extractors[i].Extract(doc, segs)
			if err != nil {
				// Non-fatal: the table is emitted empty and the failure
				// lands in the diagnostics side-channel.
				extractErrs[i] = err
				return nil
			}
			matches[i] = ms
			return nil
		})
	}
	var words []freq.WordStat
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		words = e.aggregator.Aggregate(doc.Text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, exErr := range extractErrs {
		if exErr != nil {
			diags = append(diags, result.Diagnostic{
				Stage:   string(e.extractors[i].Kind()),
				Message: exErr.Error(),
			})
			matches[i] = nil
		}
	}

	merged := make([][]extract.Match, len(matches))
	for i, ms := range matches {
		merged[i] = dedup.Merge(ms, e.overlap)
	}

	return result.Assemble(words, merged[0], merged[2], merged[1], diags), nil
}

// AnalyzeDocument resolves a document by identifier through the loader
// and analyzes its content.
func (e *Engine) AnalyzeDocument(ctx context.Context, st store.Store, id string) (*result.Result, error) {
	doc, err := st.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.Analyze(ctx, doc.Content)
}
