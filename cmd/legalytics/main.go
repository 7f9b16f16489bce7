// Command legalytics analyzes one document and prints the extraction
// result as JSON on stdout.
//
// Usage:
//
//	legalytics -db documents.db <document-id>
//	legalytics -file peraturan.txt
//
// On fatal failure it prints {"error": ..., "details": ...} instead of
// the result shape and exits non-zero; callers distinguish the two by
// the presence of the error key.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/legalytics/legalytics/internal/docsrc"
	"github.com/legalytics/legalytics/pkg/legalytics"
	"github.com/legalytics/legalytics/pkg/legalytics/config"
	"github.com/legalytics/legalytics/pkg/legalytics/internalerr"
	"github.com/legalytics/legalytics/pkg/legalytics/result"
	"github.com/legalytics/legalytics/pkg/legalytics/store/sqlite"
)

func main() {
	var (
		dbPath  = flag.String("db", "documents.db", "Path to the document database")
		cfgPath = flag.String("config", "", "Optional YAML config overriding the defaults")
		file    = flag.String("file", "", "Analyze a local file instead of a stored document")
	)
	flag.Parse()

	components, err := (&config.Loader{ConfigPath: *cfgPath}).Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	engine := legalytics.FromComponents(components)

	ctx := context.Background()

	var res *result.Result
	var analyzeErr error
	switch {
	case *file != "":
		raw, err := docsrc.LoadFile(*file)
		if err != nil {
			analyzeErr = err
			break
		}
		res, analyzeErr = engine.Analyze(ctx, raw.Content)
	case flag.NArg() == 1:
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			analyzeErr = err
			break
		}
		defer st.Close()
		res, analyzeErr = engine.AnalyzeDocument(ctx, st, flag.Arg(0))
	default:
		fmt.Fprintln(os.Stderr, "usage: legalytics [-db path] <document-id> | legalytics -file path")
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	if analyzeErr != nil {
		enc.Encode(result.ErrorObject{
			Error:   errorLabel(analyzeErr),
			Details: analyzeErr.Error(),
		})
		os.Exit(1)
	}
	if err := enc.Encode(res); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}

func errorLabel(err error) string {
	switch {
	case errors.Is(err, internalerr.ErrEncoding):
		return "document text could not be decoded"
	case errors.Is(err, internalerr.ErrNotFound):
		return "document not found"
	default:
		return "analysis failed"
	}
}
