// Package textnorm turns raw document text into the canonical form the
// rest of the pipeline consumes: NFC-normalized, single-space separated,
// LF line endings. It keeps a byte offset table back to the raw text so
// every downstream match stays traceable to its source position.
package textnorm

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/legalytics/legalytics/pkg/legalytics/internalerr"
)

// Doc is a normalized document. Text is the canonical form; the offset
// table maps each canonical byte to the raw-text byte it came from.
type Doc struct {
	Text    string
	offsets []int
	origLen int
}

// Normalize canonicalizes raw text. Whitespace runs collapse to a single
// space, or a single newline when the run contained a line break; leading
// and trailing whitespace is dropped. Input that is not valid UTF-8 fails
// with internalerr.ErrEncoding and no partial document.
func Normalize(raw string) (*Doc, error) {
	if !utf8.ValidString(raw) {
		return nil, fmt.Errorf("normalize: %w", internalerr.ErrEncoding)
	}

	var b strings.Builder
	offsets := make([]int, 0, len(raw))

	i := 0
	pendingSpace := false
	pendingBreak := false
	spaceStart := 0
	wrote := false

	for i < len(raw) {
		r, size := utf8.DecodeRuneInString(raw[i:])
		if unicode.IsSpace(r) {
			if !pendingSpace {
				pendingSpace = true
				pendingBreak = false
				spaceStart = i
			}
			if r == '\n' || r == '\r' {
				pendingBreak = true
			}
			i += size
			continue
		}

		if pendingSpace && wrote {
			if pendingBreak {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
			offsets = append(offsets, spaceStart)
		}
		pendingSpace = false

		runStart := i
		for i < len(raw) {
			nr, nsize := utf8.DecodeRuneInString(raw[i:])
			if unicode.IsSpace(nr) {
				break
			}
			i += nsize
		}
		chunk := raw[runStart:i]

		if norm.NFC.IsNormalString(chunk) {
			b.WriteString(chunk)
			for k := 0; k < len(chunk); k++ {
				offsets = append(offsets, runStart+k)
			}
		} else {
			// Composition changes byte counts; the whole chunk maps to
			// its start so offsets stay monotonic.
			nc := norm.NFC.String(chunk)
			b.WriteString(nc)
			for k := 0; k < len(nc); k++ {
				offsets = append(offsets, runStart)
			}
		}
		wrote = true
	}

	return &Doc{Text: b.String(), offsets: offsets, origLen: len(raw)}, nil
}

// Orig maps a canonical byte position to a raw-text byte offset. The
// position just past the last canonical byte maps to the raw length, so
// half-open canonical ranges translate to half-open raw ranges.
func (d *Doc) Orig(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos >= len(d.offsets) {
		return d.origLen
	}
	return d.offsets[pos]
}

// OrigRange translates a half-open canonical byte range to raw offsets.
func (d *Doc) OrigRange(start, end int) (int, int) {
	return d.Orig(start), d.Orig(end)
}

// OrigLen returns the raw text length in bytes.
func (d *Doc) OrigLen() int { return d.origLen }

// Empty reports whether normalization produced no content, which happens
// for empty or whitespace-only input.
func (d *Doc) Empty() bool { return d.Text == "" }
