package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/legalytics/legalytics/pkg/legalytics/segment"
	"github.com/legalytics/legalytics/pkg/legalytics/textnorm"
)

// CurrencySpec describes one recognized currency: its markers and the
// grouping/decimal convention its presence implies.
type CurrencySpec struct {
	Code         string
	Markers      []string
	DecimalComma bool
	Multipliers  bool
}

// MoneyExtractor finds monetary amounts co-occurring with a currency
// marker. Amounts next to an unrecognized ISO-style code are still
// reported, with the currency flagged as unknown.
type MoneyExtractor struct {
	byMarker map[string]CurrencySpec
	known    map[string]struct{}
	re       *regexp.Regexp
	isoRe    *regexp.Regexp
}

// multiplierZeros maps Indonesian scale words to decimal shifts.
var multiplierZeros = map[string]int{
	"ribu":    3,
	"juta":    6,
	"miliar":  9,
	"triliun": 12,
}

// approxWords flag a value as approximate when one appears shortly
// before the amount.
var approxWords = []string{
	"sekitar", "kurang lebih", "lebih kurang", "kira-kira", "approximately",
}

// NewMoneyExtractor builds an extractor from the configured currency
// table.
func NewMoneyExtractor(specs []CurrencySpec) *MoneyExtractor {
	byMarker := make(map[string]CurrencySpec)
	known := make(map[string]struct{}, len(specs))
	var markers []string
	for _, spec := range specs {
		known[strings.ToUpper(spec.Code)] = struct{}{}
		for _, m := range spec.Markers {
			byMarker[strings.ToLower(m)] = spec
			markers = append(markers, m)
		}
	}
	// Longest marker first so "US$" wins over "$".
	sort.Slice(markers, func(i, j int) bool {
		if len(markers[i]) != len(markers[j]) {
			return len(markers[i]) > len(markers[j])
		}
		return markers[i] < markers[j]
	})

	parts := make([]string, len(markers))
	for i, m := range markers {
		q := regexp.QuoteMeta(m)
		if r, _ := utf8.DecodeRuneInString(m); unicode.IsLetter(r) {
			q = `\b` + q
		}
		parts[i] = q
	}

	pattern := `(?i)(` + strings.Join(parts, "|") + `)\s*([0-9](?:[0-9.,]*[0-9])?)(?:\s*(ribu|juta|miliar|triliun)\b)?`
	return &MoneyExtractor{
		byMarker: byMarker,
		known:    known,
		re:       regexp.MustCompile(pattern),
		isoRe:    regexp.MustCompile(`\b([A-Z]{3})\s*([0-9](?:[0-9.,]*[0-9])?)`),
	}
}

// Kind implements Extractor.
func (e *MoneyExtractor) Kind() Kind { return KindMoney }

// Extract implements Extractor.
func (e *MoneyExtractor) Extract(doc *textnorm.Doc, segs []segment.Segment) ([]Match, error) {
	var matches []Match
	for _, seg := range segs {
		var covered [][2]int

		for _, loc := range e.re.FindAllStringSubmatchIndex(seg.Text, -1) {
			marker := seg.Text[loc[2]:loc[3]]
			numStr := seg.Text[loc[4]:loc[5]]
			spec, ok := e.byMarker[strings.ToLower(marker)]
			if !ok {
				continue
			}

			amount, low := parseAmount(numStr, &spec)
			if loc[6] >= 0 && spec.Multipliers {
				mult := strings.ToLower(seg.Text[loc[6]:loc[7]])
				amount = shiftDecimal(amount, multiplierZeros[mult])
			}

			start, end := doc.OrigRange(seg.Start+loc[0], seg.Start+loc[1])
			matches = append(matches, Match{
				Kind:          KindMoney,
				RawText:       seg.Text[loc[0]:loc[1]],
				SegmentIndex:  seg.Index,
				Start:         start,
				End:           end,
				Money:         &MoneyValue{Amount: amount, Currency: spec.Code},
				Approximate:   approxBefore(seg.Text, loc[0]),
				LowConfidence: low,
			})
			covered = append(covered, [2]int{loc[0], loc[1]})
		}

		// Unrecognized ISO-style codes: report the amount, flag the
		// currency unknown.
		for _, loc := range e.isoRe.FindAllStringSubmatchIndex(seg.Text, -1) {
			code := seg.Text[loc[2]:loc[3]]
			if _, ok := e.known[code]; ok {
				continue
			}
			if overlapsAny(covered, loc[0], loc[1]) {
				continue
			}
			numStr := seg.Text[loc[4]:loc[5]]
			amount, _ := parseAmount(numStr, nil)

			start, end := doc.OrigRange(seg.Start+loc[0], seg.Start+loc[1])
			matches = append(matches, Match{
				Kind:          KindMoney,
				RawText:       seg.Text[loc[0]:loc[1]],
				SegmentIndex:  seg.Index,
				Start:         start,
				End:           end,
				Money:         &MoneyValue{Amount: amount, Currency: CurrencyUnknown},
				Approximate:   approxBefore(seg.Text, loc[0]),
				LowConfidence: true,
			})
		}
	}
	return matches, nil
}

// parseAmount normalizes a raw numeric string into a canonical decimal.
// A nil spec means no marker disambiguates the separators; the
// conservative reading (fewer fractional digits) wins and the boolean
// reports whether that choice was actually ambiguous.
func parseAmount(num string, spec *CurrencySpec) (string, bool) {
	dots := strings.Count(num, ".")
	commas := strings.Count(num, ",")

	var intPart, fracPart string
	low := false

	switch {
	case dots > 0 && commas > 0:
		// The separator appearing last is the decimal point.
		if strings.LastIndexByte(num, '.') > strings.LastIndexByte(num, ',') {
			intPart, fracPart = splitDecimal(num, '.')
		} else {
			intPart, fracPart = splitDecimal(num, ',')
		}
	case dots > 0:
		intPart, fracPart, low = resolveSingleSep(num, '.', dots, spec)
	case commas > 0:
		intPart, fracPart, low = resolveSingleSep(num, ',', commas, spec)
	default:
		intPart = num
	}

	return canonicalDecimal(intPart, fracPart), low
}

// resolveSingleSep handles a number containing only one separator kind.
func resolveSingleSep(num string, sep byte, count int, spec *CurrencySpec) (string, string, bool) {
	if count > 1 {
		return stripSeps(num), "", false
	}
	rest := num[strings.IndexByte(num, sep)+1:]

	if spec != nil {
		groupSep := byte(',')
		if spec.DecimalComma {
			groupSep = '.'
		}
		if sep == groupSep {
			if len(rest) == 3 {
				return stripSeps(num), "", false
			}
			// Cannot be grouping; read as a decimal point.
			ip, fp := splitDecimal(num, sep)
			return ip, fp, false
		}
		ip, fp := splitDecimal(num, sep)
		return ip, fp, false
	}

	// No marker convention: groups of three are read as grouping, the
	// conservative interpretation, and flagged.
	if len(rest) == 3 {
		return stripSeps(num), "", true
	}
	ip, fp := splitDecimal(num, sep)
	return ip, fp, false
}

func splitDecimal(num string, decSep byte) (string, string) {
	idx := strings.LastIndexByte(num, decSep)
	return stripSeps(num[:idx]), num[idx+1:]
}

func stripSeps(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, ",", "")
}

// canonicalDecimal joins integer and fractional parts, trimming leading
// and trailing zeros.
func canonicalDecimal(intPart, fracPart string) string {
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	fracPart = strings.TrimRight(fracPart, "0")
	if fracPart == "" {
		return intPart
	}
	return intPart + "." + fracPart
}

// shiftDecimal multiplies a canonical decimal by 10^zeros.
func shiftDecimal(amount string, zeros int) string {
	intPart := amount
	fracPart := ""
	if idx := strings.IndexByte(amount, '.'); idx >= 0 {
		intPart, fracPart = amount[:idx], amount[idx+1:]
	}
	digits := intPart + fracPart
	point := len(intPart) + zeros
	if point >= len(digits) {
		digits += strings.Repeat("0", point-len(digits))
		return canonicalDecimal(digits, "")
	}
	return canonicalDecimal(digits[:point], digits[point:])
}

func approxBefore(text string, pos int) bool {
	start := pos - 30
	if start < 0 {
		start = 0
	}
	window := strings.ToLower(text[start:pos])
	for _, w := range approxWords {
		if strings.Contains(window, w) {
			return true
		}
	}
	return false
}

func overlapsAny(ranges [][2]int, start, end int) bool {
	for _, r := range ranges {
		if start < r[1] && end > r[0] {
			return true
		}
	}
	return false
}
