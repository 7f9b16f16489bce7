package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/legalytics/legalytics/pkg/legalytics/segment"
	"github.com/legalytics/legalytics/pkg/legalytics/textnorm"
)

// DatePolicy fixes how ambiguous numeric dates resolve; it comes from
// configuration so results stay reproducible across runs.
type DatePolicy struct {
	// DayFirst is the default field ordering for numeric dates where
	// both fields could be a month.
	DayFirst   bool
	MonthNames map[string]int
	DayNames   []string
}

// DateExtractor finds calendar dates in numeric (DD/MM/YYYY style) and
// written ("1 Januari 2013") forms. Dates that resolve to no valid
// calendar day are skipped silently; they never abort the document.
type DateExtractor struct {
	dayFirst bool
	months   map[string]int
	written  *regexp.Regexp
	numeric  *regexp.Regexp
}

// NewDateExtractor builds an extractor from the configured policy.
func NewDateExtractor(policy DatePolicy) *DateExtractor {
	months := make(map[string]int, len(policy.MonthNames))
	var monthAlt []string
	for name, m := range policy.MonthNames {
		months[strings.ToLower(name)] = m
		monthAlt = append(monthAlt, regexp.QuoteMeta(name))
	}
	sort.Strings(monthAlt)

	dayAlt := make([]string, len(policy.DayNames))
	for i, d := range policy.DayNames {
		dayAlt[i] = regexp.QuoteMeta(d)
	}

	writtenPat := `(?i)\b`
	if len(dayAlt) > 0 {
		writtenPat += `(?:(?:` + strings.Join(dayAlt, "|") + `)\s*,?\s+)?`
	}
	writtenPat += `(\d{1,2})\s+(` + strings.Join(monthAlt, "|") + `)\s+(\d{4})\b`

	return &DateExtractor{
		dayFirst: policy.DayFirst,
		months:   months,
		// RE2 has no backreferences; the two separators are captured
		// and compared in code.
		numeric: regexp.MustCompile(`\b(\d{1,2})([/.\-])(\d{1,2})([/.\-])(\d{4})\b`),
		written: regexp.MustCompile(writtenPat),
	}
}

// Kind implements Extractor.
func (e *DateExtractor) Kind() Kind { return KindDate }

// Extract implements Extractor.
func (e *DateExtractor) Extract(doc *textnorm.Doc, segs []segment.Segment) ([]Match, error) {
	var matches []Match
	for _, seg := range segs {
		var covered [][2]int

		for _, loc := range e.written.FindAllStringSubmatchIndex(seg.Text, -1) {
			day, _ := strconv.Atoi(seg.Text[loc[2]:loc[3]])
			month := e.months[strings.ToLower(seg.Text[loc[4]:loc[5]])]
			year, _ := strconv.Atoi(seg.Text[loc[6]:loc[7]])
			if !validDate(year, month, day) {
				continue
			}
			matches = append(matches, e.match(doc, seg, loc[0], loc[1], DateValue{Year: year, Month: month, Day: day}))
			covered = append(covered, [2]int{loc[0], loc[1]})
		}

		for _, loc := range e.numeric.FindAllStringSubmatchIndex(seg.Text, -1) {
			if seg.Text[loc[4]:loc[5]] != seg.Text[loc[8]:loc[9]] {
				continue // mismatched separators
			}
			if overlapsAny(covered, loc[0], loc[1]) {
				continue
			}
			a, _ := strconv.Atoi(seg.Text[loc[2]:loc[3]])
			b, _ := strconv.Atoi(seg.Text[loc[6]:loc[7]])
			year, _ := strconv.Atoi(seg.Text[loc[10]:loc[11]])

			day, month, ok := e.resolve(a, b)
			if !ok || !validDate(year, month, day) {
				continue
			}
			matches = append(matches, e.match(doc, seg, loc[0], loc[1], DateValue{Year: year, Month: month, Day: day}))
		}
	}
	return matches, nil
}

func (e *DateExtractor) match(doc *textnorm.Doc, seg segment.Segment, from, to int, v DateValue) Match {
	start, end := doc.OrigRange(seg.Start+from, seg.Start+to)
	d := v
	return Match{
		Kind:         KindDate,
		RawText:      seg.Text[from:to],
		SegmentIndex: seg.Index,
		Start:        start,
		End:          end,
		Date:         &d,
	}
}

// resolve applies the ordering policy: a field above 12 is unambiguously
// the day; otherwise the configured default decides.
func (e *DateExtractor) resolve(a, b int) (day, month int, ok bool) {
	switch {
	case a > 12 && b > 12:
		return 0, 0, false
	case a > 12:
		return a, b, true
	case b > 12:
		return b, a, true
	case e.dayFirst:
		return a, b, true
	default:
		return b, a, true
	}
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysInMonth(year, month)
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
