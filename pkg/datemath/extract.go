package datemath

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

type dateKind int

const (
	kindKeyword dateKind = iota // resolved through Parse
	kindNumeric                 // M/D[/YY[YY]]
	kindWeekday                 // [next|this] <weekday>
)

type datePattern struct {
	kind dateKind
	re   *regexp.Regexp
}

// datePrefix lets a date fragment absorb "due", "on" and "by" in front of it.
const datePrefix = `\b(?:due )?(?:(?:on|by) )?`

// datePatterns are tried in order; the first pattern with a valid match
// decides the date.
var datePatterns = []datePattern{
	{kind: kindKeyword, re: regexp.MustCompile(datePrefix + `(today)\b`)},
	{kind: kindKeyword, re: regexp.MustCompile(datePrefix + `(tomorrow)\b`)},
	{kind: kindKeyword, re: regexp.MustCompile(datePrefix + `(next week)\b`)},
	{kind: kindKeyword, re: regexp.MustCompile(datePrefix + `(next month)\b`)},
	{kind: kindNumeric, re: regexp.MustCompile(datePrefix + `(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?\b`)},
	{kind: kindWeekday, re: regexp.MustCompile(datePrefix + `(?:(?:next|this) )?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)},
	{kind: kindKeyword, re: regexp.MustCompile(datePrefix + `(in \d+ (?:days?|weeks?|months?))\b`)},
}

// timePattern matches "[at|by] H[:MM][ ](am|pm|a|p)".
var timePattern = regexp.MustCompile(`\b(?:(at|by) )?(\d{1,2})(?::(\d{2}))?(?: ?(am|pm|a|p))?\b`)

type fragment struct {
	span Span
	text string
}

// Extract scans normalized text for a date and a time-of-day and resolves
// them against now in the parser's timezone.
//
// The date is the first valid match of, in order: today, tomorrow, next week,
// next month, M/D (current year unless given), a weekday name (next
// occurrence, never today) and "in N days|weeks|months". The time is the first
// "H[:MM][am|pm]" fragment outside the date span; a bare hour counts only
// after "at" or "by" and is taken literally on a 24-hour clock.
//
// A time without a date lands on today; a date without a time is midnight.
// ok is false when neither was found.
func (p *Parser) Extract(text string, now time.Time) (ParsedDate, bool) {
	var frags []fragment

	date, dateFrag, hasDate := p.extractDate(text, now)
	if hasDate {
		frags = append(frags, dateFrag)
	}

	hour, minute, timeFrag, hasTime := extractTime(text, dateFrag, hasDate)
	if hasTime {
		frags = append(frags, timeFrag)
	}

	if !hasDate && !hasTime {
		return ParsedDate{}, false
	}

	if !hasDate {
		date = p.startOfDay(now)
	}
	at := date
	if hasTime {
		at = time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, p.location)
	}

	sort.Slice(frags, func(i, j int) bool { return frags[i].span.Start < frags[j].span.Start })
	parsed := ParsedDate{At: at, HasDate: hasDate, HasTime: hasTime}
	texts := make([]string, 0, len(frags))
	for _, f := range frags {
		parsed.Spans = append(parsed.Spans, f.span)
		texts = append(texts, f.text)
	}
	parsed.Text = strings.Join(texts, " ")

	return parsed, true
}

func (p *Parser) extractDate(text string, now time.Time) (time.Time, fragment, bool) {
	for _, dp := range datePatterns {
		for _, m := range dp.re.FindAllStringSubmatchIndex(text, -1) {
			date, ok := p.resolveDate(dp.kind, text, m, now)
			if !ok {
				continue
			}
			return date, fragment{span: Span{Start: m[0], End: m[1]}, text: text[m[0]:m[1]]}, true
		}
	}
	return time.Time{}, fragment{}, false
}

func (p *Parser) resolveDate(kind dateKind, text string, m []int, now time.Time) (time.Time, bool) {
	group := func(i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return text[m[2*i]:m[2*i+1]]
	}

	switch kind {
	case kindKeyword:
		t, err := p.Parse(group(1), now)
		return t, err == nil
	case kindWeekday:
		t, err := p.Parse("next "+group(1), now)
		return t, err == nil
	case kindNumeric:
		month, _ := strconv.Atoi(group(1))
		day, _ := strconv.Atoi(group(2))
		year := now.In(p.location).Year()
		if y := group(3); y != "" {
			year, _ = strconv.Atoi(y)
			if len(y) == 2 {
				year += 2000
			}
		}
		if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month), p.location) {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), true
	}
	return time.Time{}, false
}

func extractTime(text string, dateFrag fragment, hasDate bool) (hour, minute int, frag fragment, ok bool) {
	for _, m := range timePattern.FindAllStringSubmatchIndex(text, -1) {
		span := Span{Start: m[0], End: m[1]}
		if hasDate && span.Start < dateFrag.span.End && dateFrag.span.Start < span.End {
			continue
		}

		group := func(i int) string {
			if m[2*i] < 0 {
				return ""
			}
			return text[m[2*i]:m[2*i+1]]
		}
		prep, hourText, minuteText, marker := group(1), group(2), group(3), group(4)
		if prep == "" && minuteText == "" && marker == "" {
			// A bare number is a quantity, not a time.
			continue
		}

		h, _ := strconv.Atoi(hourText)
		mm := 0
		if minuteText != "" {
			mm, _ = strconv.Atoi(minuteText)
		}
		h, valid := resolveHour(h, marker)
		if !valid || mm > 59 {
			continue
		}

		return h, mm, fragment{span: span, text: text[m[0]:m[1]]}, true
	}
	return 0, 0, fragment{}, false
}

// resolveHour applies an am/pm marker: pm adds 12 except at 12, am maps 12
// to 0. Without a marker the hour is taken literally.
func resolveHour(hour int, marker string) (int, bool) {
	switch marker {
	case "pm", "p":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	case "am", "a":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return 0, false
		}
	}
	return hour, true
}

// Strip removes the consumed spans from text (the same string given to
// Extract) and re-collapses whitespace.
func (d ParsedDate) Strip(text string) string {
	if len(d.Spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, s := range d.Spans {
		if s.Start < last || s.End > len(text) {
			continue
		}
		b.WriteString(text[last:s.Start])
		b.WriteByte(' ')
		last = s.End
	}
	b.WriteString(text[last:])

	return strings.Join(strings.Fields(b.String()), " ")
}
