package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hotelinv/internal/domains/booking/model"

	"github.com/araddon/dateparse"
)

var (
	phrasePattern      = regexp.MustCompile(`^ngày\s*(\d{1,2})\s*tháng\s*(\d{1,2})\s*năm\s*(\d{4})`)
	shortPhrasePattern = regexp.MustCompile(`(\d{1,2})\s*tháng\s*(\d{1,2})\s*(\d{4})`)
)

// ParseDate turns a raw cell value into a calendar day. It accepts native times,
// the phrase "ngày D tháng M năm Y" and anything the generic parser understands,
// trying day-first before month-first. It never fails loudly.
func ParseDate(input any) (time.Time, bool) {
	switch v := input.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return model.Day(v), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return model.Day(*v), true
	case string:
		return parseDateText(v)
	case fmt.Stringer:
		return parseDateText(v.String())
	default:
		return parseDateText(fmt.Sprint(v))
	}
}

func parseDateText(text string) (time.Time, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, false
	}

	if m := phrasePattern.FindStringSubmatch(strings.ToLower(trimmed)); m != nil {
		return civilDate(m[3], m[2], m[1])
	}

	return parseGeneric(trimmed)
}

func parseGeneric(text string) (time.Time, bool) {
	for _, monthFirst := range []bool{false, true} {
		t, err := dateparse.ParseIn(text, time.UTC, dateparse.PreferMonthFirst(monthFirst))
		if err == nil {
			return model.Day(t), true
		}
	}
	return time.Time{}, false
}

func civilDate(year, month, day string) (time.Time, bool) {
	y, errY := strconv.Atoi(year)
	m, errM := strconv.Atoi(month)
	d, errD := strconv.Atoi(day)
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, false
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalises 31/2 into March; reject instead.
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// Phrase renders a day as "ngày D tháng M năm Y" without zero padding.
func Phrase(t time.Time) string {
	return fmt.Sprintf("ngày %d tháng %d năm %d", t.Day(), int(t.Month()), t.Year())
}

// FormatDateForDisplay renders any accepted date input in the canonical phrase.
func FormatDateForDisplay(input any) (string, bool) {
	text, isText := input.(string)
	if !isText {
		t, ok := ParseDate(input)
		if !ok {
			return "", false
		}
		return Phrase(t), true
	}

	cleaned := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(text, ",", "")))
	if cleaned == "" {
		return "", false
	}

	if m := phrasePattern.FindStringSubmatch(cleaned); m != nil {
		if t, ok := civilDate(m[3], m[2], m[1]); ok {
			return Phrase(t), true
		}
		return "", false
	}

	if m := shortPhrasePattern.FindStringSubmatch(cleaned); m != nil {
		if t, ok := civilDate(m[3], m[2], m[1]); ok {
			return Phrase(t), true
		}
		return "", false
	}

	t, ok := parseGeneric(cleaned)
	if !ok {
		return "", false
	}
	return Phrase(t), true
}
