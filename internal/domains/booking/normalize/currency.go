package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyCodePattern = regexp.MustCompile(`(?i)VND\s*`)
	nonNumericPattern   = regexp.MustCompile(`[^\d,.-]`)
)

// CleanCurrency parses an amount written with either "." or "," as thousands
// separator. Unparseable input yields zero.
func CleanCurrency(input any) decimal.Decimal {
	switch v := input.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		return cleanCurrencyText(v)
	default:
		return cleanCurrencyText(fmt.Sprint(v))
	}
}

func cleanCurrencyText(text string) decimal.Decimal {
	s := currencyCodePattern.ReplaceAllString(strings.TrimSpace(text), "")
	s = nonNumericPattern.ReplaceAllString(s, "")
	if s == "" {
		return decimal.Zero
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		if isThousandsSeparator(s, ",") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case hasDot:
		if isThousandsSeparator(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// isThousandsSeparator is true when sep repeats, or appears once followed by
// exactly three digits with something in front of it.
func isThousandsSeparator(s, sep string) bool {
	n := strings.Count(s, sep)
	if n > 1 {
		return true
	}
	before, after, _ := strings.Cut(s, sep)
	return n == 1 && len(after) == 3 && before != ""
}

// FormatAmount rounds d to a whole amount and groups thousands with commas.
func FormatAmount(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}
