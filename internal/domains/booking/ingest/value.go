package ingest

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindDate
	KindNumber
	KindBool
)

// Value is one raw cell as delivered by a source parser.
type Value struct {
	kind   Kind
	text   string
	date   time.Time
	number decimal.Decimal
	flag   bool
}

func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

func Date(t time.Time) Value {
	return Value{kind: KindDate, date: t}
}

func Number(d decimal.Decimal) Value {
	return Value{kind: KindNumber, number: d}
}

func Float(f float64) Value {
	return Number(decimal.NewFromFloat(f))
}

func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Empty is true for missing cells and blank text.
func (v Value) Empty() bool {
	switch v.kind {
	case KindEmpty:
		return true
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindDate:
		return v.date.IsZero()
	default:
		return false
	}
}

// Raw exposes the underlying Go value for the normalizers.
func (v Value) Raw() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindDate:
		return v.date
	case KindNumber:
		return v.number
	case KindBool:
		return v.flag
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text)
	case KindDate:
		return v.date.Format(time.DateOnly)
	case KindNumber:
		return v.number.String()
	case KindBool:
		if v.flag {
			return "Có"
		}
		return "Không"
	default:
		return ""
	}
}

// Row maps source labels to raw values.
type Row map[string]Value
