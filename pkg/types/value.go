package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the scalar type of a cell value or the established
// type of a column.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindText
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a closed scalar variant: null, integer, float, or text.
// The zero Value is null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Null returns the null value.
func Null() Value { return Value{} }

// Int returns an integer value.
func Int(v int64) Value { return Value{kind: KindInteger, i: v} }

// Float returns a float value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Kind returns the scalar kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the integer payload. Valid only for KindInteger values.
func (v Value) Int() int64 { return v.i }

// Float returns the numeric payload as a float64. Integer values are
// widened; non-numeric values return 0.
func (v Value) Float() float64 {
	switch v.kind {
	case KindInteger:
		return float64(v.i)
	case KindFloat:
		return v.f
	default:
		return 0
	}
}

// Text returns the text payload. Valid only for KindText values.
func (v Value) Text() string { return v.s }

// String returns the display form of the value. Null renders as the
// empty string.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool { return v == o }

// Native returns the value as a plain Go type for database and JSON
// interchange: nil, int64, float64, or string.
func (v Value) Native() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	default:
		return v.s
	}
}

// FromNative converts a scanned database or decoded JSON value into a
// Value. Unrecognized types are rendered through fmt as text.
func FromNative(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null()
	case int64:
		return Int(v)
	case int:
		return Int(int64(v))
	case float64:
		return Float(v)
	case bool:
		if v {
			return Text("true")
		}
		return Text("false")
	case string:
		return Text(v)
	case []byte:
		return Text(string(v))
	default:
		return Text(fmt.Sprintf("%v", v))
	}
}

// Coerce converts raw user input to a value of the given column kind.
// Integer columns parse numeric text and truncate any fraction; float
// columns parse numeric text; text and null columns accept the input
// as-is. Empty input into a numeric column returns ErrCoerce.
func Coerce(raw string, kind Kind) (Value, error) {
	switch kind {
	case KindInteger:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Null(), fmt.Errorf("%w: %q into %s column", ErrCoerce, raw, kind)
		}
		// MaxInt64 rounds up to 2^63 as a float64, so the top bound
		// is exclusive.
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return Null(), fmt.Errorf("%w: %q overflows %s column", ErrCoerce, raw, kind)
		}
		return Int(int64(f)), nil
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Null(), fmt.Errorf("%w: %q into %s column", ErrCoerce, raw, kind)
		}
		return Float(f), nil
	default:
		return Text(raw), nil
	}
}

// ParseField converts a string record field into a value of the given
// column kind, used by file importers. Blank fields become null;
// unparseable numerics fall back to text rather than failing, since
// imported files are accepted as-is.
func ParseField(field string, kind Kind) Value {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return Null()
	}
	switch kind {
	case KindInteger:
		if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return Int(i)
		}
	case KindFloat:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Float(f)
		}
	}
	return Text(field)
}

// InferKind establishes a column kind from string record samples.
// All-integer samples give KindInteger, all-numeric give KindFloat,
// anything else gives KindText. Blank fields are ignored; a column with
// no non-blank samples has KindNull.
func InferKind(samples []string) Kind {
	kind := KindNull
	for _, s := range samples {
		t := strings.TrimSpace(s)
		if t == "" {
			continue
		}
		if _, err := strconv.ParseInt(t, 10, 64); err == nil {
			if kind == KindNull {
				kind = KindInteger
			}
			continue
		}
		if _, err := strconv.ParseFloat(t, 64); err == nil {
			if kind == KindNull || kind == KindInteger {
				kind = KindFloat
			}
			continue
		}
		return KindText
	}
	return kind
}
