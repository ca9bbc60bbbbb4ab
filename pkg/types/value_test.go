package types

import (
	"errors"
	"testing"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    Kind
		want    Value
		wantErr bool
	}{
		{"int into integer", "42", KindInteger, Int(42), false},
		{"float into integer truncates", "3.9", KindInteger, Int(3), false},
		{"negative into integer", "-7", KindInteger, Int(-7), false},
		{"padded into integer", "  12 ", KindInteger, Int(12), false},
		{"text into integer", "abc", KindInteger, Null(), true},
		{"empty into integer", "", KindInteger, Null(), true},
		{"overflow into integer", "1e30", KindInteger, Null(), true},
		{"negative overflow into integer", "-1e30", KindInteger, Null(), true},
		{"float into float", "2.5", KindFloat, Float(2.5), false},
		{"int into float", "4", KindFloat, Float(4), false},
		{"text into float", "x", KindFloat, Null(), true},
		{"empty into float", "", KindFloat, Null(), true},
		{"anything into text", "3.9", KindText, Text("3.9"), false},
		{"empty into text", "", KindText, Text(""), false},
		{"anything into null column", "hello", KindNull, Text("hello"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.raw, tt.kind)
			if tt.wantErr {
				if !errors.Is(err, ErrCoerce) {
					t.Fatalf("Coerce(%q, %s) error = %v, want ErrCoerce", tt.raw, tt.kind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Coerce(%q, %s) unexpected error: %v", tt.raw, tt.kind, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Coerce(%q, %s) = %v, want %v", tt.raw, tt.kind, got, tt.want)
			}
		})
	}
}

func TestInferKind(t *testing.T) {
	tests := []struct {
		name    string
		samples []string
		want    Kind
	}{
		{"all integers", []string{"1", "2", "3"}, KindInteger},
		{"integers with blanks", []string{"1", "", " ", "3"}, KindInteger},
		{"mixed numeric", []string{"1", "2.5"}, KindFloat},
		{"all floats", []string{"1.5", "2.5"}, KindFloat},
		{"any text wins", []string{"1", "two"}, KindText},
		{"all blank", []string{"", "  "}, KindNull},
		{"empty", nil, KindNull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferKind(tt.samples); got != tt.want {
				t.Errorf("InferKind(%v) = %s, want %s", tt.samples, got, tt.want)
			}
		})
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		field string
		kind  Kind
		want  Value
	}{
		{"", KindInteger, Null()},
		{"  ", KindText, Null()},
		{"7", KindInteger, Int(7)},
		{"7.5", KindFloat, Float(7.5)},
		{"oops", KindInteger, Text("oops")},
		{"word", KindText, Text("word")},
	}
	for _, tt := range tests {
		if got := ParseField(tt.field, tt.kind); !got.Equal(tt.want) {
			t.Errorf("ParseField(%q, %s) = %v, want %v", tt.field, tt.kind, got, tt.want)
		}
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), ""},
		{Int(42), "42"},
		{Float(2.5), "2.5"},
		{Text("hi"), "hi"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFromNativeRoundTrip(t *testing.T) {
	values := []Value{Null(), Int(-3), Float(1.25), Text("x")}
	for _, v := range values {
		if got := FromNative(v.Native()); !got.Equal(v) {
			t.Errorf("FromNative(Native(%v)) = %v", v, got)
		}
	}
	if got := FromNative([]byte("bytes")); !got.Equal(Text("bytes")) {
		t.Errorf("FromNative([]byte) = %v, want text", got)
	}
}
