package alphabet

import (
	"reflect"
	"testing"
)

func TestIsLetter(t *testing.T) {
	tests := []struct {
		b    byte
		want bool
	}{
		{'A', true},
		{'Z', true},
		{'a', true},
		{'z', true},
		{'@', false},
		{'[', false},
		{' ', false},
		{'1', false},
		{0xC3, false}, // first byte of a multi-byte UTF-8 sequence
	}

	for _, tt := range tests {
		if got := IsLetter(tt.b); got != tt.want {
			t.Errorf("IsLetter(%q) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestIndexLetterRoundTrip(t *testing.T) {
	for i := 0; i < Size; i++ {
		if got := Index(Letter(i)); got != i {
			t.Errorf("Index(Letter(%d)) = %d", i, got)
		}
	}
	if Index('A') != 0 || Index('Z') != 25 {
		t.Errorf("Index('A') = %d, Index('Z') = %d", Index('A'), Index('Z'))
	}
}

func TestUpper(t *testing.T) {
	if Upper('q') != 'Q' {
		t.Errorf("Upper('q') = %q", Upper('q'))
	}
	if Upper('Q') != 'Q' {
		t.Errorf("Upper('Q') = %q", Upper('Q'))
	}
}

func TestIndices(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"ABC", []int{0, 1, 2}},
		{"a b-c!", []int{0, 1, 2}},
		{"", []int{}},
		{"123 !?", []int{}},
		{"Héllo", []int{7, 11, 11, 14}},
	}

	for _, tt := range tests {
		if got := Indices(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Indices(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
