package unit

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"word", []string{"word"}},
		{"one two", []string{"one ", "two"}},
		{"Hello, world", []string{"Hello", ", ", "world"}},
		{"a.b", []string{"a", ".", "b"}},
		{"trailing  ", []string{"trailing  "}},
		{" lead", []string{" ", "lead"}},
		{"don't", []string{"don", "'", "t"}},
		{"€5", []string{"€", "5"}},
		{"x-y", []string{"x", "-", "y"}},
		{"...", []string{".", ".", "."}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizeLossless(t *testing.T) {
	for _, in := range []string{"Hello, world!  How are you?", " a  b\tc\n", "--x--"} {
		joined := ""
		for _, tok := range tokenize(in) {
			joined += tok
		}
		if joined != in {
			t.Fatalf("tokens of %q rejoin to %q", in, joined)
		}
	}
}

func TestIsWord(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{"Hello ", true},
		{"42", true},
		{", ", false},
		{"  ", false},
		{"-", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsWord(tt.tok); got != tt.want {
			t.Errorf("IsWord(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}
