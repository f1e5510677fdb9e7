package ident

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"plain", "foo", true},
		{"leading underscore digit", "_1", true},
		{"leading underscore letter", "_x", true},
		{"double underscore", "__foo", true},
		{"mixed case", "fooBar_1", true},
		{"bare underscore", "_", false},
		{"leading digit", "1foo", false},
		{"empty", "", false},
		{"contains space", "foo bar", false},
		{"contains dash", "foo-bar", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := New(tt.input)
			if tt.ok && err != nil {
				t.Fatalf("New(%q): unexpected error: %v", tt.input, err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("New(%q) = %v, want InvalidIdentifierError", tt.input, id)
			}
			if tt.ok && id.String() != tt.input {
				t.Errorf("String() = %q, want %q", id.String(), tt.input)
			}
		})
	}
}

func TestQuoted(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "foo", `'foo'`},
		{"quote", "it's", `'it\'s'`},
		{"backslash", `a\b`, `'a\\b'`},
		{"newline", "a\nb", `'a\nb'`},
		{"nul", "a\x00b", `'a\0b'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quoted(tt.in); got != tt.want {
				t.Errorf("Quoted(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := MustNew("foo")
	b := MustNew("foo")
	c := MustNew("bar")
	if !a.Equal(b) {
		t.Errorf("expected %v == %v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %v != %v", a, c)
	}
}
