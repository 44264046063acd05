// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jptr_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jptr"
	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jptr.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jptr.Token{jptr.True, jptr.False, jptr.Null}},

		// Punctuation
		{"{ [ ] } , :", []jptr.Token{
			jptr.LBrace, jptr.LSquare, jptr.RSquare, jptr.RBrace, jptr.Comma, jptr.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jptr.Token{jptr.String, jptr.String, jptr.String}},
		{`"\"\\\/\b\f\n\r\t"`, []jptr.Token{jptr.String}},
		{`"\u0000\u01fc\uAA9c"`, []jptr.Token{jptr.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jptr.Token{
			jptr.Integer, jptr.Integer, jptr.Integer,
			jptr.Number, jptr.Number, jptr.Number, jptr.Number,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jptr.Token{
			jptr.LBrace, jptr.True, jptr.Comma, jptr.String, jptr.Colon,
			jptr.Integer, jptr.Null, jptr.LSquare, jptr.RSquare, jptr.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jptr.Token{
			jptr.LBrace,
			jptr.String, jptr.Colon, jptr.True, jptr.Comma,
			jptr.String, jptr.Colon,
			jptr.LSquare,
			jptr.Null, jptr.Comma, jptr.Integer, jptr.Comma, jptr.Number,
			jptr.RSquare,
			jptr.RBrace,
		}},
		{`"a",1,true
       false["b"]
       `, []jptr.Token{
			jptr.String, jptr.Comma, jptr.Integer, jptr.Comma, jptr.True,
			jptr.False, jptr.LSquare, jptr.String, jptr.RSquare,
		}},
	}

	for _, test := range tests {
		var got []jptr.Token
		s := jptr.NewScanner(strings.NewReader(test.input))
		for s.Next() {
			got = append(got, s.Token())
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  jptr.Token
		want string
	}{
		{jptr.Invalid, "invalid token"},
		{jptr.LBrace, `"{"`},
		{jptr.Comma, `","`},
		{jptr.Integer, "integer"},
		{jptr.String, "string"},
		{jptr.Null, "null"},

		// Values past the end of the defined tokens are invalid, not a panic.
		{jptr.Null + 1, "invalid token"},
		{jptr.Token(250), "invalid token"},
	}
	for _, tc := range tests {
		if got := tc.tok.String(); got != tc.want {
			t.Errorf("Token(%d).String: got %#q, want %#q", byte(tc.tok), got, tc.want)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []string{
		`falsy`,         // misspelled constant
		`nulll`,         // so close
		`01.2`,          // extra leading zeroes
		`5.`,            // missing fraction digits
		`6e`,            // missing exponent digits
		`1e+`,           // missing signed exponent digits
		`"broken`,       // unterminated string
		`"bad \escape"`, // invalid escape sequence
		`"bad \u00fx"`,  // invalid Unicode escape
		"\"ctl \x01\"",  // unescaped control character
		`%`,             // garbage
	}
	for _, test := range tests {
		s := jptr.NewScanner(strings.NewReader(test))
		for s.Next() {
		}
		if err := s.Err(); err == nil {
			t.Errorf("Input: %#q: scan did not report an error", test)
		} else {
			t.Logf("Input: %#q: got expected error: %v", test, err)
		}
	}
}

func TestScannerSpan(t *testing.T) {
	type tokSpan struct {
		Tok jptr.Token
		Spn jptr.Span
	}
	tests := []struct {
		input string
		want  []tokSpan
	}{
		{"", nil},
		{"{ }", []tokSpan{
			{jptr.LBrace, jptr.Span{Pos: 0, End: 1}},
			{jptr.RBrace, jptr.Span{Pos: 2, End: 3}},
		}},
		{" true\n false", []tokSpan{
			{jptr.True, jptr.Span{Pos: 1, End: 5}},
			{jptr.False, jptr.Span{Pos: 7, End: 12}},
		}},
		{`["ab",15]`, []tokSpan{
			{jptr.LSquare, jptr.Span{Pos: 0, End: 1}},
			{jptr.String, jptr.Span{Pos: 1, End: 5}},
			{jptr.Comma, jptr.Span{Pos: 5, End: 6}},
			{jptr.Integer, jptr.Span{Pos: 6, End: 8}},
			{jptr.RSquare, jptr.Span{Pos: 8, End: 9}},
		}},
	}
	for _, tc := range tests {
		var got []tokSpan
		s := jptr.NewScanner(strings.NewReader(tc.input))
		for s.Next() {
			got = append(got, tokSpan{s.Token(), s.Span()})
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestScanner_decodeAs(t *testing.T) {
	mustScan := func(t *testing.T, input string, want jptr.Token) *jptr.Scanner {
		t.Helper()
		s := jptr.NewScanner(strings.NewReader(input))
		if !s.Next() {
			t.Fatalf("Next failed: %v", s.Err())
		} else if s.Token() != want {
			t.Fatalf("Next token: got %v, want %v", s.Token(), want)
		}
		return s
	}

	t.Run("Integer", func(t *testing.T) {
		s := mustScan(t, `-15`, jptr.Integer)
		if got := s.Int64(); got != -15 {
			t.Errorf("Int64: got %d, want -15", got)
		}
	})
	t.Run("Number", func(t *testing.T) {
		s := mustScan(t, `3.25e-5`, jptr.Number)
		if got := s.Float64(); got != 3.25e-5 {
			t.Errorf("Float64: got %v, want 3.25e-5", got)
		}
	})
	t.Run("Constants", func(t *testing.T) {
		mustScan(t, `true`, jptr.True)
		mustScan(t, `false`, jptr.False)
		mustScan(t, `null`, jptr.Null)
	})
	t.Run("String", func(t *testing.T) {
		const wantText = `"a\tb c\n"` // as written, with quotes
		const wantDec = "a\tb c\n"         // with escapes undone
		s := mustScan(t, `"a\tb c\n"`, jptr.String)
		if got := string(s.Text()); got != wantText {
			t.Errorf("Text: got %#q, want %#q", got, wantText)
		}
		if got := s.Unescape(); got != wantDec {
			t.Errorf("Unescape: got %#q, want %#q", got, wantDec)
		}
	})
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
	}
	for _, test := range tests {
		got := jptr.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                        // missing quotes
		{`"missing quote`, ``, true},          // missing quotes
		{`missing quote"`, ``, true},          // missing quotes
		{`""`, ``, false},                     // ok
		{`"ok go"`, "ok go", false},           // ok
		{`"abc\ndef"`, "abc\ndef", false},     // C escapes
		{`"\tabc\n"`, "\tabc\n", false},       // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false}, // C escapes
		{`"a \u0026 b"`, "a & b", false},      // short Unicode escape
		{`"\u"`, ``, true},                    // incomplete Unicode escape
		{`"\u00"`, ``, true},                  // incomplete Unicode escape
		{`"\u00x9"`, "\ufffd", false},         // invalid Unicode escape
		{`"\u019 "`, "\ufffd", false},         // invalid Unicode escape
		{`"a\"b"`, `a"b`, false},              // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},       // ok
	}

	for _, test := range tests {
		got, err := jptr.Unquote([]byte(test.input))
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if err == nil && test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}
