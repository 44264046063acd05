// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jptr/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestToValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"Nil", nil, `null`},
		{"True", true, `true`},
		{"False", false, `false`},
		{"Int", 42, `42`},
		{"Int64", int64(-17), `-17`},
		{"Uint", uint(29), `29`},
		{"Float", 3.5, `3.5`},
		{"String", "free range", `"free range"`},
		{"EscapedString", "a\tb", `"a\tb"`},
		{"Slice", []any{1, "two", nil}, `[1,"two",null]`},
		{"Map", map[string]any{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{"Value", ast.Bool(true), `true`},
		{"Nested", map[string]any{"list": []any{true, "x"}}, `{"list":[true,"x"]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ast.ToValue(tc.input).JSON()
			if got != tc.want {
				t.Errorf("ToValue(%+v): got %#q, want %#q", tc.input, got, tc.want)
			}
		})
	}

	t.Run("Panics", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

func TestObjectFind(t *testing.T) {
	obj := ast.Object{
		ast.Field("alpha", ast.Int(1)),
		ast.Field("bravo", ast.String("two")),
		ast.Field("alpha", ast.Int(3)), // shadowed duplicate
	}

	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find(nonesuch): got %v, want nil", m)
	}
	if m := obj.Find("bravo"); m == nil {
		t.Error("Find(bravo): not found")
	} else if got := m.Value.JSON(); got != `"two"` {
		t.Errorf("Find(bravo): got %#q, want %#q", got, `"two"`)
	}

	// A duplicated key resolves to the first occurrence.
	if m := obj.Find("alpha"); m == nil {
		t.Error("Find(alpha): not found")
	} else if got := m.Value.JSON(); got != `1` {
		t.Errorf("Find(alpha): got %#q, want %#q", got, `1`)
	}

	// Member order is preserved by serialization.
	const want = `{"alpha":1,"bravo":"two","alpha":3}`
	if got := obj.JSON(); got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
}

func TestNumber(t *testing.T) {
	if got := ast.Int(25).Int64(); got != 25 {
		t.Errorf("Int64: got %d, want 25", got)
	}
	if got := ast.Float(0.25).Float64(); got != 0.25 {
		t.Errorf("Float64: got %v, want 0.25", got)
	}
	if !ast.Int(-3).IsInt() {
		t.Error("IsInt(-3): got false, want true")
	}
	if ast.Float(6.02e23).IsInt() {
		t.Error("IsInt(6.02e23): got true, want false")
	}
	if got := ast.Int(0).JSON(); got != "0" {
		t.Errorf("JSON: got %#q, want 0", got)
	}
}

func TestStrings(t *testing.T) {
	q := ast.NewQuoted("a/b\tc")
	if got := q.JSON(); got != `"a/b\tc"` {
		t.Errorf("Quoted JSON: got %#q, want %#q", got, `"a/b\tc"`)
	}
	if got := q.Unquote(); got != ast.String("a/b\tc") {
		t.Errorf("Unquote: got %#q, want %#q", got, "a/b\tc")
	}
	if got := q.Len(); got != 5 {
		t.Errorf("Len: got %d, want 5", got)
	}

	s := ast.String(`say "when"`)
	if got := s.JSON(); got != `"say \"when\""` {
		t.Errorf("String JSON: got %#q, want %#q", got, `"say \"when\""`)
	}
	if got := s.Quote().Unquote(); got != s {
		t.Errorf("Quote/Unquote: got %#q, want %#q", got, s)
	}
}

func TestNull(t *testing.T) {
	v := ast.ToValue(nil)
	if v != ast.Null {
		t.Errorf("ToValue(nil): got %v, want Null", v)
	}
	if got := ast.Null.JSON(); got != "null" {
		t.Errorf("JSON: got %#q, want null", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`true`,
		`-15`,
		`3.25e-5`,
		`"a \"quoted\" string"`,
		`[]`,
		`{}`,
		`[1,[2,[3,[]]],{"x":null}]`,
		`{"foo":["bar","baz"],"":0,"a/b":1,"m~n":8}`,
	}
	for _, test := range tests {
		v, err := ast.ParseSingle(strings.NewReader(test))
		if err != nil {
			t.Errorf("ParseSingle(%#q): unexpected error: %v", test, err)
			continue
		}
		if diff := cmp.Diff(test, v.JSON()); diff != "" {
			t.Errorf("Round trip of %#q: (-want, +got)\n%s", test, diff)
		}
	}
}
