// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package pointer

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jptr/ast"
)

// Get resolves path against root and returns the value it names.
// The result is a position within root, not a copy. An empty path returns
// root itself. If the path does not resolve, Get reports ErrNotFound; if the
// path is not a valid pointer, it reports ErrSyntax.
func Get(root ast.Value, path string) (ast.Value, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return p.Get(root)
}

// Get resolves p against root and returns the value it names.
func (p Pointer) Get(root ast.Value) (ast.Value, error) {
	cur := root
	for _, tok := range p {
		switch t := cur.(type) {
		case ast.Object:
			m := t.Find(tok)
			if m == nil {
				return nil, fmt.Errorf("%w: key %q", ErrNotFound, tok)
			}
			cur = m.Value
		case ast.Array:
			// Any token that does not name an existing element, including the
			// reserved "-" token, is a lookup failure here.
			i, err := indexValue(tok)
			if err != nil || i >= len(t) {
				return nil, fmt.Errorf("%w: array index %q", ErrNotFound, tok)
			}
			cur = t[i]
		default:
			return nil, fmt.Errorf("%w: cannot traverse %T with %q", ErrNotFound, cur, tok)
		}
	}
	return cur, nil
}

// Set assigns value at the location path names within *root. An empty path
// replaces the document: *root is rebound to value and the previous document
// is discarded. Otherwise the parent of the target location must already
// exist: assigning to an object member replaces it or inserts a new member
// at the end, and assigning to an array element replaces it; the reserved
// final token "-" appends a new element to an array.
//
// On failure the tree is not modified and value is not linked into it.
func Set(root *ast.Value, path string, value ast.Value) error {
	p, err := Parse(path)
	if err != nil {
		return err
	}
	return p.Set(root, value)
}

// Set assigns value at the location p names within *root.
// The semantics are those of the package-level Set.
func (p Pointer) Set(root *ast.Value, value ast.Value) error {
	out, err := assign(*root, p, value)
	if err != nil {
		return err
	}
	*root = out
	return nil
}

// assign places value at the location named by tokens below cur, and returns
// the value that should occupy cur's own slot afterward. The result differs
// from cur only when the assignment grows a container, changing its slice
// header, or when tokens is empty and value replaces cur outright. Nothing
// in the tree is written until the recursion below the write point has
// succeeded, so a failed assignment leaves the tree untouched.
func assign(cur ast.Value, tokens []string, value ast.Value) (ast.Value, error) {
	if len(tokens) == 0 {
		return value, nil
	}
	tok, rest := tokens[0], tokens[1:]

	switch t := cur.(type) {
	case ast.Object:
		if m := t.Find(tok); m != nil {
			w, err := assign(m.Value, rest, value)
			if err != nil {
				return nil, err
			}
			m.Value = w
			return t, nil
		}
		if len(rest) != 0 {
			return nil, fmt.Errorf("%w: key %q", ErrNotFound, tok)
		}
		return append(t, ast.Field(tok, value)), nil

	case ast.Array:
		if len(rest) == 0 {
			if tok == "-" {
				return append(t, value), nil
			}
			i, err := indexValue(tok)
			if err != nil {
				return nil, err
			}
			if i >= len(t) {
				return nil, fmt.Errorf("%w: index %d > %d", ErrOutOfRange, i, len(t)-1)
			}
			t[i] = value
			return t, nil
		}

		// Interior tokens resolve with lookup semantics; "-" and other tokens
		// that do not name an existing element fail here.
		i, err := indexValue(tok)
		if err != nil || i >= len(t) {
			return nil, fmt.Errorf("%w: array index %q", ErrNotFound, tok)
		}
		w, err := assign(t[i], rest, value)
		if err != nil {
			return nil, err
		}
		t[i] = w
		return t, nil

	default:
		if len(rest) != 0 {
			return nil, fmt.Errorf("%w: cannot traverse %T with %q", ErrNotFound, cur, tok)
		}
		return nil, fmt.Errorf("%w: cannot assign %q in %T", ErrNotContainer, tok, cur)
	}
}

// indexValue parses tok as a non-negative decimal array index per RFC 6901:
// the digits 0-9 only, with no redundant leading zeroes. Anything else,
// including values that overflow int, reports ErrBadIndex.
func indexValue(tok string) (int, error) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return -1, fmt.Errorf("%w: %q", ErrBadIndex, tok)
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return -1, fmt.Errorf("%w: %q", ErrBadIndex, tok)
		}
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return -1, fmt.Errorf("%w: %q", ErrBadIndex, tok)
	}
	return v, nil
}
