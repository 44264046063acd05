// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package pointer implements JSON Pointer (RFC 6901) resolution and
// assignment over the syntax trees of the ast package.
//
// A pointer selects a single value within a JSON document by a path of
// reference tokens, one per level of structure, for example:
//
//	/spec/containers/0/name
//
// The empty pointer "" selects the document itself. Get resolves a pointer
// to the value it names; Set replaces the value it names, growing arrays via
// the reserved "-" token and inserting object members as needed. The
// resolved value is a position in the input tree, not a copy.
//
// Getf and Setf accept printf-style path formats for paths assembled at the
// call site. See https://tools.ietf.org/html/rfc6901 for the syntax of
// pointer strings.
package pointer

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by operations of this package. All errors returned by
// Parse, Get, Set, Getf, and Setf wrap one of these values; use errors.Is to
// discriminate.
var (
	// ErrSyntax: the pointer string does not conform to the RFC 6901 grammar.
	ErrSyntax = errors.New("malformed pointer")

	// ErrBadIndex: a token indexing an array is not a valid decimal index.
	ErrBadIndex = errors.New("malformed array index")

	// ErrOutOfRange: a token indexing an array is structurally valid, but
	// names a position past the end of the array.
	ErrOutOfRange = errors.New("array index out of range")

	// ErrNotFound: the pointer does not resolve to a value in the document.
	ErrNotFound = errors.New("no value at pointer")

	// ErrNotContainer: the value being assigned into is not an object or an
	// array.
	ErrNotContainer = errors.New("not an object or array")

	// ErrFormat: a printf-style path format could not be rendered.
	ErrFormat = errors.New("invalid path format")
)

// A Pointer is a parsed JSON pointer: a sequence of decoded reference
// tokens. The zero Pointer has no tokens and denotes the document root.
type Pointer []string

// Parse parses s as a JSON pointer in the plain string syntax of RFC 6901
// §5. The empty string denotes the root; any other pointer must begin with a
// "/" separator. URI fragment syntax ("#/...") is not supported.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return nil, nil
	}
	if s[0] != '/' {
		return nil, fmt.Errorf(`%w: %q does not begin with "/"`, ErrSyntax, s)
	}
	parts := strings.Split(s[1:], "/")
	out := make(Pointer, len(parts))
	for i, tok := range parts {
		dec, err := decodeToken(tok)
		if err != nil {
			return nil, err
		}
		out[i] = dec
	}
	return out, nil
}

// decodeToken decodes the RFC 6901 escape sequences in a reference token.
// The input is scanned once, left to right: "~1" decodes to "/" and "~0" to
// "~". Substituted text is not rescanned, so "~01" decodes to "~1" and not
// to "/".
func decodeToken(tok string) (string, error) {
	if !strings.ContainsRune(tok, '~') {
		return tok, nil
	}
	var sb strings.Builder
	sb.Grow(len(tok))
	for i := 0; i < len(tok); i++ {
		if tok[i] != '~' {
			sb.WriteByte(tok[i])
			continue
		}
		if i+1 == len(tok) {
			return "", fmt.Errorf(`%w: incomplete escape in %q`, ErrSyntax, tok)
		}
		switch tok[i+1] {
		case '0':
			sb.WriteByte('~')
		case '1':
			sb.WriteByte('/')
		default:
			return "", fmt.Errorf(`%w: invalid escape "~%c" in %q`, ErrSyntax, tok[i+1], tok)
		}
		i++
	}
	return sb.String(), nil
}

// encodeToken applies the RFC 6901 escape sequences to a decoded reference
// token. The "~" escape is applied first so that its expansion is not
// re-escaped.
func encodeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

// String renders p in the pointer string syntax. The result round-trips
// through Parse: escapes are reapplied, and the root pointer renders as "".
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	escaped := make([]string, len(p))
	for i, tok := range p {
		escaped[i] = encodeToken(tok)
	}
	return "/" + strings.Join(escaped, "/")
}

// IsRoot reports whether p is the root pointer (zero tokens).
func (p Pointer) IsRoot() bool { return len(p) == 0 }
