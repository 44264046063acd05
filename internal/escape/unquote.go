// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

// escControl maps the single-letter escapes to the control bytes they
// denote. Entries not listed are zero.
var escControl = [...]byte{
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
}

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes are replaced by the Unicode replacement rune. Unquote reports an
// error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	out := make([]byte, 0, src.Len())
	for {
		// Everything before the next escape marker is copied through intact.
		// If no marker remains, the rest of the input is literal text.
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(out, src), nil
		}
		out = mem.Append(out, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		// Decode the rune after the marker to select the substitution.
		// Decode failures do not stop the scan; they substitute replacement
		// runes (utf8.RuneError).
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		src = src.SliceFrom(n)

		switch r {
		case '"', '\\', '/':
			out = append(out, byte(r))
		case 'b', 'f', 'n', 'r', 't':
			out = append(out, escControl[r])
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, ok := hex4(src.SliceTo(4))
			if !ok {
				v = utf8.RuneError
			}
			out = utf8.AppendRune(out, v)
			src = src.SliceFrom(4)
		default:
			out = utf8.AppendRune(out, utf8.RuneError)
		}
	}
}

// hex4 decodes four hexadecimal digits from data. It reports false if any
// byte is not a hex digit.
func hex4(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		switch {
		case '0' <= b && b <= '9':
			v = v<<4 | rune(b-'0')
		case 'a' <= b && b <= 'f':
			v = v<<4 | rune(b-'a'+10)
		case 'A' <= b && b <= 'F':
			v = v<<4 | rune(b-'A'+10)
		default:
			return 0, false
		}
	}
	return v, true
}
