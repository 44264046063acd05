// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package pointer

import (
	"fmt"
	"strings"

	"github.com/creachadair/jptr/ast"
)

// Getf renders a pointer path from a printf-style format string and
// arguments, then resolves it against root as Get does. A path that does not
// render cleanly reports ErrFormat and the tree is not examined. The format
// string must be trusted input; arguments are consumed positionally.
func Getf(root ast.Value, format string, args ...any) (ast.Value, error) {
	path, err := formatPath(format, args...)
	if err != nil {
		return nil, err
	}
	return Get(root, path)
}

// Setf renders a pointer path from a printf-style format string and
// arguments, then assigns value at that location as Set does. The value
// precedes the format so that the variadic arguments can follow it. A path
// that does not render cleanly reports ErrFormat and the tree is not
// modified. The format string must be trusted input.
func Setf(root *ast.Value, value ast.Value, format string, args ...any) error {
	path, err := formatPath(format, args...)
	if err != nil {
		return err
	}
	return Set(root, path, value)
}

// formatPath renders a pointer path from a printf-style format. The fmt
// package has no error return; mismatched verbs and arguments are reported
// inline with a "%!" mark, which is rejected here. A literal "%!" therefore
// cannot appear in a formatted path.
func formatPath(format string, args ...any) (string, error) {
	path := fmt.Sprintf(format, args...)
	if strings.Contains(path, "%!") {
		return "", fmt.Errorf("%w: %q renders as %q", ErrFormat, format, path)
	}
	return path, nil
}
