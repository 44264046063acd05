// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jptr

// A Span describes a contiguous span of source input, as byte offsets.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}
