// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"io"

	"github.com/creachadair/jptr"
)

// ErrExtraInput is reported by ParseSingle if the input contains additional
// data after the first JSON value.
var ErrExtraInput = errors.New("extra input after value")

// Parse parses and returns the JSON values from r. In case of error, any
// complete values already parsed are returned along with the error.
func Parse(r io.Reader) ([]Value, error) {
	h := new(parseHandler)
	st := jptr.NewStream(r)
	var vs []Value
	for {
		if err := st.ParseOne(h); err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		vs = append(vs, h.top)
		h.top = nil
	}
}

// ParseSingle parses and returns the first complete JSON value from r.
// It reports ErrExtraInput if more input follows the first value.
func ParseSingle(r io.Reader) (Value, error) {
	h := new(parseHandler)
	st := jptr.NewStream(r)
	if err := st.ParseOne(h); err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	} else if err != nil {
		return nil, err
	}
	v := h.top
	if err := st.ParseOne(h); err == nil {
		return v, ErrExtraInput
	} else if err != io.EOF {
		return v, err
	}
	return v, nil
}

// A frame is an open container under construction. Exactly one of the
// container fields is active, selected by isObj.
type frame struct {
	isObj bool
	obj   []*Member
	arr   []Value

	open *Member // pending member of obj awaiting its value
}

// A parseHandler implements the jptr.Handler interface to construct abstract
// syntax trees for JSON values.
type parseHandler struct {
	stk  []*frame
	top  Value // most recently completed toplevel value
	tbuf [][]byte
}

// intern interns a copy of text and returns a slice of the copy.
// Allocations are batched to reduce allocation overhead.
func (h *parseHandler) intern(text []byte) []byte {
	const bufBlockBytes = 8192

	if len(text) >= bufBlockBytes {
		return append([]byte(nil), text...)
	}

	i := 0
	for i < len(h.tbuf) {
		if len(h.tbuf[i])+len(text) < cap(h.tbuf[i]) {
			break
		}
		i++
	}
	if i == len(h.tbuf) {
		h.tbuf = append(h.tbuf, make([]byte, 0, bufBlockBytes))
	}
	s := len(h.tbuf[i])
	h.tbuf[i] = append(h.tbuf[i], text...)
	return h.tbuf[i][s : s+len(text)]
}

// emit delivers a completed value to the innermost open container, or records
// it as the toplevel result if no container is open.
func (h *parseHandler) emit(v Value) {
	if len(h.stk) == 0 {
		h.top = v
		return
	}
	f := h.stk[len(h.stk)-1]
	if f.isObj {
		f.open.Value = v
		f.open = nil
	} else {
		f.arr = append(f.arr, v)
	}
}

func (h *parseHandler) pop() *frame {
	f := h.stk[len(h.stk)-1]
	h.stk = h.stk[:len(h.stk)-1]
	return f
}

func (h *parseHandler) BeginObject(loc jptr.Anchor) error {
	h.stk = append(h.stk, &frame{isObj: true})
	return nil
}

func (h *parseHandler) EndObject(loc jptr.Anchor) error {
	h.emit(Object(h.pop().obj))
	return nil
}

func (h *parseHandler) BeginArray(loc jptr.Anchor) error {
	h.stk = append(h.stk, new(frame))
	return nil
}

func (h *parseHandler) EndArray(loc jptr.Anchor) error {
	h.emit(Array(h.pop().arr))
	return nil
}

func (h *parseHandler) BeginMember(loc jptr.Anchor) error {
	key, err := jptr.Unquote(loc.Text())
	if err != nil {
		return err
	}
	m := &Member{Key: string(key)}
	f := h.stk[len(h.stk)-1]
	f.obj = append(f.obj, m)
	f.open = m
	return nil
}

func (h *parseHandler) EndMember(loc jptr.Anchor) error { return nil }

func (h *parseHandler) Value(loc jptr.Anchor) error {
	switch loc.Token() {
	case jptr.String:
		h.emit(Quoted{text: h.intern(loc.Text())})
	case jptr.Integer, jptr.Number:
		h.emit(Number{text: h.intern(loc.Text())})
	case jptr.True:
		h.emit(True)
	case jptr.False:
		h.emit(False)
	case jptr.Null:
		h.emit(Null)
	default:
		return errors.New("unknown value token " + loc.Token().String())
	}
	return nil
}

func (h *parseHandler) EndOfInput(loc jptr.Anchor) {}
