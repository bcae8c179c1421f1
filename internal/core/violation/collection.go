package violation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	perr "figurefriday/internal/platform/errors"
)

// DecodeSnapshot reads a JSON array of records and validates each one
// any malformed record fails the whole load
func DecodeSnapshot(r io.Reader) ([]Violation, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, perr.Wrapf(ErrMalformed, perr.ErrorCodeValidation, "decode snapshot: %v", err)
	}
	out := make([]Violation, 0, len(raw))
	for i, msg := range raw {
		v, err := DecodeRecord(msg)
		if err != nil {
			return nil, fmt.Errorf("violation: record %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeRecord decodes and validates a single record
func DecodeRecord(b []byte) (Violation, error) {
	var v Violation
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&v); err != nil {
		if _, ok := perr.As(err); ok {
			return Violation{}, err
		}
		return Violation{}, perr.Wrapf(ErrMalformed, perr.ErrorCodeValidation, "decode record: %v", err)
	}
	if err := v.Validate(); err != nil {
		return Violation{}, err
	}
	return v, nil
}

// Collection is the ordered, read-only list of records the selector walks
type Collection struct {
	items []Violation
}

// NewCollection validates items and wraps a private copy
func NewCollection(items []Violation) (*Collection, error) {
	for _, v := range items {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return &Collection{items: append([]Violation(nil), items...)}, nil
}

// Len is the number of records
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the record at index i
func (c *Collection) At(i int) (Violation, error) {
	if i < 0 || i >= c.Len() {
		return Violation{}, perr.NotFoundf("no violation at index %d (have %d)", i, c.Len())
	}
	return c.items[i], nil
}

// All returns the records in order
func (c *Collection) All() []Violation {
	if c == nil {
		return nil
	}
	return append([]Violation(nil), c.items...)
}

// Cursor returns a selector over this collection
func (c *Collection) Cursor() Cursor { return Cursor{Len: c.Len()} }
