package violation

import (
	perr "figurefriday/internal/platform/errors"
)

// Move is a selector action
type Move string

const (
	// MoveJump selects a specific index
	MoveJump Move = "jump"
	// MoveNext steps forward, wrapping to the first record
	MoveNext Move = "next"
	// MovePrev steps back, wrapping to the last record
	MovePrev Move = "prev"
)

// Cursor moves an index over a collection of Len records
// every index it returns is in range
type Cursor struct {
	Len int
}

// Jump validates and returns target
func (c Cursor) Jump(target int) (int, error) {
	if err := c.check(target); err != nil {
		return 0, err
	}
	return target, nil
}

// Step moves cur by delta records, wrapping modulo Len in either direction
func (c Cursor) Step(cur, delta int) (int, error) {
	if err := c.check(cur); err != nil {
		return 0, err
	}
	return ((cur+delta)%c.Len + c.Len) % c.Len, nil
}

// Apply performs a selector move from cur
func (c Cursor) Apply(cur int, m Move, target int) (int, error) {
	switch m {
	case MoveJump:
		return c.Jump(target)
	case MoveNext:
		return c.Step(cur, 1)
	case MovePrev:
		return c.Step(cur, -1)
	default:
		return 0, perr.InvalidArgf("unknown move %q", m)
	}
}

func (c Cursor) check(i int) error {
	if c.Len <= 0 {
		return perr.InvalidArgf("selector has no records")
	}
	if i < 0 || i >= c.Len {
		return perr.InvalidArgf("index %d out of range [0, %d)", i, c.Len)
	}
	return nil
}
