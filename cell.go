// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// State is the borrow state of a cell.
type State uint8

const (
	// Free has no outstanding borrows.
	Free State = iota
	// Shared has one or more Shared Borrows.
	Shared
	// Exclusive has exactly one Exclusive Borrow.
	Exclusive
	// Invalidated is absorbing: the contents were relocated or dropped.
	Invalidated
)

// String returns the name of s.
func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	case Invalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// Cloner is implemented by values that need more than assignment
// to produce an independent copy (slices, maps, pointers).
type Cloner[T any] interface {
	Clone() T
}

// cloneValue returns an independent copy of v.
func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}

// noCopy makes go vet's copylocks check flag owners copied by value.
// Owners are duplicated with Clone and transferred with Move.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// cell holds a value together with its borrow counters.
// A cell is embedded in exactly one owner; borrows point into it.
// Not safe for concurrent use.
type cell[T any] struct {
	val         T
	shared      uint32
	exclusive   uint32
	invalidated bool
	dropped     bool
	serial      Serial
}

func (c *cell[T]) init(v T) {
	c.val = v
	c.serial = nextSerial()
}

// live checks that c has been neither relocated nor dropped.
func (c *cell[T]) live() bool {
	if !require(!c.dropped, UseAfterDrop, c.serial, "value used after it was dropped") {
		return false
	}
	return require(!c.invalidated, UseAfterRelocate, c.serial, "value used after it was moved")
}

func (c *cell[T]) addShared() {
	c.live()
	c.shared++
}

func (c *cell[T]) addExclusive() {
	c.live()
	c.exclusive++
}

func (c *cell[T]) removeShared() {
	c.live()
	if require(c.shared > 0, Underflow, c.serial, "shared borrow released but none were outstanding") {
		c.shared--
	}
}

func (c *cell[T]) removeExclusive() {
	c.live()
	if require(c.exclusive > 0, Underflow, c.serial, "exclusive borrow released but none were outstanding") {
		c.exclusive--
	}
}

func (c *cell[T]) getShared() uint32 {
	c.live()
	return c.shared
}

func (c *cell[T]) getExclusive() uint32 {
	c.live()
	return c.exclusive
}

func (c *cell[T]) getVal() T {
	c.live()
	return c.val
}

// setVal overwrites the value. Callers enforce the aliasing rules.
func (c *cell[T]) setVal(v T) {
	c.live()
	c.val = v
}

// relocateFrom copies src verbatim into c and invalidates src.
// Moving a dropped value is reported; a moved-from src is not.
// Outstanding borrow counts are duplicated, not transferred: borrows of
// src keep pointing at src and fail on their next use, while c starts
// with the stale counts.
func (c *cell[T]) relocateFrom(src *cell[T]) {
	require(!src.dropped, UseAfterDrop, src.serial, "value moved after it was dropped")
	c.shared = src.shared
	c.exclusive = src.exclusive
	c.val = src.val
	c.invalidated = src.invalidated
	c.dropped = src.dropped
	c.serial = nextSerial()
	src.invalidated = true
}

// state classifies c without reporting a violation.
func (c *cell[T]) state() State {
	switch {
	case c.invalidated || c.dropped:
		return Invalidated
	case c.exclusive > 0:
		return Exclusive
	case c.shared > 0:
		return Shared
	default:
		return Free
	}
}
