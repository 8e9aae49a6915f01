// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// MutRef is an Exclusive Borrow: a non-owning, read-write handle on a
// Mut's value. At most one may exist per value, and only while no
// Shared Borrow exists.
type MutRef[T any] struct {
	c      *cell[T]
	serial Serial
	moved  bool
}

// newMutRef borrows c exclusively. This is the only place that rejects
// a second Exclusive Borrow or one taken over live Shared Borrows.
func newMutRef[T any](c *cell[T]) *MutRef[T] {
	require(c.getShared() == 0, Aliasing, c.serial, "exclusive borrow taken while shared borrows are alive")
	require(c.getExclusive() == 0, Aliasing, c.serial, "second exclusive borrow of the same value")
	c.addExclusive()
	return &MutRef[T]{c: c, serial: c.serial}
}

// Get returns the borrowed value. No Shared Borrow may be alive.
func (r *MutRef[T]) Get() T {
	if !r.valid() {
		var zero T
		return zero
	}
	require(r.c.getShared() == 0, Aliasing, r.c.serial, "exclusive and shared borrows of the same value")
	return r.c.getVal()
}

// Set replaces the borrowed value. No Shared Borrow may be alive.
func (r *MutRef[T]) Set(v T) {
	if !r.valid() {
		return
	}
	require(r.c.getShared() == 0, Aliasing, r.c.serial, "exclusive and shared borrows of the same value")
	r.c.setVal(v)
}

// Move transfers the borrow to a new handle and invalidates r.
// No Shared Borrow may be alive.
func (r *MutRef[T]) Move() *MutRef[T] {
	if !r.valid() {
		return &MutRef[T]{serial: r.serial}
	}
	require(r.c.getShared() == 0, Aliasing, r.c.serial, "exclusive borrow moved while shared borrows are alive")
	n := &MutRef[T]{c: r.c, serial: r.serial}
	r.c = nil
	r.moved = true
	return n
}

// Release ends the borrow. Releasing twice, or releasing a moved-from
// handle, is a violation.
func (r *MutRef[T]) Release() {
	if !r.valid() {
		return
	}
	r.c.removeExclusive()
	r.c = nil
}

// Released reports whether r has been released or moved.
func (r *MutRef[T]) Released() bool {
	return r.c == nil
}

func (r *MutRef[T]) valid() bool {
	return require(r.c != nil, ReleasedBorrow, r.serial, "exclusive borrow used after release or move")
}
