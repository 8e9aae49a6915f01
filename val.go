// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Val is a read-only owner. The value can be read through it and
// through Shared Borrows obtained with Ref, but never written.
//
// The zero Val holds the zero value of T. A Val must not be copied
// after first use; use Clone or Move.
type Val[T any] struct {
	_ noCopy
	c cell[T]
}

// NewVal returns a read-only owner of v.
func NewVal[T any](v T) *Val[T] {
	o := &Val[T]{}
	o.c.init(v)
	return o
}

// Get returns the value. No Shared Borrow of o may be alive.
func (o *Val[T]) Get() T {
	require(o.c.getShared() == 0, StaleRead, o.c.serial, "read through owner while shared borrows are alive")
	return o.c.getVal()
}

// Ref returns a Shared Borrow of o.
// Release it before o is dropped or read again.
func (o *Val[T]) Ref() *Ref[T] {
	return newRef(&o.c)
}

// WithRef calls fn with a Shared Borrow of o and releases it when fn
// returns or panics.
func (o *Val[T]) WithRef(fn func(r *Ref[T])) {
	r := o.Ref()
	defer r.Release()
	fn(r)
}

// Clone returns an independent owner holding a copy of the current value.
func (o *Val[T]) Clone() *Val[T] {
	return NewVal(cloneValue(o.c.getVal()))
}

// Move relocates o into a new owner and invalidates o.
// Any later use of o, or of borrows taken from it, is a violation.
func (o *Val[T]) Move() *Val[T] {
	n := &Val[T]{}
	n.c.relocateFrom(&o.c)
	return n
}

// Drop ends the lifetime of o. No Shared Borrow of o may be alive.
// Dropping a moved-from owner is a no-op.
func (o *Val[T]) Drop() {
	if o.c.invalidated && !o.c.dropped {
		return
	}
	require(o.c.getShared() == 0, DanglingBorrow, o.c.serial, "shared borrow outlived its owner")
	o.c.dropped = true
}

// State returns the borrow state of o's cell.
func (o *Val[T]) State() State {
	return o.c.state()
}

// Borrows returns the number of outstanding shared and exclusive borrows.
func (o *Val[T]) Borrows() (shared, exclusive uint32) {
	return o.c.getShared(), o.c.getExclusive()
}

// Serial returns the identifier of o's cell.
func (o *Val[T]) Serial() Serial {
	return o.c.serial
}
