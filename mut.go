// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Mut is a mutable owner. The value can be read and written through it,
// read through Shared Borrows, and read or written through a single
// Exclusive Borrow.
//
// The zero Mut holds the zero value of T. A Mut must not be copied
// after first use; use Clone or Move.
type Mut[T any] struct {
	_ noCopy
	c cell[T]
}

// NewMut returns a mutable owner of v.
func NewMut[T any](v T) *Mut[T] {
	o := &Mut[T]{}
	o.c.init(v)
	return o
}

// MutFrom returns a mutable owner holding a copy of v's value.
// v is left untouched.
func MutFrom[T any](v *Val[T]) *Mut[T] {
	return NewMut(cloneValue(v.c.getVal()))
}

// Get returns the value. No Exclusive Borrow of o may be alive;
// Shared Borrows are tolerated since they cannot change the value.
func (o *Mut[T]) Get() T {
	require(o.c.getExclusive() == 0, StaleRead, o.c.serial, "read through owner while an exclusive borrow is alive")
	return o.c.getVal()
}

// Set replaces the value. It does not inspect the borrow counters.
func (o *Mut[T]) Set(v T) {
	o.c.setVal(v)
}

// Ref returns a Shared Borrow of o.
func (o *Mut[T]) Ref() *Ref[T] {
	return newRef(&o.c)
}

// MutRef returns an Exclusive Borrow of o.
// No other borrow of o may be alive.
func (o *Mut[T]) MutRef() *MutRef[T] {
	return newMutRef(&o.c)
}

// WithRef calls fn with a Shared Borrow of o and releases it when fn
// returns or panics.
func (o *Mut[T]) WithRef(fn func(r *Ref[T])) {
	r := o.Ref()
	defer r.Release()
	fn(r)
}

// WithMutRef calls fn with an Exclusive Borrow of o and releases it when
// fn returns or panics. If fn moves the borrow, the moved-to handle is
// the caller's to release. Releasing r inside fn is a double release,
// as with WithRef.
func (o *Mut[T]) WithMutRef(fn func(r *MutRef[T])) {
	r := o.MutRef()
	defer func() {
		if !r.moved {
			r.Release()
		}
	}()
	fn(r)
}

// Clone returns an independent owner holding a copy of the current value.
func (o *Mut[T]) Clone() *Mut[T] {
	return NewMut(cloneValue(o.c.getVal()))
}

// Move relocates o into a new owner and invalidates o.
func (o *Mut[T]) Move() *Mut[T] {
	n := &Mut[T]{}
	n.c.relocateFrom(&o.c)
	return n
}

// Drop ends the lifetime of o. No Shared Borrow of o may be alive.
// An outstanding Exclusive Borrow is not checked here.
// Dropping a moved-from owner is a no-op.
func (o *Mut[T]) Drop() {
	if o.c.invalidated && !o.c.dropped {
		return
	}
	require(o.c.getShared() == 0, DanglingBorrow, o.c.serial, "shared borrow outlived its owner")
	o.c.dropped = true
}

// State returns the borrow state of o's cell.
func (o *Mut[T]) State() State {
	return o.c.state()
}

// Borrows returns the number of outstanding shared and exclusive borrows.
func (o *Mut[T]) Borrows() (shared, exclusive uint32) {
	return o.c.getShared(), o.c.getExclusive()
}

// Serial returns the identifier of o's cell.
func (o *Mut[T]) Serial() Serial {
	return o.c.serial
}
