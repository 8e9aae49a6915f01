// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Ref is a Shared Borrow: a non-owning, read-only handle on an owner's
// value. Any number may coexist. Release it before the owner is dropped;
// the idiomatic form is
//
//	r := v.Ref()
//	defer r.Release()
//
// or the owner's WithRef.
type Ref[T any] struct {
	c      *cell[T]
	serial Serial
}

// newRef borrows c. An outstanding Exclusive Borrow is not inspected;
// the Exclusive Borrow re-checks for shared borrows on each access.
func newRef[T any](c *cell[T]) *Ref[T] {
	c.addShared()
	return &Ref[T]{c: c, serial: c.serial}
}

// Get returns the borrowed value.
func (r *Ref[T]) Get() T {
	if !r.valid() {
		var zero T
		return zero
	}
	return r.c.getVal()
}

// Clone returns another Shared Borrow of the same value.
func (r *Ref[T]) Clone() *Ref[T] {
	if !r.valid() {
		return &Ref[T]{serial: r.serial}
	}
	return newRef(r.c)
}

// Release ends the borrow. Releasing twice is a violation.
func (r *Ref[T]) Release() {
	if !r.valid() {
		return
	}
	r.c.removeShared()
	r.c = nil
}

// Released reports whether r has been released.
func (r *Ref[T]) Released() bool {
	return r.c == nil
}

func (r *Ref[T]) valid() bool {
	return require(r.c != nil, ReleasedBorrow, r.serial, "shared borrow used after release")
}
