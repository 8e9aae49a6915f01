// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package own enforces exclusive-mutable / shared-immutable borrowing rules
// at runtime through generic wrapper types and fail-fast contract checks.
//
// Values live in a cell owned by exactly one owner. Borrows are non-owning
// handles into that cell that count themselves in and out; every access
// re-checks the counters and reports a [*Violation] on misuse.
//
// # Architecture
//
//   - Owners: [Val] (read-only) and [Mut] (read-write). [Val.Clone]/[Mut.Clone]
//     copy the value into an independent cell; [Val.Move]/[Mut.Move] relocate
//     the cell and invalidate the source. [MutFrom] converts a [Val].
//   - Borrows: [Ref] (shared, any number) from either owner, [MutRef]
//     (exclusive, at most one, never alongside a [Ref]) from [Mut] only.
//   - Scoping: [Val.WithRef], [Mut.WithRef] and [Mut.WithMutRef] release on
//     every exit path. Raw borrows pair with defer Release.
//
// # Rules
//
//   - [Val.Get] fails while any [Ref] of it is alive.
//   - [Mut.Get] fails while a [MutRef] of it is alive; [Ref]s are tolerated.
//   - [Mut.MutRef] fails while any [Ref] or [MutRef] is alive.
//   - [MutRef.Get]/[MutRef.Set] fail while any [Ref] is alive. Creating a
//     [Ref] does not itself look for a [MutRef].
//   - [Val.Drop]/[Mut.Drop] fail while any [Ref] is alive. [Mut.Drop] does
//     not look for a [MutRef].
//   - Anything on a moved-from or dropped owner fails, as does any use of a
//     released borrow.
//
// Relocation copies the borrow counters into the new cell instead of
// transferring the live borrows: borrows of the old cell fail on next use
// and the new cell keeps their counts.
//
// # Contract Checks
//
// Checks are compiled in by default ([Checked] is true). Building with
// -tags ownrelease compiles them out, after which misuse is undefined.
//
// In checked builds the reaction is chosen with [SetMode]:
//
//   - [ModePanic]: panic with the [*Violation] (default).
//   - [ModeLog]: warn through logrus ([SetLogger]) and continue.
//   - [ModeRecord]: keep the latest violations for [Violations] and continue.
//
// [Try] and [TryDo] turn a violation panic into a kont.Either.
//
// Nothing here is safe for concurrent use. Owners and their borrows must
// stay on one goroutine.
//
// # Example
//
//	y := own.NewMut(2)
//	y.WithRef(func(r *own.Ref[int]) {
//		_ = r.Get() // 2
//	})
//	y.WithMutRef(func(m *own.MutRef[int]) {
//		m.Set(3)
//	})
//	_ = y.Get() // 3
//	y.Drop()
package own
