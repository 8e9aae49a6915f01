// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "fmt"

// Kind classifies a contract violation.
type Kind uint8

const (
	// UseAfterRelocate is any operation on a cell whose contents were moved away.
	UseAfterRelocate Kind = iota + 1
	// UseAfterDrop is any operation on an owner after Drop.
	UseAfterDrop
	// DanglingBorrow is an owner dropped while Shared Borrows are still alive.
	DanglingBorrow
	// Aliasing is an Exclusive Borrow coexisting with any other borrow.
	Aliasing
	// StaleRead is a read through an owner while a conflicting borrow is alive.
	StaleRead
	// Underflow is a release without a matching acquire.
	Underflow
	// ReleasedBorrow is any use of a borrow handle after Release or Move.
	ReleasedBorrow
)

var kindNames = [...]string{
	UseAfterRelocate: "use-after-relocate",
	UseAfterDrop:     "use-after-drop",
	DanglingBorrow:   "dangling-borrow",
	Aliasing:         "aliasing",
	StaleRead:        "stale-read",
	Underflow:        "underflow",
	ReleasedBorrow:   "released-borrow",
}

// String returns the kebab-case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Violation is a detected misuse of the ownership rules.
// It is a programming error, never a recoverable condition: in
// ModePanic it is the panic value.
type Violation struct {
	Kind   Kind
	Serial Serial
	Msg    string
}

// Error implements error.
func (v *Violation) Error() string {
	return fmt.Sprintf("own: %s on cell #%d: %s", v.Kind, v.Serial, v.Msg)
}

// Is reports whether target is a *Violation of the same Kind,
// so errors.Is(err, &Violation{Kind: Aliasing}) matches any aliasing violation.
func (v *Violation) Is(target error) bool {
	t, ok := target.(*Violation)
	return ok && t.Kind == v.Kind
}
