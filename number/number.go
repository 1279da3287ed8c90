// Package number provides refined numeric types: single-field wrappers whose
// invariant is checked once, at construction, and holds for the lifetime of
// every instance. A StrictlyPositiveInt is always > 0, a NonZeroInt is never
// 0, and so on.
//
// Constructors return a functional.Result rather than panicking or returning
// a bare error; the wire form of every type is identical to the plain
// number's, and decoding re-validates the invariant.
package number

// IllegalValueError reports a value that violates a refined numeric type's
// invariant. The message is fixed per target type.
type IllegalValueError struct {
	message string
}

func (e IllegalValueError) Error() string {
	return e.message
}

// Is reports whether target is also an IllegalValueError with the same
// message, so errors.Is works across decode boundaries.
func (e IllegalValueError) Is(target error) bool {
	other, ok := target.(IllegalValueError)
	return ok && other.message == e.message
}

func errNotNonZero() IllegalValueError {
	return IllegalValueError{message: "Given value shouldn't equal zero."}
}

func errNotPositive() IllegalValueError {
	return IllegalValueError{message: "Given value shouldn't be strictly negative."}
}

func errNotStrictlyPositive() IllegalValueError {
	return IllegalValueError{message: "Given value should be strictly positive."}
}
