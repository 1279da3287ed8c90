package collection

// EmptyCollectionError reports an attempt to produce a non-empty collection
// from zero elements. It is the single error kind every fallible conversion
// and every decode path in this package can fail with.
type EmptyCollectionError struct {
	message string
}

func (e EmptyCollectionError) Error() string {
	return e.message
}

// Is reports whether target is also an EmptyCollectionError, regardless of
// which collection kind produced it.
func (e EmptyCollectionError) Is(target error) bool {
	_, ok := target.(EmptyCollectionError)
	return ok
}

func errEmptyMap() EmptyCollectionError {
	return EmptyCollectionError{message: "Given map shouldn't be empty."}
}

func errEmptyCollection() EmptyCollectionError {
	return EmptyCollectionError{message: "Given collection shouldn't be empty."}
}
