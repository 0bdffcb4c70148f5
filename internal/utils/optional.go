// Package utils holds small helpers for optional values, such as an expected state
// that is either supplied or absent.
package utils

// Value dereferences v, returning the zero value when v is nil.
func Value[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// PtrIf returns a pointer to v when set is true and nil otherwise. It turns a
// "was this flag given" check into an optional value.
func PtrIf[T any](set bool, v T) *T {
	if !set {
		return nil
	}
	return &v
}
