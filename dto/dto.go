// Package dto holds the external representations of the persisted
// models and the explicit mapping between the two. Every DTO field is
// a pointer so one type serves responses, create payloads and partial
// update patches: a nil field in a patch means "leave it alone".
//
// All mappers propagate nil (a nil input maps to a nil output), and
// no merge ever touches the identifier.
package dto

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
