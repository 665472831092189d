// Package errs provides the typed errors shared by the ordering service.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired) with a struct that carries the
// parameter name and an optional cause. Unwrap returns the sentinel, so callers
// branch with errors.Is:
//
//	o, err := repo.Find(ctx, id)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // create a new one
//	}
//
// IsValidation groups the three value kinds so adapters can map them to a
// single client error.
package errs
