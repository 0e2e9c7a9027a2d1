// Package errs provides the standardized error types used across the
// restaurant application.
//
// Each error scenario follows the same pattern: a sentinel error variable
// (e.g. ErrObjectNotFound), a struct carrying the error details, constructor
// functions with and without a cause, an Error() method for formatting, and
// an Unwrap() method so callers can classify errors with errors.Is.
//
// Domain-specific failures (busy staff, invalid state transitions, ownership
// violations) are declared as sentinels in their own domain packages; this
// package covers only the generic shapes shared by all of them.
package errs
