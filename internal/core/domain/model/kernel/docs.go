// Package kernel contains the shared value objects of the domain model:
// entity identifiers and duration estimates. Both are immutable, validate
// themselves, and treat their zero value as not constructed.
package kernel
