// Package paging computes the window that follows a list request.
package paging

const (
	// Step is how far the limit advances past the next offset.
	Step uint64 = 10
	// DefaultLimit applies when a list request carries no limit.
	DefaultLimit uint64 = 10
	// DefaultOffset applies when a list request carries no offset.
	DefaultOffset uint64 = 0
)

// Next returns the offset and limit a client should send for the following
// page, given the total number of items and the limit of the current request.
// Both values are clamped to total.
func Next(total, limit uint64) (nextOffset, nextLimit uint64) {
	nextOffset = min(total, limit)
	nextLimit = min(nextOffset+Step, total)
	return nextOffset, nextLimit
}
