package engine

import "sync/atomic"

// Allocator hands out cluster identities. Identities are a monotonically
// increasing sequence starting at 1; 0 is reserved and never allocated.
// Safe for concurrent use; no identity is reused or skipped.
type Allocator struct {
	last atomic.Int64
}

// Next returns the next cluster identity. It fails with
// ErrIdentityExhausted if the counter leaves the positive range.
func (a *Allocator) Next() (Label, error) {
	id := a.last.Add(1)
	if id < 1 {
		return Unassigned, ErrIdentityExhausted
	}
	return Label(id), nil
}

// Allocated returns how many identities have been handed out.
func (a *Allocator) Allocated() int64 {
	return a.last.Load()
}
