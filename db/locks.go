package db

import "sync"

// bookLocks serializes borrow/return per book inside this process. It is a
// fast path layered on top of the storage transaction, never a replacement
// for it; the row lock still guards against other processes.
type bookLocks struct {
	mu sync.Map // book id -> *sync.Mutex
}

func newBookLocks() *bookLocks { return &bookLocks{} }

func (b *bookLocks) lock(bookID string) func() {
	v, _ := b.mu.LoadOrStore(bookID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
