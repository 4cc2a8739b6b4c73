package storage

import "sync"

// Subscriptions is the observer half of a Store. Backends embed it by
// value and call Notify after each successful mutation; callbacks run
// synchronously on the mutating goroutine, so they should do no more
// than schedule a recomputation.
type Subscriptions struct {
	mu   sync.Mutex
	seq  int
	subs map[Collection]map[int]func()
}

// Subscribe registers fn for a collection and returns an idempotent
// cancel func. Subscription lifecycle belongs to the caller: subscribe
// when a view opens, cancel when it closes.
func (s *Subscriptions) Subscribe(c Collection, fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs == nil {
		s.subs = make(map[Collection]map[int]func())
	}
	if s.subs[c] == nil {
		s.subs[c] = make(map[int]func())
	}
	s.seq++
	id := s.seq
	s.subs[c][id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[c], id)
	}
}

// Notify invokes every callback registered for the collection.
func (s *Subscriptions) Notify(c Collection) {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs[c]))
	for _, fn := range s.subs[c] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
