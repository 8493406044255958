package cart

import "sync"

// Registry hands out per-token carts for the HTTP layer. Carts live in
// memory; the token travels in the X-Cart-Token header.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

func (r *Registry) Get(token string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[token]; ok {
		return s
	}
	s := NewStore(nil)
	r.stores[token] = s
	return s
}
