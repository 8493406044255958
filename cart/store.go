// Package cart holds shopping-cart line items keyed by product+size. The
// store is an injectable value rather than a package-level singleton so
// handlers and tests own their instances explicitly.
package cart

import (
	"fmt"
	"sync"
	"time"
)

// Item is one cart line. Price is in cents; ID is a composite generated on
// first add of a given productId+size pair.
type Item struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// Persister snapshots cart contents after each mutation. Nil disables
// persistence.
type Persister interface {
	Save(items []Item) error
	Load() ([]Item, error)
}

type Store struct {
	mu        sync.Mutex
	items     []Item
	isOpen    bool
	persister Persister
}

func NewStore(p Persister) *Store {
	s := &Store{persister: p}
	if p != nil {
		if items, err := p.Load(); err == nil {
			s.items = items
		}
	}
	return s
}

// AddItem merges into an existing line with the same productId+size
// (incrementing quantity) or appends a new line. Adding always opens the
// cart panel.
func (s *Store) AddItem(item Item) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer s.persist()
	s.isOpen = true

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID && s.items[i].Size == item.Size {
			s.items[i].Quantity += item.Quantity
			return s.items[i]
		}
	}

	item.ID = fmt.Sprintf("%s-%s-%d", item.ProductID, item.Size, time.Now().UnixNano())
	s.items = append(s.items, item)
	return item
}

func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.persist()
	s.removeLocked(id)
}

// UpdateQuantity sets a line's quantity; non-positive values remove the line.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.persist()

	if quantity <= 0 {
		s.removeLocked(id)
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			return
		}
	}
}

func (s *Store) removeLocked(id string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.persist()
	s.items = nil
}

func (s *Store) Open()   { s.mu.Lock(); s.isOpen = true; s.mu.Unlock() }
func (s *Store) Close()  { s.mu.Lock(); s.isOpen = false; s.mu.Unlock() }
func (s *Store) Toggle() { s.mu.Lock(); s.isOpen = !s.isOpen; s.mu.Unlock() }

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the total quantity across lines, computed on demand.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Subtotal is Σ price × quantity in cents, computed on demand.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, item := range s.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	// Snapshot failures don't affect cart state.
	_ = s.persister.Save(s.items)
}
