package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/modelhomeart/mhabackend/models"
)

// In-memory implementations. They back the handler tests and let the server
// run without a MongoDB instance during local development.

type MemoryQuotes struct {
	mu    sync.Mutex
	items []models.QuoteRequest
}

func (r *MemoryQuotes) Insert(_ context.Context, q *models.QuoteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *q)
	return nil
}

func (r *MemoryQuotes) List(_ context.Context, f ListFilter) ([]models.QuoteRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]models.QuoteRequest, 0)
	for _, q := range r.items {
		if f.Status == "" || string(q.Status) == f.Status {
			matched = append(matched, q)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return pageOf(matched, f), int64(len(matched)), nil
}

func (r *MemoryQuotes) Get(_ context.Context, id string) (*models.QuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() == id {
			q := r.items[i]
			return &q, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryQuotes) UpdateStatus(_ context.Context, id string, status models.QuoteRequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() == id {
			r.items[i].Status = status
			r.items[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

// All returns a copy of every stored quote; test helper.
func (r *MemoryQuotes) All() []models.QuoteRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.QuoteRequest, len(r.items))
	copy(out, r.items)
	return out
}

type MemoryContacts struct {
	mu    sync.Mutex
	items []models.ContactSubmission
}

func (r *MemoryContacts) Insert(_ context.Context, s *models.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *s)
	return nil
}

func (r *MemoryContacts) List(_ context.Context, f ListFilter) ([]models.ContactSubmission, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]models.ContactSubmission, 0)
	for _, s := range r.items {
		if f.Status == "" || string(s.Status) == f.Status {
			matched = append(matched, s)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return pageOf(matched, f), int64(len(matched)), nil
}

func (r *MemoryContacts) UpdateStatus(_ context.Context, id string, status models.ContactStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() == id {
			r.items[i].Status = status
			r.items[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryContacts) All() []models.ContactSubmission {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ContactSubmission, len(r.items))
	copy(out, r.items)
	return out
}

type MemoryInquiries struct {
	mu    sync.Mutex
	items []models.BusinessInquiry
}

func (r *MemoryInquiries) Insert(_ context.Context, b *models.BusinessInquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *b)
	return nil
}

func (r *MemoryInquiries) List(_ context.Context, f ListFilter) ([]models.BusinessInquiry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]models.BusinessInquiry, 0)
	for _, b := range r.items {
		if f.Status == "" || string(b.Status) == f.Status {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return pageOf(matched, f), int64(len(matched)), nil
}

func (r *MemoryInquiries) UpdateStatus(_ context.Context, id string, status models.InquiryStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID.Hex() == id {
			r.items[i].Status = status
			r.items[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryInquiries) All() []models.BusinessInquiry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.BusinessInquiry, len(r.items))
	copy(out, r.items)
	return out
}

func pageOf[T any](items []T, f ListFilter) []T {
	start := int(f.Skip())
	if start >= len(items) {
		return []T{}
	}
	end := start + f.Limit
	if f.Limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
