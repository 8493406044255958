// Package repository provides persistence for customer submissions. Mongo
// implementations back the server; in-memory implementations back tests and
// DB-less local runs.
package repository

import (
	"context"
	"errors"

	"github.com/modelhomeart/mhabackend/models"
)

var ErrNotFound = errors.New("record not found")

// ListFilter carries status filtering and offset pagination shared by all
// submission listings.
type ListFilter struct {
	Status string
	Page   int
	Limit  int
}

func (f ListFilter) Skip() int64 {
	return int64((f.Page - 1) * f.Limit)
}

type QuoteRepo interface {
	Insert(ctx context.Context, q *models.QuoteRequest) error
	List(ctx context.Context, f ListFilter) ([]models.QuoteRequest, int64, error)
	Get(ctx context.Context, id string) (*models.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.QuoteRequestStatus) error
}

type ContactRepo interface {
	Insert(ctx context.Context, s *models.ContactSubmission) error
	List(ctx context.Context, f ListFilter) ([]models.ContactSubmission, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error
}

type InquiryRepo interface {
	Insert(ctx context.Context, b *models.BusinessInquiry) error
	List(ctx context.Context, f ListFilter) ([]models.BusinessInquiry, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error
}
