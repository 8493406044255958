package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modelhomeart/mhabackend/repository"
)

// GetDashboard summarizes open work for the admin landing page: total and
// unhandled (NEW) counts per submission type.
func (d *Deps) GetDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		counts := func(list func(context.Context, repository.ListFilter) (int64, error)) (int64, int64, error) {
			total, err := list(ctx, repository.ListFilter{Page: 1, Limit: 1})
			if err != nil {
				return 0, 0, err
			}
			fresh, err := list(ctx, repository.ListFilter{Status: "NEW", Page: 1, Limit: 1})
			return total, fresh, err
		}

		quoteTotal, quoteNew, err := counts(func(ctx context.Context, f repository.ListFilter) (int64, error) {
			_, n, err := d.Quotes.List(ctx, f)
			return n, err
		})
		if err != nil {
			log.Printf("dashboard quote counts failed: %v", err)
			serverError(c, "Failed to load dashboard", "DB_READ_FAILED")
			return
		}

		contactTotal, contactNew, err := counts(func(ctx context.Context, f repository.ListFilter) (int64, error) {
			_, n, err := d.Contacts.List(ctx, f)
			return n, err
		})
		if err != nil {
			log.Printf("dashboard contact counts failed: %v", err)
			serverError(c, "Failed to load dashboard", "DB_READ_FAILED")
			return
		}

		inquiryTotal, inquiryNew, err := counts(func(ctx context.Context, f repository.ListFilter) (int64, error) {
			_, n, err := d.Inquiries.List(ctx, f)
			return n, err
		})
		if err != nil {
			log.Printf("dashboard inquiry counts failed: %v", err)
			serverError(c, "Failed to load dashboard", "DB_READ_FAILED")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"quotes":    gin.H{"total": quoteTotal, "new": quoteNew},
			"contacts":  gin.H{"total": contactTotal, "new": contactNew},
			"inquiries": gin.H{"total": inquiryTotal, "new": inquiryNew},
		})
	}
}
