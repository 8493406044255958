package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modelhomeart/mhabackend/config"
	"github.com/modelhomeart/mhabackend/dto"
	"github.com/modelhomeart/mhabackend/mailer"
	"github.com/modelhomeart/mhabackend/models"
	"github.com/modelhomeart/mhabackend/repository"
	"github.com/modelhomeart/mhabackend/uploads"
	"github.com/modelhomeart/mhabackend/utils"
	"github.com/modelhomeart/mhabackend/wizard"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var quoteStatuses = map[models.QuoteRequestStatus]bool{
	models.QuoteStatusNew:        true,
	models.QuoteStatusInProgress: true,
	models.QuoteStatusQuoted:     true,
	models.QuoteStatusAccepted:   true,
	models.QuoteStatusClosed:     true,
}

// CreateQuoteRequest accepts a quote submission as multipart/form-data (a
// "formData" JSON field plus up to three imageN binary parts) or as legacy
// application/json with base64 data-URL images. Only the database write is
// fatal; email, Slack and storage failures are logged and swallowed.
func (d *Deps) CreateQuoteRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var form dto.QuoteSubmissionDTO
		var images []uploads.Image

		if isMultipart(c) {
			raw := c.PostForm("formData")
			if raw == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
				return
			}
			if err := json.Unmarshal([]byte(raw), &form); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
				return
			}
			var err error
			images, err = parseImageParts(c, wizard.MaxQuoteImages)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
				return
			}
		} else {
			if err := c.ShouldBindJSON(&form); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
				return
			}
			var err error
			images, err = parseDataURLs(form.Images, wizard.MaxQuoteImages)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
				return
			}
		}

		form.Name = strings.TrimSpace(form.Name)
		form.Email = strings.TrimSpace(form.Email)
		form.Category = strings.TrimSpace(form.Category)
		if form.Category == "" || form.Name == "" || form.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		if uploads.TotalSize(images) > wizard.MaxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Total upload size exceeds %dMB limit. Please use smaller images.", wizard.MaxUploadMB),
			})
			return
		}

		// The single-select service and the services array are the same field
		// in two wire shapes; accept either and keep both populated.
		if form.Service == "" && len(form.Services) > 0 {
			form.Service = form.Services[0]
		}
		if len(form.Services) == 0 && form.Service != "" {
			form.Services = []string{form.Service}
		}

		now := time.Now().UTC()
		quote := models.QuoteRequest{
			ID:               bson.NewObjectID(),
			Category:         form.Category,
			Description:      form.Description,
			Width:            form.Width,
			Height:           form.Height,
			NotSureSize:      form.NotSureSize,
			RepairsNeeded:    form.RepairsNeeded,
			RepairNotes:      form.RepairNotes,
			StylePreference:  form.StylePreference,
			Matting:          form.Matting,
			Protection:       form.Protection,
			BudgetRange:      form.BudgetRange,
			Timeline:         form.Timeline,
			Service:          form.Service,
			Services:         form.Services,
			ZipCode:          form.ZipCode,
			Name:             form.Name,
			Email:            form.Email,
			Phone:            form.Phone,
			PreferredContact: form.PreferredContact,
			Status:           models.QuoteStatusNew,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		quote.Images, quote.Attachments = d.storeImages(ctx, "quotes", images)

		if err := d.Quotes.Insert(ctx, &quote); err != nil {
			log.Printf("quote insert failed: %v", err)
			serverError(c, "Failed to submit quote request", "DB_WRITE_FAILED")
			return
		}

		atts := mailAttachments(images)
		customer := mailer.QuoteCustomerEmail(&quote)
		customer.Attachments = atts
		d.sendMail(ctx, "quote confirmation", customer)
		if d.AdminEmail != "" {
			admin := mailer.QuoteAdminEmail(&quote, d.AdminEmail, d.AdminBaseURL)
			admin.Attachments = atts
			d.sendMail(ctx, "quote notification", admin)
		}

		budget := config.Label(config.Budget, quote.BudgetRange)
		if quote.BudgetRange == "" {
			budget = "Not specified"
		}
		d.postSlack(ctx, fmt.Sprintf("🖼️ New Quote Request from %s\nCategory: %s\nBudget: %s",
			quote.Name, quote.Category, budget))

		c.JSON(http.StatusOK, gin.H{"success": true, "id": quote.ID.Hex()})
	}
}

// GetQuoteRequests lists submissions newest first with optional status
// filtering and offset pagination.
func (d *Deps) GetQuoteRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		status := c.Query("status")
		if status != "" && !quoteStatuses[models.QuoteRequestStatus(status)] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}

		filter := listFilterFromQuery(c, status)
		quotes, total, err := d.Quotes.List(ctx, filter)
		if err != nil {
			log.Printf("quote list failed: %v", err)
			serverError(c, "Failed to fetch quote requests", "DB_READ_FAILED")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"quotes":     quotes,
			"pagination": paginationOf(filter, total),
		})
	}
}

// GetQuoteRequest returns one submission by id for the admin detail view.
func (d *Deps) GetQuoteRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		quote, err := d.Quotes.Get(ctx, c.Param("id"))
		if err != nil {
			if err == repository.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Quote request not found"})
				return
			}
			log.Printf("quote get failed: %v", err)
			serverError(c, "Failed to fetch quote request", "DB_READ_FAILED")
			return
		}
		c.JSON(http.StatusOK, quote)
	}
}

// UpdateQuoteStatus moves a submission through the admin workflow
// (NEW → IN_PROGRESS → QUOTED → ACCEPTED/CLOSED, any order allowed).
func (d *Deps) UpdateQuoteStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body dto.UpdateStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		status := models.QuoteRequestStatus(body.Status)
		if !quoteStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		if err := d.Quotes.UpdateStatus(ctx, c.Param("id"), status); err != nil {
			if err == repository.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Quote request not found"})
				return
			}
			log.Printf("quote status update failed: %v", err)
			serverError(c, "Failed to update status", "DB_WRITE_FAILED")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// storeImages persists photos to the configured object store. Without a
// backend, or when any upload fails, records fall back to positional
// placeholder strings and the photos travel only as email attachments.
func (d *Deps) storeImages(ctx context.Context, prefix string, images []uploads.Image) ([]string, []models.ImageAttachment) {
	if d.Uploads == nil || len(images) == 0 {
		return imagePlaceholders(len(images)), nil
	}

	urls := make([]string, 0, len(images))
	atts := make([]models.ImageAttachment, 0, len(images))
	for _, img := range images {
		att, err := d.Uploads.Upload(ctx, prefix, img)
		if err != nil {
			log.Printf("image upload failed: %v", err)
			return imagePlaceholders(len(images)), nil
		}
		urls = append(urls, att.URL)
		atts = append(atts, *att)
	}
	return urls, atts
}

func listFilterFromQuery(c *gin.Context, status string) repository.ListFilter {
	maxLimit, defaultLimit := utils.GetDefaultQueryLimits()

	page := utils.ParseIntDefault(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := utils.ParseIntDefault(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return repository.ListFilter{Status: status, Page: page, Limit: limit}
}

func paginationOf(f repository.ListFilter, total int64) gin.H {
	totalPages := (total + int64(f.Limit) - 1) / int64(f.Limit)
	return gin.H{
		"page":       f.Page,
		"limit":      f.Limit,
		"total":      total,
		"totalPages": totalPages,
	}
}
