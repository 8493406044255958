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
	"github.com/modelhomeart/mhabackend/dto"
	"github.com/modelhomeart/mhabackend/mailer"
	"github.com/modelhomeart/mhabackend/models"
	"github.com/modelhomeart/mhabackend/repository"
	"github.com/modelhomeart/mhabackend/uploads"
	"github.com/modelhomeart/mhabackend/wizard"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var inquiryStatuses = map[models.InquiryStatus]bool{
	models.InquiryStatusNew:       true,
	models.InquiryStatusContacted: true,
	models.InquiryStatusQuoted:    true,
	models.InquiryStatusClosed:    true,
}

// CreateBusinessInquiry handles volume-pricing requests. Same dual transport
// as quotes but with a five-image cap, and both the customer and the business
// owner get notified.
func (d *Deps) CreateBusinessInquiry() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var form dto.BusinessInquiryDTO
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
			images, err = parseImageParts(c, wizard.MaxInquiryImages)
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
			images, err = parseDataURLs(form.Images, wizard.MaxInquiryImages)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
				return
			}
		}

		form.BusinessName = strings.TrimSpace(form.BusinessName)
		form.ContactName = strings.TrimSpace(form.ContactName)
		form.Email = strings.TrimSpace(form.Email)
		if form.BusinessName == "" || form.ContactName == "" || form.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		if uploads.TotalSize(images) > wizard.MaxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Total upload size exceeds %dMB limit. Please use smaller images.", wizard.MaxUploadMB),
			})
			return
		}

		now := time.Now().UTC()
		inquiry := models.BusinessInquiry{
			ID:                 bson.NewObjectID(),
			BusinessName:       form.BusinessName,
			ContactName:        form.ContactName,
			Email:              form.Email,
			Phone:              form.Phone,
			ProjectDescription: form.ProjectDescription,
			SizesInfo:          form.SizesInfo,
			Timeline:           form.Timeline,
			DeliveryNeeds:      form.DeliveryNeeds,
			Invoicing:          form.Invoicing,
			ImageLink:          strings.TrimSpace(form.ImageLink),
			Status:             models.InquiryStatusNew,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		inquiry.Images, inquiry.Attachments = d.storeImages(ctx, "inquiries", images)

		if err := d.Inquiries.Insert(ctx, &inquiry); err != nil {
			log.Printf("inquiry insert failed: %v", err)
			serverError(c, "Failed to submit inquiry", "DB_WRITE_FAILED")
			return
		}

		atts := mailAttachments(images)
		customer := mailer.InquiryCustomerEmail(&inquiry)
		customer.Attachments = atts
		d.sendMail(ctx, "inquiry confirmation", customer)
		if d.AdminEmail != "" {
			admin := mailer.InquiryAdminEmail(&inquiry, d.AdminEmail)
			admin.Attachments = atts
			d.sendMail(ctx, "inquiry notification", admin)
		}

		d.postSlack(ctx, fmt.Sprintf("🏢 New Business Inquiry from %s\nContact: %s",
			inquiry.BusinessName, inquiry.ContactName))

		c.JSON(http.StatusOK, gin.H{"success": true, "id": inquiry.ID.Hex()})
	}
}

func (d *Deps) GetBusinessInquiries() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		status := c.Query("status")
		if status != "" && !inquiryStatuses[models.InquiryStatus(status)] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}

		filter := listFilterFromQuery(c, status)
		inquiries, total, err := d.Inquiries.List(ctx, filter)
		if err != nil {
			log.Printf("inquiry list failed: %v", err)
			serverError(c, "Failed to fetch inquiries", "DB_READ_FAILED")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"inquiries":  inquiries,
			"pagination": paginationOf(filter, total),
		})
	}
}

func (d *Deps) UpdateInquiryStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body dto.UpdateStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		status := models.InquiryStatus(body.Status)
		if !inquiryStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		if err := d.Inquiries.UpdateStatus(ctx, c.Param("id"), status); err != nil {
			if err == repository.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
				return
			}
			log.Printf("inquiry status update failed: %v", err)
			serverError(c, "Failed to update status", "DB_WRITE_FAILED")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
