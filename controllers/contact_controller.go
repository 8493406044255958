package controllers

import (
	"context"
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
	"go.mongodb.org/mongo-driver/v2/bson"
)

var contactStatuses = map[models.ContactStatus]bool{
	models.ContactStatusNew:        true,
	models.ContactStatusInProgress: true,
	models.ContactStatusResolved:   true,
	models.ContactStatusClosed:     true,
}

// CreateContactSubmission handles the general contact form. No file uploads;
// the admin notification carries the sender as Reply-To so staff can answer
// directly.
func (d *Deps) CreateContactSubmission() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var form dto.ContactSubmissionDTO
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		form.Name = strings.TrimSpace(form.Name)
		form.Email = strings.TrimSpace(form.Email)
		form.Message = strings.TrimSpace(form.Message)
		if form.Name == "" || form.Email == "" || form.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		now := time.Now().UTC()
		submission := models.ContactSubmission{
			ID:        bson.NewObjectID(),
			Name:      form.Name,
			Email:     form.Email,
			Phone:     form.Phone,
			Subject:   form.Subject,
			Message:   form.Message,
			Status:    models.ContactStatusNew,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := d.Contacts.Insert(ctx, &submission); err != nil {
			log.Printf("contact insert failed: %v", err)
			serverError(c, "Failed to submit message", "DB_WRITE_FAILED")
			return
		}

		if d.AdminEmail != "" {
			d.sendMail(ctx, "contact notification", mailer.ContactAdminEmail(&submission, d.AdminEmail))
		}

		subject := submission.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		d.postSlack(ctx, fmt.Sprintf("✉️ New Contact Message from %s\nSubject: %s", submission.Name, subject))

		c.JSON(http.StatusOK, gin.H{"success": true, "id": submission.ID.Hex()})
	}
}

func (d *Deps) GetContactSubmissions() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		status := c.Query("status")
		if status != "" && !contactStatuses[models.ContactStatus(status)] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}

		filter := listFilterFromQuery(c, status)
		submissions, total, err := d.Contacts.List(ctx, filter)
		if err != nil {
			log.Printf("contact list failed: %v", err)
			serverError(c, "Failed to fetch submissions", "DB_READ_FAILED")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"submissions": submissions,
			"pagination":  paginationOf(filter, total),
		})
	}
}

func (d *Deps) UpdateContactStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var body dto.UpdateStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		status := models.ContactStatus(body.Status)
		if !contactStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		if err := d.Contacts.UpdateStatus(ctx, c.Param("id"), status); err != nil {
			if err == repository.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
				return
			}
			log.Printf("contact status update failed: %v", err)
			serverError(c, "Failed to update status", "DB_WRITE_FAILED")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
