package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/modelhomeart/mhabackend/mailer"
	"github.com/modelhomeart/mhabackend/notify"
	"github.com/modelhomeart/mhabackend/repository"
	"github.com/modelhomeart/mhabackend/uploads"
)

// Deps wires the submission handlers to their collaborators. Mail, Slack and
// Uploads may each be nil, which silently disables that side effect; the
// repositories are the only collaborators whose failure is fatal to a
// request.
type Deps struct {
	Quotes    repository.QuoteRepo
	Contacts  repository.ContactRepo
	Inquiries repository.InquiryRepo

	Mail       mailer.Sender
	AdminEmail string

	Slack   *notify.Webhook
	Uploads uploads.Uploader

	// AdminBaseURL builds "view in admin" links in notification emails.
	AdminBaseURL string
}

// sendMail dispatches one email, logging and swallowing failures (taxonomy:
// notification errors never surface to the caller).
func (d *Deps) sendMail(ctx context.Context, what string, msg mailer.Message) {
	if d.Mail == nil {
		return
	}
	if err := d.Mail.Send(ctx, msg); err != nil {
		log.Printf("%s email failed: %v", what, err)
	}
}

func (d *Deps) postSlack(ctx context.Context, text string) {
	if d.Slack == nil {
		return
	}
	if err := d.Slack.Post(ctx, text); err != nil {
		log.Printf("slack notification failed: %v", err)
	}
}

// isMultipart branches the request-body parse on the content type.
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data")
}

// parseImageParts collects the bounded positional imageN file parts from a
// multipart submission.
func parseImageParts(c *gin.Context, max int) ([]uploads.Image, error) {
	images := make([]uploads.Image, 0, max)
	for i := 0; i < max; i++ {
		fh, err := c.FormFile(fmt.Sprintf("image%d", i))
		if err != nil || fh == nil {
			continue
		}
		img, err := uploads.ReadFileHeader(fh)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

// parseDataURLs decodes the legacy JSON path's base64 data-URL images.
func parseDataURLs(raws []string, max int) ([]uploads.Image, error) {
	if len(raws) > max {
		raws = raws[:max]
	}
	images := make([]uploads.Image, 0, len(raws))
	for i, raw := range raws {
		img, err := uploads.DecodeDataURL(raw)
		if err != nil {
			return nil, err
		}
		img.FileName = fmt.Sprintf("image%d%s", i, img.Ext())
		images = append(images, img)
	}
	return images, nil
}

// imagePlaceholders stands in for photos in the persisted record when no
// durable storage is configured; the email attachment is the photo transport.
func imagePlaceholders(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("[image %d of %d attached via email]", i+1, n))
	}
	return out
}

// mailAttachments converts submission photos to the attachment set carried
// by both outgoing emails, or none at all when their combined size is over
// the provider's 25 MB cutoff (the emails still go out, silently without
// photos).
func mailAttachments(images []uploads.Image) []mailer.Attachment {
	if len(images) == 0 || uploads.TotalSize(images) > mailer.MaxAttachmentBytes {
		return nil
	}
	atts := make([]mailer.Attachment, 0, len(images))
	for _, img := range images {
		atts = append(atts, mailer.Attachment{
			Filename:    img.FileName,
			ContentType: img.ContentType,
			Content:     img.Data,
		})
	}
	return atts
}

// serverError includes a diagnostic code outside production builds.
func serverError(c *gin.Context, msg, code string) {
	body := gin.H{"error": msg}
	if gin.Mode() != gin.ReleaseMode && code != "" {
		body["code"] = code
	}
	c.JSON(http.StatusInternalServerError, body)
}
