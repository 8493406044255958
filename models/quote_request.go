package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type QuoteRequestStatus string

const (
	QuoteStatusNew        QuoteRequestStatus = "NEW"
	QuoteStatusInProgress QuoteRequestStatus = "IN_PROGRESS"
	QuoteStatusQuoted     QuoteRequestStatus = "QUOTED"
	QuoteStatusAccepted   QuoteRequestStatus = "ACCEPTED"
	QuoteStatusClosed     QuoteRequestStatus = "CLOSED"
)

// ImageAttachment is a customer photo persisted to object storage. When no
// storage backend is configured the record only carries placeholder strings
// in Images and the photos travel exclusively as email attachments.
type ImageAttachment struct {
	URL        string `bson:"url" json:"url"`
	ObjectName string `bson:"objectName" json:"objectName"`
	MimeType   string `bson:"mimeType" json:"mimeType"`
	SizeBytes  int64  `bson:"sizeBytes" json:"sizeBytes"`
	FileName   string `bson:"fileName,omitempty" json:"fileName,omitempty"`
}

type QuoteRequest struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	Category    string `bson:"category" json:"category"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	Width       string `bson:"width,omitempty" json:"width,omitempty"`
	Height      string `bson:"height,omitempty" json:"height,omitempty"`
	NotSureSize bool   `bson:"notSureSize" json:"notSureSize"`

	// Images holds stored URLs when an upload backend is configured, or
	// positional placeholder strings when the photos only travel by email.
	// Attachments carries the full storage references alongside the URLs.
	Images      []string          `bson:"images" json:"images"`
	Attachments []ImageAttachment `bson:"attachments,omitempty" json:"attachments,omitempty"`

	RepairsNeeded bool   `bson:"repairsNeeded" json:"repairsNeeded"`
	RepairNotes   string `bson:"repairNotes,omitempty" json:"repairNotes,omitempty"`

	StylePreference string `bson:"stylePreference,omitempty" json:"stylePreference,omitempty"`
	Matting         string `bson:"matting,omitempty" json:"matting,omitempty"`
	Protection      string `bson:"protection,omitempty" json:"protection,omitempty"`
	BudgetRange     string `bson:"budgetRange,omitempty" json:"budgetRange,omitempty"`

	Timeline string   `bson:"timeline,omitempty" json:"timeline,omitempty"`
	Service  string   `bson:"service,omitempty" json:"service,omitempty"`
	Services []string `bson:"services" json:"services"`
	ZipCode  string   `bson:"zipCode,omitempty" json:"zipCode,omitempty"`

	Name             string `bson:"name" json:"name"`
	Email            string `bson:"email" json:"email"`
	Phone            string `bson:"phone,omitempty" json:"phone,omitempty"`
	PreferredContact string `bson:"preferredContact,omitempty" json:"preferredContact,omitempty"`

	Status QuoteRequestStatus `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
