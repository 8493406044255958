package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "NEW"
	InquiryStatusContacted InquiryStatus = "CONTACTED"
	InquiryStatusQuoted    InquiryStatus = "QUOTED"
	InquiryStatusClosed    InquiryStatus = "CLOSED"
)

// BusinessInquiry is a volume-pricing request from a commercial customer.
// ImageLink is an externally hosted photo set offered as an alternative to
// direct upload.
type BusinessInquiry struct {
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	BusinessName string `bson:"businessName" json:"businessName"`
	ContactName  string `bson:"contactName" json:"contactName"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`

	ProjectDescription string `bson:"projectDescription,omitempty" json:"projectDescription,omitempty"`
	SizesInfo          string `bson:"sizesInfo,omitempty" json:"sizesInfo,omitempty"`
	Timeline           string `bson:"timeline,omitempty" json:"timeline,omitempty"`
	DeliveryNeeds      string `bson:"deliveryNeeds,omitempty" json:"deliveryNeeds,omitempty"`
	Invoicing          bool   `bson:"invoicing" json:"invoicing"`

	Images      []string          `bson:"images" json:"images"`
	Attachments []ImageAttachment `bson:"attachments,omitempty" json:"attachments,omitempty"`
	ImageLink   string            `bson:"imageLink,omitempty" json:"imageLink,omitempty"`

	Status InquiryStatus `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
