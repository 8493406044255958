package dto

// BusinessInquiryDTO follows the same dual transport as quotes: multipart
// "formData" field plus up to five imageN parts, or plain JSON with data-URL
// images.
type BusinessInquiryDTO struct {
	BusinessName string `json:"businessName"`
	ContactName  string `json:"contactName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`

	ProjectDescription string `json:"projectDescription"`
	SizesInfo          string `json:"sizesInfo"`
	Timeline           string `json:"timeline"`
	DeliveryNeeds      string `json:"deliveryNeeds"`
	Invoicing          bool   `json:"invoicing"`
	ImageLink          string `json:"imageLink"`

	// Legacy JSON path only.
	Images []string `json:"images"`
}
