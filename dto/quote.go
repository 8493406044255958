package dto

// QuoteSubmissionDTO is parsed either from the multipart "formData" JSON
// field (preferred, images arrive as binary imageN parts) or from a legacy
// application/json body where Images carries base64 data URLs.
type QuoteSubmissionDTO struct {
	Category    string `json:"category"`
	Description string `json:"description"`

	Width       string `json:"width"`
	Height      string `json:"height"`
	NotSureSize bool   `json:"notSureSize"`

	RepairsNeeded bool   `json:"repairsNeeded"`
	RepairNotes   string `json:"repairNotes"`

	StylePreference string `json:"stylePreference"`
	Matting         string `json:"matting"`
	Protection      string `json:"protection"`
	BudgetRange     string `json:"budgetRange"`

	Timeline string   `json:"timeline"`
	Service  string   `json:"service"`
	Services []string `json:"services"`
	ZipCode  string   `json:"zipCode"`

	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PreferredContact string `json:"preferredContact"`

	// Legacy JSON path only.
	Images []string `json:"images"`
}

type UpdateStatusDTO struct {
	Status string `json:"status" binding:"required"`
}
