package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// submitPayload is the JSON carried in the multipart "formData" field. The
// single-select service is also emitted as a one-element services array for
// the server's wire format.
type submitPayload struct {
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
}

// EncodeMultipart serializes the form once as a JSON field plus one binary
// part per photo, keyed by positional index (image0, image1, ...).
func (w *Wizard) EncodeMultipart() (*bytes.Buffer, string, error) {
	f := &w.Form

	services := []string{}
	if f.Service != "" {
		services = []string{f.Service}
	}
	payload := submitPayload{
		Category:         f.Category,
		Description:      f.Description,
		Width:            f.Width,
		Height:           f.Height,
		NotSureSize:      f.NotSureSize,
		RepairsNeeded:    f.RepairsNeeded,
		RepairNotes:      f.RepairNotes,
		StylePreference:  f.StylePreference,
		Matting:          f.Matting,
		Protection:       f.Protection,
		BudgetRange:      f.BudgetRange,
		Timeline:         f.Timeline,
		Service:          f.Service,
		Services:         services,
		ZipCode:          f.ZipCode,
		Name:             f.Name,
		Email:            f.Email,
		Phone:            f.Phone,
		PreferredContact: f.PreferredContact,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("marshal form: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("formData", string(data)); err != nil {
		return nil, "", err
	}

	for i, file := range w.Photos.Files() {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image%d"; filename=%q`, i, file.Name))
		if file.ContentType != "" {
			hdr.Set("Content-Type", file.ContentType)
		}
		part, err := mw.CreatePart(hdr)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &body, mw.FormDataContentType(), nil
}

// Submitter posts a finished wizard to the quote endpoint. When Diagnostics
// is set (non-production builds), server error codes are appended to the
// user-facing message.
type Submitter struct {
	Client      *http.Client
	URL         string
	Diagnostics bool
}

// Submit validates the final step, transmits the form once, and marks the
// wizard complete on success. On any failure the wizard stays on the final
// step so the user can retry without re-entering data.
func (s *Submitter) Submit(ctx context.Context, w *Wizard) (string, error) {
	if err := w.ValidateStep(StepContact); err != nil {
		return "", err
	}

	body, contentType, err := w.EncodeMultipart()
	if err != nil {
		return "", fmt.Errorf("Something went wrong. Please try again.")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, body)
	if err != nil {
		return "", fmt.Errorf("Something went wrong. Please try again.")
	}
	req.Header.Set("Content-Type", contentType)

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Something went wrong. Please try again.")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusRequestEntityTooLarge {
		return "", fmt.Errorf("Your photos exceed the %dMB limit. Please use smaller images or fewer photos.", MaxUploadMB)
	}

	raw, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
		Error   string `json:"error"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("Server error. Please try again or contact us directly.")
	}

	if resp.StatusCode != http.StatusOK {
		msg := parsed.Error
		if msg == "" {
			msg = "Failed to submit quote request"
		}
		if s.Diagnostics && parsed.Code != "" {
			msg = fmt.Sprintf("%s (Code: %s)", msg, parsed.Code)
		}
		return "", fmt.Errorf("%s", msg)
	}

	w.complete = true
	return parsed.ID, nil
}
