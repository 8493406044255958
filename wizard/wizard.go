// Package wizard implements the 5-step quote-request flow: a linear state
// machine over a single mutable form record, an upload guard for photo
// selections, and the multipart submission transport. It is the embeddable
// counterpart of the POST /api/quote endpoint (kiosk and in-store tablet
// clients drive it directly).
package wizard

import (
	"strings"

	"github.com/modelhomeart/mhabackend/config"
)

const (
	StepItem    = 1
	StepSize    = 2
	StepStyle   = 3
	StepService = 4
	StepContact = 5

	firstStep = StepItem
	lastStep  = StepContact
)

// FormState is the wizard's scalar form record. Photos live in the attached
// Guard. Everything starts empty and is mutated field by field.
type FormState struct {
	Category    string
	Description string

	Width       string
	Height      string
	NotSureSize bool

	RepairsNeeded bool
	RepairNotes   string

	StylePreference string
	Matting         string
	Protection      string
	BudgetRange     string

	Timeline string
	Service  string
	ZipCode  string

	Name             string
	Email            string
	Phone            string
	PreferredContact string
}

// FieldError is a user-facing validation failure naming the first unmet
// requirement of a step. It is surfaced as a transient notification, never
// as a hard failure.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

type Wizard struct {
	Form     FormState
	Photos   *Guard
	step     int
	complete bool
}

func New() *Wizard {
	return &Wizard{
		Photos: NewGuard(MaxQuoteImages, MaxUploadBytes),
		step:   firstStep,
	}
}

func (w *Wizard) Step() int      { return w.step }
func (w *Wizard) Complete() bool { return w.complete }

// Next validates the current step and advances only on success. The step
// counter never leaves [1, 5].
func (w *Wizard) Next() *FieldError {
	if err := w.ValidateStep(w.step); err != nil {
		return err
	}
	if w.step < lastStep {
		w.step++
	}
	return nil
}

// Prev moves back without re-validating.
func (w *Wizard) Prev() {
	if w.step > firstStep {
		w.step--
	}
}

// ValidateStep applies the per-step rules. Exactly one FieldError comes back
// for the first unmet requirement; nil means the step gates open.
func (w *Wizard) ValidateStep(step int) *FieldError {
	f := &w.Form
	switch step {
	case StepItem:
		if f.Category == "" {
			return &FieldError{Field: "category", Message: "Please select a category"}
		}

	case StepSize:
		if w.Photos.Count() == 0 {
			return &FieldError{Field: "images", Message: "Please upload at least one photo"}
		}
		if !f.NotSureSize {
			hasWidth := strings.TrimSpace(f.Width) != ""
			hasHeight := strings.TrimSpace(f.Height) != ""
			switch {
			case !hasWidth && !hasHeight:
				return &FieldError{Field: "width", Message: "Please enter dimensions or check 'Not sure — help me measure'"}
			case hasWidth && !hasHeight:
				return &FieldError{Field: "height", Message: "Please enter the height"}
			case !hasWidth && hasHeight:
				return &FieldError{Field: "width", Message: "Please enter the width"}
			}
		}

	case StepStyle:
		if f.StylePreference == "" {
			return &FieldError{Field: "stylePreference", Message: "Please select a frame style"}
		}
		if f.Matting == "" {
			return &FieldError{Field: "matting", Message: "Please select a matting option"}
		}
		if f.Protection == "" {
			return &FieldError{Field: "protection", Message: "Please select a glass/protection option"}
		}

	case StepService:
		if f.Timeline == "" {
			return &FieldError{Field: "timeline", Message: "Please select a timeline"}
		}
		if f.Service == "" {
			return &FieldError{Field: "service", Message: "Please select how you'd like to receive your item"}
		}
		if config.ServiceNeedsZip(f.Service) && f.ZipCode == "" {
			return &FieldError{Field: "zipCode", Message: "Please enter your zip code for delivery/installation"}
		}

	case StepContact:
		if f.Name == "" || f.Email == "" {
			return &FieldError{Field: "name", Message: "Please fill in required fields"}
		}
		if f.Phone == "" {
			return &FieldError{Field: "phone", Message: "Please enter your phone number"}
		}
		if f.PreferredContact == "" {
			return &FieldError{Field: "preferredContact", Message: "Please select a preferred contact method"}
		}
	}
	return nil
}
