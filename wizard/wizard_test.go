package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWizard() *Wizard {
	w := New()
	w.Form.Category = "Photo"
	_ = w.Photos.Add(File{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte("x")})
	w.Form.Width = "16"
	w.Form.Height = "20"
	w.Form.StylePreference = "modern"
	w.Form.Matting = "single"
	w.Form.Protection = "standard"
	w.Form.Timeline = "standard"
	w.Form.Service = "pickup"
	w.Form.Name = "Jane Doe"
	w.Form.Email = "jane@example.com"
	w.Form.Phone = "555-0100"
	w.Form.PreferredContact = "email"
	return w
}

func TestNewStartsAtStepOne(t *testing.T) {
	w := New()
	assert.Equal(t, StepItem, w.Step())
	assert.False(t, w.Complete())
}

func TestNextBlockedWithoutCategory(t *testing.T) {
	w := New()
	err := w.Next()
	require.NotNil(t, err)
	assert.Equal(t, "category", err.Field)
	assert.Equal(t, "Please select a category", err.Message)
	assert.Equal(t, StepItem, w.Step())
}

func TestNextAdvancesWhenValid(t *testing.T) {
	w := New()
	w.Form.Category = "Photo"
	require.Nil(t, w.Next())
	assert.Equal(t, StepSize, w.Step())
}

func TestStepNeverLeavesRange(t *testing.T) {
	w := validWizard()
	w.Prev()
	assert.Equal(t, StepItem, w.Step())

	for i := 0; i < 10; i++ {
		_ = w.Next()
	}
	assert.Equal(t, StepContact, w.Step())
}

func TestPrevDoesNotValidate(t *testing.T) {
	w := New()
	w.Form.Category = "Photo"
	require.Nil(t, w.Next())

	w.Form.Category = ""
	w.Prev()
	assert.Equal(t, StepItem, w.Step())
}

func TestSizeStepRequiresPhoto(t *testing.T) {
	w := New()
	w.Form.Category = "Photo"
	w.Form.Width = "16"
	w.Form.Height = "20"

	err := w.ValidateStep(StepSize)
	require.NotNil(t, err)
	assert.Equal(t, "Please upload at least one photo", err.Message)
}

func TestSizeStepDimensionMessages(t *testing.T) {
	w := New()
	require.NoError(t, w.Photos.Add(File{Name: "a.jpg", Data: []byte("x")}))

	err := w.ValidateStep(StepSize)
	require.NotNil(t, err)
	assert.Equal(t, "Please enter dimensions or check 'Not sure — help me measure'", err.Message)

	w.Form.Width = "16"
	err = w.ValidateStep(StepSize)
	require.NotNil(t, err)
	assert.Equal(t, "Please enter the height", err.Message)

	w.Form.Width = ""
	w.Form.Height = "20"
	err = w.ValidateStep(StepSize)
	require.NotNil(t, err)
	assert.Equal(t, "Please enter the width", err.Message)
}

func TestNotSureSizeSkipsDimensions(t *testing.T) {
	w := New()
	require.NoError(t, w.Photos.Add(File{Name: "a.jpg", Data: []byte("x")}))
	w.Form.NotSureSize = true

	assert.Nil(t, w.ValidateStep(StepSize))
}

func TestStyleStepChecksAllThreeSelections(t *testing.T) {
	w := New()

	err := w.ValidateStep(StepStyle)
	require.NotNil(t, err)
	assert.Equal(t, "Please select a frame style", err.Message)

	w.Form.StylePreference = "modern"
	err = w.ValidateStep(StepStyle)
	require.NotNil(t, err)
	assert.Equal(t, "Please select a matting option", err.Message)

	w.Form.Matting = "none"
	err = w.ValidateStep(StepStyle)
	require.NotNil(t, err)
	assert.Equal(t, "Please select a glass/protection option", err.Message)

	w.Form.Protection = "standard"
	assert.Nil(t, w.ValidateStep(StepStyle))
}

func TestServiceStepZipRequiredForDelivery(t *testing.T) {
	w := New()
	w.Form.Timeline = "standard"
	w.Form.Service = "delivery"

	err := w.ValidateStep(StepService)
	require.NotNil(t, err)
	assert.Equal(t, "zipCode", err.Field)

	w.Form.ZipCode = "92704"
	assert.Nil(t, w.ValidateStep(StepService))
}

func TestServiceStepZipNotRequiredForPickup(t *testing.T) {
	w := New()
	w.Form.Timeline = "standard"
	w.Form.Service = "pickup"

	assert.Nil(t, w.ValidateStep(StepService))
}

func TestContactStepMessages(t *testing.T) {
	w := New()

	err := w.ValidateStep(StepContact)
	require.NotNil(t, err)
	assert.Equal(t, "Please fill in required fields", err.Message)

	w.Form.Name = "Jane"
	w.Form.Email = "jane@example.com"
	err = w.ValidateStep(StepContact)
	require.NotNil(t, err)
	assert.Equal(t, "Please enter your phone number", err.Message)

	w.Form.Phone = "555-0100"
	err = w.ValidateStep(StepContact)
	require.NotNil(t, err)
	assert.Equal(t, "Please select a preferred contact method", err.Message)

	w.Form.PreferredContact = "phone"
	assert.Nil(t, w.ValidateStep(StepContact))
}

func TestFullWalkthrough(t *testing.T) {
	w := validWizard()
	for step := StepItem; step < StepContact; step++ {
		require.Nil(t, w.Next(), "step %d", step)
	}
	assert.Equal(t, StepContact, w.Step())
	assert.Nil(t, w.ValidateStep(StepContact))
}
