package config

// Quote form option registry. The wizard, the API validation and the email
// templates all resolve values through this file so label/value pairs cannot
// drift between layers. Bump OptionsVersion when entries change.
const OptionsVersion = 2

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Categories are display strings stored as-is; unlike the option lists below
// they have no separate value/label pair.
var Categories = []string{
	"Photo",
	"Poster/Print",
	"Fine Art",
	"Diploma/Certificate",
	"Jersey",
	"Mirror",
	"Canvas",
	"Needlework/Textile",
	"Shadowbox/Memorabilia",
	"Other",
}

var Styles = []Option{
	{Value: "modern", Label: "Modern"},
	{Value: "classic", Label: "Classic"},
	{Value: "minimal", Label: "Minimal"},
	{Value: "ornate", Label: "Ornate"},
	{Value: "not-sure", Label: "Not sure — help me decide"},
}

var Matting = []Option{
	{Value: "none", Label: "No matting"},
	{Value: "single", Label: "Single mat"},
	{Value: "double", Label: "Double mat"},
	{Value: "not-sure", Label: "Not sure"},
}

var Protection = []Option{
	{Value: "standard", Label: "Standard glass"},
	{Value: "upgraded", Label: "Non-glare/UV glass"},
	{Value: "preservation", Label: "Museum/Preservation grade"},
	{Value: "not-sure", Label: "Not sure — advise me"},
}

var Budget = []Option{
	{Value: "under-100", Label: "Under $100"},
	{Value: "100-250", Label: "$100 – $250"},
	{Value: "250-500", Label: "$250 – $500"},
	{Value: "500-plus", Label: "$500+"},
	{Value: "not-sure", Label: "Not sure — show me options"},
}

var Timeline = []Option{
	{Value: "standard", Label: "Standard (2-3 weeks)"},
	{Value: "rush", Label: "Rush (1 week, may incur fee)"},
	{Value: "no-deadline", Label: "No deadline"},
}

var Services = []Option{
	{Value: "pickup", Label: "I'll pick up"},
	{Value: "delivery", Label: "Local delivery"},
	{Value: "shipping", Label: "Ship to me"},
	{Value: "installation", Label: "Delivery + Installation"},
}

var ContactMethods = []Option{
	{Value: "email", Label: "Email"},
	{Value: "phone", Label: "Phone call"},
	{Value: "text", Label: "Text message"},
}

// Label resolves a stored value to its display label. Unknown values come
// back unchanged so stale records still render.
func Label(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func IsValidOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// ServiceNeedsZip reports whether the chosen delivery method requires a zip
// code (anything we bring to the customer's door).
func ServiceNeedsZip(service string) bool {
	return service == "delivery" || service == "installation"
}
