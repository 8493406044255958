package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/modelhomeart/mhabackend/config"
	"github.com/modelhomeart/mhabackend/models"
)

var quoteCustomerTmpl = template.Must(template.New("quoteCustomer").Parse(`
<h1>Thanks for your quote request, {{.Name}}!</h1>
<p>We've received your request and will get back to you within {{.ResponseTime}} with framing options that fit your budget.</p>
<p><strong>What you requested:</strong></p>
<ul>
  <li>Category: {{.Category}}</li>
  {{if .Size}}<li>Size: {{.Size}}</li>{{end}}
  {{if .Budget}}<li>Budget: {{.Budget}}</li>{{end}}
</ul>
<p>In the meantime, feel free to visit our shop or call us if you have questions.</p>
<p>
  <strong>{{.BusinessName}}</strong><br>
  {{.Address}}<br>
  {{.Phone}}
</p>
`))

var quoteAdminTmpl = template.Must(template.New("quoteAdmin").Parse(`
<h1>New Quote Request</h1>
<p><strong>From:</strong> {{.Name}} ({{.Email}}){{if .CustomerPhone}} — {{.CustomerPhone}}{{end}}</p>
<p><strong>Category:</strong> {{.Category}}</p>
<p><strong>Description:</strong> {{.Description}}</p>
<p><strong>Size:</strong> {{.Size}}</p>
{{if .RepairNotes}}<p><strong>Repairs:</strong> {{.RepairNotes}}</p>{{end}}
<p><strong>Style:</strong> {{.Style}} / {{.Matting}} / {{.Protection}}</p>
<p><strong>Budget:</strong> {{.Budget}}</p>
<p><strong>Timeline:</strong> {{.Timeline}}</p>
<p><strong>Services:</strong> {{.Services}}</p>
{{if .ZipCode}}<p><strong>Zip:</strong> {{.ZipCode}}</p>{{end}}
{{if .PreferredContact}}<p><strong>Preferred contact:</strong> {{.PreferredContact}}</p>{{end}}
<p><strong>Photos:</strong> {{.PhotoNote}}</p>
{{if .AdminURL}}<p><a href="{{.AdminURL}}">View in Admin</a></p>{{end}}
`))

var inquiryCustomerTmpl = template.Must(template.New("inquiryCustomer").Parse(`
<h1>Thanks for your inquiry, {{.ContactName}}!</h1>
<p>We've received your business pricing request for {{.BusinessNameField}} and will get back to you within {{.ResponseTime}}.</p>
<p>We work with businesses of all sizes and offer:</p>
<ul>
  <li>Volume pricing for bulk orders</li>
  <li>Consistent frame styles across projects</li>
  <li>Net-30 invoicing for established accounts</li>
  <li>Delivery and professional installation</li>
</ul>
<p>We look forward to working with you!</p>
<p>
  <strong>{{.BusinessName}}</strong><br>
  {{.Address}}<br>
  {{.Phone}}
</p>
`))

var inquiryAdminTmpl = template.Must(template.New("inquiryAdmin").Parse(`
<h1>New Business Inquiry</h1>
<p><strong>Business:</strong> {{.BusinessNameField}}</p>
<p><strong>Contact:</strong> {{.ContactName}} ({{.Email}})</p>
{{if .CustomerPhone}}<p><strong>Phone:</strong> {{.CustomerPhone}}</p>{{end}}
<p><strong>Project:</strong> {{.Project}}</p>
<p><strong>Sizes:</strong> {{.Sizes}}</p>
<p><strong>Timeline:</strong> {{.Timeline}}</p>
<p><strong>Delivery:</strong> {{.Delivery}}</p>
{{if .ImageLink}}<p><strong>Photo link:</strong> <a href="{{.ImageLink}}">{{.ImageLink}}</a></p>{{end}}
<p><strong>Photos:</strong> {{.PhotoNote}}</p>
`))

var contactAdminTmpl = template.Must(template.New("contactAdmin").Parse(`
<h1>New Contact Form Submission</h1>
<p><strong>From:</strong> {{.Name}} ({{.Email}})</p>
{{if .CustomerPhone}}<p><strong>Phone:</strong> {{.CustomerPhone}}</p>{{end}}
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// Templates are static and data is plain structs; this cannot fail
		// at runtime, but keep the message sendable regardless.
		return "<p>(template error)</p>"
	}
	return buf.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// customerSize is shown in the confirmation only when both dimensions were
// actually given.
func customerSize(q *models.QuoteRequest) string {
	if q.Width != "" && q.Height != "" {
		return fmt.Sprintf("%s\" × %s\"", q.Width, q.Height)
	}
	return ""
}

func quoteSize(q *models.QuoteRequest) string {
	if q.Width != "" && q.Height != "" {
		return fmt.Sprintf("%s\" × %s\"", q.Width, q.Height)
	}
	if q.NotSureSize {
		return "Not sure"
	}
	return "N/A"
}

func photoNote(n int) string {
	switch n {
	case 0:
		return "none"
	case 1:
		return "1 photo attached"
	default:
		return fmt.Sprintf("%d photos attached", n)
	}
}

// QuoteCustomerEmail is the confirmation sent to the requester. Enum values
// are resolved to labels through the option registry.
func QuoteCustomerEmail(q *models.QuoteRequest) Message {
	return Message{
		To:      []string{q.Email},
		Subject: "We received your quote request!",
		HTML: render(quoteCustomerTmpl, map[string]string{
			"Name":         q.Name,
			"ResponseTime": config.ResponseTime,
			"Category":     q.Category,
			"Size":         customerSize(q),
			"Budget":       labelOrEmpty(config.Budget, q.BudgetRange),
			"BusinessName": config.BusinessName,
			"Address":      config.AddressFull,
			"Phone":        config.Phone,
		}),
	}
}

func QuoteAdminEmail(q *models.QuoteRequest, adminTo, adminBaseURL string) Message {
	labels := make([]string, 0, len(q.Services))
	for _, s := range q.Services {
		labels = append(labels, config.Label(config.Services, s))
	}

	adminURL := ""
	if adminBaseURL != "" {
		adminURL = fmt.Sprintf("%s/admin/quotes/%s", strings.TrimRight(adminBaseURL, "/"), q.ID.Hex())
	}

	return Message{
		To:      []string{adminTo},
		Subject: fmt.Sprintf("New Quote Request: %s from %s", q.Category, q.Name),
		HTML: render(quoteAdminTmpl, map[string]string{
			"Name":             q.Name,
			"Email":            q.Email,
			"CustomerPhone":    q.Phone,
			"Category":         q.Category,
			"Description":      orNA(q.Description),
			"Size":             quoteSize(q),
			"RepairNotes":      repairNote(q),
			"Style":            orNA(config.Label(config.Styles, q.StylePreference)),
			"Matting":          orNA(config.Label(config.Matting, q.Matting)),
			"Protection":       orNA(config.Label(config.Protection, q.Protection)),
			"Budget":           orNA(config.Label(config.Budget, q.BudgetRange)),
			"Timeline":         orNA(config.Label(config.Timeline, q.Timeline)),
			"Services":         orNA(strings.Join(labels, ", ")),
			"ZipCode":          q.ZipCode,
			"PreferredContact": config.Label(config.ContactMethods, q.PreferredContact),
			"PhotoNote":        photoNote(len(q.Images)),
			"AdminURL":         adminURL,
		}),
	}
}

func repairNote(q *models.QuoteRequest) string {
	if !q.RepairsNeeded {
		return ""
	}
	if q.RepairNotes == "" {
		return "needed (no details given)"
	}
	return q.RepairNotes
}

func InquiryCustomerEmail(b *models.BusinessInquiry) Message {
	return Message{
		To:      []string{b.Email},
		Subject: "We received your business inquiry!",
		HTML: render(inquiryCustomerTmpl, map[string]string{
			"ContactName":       b.ContactName,
			"BusinessNameField": b.BusinessName,
			"ResponseTime":      config.ResponseTime,
			"BusinessName":      config.BusinessName,
			"Address":           config.AddressFull,
			"Phone":             config.Phone,
		}),
	}
}

func InquiryAdminEmail(b *models.BusinessInquiry, adminTo string) Message {
	return Message{
		To:      []string{adminTo},
		Subject: fmt.Sprintf("Business Inquiry: %s", b.BusinessName),
		HTML: render(inquiryAdminTmpl, map[string]string{
			"BusinessNameField": b.BusinessName,
			"ContactName":       b.ContactName,
			"Email":             b.Email,
			"CustomerPhone":     b.Phone,
			"Project":           orNA(b.ProjectDescription),
			"Sizes":             orNA(b.SizesInfo),
			"Timeline":          orNA(b.Timeline),
			"Delivery":          orNA(b.DeliveryNeeds),
			"ImageLink":         b.ImageLink,
			"PhotoNote":         photoNote(len(b.Images)),
		}),
	}
}

func ContactAdminEmail(s *models.ContactSubmission, adminTo string) Message {
	subject := s.Subject
	if subject == "" {
		subject = "New message"
	}
	return Message{
		To:      []string{adminTo},
		ReplyTo: s.Email,
		Subject: fmt.Sprintf("Contact Form: %s from %s", subject, s.Name),
		HTML: render(contactAdminTmpl, map[string]any{
			"Name":          s.Name,
			"Email":         s.Email,
			"CustomerPhone": s.Phone,
			"Subject":       orNA(s.Subject),
			"Message":       template.HTML(nl2br(s.Message)),
		}),
	}
}

func nl2br(s string) string {
	escaped := template.HTMLEscapeString(s)
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

func labelOrEmpty(opts []config.Option, value string) string {
	if value == "" {
		return ""
	}
	return config.Label(opts, value)
}
