package config

import "os"

// Business identity used in transactional emails and confirmation copy.
// Edit these values for the business.
const (
	BusinessName    = "Model Home Art"
	BusinessTagline = "Custom framing that looks high-end — without the high-end price."

	AddressStreet = "2550 S. Fairview St."
	AddressCity   = "Santa Ana"
	AddressState  = "CA"
	AddressZip    = "92704"
	AddressFull   = "2550 S. Fairview St., Santa Ana, CA 92704"

	Phone = "(714) 878-2919"

	HoursDisplay = "Mon-Sat: 10am-5pm, Sun: Closed"

	ServiceArea  = "Orange County, CA and nationwide in the United States"
	ResponseTime = "24 business hours"
)

// DefaultEmailFrom is used when EMAIL_FROM is not configured.
const DefaultEmailFrom = "Model Home Art <hello@modelhomeart.com>"

func EmailFrom() string {
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		return v
	}
	return DefaultEmailFrom
}
