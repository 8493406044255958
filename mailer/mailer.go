// Package mailer renders and dispatches transactional email through Resend.
// Every send is best effort: callers log failures and never fail the request
// over them.
package mailer

import (
	"context"
	"fmt"
	"os"

	"github.com/modelhomeart/mhabackend/config"
	"github.com/resend/resend-go/v2"
)

// MaxAttachmentBytes is the provider-level safety margin: when a submission's
// combined photo size is over this, emails go out without attachments rather
// than bouncing.
const MaxAttachmentBytes = 25 << 20

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type Message struct {
	From        string
	To          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []Attachment
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ResendSender dispatches through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// FromEnv returns nil when RESEND_API_KEY is unset, which silently disables
// email without failing requests.
func FromEnv() *ResendSender {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil
	}
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   config.EmailFrom(),
	}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	from := msg.From
	if from == "" {
		from = s.from
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}
	for _, att := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    att.Filename,
			Content:     att.Content,
			ContentType: att.ContentType,
		})
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
