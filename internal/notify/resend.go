package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"vehicle-lookup-api/internal/model"
)

// ResendSender delivers inquiries through the Resend HTTP API
type ResendSender struct {
	client *resty.Client
	from   string
	to     []string
	now    func() time.Time
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// NewResendSender creates a sender for the Resend API at baseURL
func NewResendSender(baseURL, apiKey, from string, to []string) *ResendSender {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetAuthToken(apiKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(15 * time.Second)

	return &ResendSender{
		client: client,
		from:   from,
		to:     to,
		now:    time.Now,
	}
}

// Send e-mails the inquiry and returns the provider's message ID
func (s *ResendSender) Send(ctx context.Context, inq model.Inquiry, v model.Vehicle) (string, error) {
	msg, err := Compose(inq, v, s.now())
	if err != nil {
		return "", err
	}

	var result resendResponse
	var failure map[string]any
	res, err := s.client.R().
		SetContext(ctx).
		SetBody(resendRequest{
			From:    s.from,
			To:      s.to,
			Subject: msg.Subject,
			HTML:    msg.HTML,
		}).
		SetResult(&result).
		SetError(&failure).
		Post("/emails")
	if err != nil {
		return "", fmt.Errorf("resend request failed: %w", err)
	}

	if res.IsError() {
		var details any = failure
		if failure == nil {
			details = res.String()
		}
		return "", &SendError{Provider: "resend", StatusCode: res.StatusCode(), Details: details}
	}

	return result.ID, nil
}
