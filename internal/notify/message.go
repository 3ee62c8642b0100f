// Package notify delivers customer inquiry e-mails to the sales team.
package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"vehicle-lookup-api/internal/model"
)

// Message is a rendered inquiry e-mail
type Message struct {
	Subject string
	HTML    string
}

// SendError reports that the provider rejected a message
type SendError struct {
	Provider   string
	StatusCode int
	Details    any
}

func (e *SendError) Error() string {
	return fmt.Sprintf("%s rejected message with status %d", e.Provider, e.StatusCode)
}

func (e *SendError) Kind() model.ErrorKind { return model.ErrorKindNotification }

var printer = message.NewPrinter(language.AmericanEnglish)

var bodyTemplate = template.Must(template.New("inquiry").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626;">New Customer Inquiry</h2>

  <div style="background-color: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Vehicle Details</h3>
    <ul style="list-style: none; padding: 0;">
      <li><strong>Vehicle:</strong> {{.Vehicle.Year}} {{.Vehicle.Make}} {{.Vehicle.Model}} {{.Vehicle.Trim}}</li>
      <li><strong>Stock Number:</strong> {{.Vehicle.StockNumber}}</li>
      <li><strong>Price:</strong> {{.Price}}</li>
      <li><strong>Mileage:</strong> {{.Mileage}} miles</li>
      <li><strong>Color:</strong> {{or .Vehicle.ExteriorColor "Not specified"}}</li>
    </ul>
  </div>

  <div style="background-color: #eff6ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Customer Information</h3>
    <ul style="list-style: none; padding: 0;">
      <li><strong>Name:</strong> {{.Inquiry.CustomerName}}</li>
      <li><strong>Email:</strong> <a href="mailto:{{.Inquiry.CustomerEmail}}">{{.Inquiry.CustomerEmail}}</a></li>
      <li><strong>Phone:</strong> {{if .Inquiry.CustomerPhone}}<a href="tel:{{.Inquiry.CustomerPhone}}">{{.Inquiry.CustomerPhone}}</a>{{else}}Not provided{{end}}</li>
    </ul>
  </div>
{{if .Inquiry.Message}}
  <div style="background-color: #f0fdf4; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Customer Message</h3>
    <p style="margin: 0; white-space: pre-wrap;">{{.Inquiry.Message}}</p>
  </div>
{{end}}
  <div style="background-color: #fef3c7; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #92400e; margin-top: 0;">Next Steps</h3>
    <ul style="color: #92400e;">
      <li>Contact the customer to schedule a test drive</li>
      <li>Explain the reservation process (no deposit required)</li>
      <li>Discuss the reconditioning timeline</li>
      <li>Answer any questions about the vehicle</li>
    </ul>
  </div>

  <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 30px 0;">
  <p style="color: #6b7280; font-size: 14px;">
    This inquiry was submitted on {{.Submitted}}<br>
    <em>Pre-Owned Vehicle Inquiry System</em>
  </p>
</div>
`))

// Compose renders the subject and HTML body for an inquiry
func Compose(inq model.Inquiry, v model.Vehicle, submitted time.Time) (Message, error) {
	data := struct {
		Inquiry   model.Inquiry
		Vehicle   model.Vehicle
		Price     string
		Mileage   string
		Submitted string
	}{
		Inquiry:   inq,
		Vehicle:   v,
		Price:     "Not specified",
		Mileage:   "Not specified",
		Submitted: submitted.Format("January 2, 2006 at 3:04 PM MST"),
	}
	if v.Price > 0 {
		data.Price = printer.Sprintf("$%d", v.Price)
	}
	if v.Mileage > 0 {
		data.Mileage = printer.Sprintf("%d", v.Mileage)
	}

	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("render inquiry email: %w", err)
	}

	return Message{
		Subject: fmt.Sprintf("New Vehicle Inquiry - %d %s %s (Stock #%s)", v.Year, v.Make, v.Model, v.StockNumber),
		HTML:    buf.String(),
	}, nil
}
