package service

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"vehicle-lookup-api/internal/model"
)

// InquiryService records customer inquiries and notifies the sales team
type InquiryService struct {
	store    InquiryStore
	notifier Notifier
	logger   *slog.Logger
}

// NewInquiryService creates an inquiry service. store may be nil when
// persistence is disabled.
func NewInquiryService(store InquiryStore, notifier Notifier, logger *slog.Logger) *InquiryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InquiryService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit validates and stores the inquiry, then sends the notification.
// It returns the notification message ID.
func (s *InquiryService) Submit(ctx context.Context, inq model.Inquiry, v model.Vehicle) (string, error) {
	inq.CustomerName = strings.TrimSpace(inq.CustomerName)
	inq.CustomerEmail = strings.TrimSpace(inq.CustomerEmail)

	if inq.CustomerName == "" {
		return "", invalid("customer_name is required")
	}
	if _, err := mail.ParseAddress(inq.CustomerEmail); err != nil {
		return "", invalid("customer_email is invalid")
	}
	if strings.TrimSpace(v.StockNumber) == "" {
		return "", invalid("vehicle stock_number is required")
	}

	// Identity is assigned here; client-supplied values are ignored.
	inq.ID = uuid.NewString()
	inq.VehicleID = v.StockNumber

	if s.store != nil {
		if err := s.store.Create(ctx, &inq); err != nil {
			return "", &storageError{op: "store inquiry", err: err}
		}
	}

	s.logger.Info("sending inquiry notification",
		"inquiry_id", inq.ID,
		"stock", v.StockNumber,
	)

	id, err := s.notifier.Send(ctx, inq, v)
	if err != nil {
		s.logger.Error("failed to send inquiry notification",
			"inquiry_id", inq.ID,
			"kind", model.ClassifyError(err),
			"error", err,
		)
		return "", err
	}

	s.logger.Info("inquiry notification sent", "inquiry_id", inq.ID, "email_id", id)
	return id, nil
}
