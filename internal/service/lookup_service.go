package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"vehicle-lookup-api/internal/extractor"
	"vehicle-lookup-api/internal/model"
)

// LookupService finds a vehicle on the dealer's inventory page by stock number
type LookupService struct {
	fetcher   Fetcher
	extractor *extractor.Extractor
	sourceURL string
	logger    *slog.Logger
}

// NewLookupService creates a lookup service for the page at sourceURL
func NewLookupService(fetcher Fetcher, ext *extractor.Extractor, sourceURL string, logger *slog.Logger) *LookupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LookupService{
		fetcher:   fetcher,
		extractor: ext,
		sourceURL: sourceURL,
		logger:    logger,
	}
}

// Lookup fetches the inventory page and extracts the listing for stock.
// stock is matched and returned as given; surrounding whitespace only
// matters for the emptiness check. Errors are a validation error, the
// fetcher's error, or one returned by extractor.Extract (ErrNotFound or
// *ExtractionError).
func (s *LookupService) Lookup(ctx context.Context, stock string) (*model.Vehicle, error) {
	if strings.TrimSpace(stock) == "" {
		return nil, invalid("Missing stock parameter")
	}
	if !utf8.ValidString(stock) {
		return nil, invalid("Invalid stock parameter")
	}

	s.logger.Info("looking up stock number", "stock", stock)

	html, err := s.fetcher.Fetch(ctx, s.sourceURL)
	if err != nil {
		s.logger.Error("failed to fetch inventory page",
			"stock", stock,
			"kind", model.ClassifyError(err),
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("fetched inventory page", "stock", stock, "length", len(html))

	vehicle, err := s.extractor.Extract(html, stock)
	if err != nil {
		kind := model.ClassifyError(err)
		if kind == model.ErrorKindNotFound {
			s.logger.Info("vehicle not found in page", "stock", stock)
		} else {
			s.logger.Error("failed to extract vehicle", "stock", stock, "kind", kind, "error", err)
		}
		return nil, err
	}

	s.logger.Info("extracted vehicle data",
		"stock", vehicle.StockNumber,
		"year", vehicle.Year,
		"model", vehicle.Model,
		"vin", vehicle.VIN,
		"mileage", vehicle.Mileage,
		"price", vehicle.Price,
	)

	return vehicle, nil
}
