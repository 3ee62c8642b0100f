// Package extractor recovers a structured vehicle listing from the raw HTML of
// the dealer's used inventory search page.
//
// Every field is derived by an independent regular expression pass over the
// unparsed document. No DOM is built and any field may come back empty.
package extractor

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vehicle-lookup-api/internal/model"
)

const (
	// Make is fixed: the source is a single-brand dealer
	Make = "Toyota"
	// UnknownModel is reported when no known model name appears in the page
	UnknownModel = "Unknown Model"
)

// ErrNotFound means the page loaded but the stock number is not in it
var ErrNotFound = errors.New("vehicle not found on website")

// ExtractionError wraps an unexpected fault raised while evaluating the patterns
type ExtractionError struct {
	Stock string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract stock %s: %v", e.Stock, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func (e *ExtractionError) Kind() model.ErrorKind { return model.ErrorKindInternalExtraction }

// notFoundError carries the category of ErrNotFound without changing its identity
type notFoundError struct{ stock string }

func (e *notFoundError) Error() string { return fmt.Sprintf("stock %s: %v", e.stock, ErrNotFound) }
func (e *notFoundError) Unwrap() error { return ErrNotFound }
func (e *notFoundError) Kind() model.ErrorKind { return model.ErrorKindNotFound }

// Extractor turns a page and a stock number into a Vehicle
type Extractor struct {
	now    func() time.Time
	logger *slog.Logger
}

// Option configures an Extractor
type Option func(*Extractor)

// WithClock sets the clock used for the default model year
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithLogger sets the logger used for extraction diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// New creates an Extractor
func New(opts ...Option) *Extractor {
	e := &Extractor{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract checks that stock appears in html and, if it does, derives a
// best-effort Vehicle from the whole document. It returns an error wrapping
// ErrNotFound when no presence pattern matches; no field pass runs in that case.
func (e *Extractor) Extract(html, stock string) (vehicle *model.Vehicle, err error) {
	defer func() {
		if r := recover(); r != nil {
			vehicle = nil
			err = &ExtractionError{Stock: stock, Err: fmt.Errorf("%v", r)}
		}
	}()

	pattern, err := FindStock(html, stock)
	if err != nil {
		return nil, &ExtractionError{Stock: stock, Err: err}
	}
	if pattern == PatternNone {
		return nil, &notFoundError{stock: stock}
	}
	e.logger.Debug("stock number located", "stock", stock, "pattern", pattern.String())

	return e.assemble(html, stock), nil
}

func (e *Extractor) assemble(html, stock string) *model.Vehicle {
	year, ok := ExtractYear(html)
	if !ok {
		year = e.now().Year()
	}

	modelName, ok := ExtractModel(html)
	if !ok {
		modelName = UnknownModel
	}

	vin, _ := ExtractVIN(html)
	mileage, _ := ExtractMileage(html)
	price, _ := ExtractPrice(html)
	exterior, _ := ExtractExteriorColor(html)
	interior, _ := ExtractInteriorColor(html)

	return &model.Vehicle{
		StockNumber:   stock,
		Year:          year,
		Make:          Make,
		Model:         modelName,
		VIN:           vin,
		Mileage:       mileage,
		Price:         price,
		ExteriorColor: exterior,
		InteriorColor: interior,
		Features:      []string{},
		Status:        model.StatusActive,
	}
}
