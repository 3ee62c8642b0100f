package extractor_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-lookup-api/internal/extractor"
	"vehicle-lookup-api/internal/model"
)

const camryPage = `<html><body>
<div class="vehicle">
<h2>Used 2022 Toyota Camry SE</h2>
<span>Stock #TC1234</span>
<span>VIN 4T1BF1FK5CU123456</span>
<span>32,410 miles</span>
<span class="price">$24,995</span>
<span>Exterior Color: Midnight Black</span>
<span>Interior Color: Ash</span>
</div>
</body></html>`

func fixedClock() time.Time {
	return time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts full listing", func(t *testing.T) {
		t.Parallel()

		e := extractor.New(extractor.WithClock(fixedClock))
		v, err := e.Extract(camryPage, "TC1234")

		require.NoError(t, err)
		assert.Equal(t, &model.Vehicle{
			StockNumber:   "TC1234",
			Year:          2022,
			Make:          "Toyota",
			Model:         "Camry",
			VIN:           "4T1BF1FK5CU123456",
			Mileage:       32410,
			Price:         24995,
			ExteriorColor: "Midnight Black",
			InteriorColor: "Ash",
			Features:      []string{},
			Status:        model.StatusActive,
		}, v)
	})

	t.Run("returns not found when stock is absent", func(t *testing.T) {
		t.Parallel()

		e := extractor.New()
		v, err := e.Extract(camryPage, "ZZ9999")

		require.Error(t, err)
		assert.Nil(t, v)
		assert.True(t, errors.Is(err, extractor.ErrNotFound))
		assert.Equal(t, model.ErrorKindNotFound, model.ClassifyError(err))
	})

	t.Run("defaults unmatched fields", func(t *testing.T) {
		t.Parallel()

		e := extractor.New(extractor.WithClock(fixedClock))
		v, err := e.Extract("<p>Stock TC9 arriving soon</p>", "TC9")

		require.NoError(t, err)
		assert.Equal(t, 2026, v.Year)
		assert.Equal(t, extractor.UnknownModel, v.Model)
		assert.Equal(t, "Toyota", v.Make)
		assert.Empty(t, v.VIN)
		assert.Zero(t, v.Mileage)
		assert.Zero(t, v.Price)
		assert.Empty(t, v.ExteriorColor)
		assert.Empty(t, v.InteriorColor)
		assert.NotNil(t, v.Features)
		assert.Empty(t, v.Features)
		assert.Equal(t, model.StatusActive, v.Status)
	})

	t.Run("treats stock number literally", func(t *testing.T) {
		t.Parallel()

		e := extractor.New()
		_, err := e.Extract("<p>Stock AX1</p>", "A.1")

		assert.True(t, errors.Is(err, extractor.ErrNotFound))
	})
}

func TestFindStock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		stock string
		want  extractor.PresencePattern
	}{
		{"label with hash", "Stock #TC1234 ", "TC1234", extractor.PatternStockLabel},
		{"label with colon, any case", "stock: tc1234<", "TC1234", extractor.PatternStockLabel},
		{"label needs trailing boundary", "Stock #TC12345", "TC1234", extractor.PatternBare},
		{"bare anywhere", "ref TC1234 on lot", "TC1234", extractor.PatternBare},
		{"bare inside unrelated number", "call 5551234567", "1234", extractor.PatternBare},
		{"absent", "Stock #AB999 ", "TC1234", extractor.PatternNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := extractor.FindStock(tt.text, tt.stock)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractionError(t *testing.T) {
	t.Parallel()

	cause := errors.New("bad pattern")
	err := &extractor.ExtractionError{Stock: "TC1", Err: cause}

	assert.Equal(t, "extract stock TC1: bad pattern", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, model.ErrorKindInternalExtraction, model.ClassifyError(err))
}

func TestExtract_PatternFailureIsExtractionError(t *testing.T) {
	t.Parallel()

	v, err := extractor.New().Extract(camryPage, "TC\xff")

	assert.Nil(t, v)
	var extErr *extractor.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "TC\xff", extErr.Stock)
	assert.NotErrorIs(t, err, extractor.ErrNotFound)
	assert.Equal(t, model.ErrorKindInternalExtraction, model.ClassifyError(err))
}
