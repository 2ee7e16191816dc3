package estimate

import (
	"testing"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feature(id int64, hours float64, c domain.Complexity, inScope bool) domain.Feature {
	return domain.Feature{ID: id, Name: "feature", HoursEst: hours, Complexity: c, InScope: inScope}
}

func TestCalculate_AcmeScenario(t *testing.T) {
	features := []domain.Feature{
		feature(1, 10, domain.ComplexityLarge, true),
		feature(2, 40, domain.ComplexitySmall, false),
	}
	b := Calculate(features, Params{BasePrice: 1000, HourlyRate: 500})

	assert.Equal(t, 10.0, b.TotalHours)
	assert.Equal(t, int64(12000), b.Pricing.Standard)
	assert.Equal(t, int64(9600), b.Pricing.Basic)
	assert.Equal(t, int64(15000), b.Pricing.Premium)
	assert.Equal(t, b.Pricing.Standard, b.TotalPrice)

	require.Len(t, b.QuoteItems, 1)
	item := b.QuoteItems[0]
	assert.Equal(t, int64(1), item.FeatureID)
	assert.Equal(t, int64(11000), item.TotalPrice)
	assert.Equal(t, int64(500), item.RatePerHour)
	assert.Equal(t, domain.ComplexityLarge, item.Complexity)
}

func TestCalculate_ComplexityFactors(t *testing.T) {
	cases := map[domain.Complexity]int64{
		domain.ComplexitySmall:  1000,
		domain.ComplexityMedium: 1500,
		domain.ComplexityLarge:  2200,
	}
	for c, want := range cases {
		b := Calculate([]domain.Feature{feature(1, 2, c, true)}, Params{HourlyRate: 500})
		assert.Equal(t, want, b.TotalPrice, "complexity=%s", c)
	}
}

func TestCalculate_NoFeatures(t *testing.T) {
	b := Calculate(nil, Params{BasePrice: 250, HourlyRate: 500})
	assert.Zero(t, b.TotalHours)
	assert.Empty(t, b.QuoteItems)
	assert.NotNil(t, b.QuoteItems, "encodes as an empty list")
	assert.Equal(t, Pricing{Basic: 200, Standard: 250, Premium: 313}, b.Pricing)
}

func TestCalculate_SumsUnroundedPrices(t *testing.T) {
	// 0.3h × 5 × 1.0 = 1.5 per item: each rounds to 2, but the sum is 3.
	features := []domain.Feature{
		feature(1, 0.3, domain.ComplexitySmall, true),
		feature(2, 0.3, domain.ComplexitySmall, true),
	}
	b := Calculate(features, Params{HourlyRate: 5})
	assert.Equal(t, int64(2), b.QuoteItems[0].TotalPrice)
	assert.Equal(t, int64(3), b.Pricing.Standard)
	assert.InDelta(t, 0.6, b.TotalHours, 1e-9)
}

func TestCalculate_Idempotent(t *testing.T) {
	features := []domain.Feature{
		feature(1, 3.5, domain.ComplexityMedium, true),
		feature(2, 7, domain.ComplexityLarge, true),
	}
	p := Params{BasePrice: 99, HourlyRate: 420}
	assert.Equal(t, Calculate(features, p), Calculate(features, p))
}

func TestParamsResolve(t *testing.T) {
	p, err := Params{}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHourlyRate, p.HourlyRate)
	assert.Zero(t, p.BasePrice)

	_, err = Params{BasePrice: -1}.Resolve()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = Params{HourlyRate: -5}.Resolve()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRound_HalfUp(t *testing.T) {
	assert.Equal(t, int64(3), Round(2.5))
	assert.Equal(t, int64(2), Round(2.4999))
	assert.Equal(t, int64(0), Round(0))
}
