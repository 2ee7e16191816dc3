// Package estimate turns a lead's feature list into a costed breakdown with a
// three-tier price ladder.
package estimate

import (
	"fmt"
	"math"

	"github.com/alexanderramin/bidbook/internal/domain"
)

const (
	basicMultiplier   = 0.8
	premiumMultiplier = 1.25
)

// LineItem is the priced share of one in-scope feature.
type LineItem struct {
	FeatureID   int64             `json:"feature_id"`
	ItemName    string            `json:"item_name"`
	Hours       float64           `json:"hours"`
	RatePerHour int64             `json:"rate_per_hour"`
	Complexity  domain.Complexity `json:"complexity"`
	TotalPrice  int64             `json:"total_price"`
}

// Pricing is the tier ladder offered to the client.
type Pricing struct {
	Basic    int64 `json:"basic"`
	Standard int64 `json:"standard"`
	Premium  int64 `json:"premium"`
}

// Breakdown is the result of a calculation. TotalPrice equals the standard tier.
type Breakdown struct {
	BasePrice  int64      `json:"base_price"`
	HourlyRate int64      `json:"hourly_rate"`
	TotalHours float64    `json:"total_hours"`
	TotalPrice int64      `json:"total_price"`
	QuoteItems []LineItem `json:"quote_items"`
	Pricing    Pricing    `json:"pricing"`
}

// Params are the caller-supplied pricing inputs. Zero values select the
// defaults: no base price and domain.DefaultHourlyRate.
type Params struct {
	BasePrice  int64
	HourlyRate int64
}

// Resolve applies defaults and rejects values that cannot be priced.
func (p Params) Resolve() (Params, error) {
	if p.BasePrice < 0 {
		return p, fmt.Errorf("%w: base_price must not be negative", domain.ErrInvalidInput)
	}
	if p.HourlyRate < 0 {
		return p, fmt.Errorf("%w: hourly_rate must be positive", domain.ErrInvalidInput)
	}
	if p.HourlyRate == 0 {
		p.HourlyRate = domain.DefaultHourlyRate
	}
	return p, nil
}

// Calculate prices the in-scope features. Per-feature prices are summed
// unrounded; rounding happens only when each figure is reported. The result
// depends only on its inputs.
func Calculate(features []domain.Feature, p Params) Breakdown {
	b := Breakdown{
		BasePrice:  p.BasePrice,
		HourlyRate: p.HourlyRate,
		QuoteItems: make([]LineItem, 0, len(features)),
	}
	rate := float64(p.HourlyRate)
	var subtotal float64
	for _, f := range features {
		if !f.InScope {
			continue
		}
		price := f.HoursEst * rate * f.Complexity.Factor()
		b.TotalHours += f.HoursEst
		subtotal += price
		b.QuoteItems = append(b.QuoteItems, LineItem{
			FeatureID:   f.ID,
			ItemName:    f.Name,
			Hours:       f.HoursEst,
			RatePerHour: p.HourlyRate,
			Complexity:  f.Complexity,
			TotalPrice:  Round(price),
		})
	}

	final := float64(p.BasePrice) + subtotal
	b.Pricing = Pricing{
		Basic:    Round(final * basicMultiplier),
		Standard: Round(final),
		Premium:  Round(final * premiumMultiplier),
	}
	b.TotalPrice = b.Pricing.Standard
	return b
}

// Round rounds half away from zero for the non-negative amounts priced here.
func Round(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
