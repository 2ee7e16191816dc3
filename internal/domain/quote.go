package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultHourlyRate applies wherever a rate is not supplied.
const DefaultHourlyRate int64 = 500

// Quote is a priced proposal for a lead. Its totals are a snapshot taken when
// the quote was generated and are not recomputed from later feature edits.
type Quote struct {
	ID         int64       `json:"id"`
	LeadID     int64       `json:"lead_id"`
	Title      string      `json:"title"`
	BasePrice  int64       `json:"base_price"`
	HourlyRate int64       `json:"hourly_rate"`
	TotalHours float64     `json:"total_hours"`
	TotalPrice int64       `json:"total_price"`
	Status     QuoteStatus `json:"status"`
	Notes      string      `json:"notes"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// DefaultQuoteTitle names an untitled quote after the day it was created.
func DefaultQuoteTitle(now time.Time) string {
	return "Quote-" + now.Format("2006-01-02")
}

func (q *Quote) Validate() error {
	if q.LeadID <= 0 {
		return fmt.Errorf("%w: lead_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if q.BasePrice < 0 || q.TotalPrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}
	if q.HourlyRate <= 0 {
		return fmt.Errorf("%w: hourly_rate must be positive", ErrInvalidInput)
	}
	if q.TotalHours < 0 || math.IsNaN(q.TotalHours) {
		return fmt.Errorf("%w: total_hours must not be negative", ErrInvalidInput)
	}
	return nil
}

// QuotePatch is a partial update of a quote header.
type QuotePatch struct {
	Title      Optional[string]      `json:"title"`
	BasePrice  Optional[int64]       `json:"base_price"`
	HourlyRate Optional[int64]       `json:"hourly_rate"`
	TotalHours Optional[float64]     `json:"total_hours"`
	TotalPrice Optional[int64]       `json:"total_price"`
	Status     Optional[QuoteStatus] `json:"status"`
	Notes      Optional[string]      `json:"notes"`
}

func (p QuotePatch) IsEmpty() bool {
	return !anySet(p.Title.Set, p.BasePrice.Set, p.HourlyRate.Set, p.TotalHours.Set,
		p.TotalPrice.Set, p.Status.Set, p.Notes.Set)
}

func (p QuotePatch) Validate() error {
	for _, err := range []error{
		required("title", p.Title),
		required("base_price", p.BasePrice),
		required("hourly_rate", p.HourlyRate),
		required("total_hours", p.TotalHours),
		required("total_price", p.TotalPrice),
		required("status", p.Status),
		required("notes", p.Notes),
	} {
		if err != nil {
			return err
		}
	}
	if p.HourlyRate.Set && p.HourlyRate.Value <= 0 {
		return fmt.Errorf("%w: hourly_rate must be positive", ErrInvalidInput)
	}
	if (p.BasePrice.Set && p.BasePrice.Value < 0) || (p.TotalPrice.Set && p.TotalPrice.Value < 0) {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}
	return nil
}

// QuoteItem is one priced line of a quote. FeatureID is a soft reference:
// the feature may since have been deleted.
type QuoteItem struct {
	ID              int64      `json:"id"`
	QuoteID         int64      `json:"quote_id"`
	FeatureID       *int64     `json:"feature_id"`
	ItemName        string     `json:"item_name"`
	ItemDescription string     `json:"item_description"`
	Hours           float64    `json:"hours"`
	RatePerHour     int64      `json:"rate_per_hour"`
	TotalPrice      int64      `json:"total_price"`
	Complexity      Complexity `json:"complexity"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (i *QuoteItem) Validate() error {
	if i.QuoteID <= 0 {
		return fmt.Errorf("%w: quote_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(i.ItemName) == "" {
		return fmt.Errorf("%w: item_name is required", ErrInvalidInput)
	}
	if i.Hours < 0 || math.IsNaN(i.Hours) {
		return fmt.Errorf("%w: hours must not be negative", ErrInvalidInput)
	}
	if i.RatePerHour < 0 || i.TotalPrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}
	return nil
}

// QuoteItemView is a quote item joined with its source feature, when that
// feature still exists.
type QuoteItemView struct {
	QuoteItem
	FeatureName  *string  `json:"feature_name"`
	FeatureHours *float64 `json:"feature_hours"`
}
