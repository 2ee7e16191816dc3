package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/bidbook/internal/domain"
)

type idPayload struct {
	ID int64 `json:"id"`
}

type leadRef struct {
	LeadID int64 `json:"lead_id"`
}

type projectRef struct {
	ProjectID int64 `json:"project_id"`
}

type quoteRef struct {
	QuoteID int64 `json:"quote_id"`
}

// updatePayload is {"id": N, "fields": {...}}; fields holds the patch.
type updatePayload[P any] struct {
	ID     int64 `json:"id"`
	Fields P     `json:"fields"`
}

type taskStatusPayload struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type calculatePayload struct {
	LeadID     int64 `json:"lead_id"`
	BasePrice  int64 `json:"base_price"`
	HourlyRate int64 `json:"hourly_rate"`
}

type generatePayload struct {
	LeadID     int64  `json:"lead_id"`
	Title      string `json:"title"`
	Notes      string `json:"notes"`
	BasePrice  int64  `json:"base_price"`
	HourlyRate int64  `json:"hourly_rate"`
}

type convertPayload struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BasePrice  int64  `json:"base_price"`
	HourlyRate int64  `json:"hourly_rate"`
}

// featurePayload accepts both the current and the older field names.
type featurePayload struct {
	LeadID      int64             `json:"lead_id"`
	FeatureName string            `json:"feature_name"`
	Name        string            `json:"name"`
	HoursEst    *float64          `json:"hours_est"`
	Hours       *float64          `json:"hours"`
	Complexity  domain.Complexity `json:"complexity"`
	InScope     *bool             `json:"in_scope"`
}

func (p featurePayload) feature() *domain.Feature {
	f := &domain.Feature{
		LeadID:     p.LeadID,
		Name:       domain.CoalesceStr(p.FeatureName, p.Name),
		HoursEst:   domain.CoalescePtr(0, p.HoursEst, p.Hours),
		Complexity: p.Complexity,
		InScope:    domain.CoalescePtr(true, p.InScope),
	}
	return f
}

type idResult struct {
	ID int64 `json:"id"`
}

type changesResult struct {
	Changes int64 `json:"changes"`
}

// decode reads payload into a T. An empty payload decodes to the zero T.
func decode[T any](payload json.RawMessage) (T, error) {
	var v T
	if len(bytes.TrimSpace(payload)) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, fmt.Errorf("%w: decoding payload: %w", domain.ErrInvalidInput, err)
	}
	return v, nil
}
