package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// UnnamedFeature labels a feature row that carries no name in any column.
const UnnamedFeature = "Unnamed feature"

// Feature is a scoped unit of work attached to a lead, used for estimation.
type Feature struct {
	ID         int64      `json:"id"`
	LeadID     int64      `json:"lead_id"`
	Name       string     `json:"feature_name"`
	HoursEst   float64    `json:"hours_est"`
	Complexity Complexity `json:"complexity"`
	InScope    bool       `json:"in_scope"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (f *Feature) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: feature_name is required", ErrInvalidInput)
	}
	if f.HoursEst < 0 || math.IsNaN(f.HoursEst) || math.IsInf(f.HoursEst, 0) {
		return fmt.Errorf("%w: hours_est must be a non-negative number", ErrInvalidInput)
	}
	return nil
}

// FeatureRecord is a feature row as stored, across both schema generations:
// early rows used name/hours and predate in_scope. Values are kept raw so
// that corrupt cells can be tolerated during normalization.
type FeatureRecord struct {
	ID          int64
	LeadID      int64
	FeatureName *string
	Name        *string
	HoursEst    *string
	Hours       *string
	Complexity  *string
	InScope     *string
	CreatedAt   time.Time
}

// Normalize maps a stored row onto the canonical Feature. It never fails:
// a missing in_scope means in scope, unreadable hours count as zero, and an
// unknown complexity prices as M.
func (r FeatureRecord) Normalize() Feature {
	return Feature{
		ID:         r.ID,
		LeadID:     r.LeadID,
		Name:       CoalesceStr(trimmed(r.FeatureName), trimmed(r.Name), UnnamedFeature),
		HoursEst:   parseHours(r.HoursEst, r.Hours),
		Complexity: ParseComplexity(CoalescePtr("", r.Complexity)),
		InScope:    parseInScope(r.InScope),
		CreatedAt:  r.CreatedAt,
	}
}

func trimmed(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// parseHours prefers the current column and falls back to the legacy one.
func parseHours(current, legacy *string) float64 {
	raw := current
	if raw == nil {
		raw = legacy
	}
	if raw == nil {
		return 0
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return h
}

func parseInScope(raw *string) bool {
	if raw == nil {
		return true
	}
	v := strings.ToLower(strings.TrimSpace(*raw))
	return v == "1" || v == "true"
}

// FeaturePatch is a partial update of a feature.
type FeaturePatch struct {
	Name       Optional[string]     `json:"feature_name"`
	HoursEst   Optional[float64]    `json:"hours_est"`
	Complexity Optional[Complexity] `json:"complexity"`
	InScope    Optional[bool]       `json:"in_scope"`
}

func (p FeaturePatch) IsEmpty() bool {
	return !anySet(p.Name.Set, p.HoursEst.Set, p.Complexity.Set, p.InScope.Set)
}

func (p FeaturePatch) Validate() error {
	for _, err := range []error{
		required("feature_name", p.Name),
		required("hours_est", p.HoursEst),
		required("complexity", p.Complexity),
		required("in_scope", p.InScope),
	} {
		if err != nil {
			return err
		}
	}
	if p.Name.Set && strings.TrimSpace(p.Name.Value) == "" {
		return fmt.Errorf("%w: feature_name is required", ErrInvalidInput)
	}
	if p.HoursEst.Set && (p.HoursEst.Value < 0 || math.IsNaN(p.HoursEst.Value) || math.IsInf(p.HoursEst.Value, 0)) {
		return fmt.Errorf("%w: hours_est must be a non-negative number", ErrInvalidInput)
	}
	return nil
}
