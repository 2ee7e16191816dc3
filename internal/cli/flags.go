package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/spf13/pflag"
)

// noneValue clears a nullable field: --budget-max none.
const noneValue = "none"

// The opt* helpers turn a flag into a patch field: unset when the flag was
// not given, null for "none" where the column allows it, else the parsed
// value. They only see flags registered as strings so "none" stays typable.

func optString(fs *pflag.FlagSet, name string) domain.Optional[string] {
	if !fs.Changed(name) {
		return domain.Optional[string]{}
	}
	v, _ := fs.GetString(name)
	return domain.Some(v)
}

func optInt64(fs *pflag.FlagSet, name string) (domain.Optional[int64], error) {
	if !fs.Changed(name) {
		return domain.Optional[int64]{}, nil
	}
	raw, _ := fs.GetString(name)
	if strings.EqualFold(raw, noneValue) {
		return domain.Null[int64](), nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return domain.Optional[int64]{}, fmt.Errorf("invalid --%s %q: %w", name, raw, domain.ErrInvalidInput)
	}
	return domain.Some(n), nil
}

func optFloat(fs *pflag.FlagSet, name string) (domain.Optional[float64], error) {
	if !fs.Changed(name) {
		return domain.Optional[float64]{}, nil
	}
	raw, _ := fs.GetString(name)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return domain.Optional[float64]{}, fmt.Errorf("invalid --%s %q: %w", name, raw, domain.ErrInvalidInput)
	}
	return domain.Some(f), nil
}

func optBool(fs *pflag.FlagSet, name string) (domain.Optional[bool], error) {
	if !fs.Changed(name) {
		return domain.Optional[bool]{}, nil
	}
	raw, _ := fs.GetString(name)
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return domain.Optional[bool]{}, fmt.Errorf("invalid --%s %q: %w", name, raw, domain.ErrInvalidInput)
	}
	return domain.Some(b), nil
}

func optTime(fs *pflag.FlagSet, name string) (domain.Optional[time.Time], error) {
	if !fs.Changed(name) {
		return domain.Optional[time.Time]{}, nil
	}
	raw, _ := fs.GetString(name)
	if strings.EqualFold(raw, noneValue) {
		return domain.Null[time.Time](), nil
	}
	t, err := parseTimeFlag(raw)
	if err != nil {
		return domain.Optional[time.Time]{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return domain.Some(t), nil
}

// optStatus parses a status flag with the entity's parser.
func optStatus[S ~string](fs *pflag.FlagSet, name string, parse func(string) (S, error)) (domain.Optional[S], error) {
	if !fs.Changed(name) {
		return domain.Optional[S]{}, nil
	}
	raw, _ := fs.GetString(name)
	s, err := parse(raw)
	if err != nil {
		return domain.Optional[S]{}, err
	}
	return domain.Some(s), nil
}

// int64Flag reads an optional reference flag: nil when absent or zero.
func int64Flag(fs *pflag.FlagSet, name string) *int64 {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetInt64(name)
	if v == 0 {
		return nil
	}
	return &v
}

var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

// parseTimeFlag accepts RFC3339, "YYYY-MM-DD HH:MM" or a bare date, the
// latter two in local time.
func parseTimeFlag(raw string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a time (use YYYY-MM-DD HH:MM)", domain.ErrInvalidInput, raw)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not an id", domain.ErrInvalidInput, raw)
	}
	return id, nil
}
