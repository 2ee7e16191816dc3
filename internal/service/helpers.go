package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/repository"
)

func now() time.Time {
	return time.Now().UTC()
}

// isMissing reports a lookup that found no row. Updates treat it as zero
// changes rather than a failure.
func isMissing(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func requireID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, name)
	}
	return nil
}
