package services

import (
	"context"
	"errors"

	"github.com/careerbridge/jobboard/internal/apperr"
)

// wrapStore classifies a query failure that is not a business outcome.
// Deadline hits become Timeout; everything else is a StoreError whose
// cause is kept for internal logging only.
func wrapStore(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperr.Timeout(err)
	}
	return apperr.Store(err)
}
