package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-recruitment-ops/internal/domain"
	"go-recruitment-ops/pkg/apperror"
	"go-recruitment-ops/pkg/logger"
	"go-recruitment-ops/pkg/validation"
)

// Clock returns the current time. Searches derive the current year from it.
type Clock func() time.Time

func orSystemClock(now Clock) Clock {
	if now == nil {
		return time.Now
	}
	return now
}

// appError maps domain sentinels onto AppErrors. Anything unrecognised is
// returned as is and ends up as a 500.
func appError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return apperror.InvalidArgument(err)
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound(err.Error(), err)
	case errors.Is(err, domain.ErrWriteFailure):
		logger.Log.Error("Write failed", "error", err)
		return apperror.WriteFailure("Failed to save changes", err)
	}
	return err
}

func validationFailed(err error) error {
	return apperror.BadRequest("Validation failed: " + strings.Join(validation.FormatValidationErrors(err), "; "))
}

// nextID returns the successor of the largest numeric id, zero padded to
// four digits. Non-numeric ids are ignored.
func nextID(ids []string) string {
	highest := 0
	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%04d", highest+1)
}
