package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-recruitment-ops/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

var errCause = errors.New("cause")

func TestAppErrorUnwrap(t *testing.T) {
	err := apperror.WriteFailure("Failed to save client", fmt.Errorf("wrapped: %w", errCause))

	assert.Equal(t, http.StatusBadGateway, err.Code)
	assert.Equal(t, "Failed to save client", err.Error())
	assert.True(t, errors.Is(err, errCause))

	var appErr *apperror.AppError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}

func TestInvalidArgumentKeepsMessage(t *testing.T) {
	err := apperror.InvalidArgument(fmt.Errorf("bad gender: %w", errCause))
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "bad gender: cause", err.Message)
	assert.True(t, errors.Is(err, errCause))
}
