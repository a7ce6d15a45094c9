package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careerbridge/jobboard/internal/apperr"
)

func TestKindHTTPStatus(t *testing.T) {
	cases := map[apperr.Kind]int{
		apperr.KindValidation:         http.StatusBadRequest,
		apperr.KindInvalidCredentials: http.StatusUnauthorized,
		apperr.KindUnauthorized:       http.StatusUnauthorized,
		apperr.KindNotFound:           http.StatusNotFound,
		apperr.KindConflict:           http.StatusConflict,
		apperr.KindTimeout:            http.StatusGatewayTimeout,
		apperr.KindStore:              http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, kind.HTTPStatus(), kind.String())
	}
}

func TestKindOfUnwrapsThroughWrapping(t *testing.T) {
	err := apperr.NotFound("Company not found")
	wrapped := fmt.Errorf("posting job: %w", err)

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(wrapped))
	assert.True(t, apperr.IsKind(wrapped, apperr.KindNotFound))
}

func TestKindOfDefaultsToStore(t *testing.T) {
	assert.Equal(t, apperr.KindStore, apperr.KindOf(errors.New("driver exploded")))
}

func TestStoreKeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New(`pq: syntax error at or near "SELECT"`)
	err := apperr.Store(cause)

	assert.Equal(t, "internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestInvalidCredentialsIsUniform(t *testing.T) {
	assert.Equal(t, apperr.InvalidCredentials().Message, apperr.InvalidCredentials().Message)
	assert.Equal(t, apperr.InvalidCredentials().Error(), apperr.InvalidCredentials().Error())
}
