package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOfWrapped(t *testing.T) {
	cause := context.DeadlineExceeded
	err := fmt.Errorf("generate: %w", Upstream("Failed to generate summary", cause))

	assert.Equal(t, KindUpstream, KindOf(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "Failed to generate summary", appErr.Message)
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindConfiguration.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindUpstream.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindDelivery.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindUnknown.HTTPStatus())
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "configuration: Email configuration not complete",
		Configuration("Email configuration not complete").Error())
	assert.Equal(t, "delivery: Failed to send email: 535 auth failed",
		Delivery("Failed to send email", errors.New("535 auth failed")).Error())
}
