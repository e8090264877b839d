package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Transcript string `json:"transcript"`
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"transcript":"hello"}`))
	var got payload

	require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &got, MaxBodyBytes))
	assert.Equal(t, "hello", got.Transcript)
}

func TestDecodeJSONErrors(t *testing.T) {
	cases := map[string]string{
		"empty":     ``,
		"malformed": `{"transcript":`,
		"trailing":  `{"transcript":"a"} {"transcript":"b"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			var got payload
			assert.Error(t, DecodeJSON(httptest.NewRecorder(), req, &got, MaxBodyBytes))
		})
	}
}

func TestDecodeJSONTooLarge(t *testing.T) {
	body := `{"transcript":"` + strings.Repeat("a", 64) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var got payload

	err := DecodeJSON(httptest.NewRecorder(), req, &got, 16)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusBadRequest, "Transcript is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Transcript is required"}`, rec.Body.String())
}
