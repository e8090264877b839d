package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/meeting-minutes/backend/internal/model/email"
	"github.com/zhouzirui/meeting-minutes/backend/internal/model/summary"
	"github.com/zhouzirui/meeting-minutes/backend/pkg/validation"
)

func TestNewRegistersNotBlank(t *testing.T) {
	var v *validation.Validator
	require.NotPanics(t, func() { v = validation.New() })

	msg, err := v.Struct(&struct {
		Title string `json:"title" validate:"notblank"`
	}{Title: "  "})
	require.NoError(t, err)
	assert.Equal(t, "Title is required", msg)
}

func TestGenerateRequest(t *testing.T) {
	v := validation.New()

	cases := []struct {
		name       string
		transcript string
		want       string
	}{
		{name: "valid", transcript: "Alice: let's ship Friday.", want: ""},
		{name: "empty", transcript: "", want: "Transcript is required"},
		{name: "whitespace", transcript: " \n\t ", want: "Transcript is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := v.Struct(&summary.GenerateRequest{Transcript: tc.transcript})
			require.NoError(t, err)
			assert.Equal(t, tc.want, msg)
		})
	}
}

func TestSendRequest(t *testing.T) {
	v := validation.New()

	msg, err := v.Struct(&email.SendRequest{Recipient: "a@b.com", Subject: "S", Summary: "<p>hi</p>"})
	require.NoError(t, err)
	assert.Empty(t, msg)

	msg, err = v.Struct(&email.SendRequest{Recipient: "not-an-email", Subject: "S", Summary: "<p>hi</p>"})
	require.NoError(t, err)
	assert.Equal(t, "Valid email is required", msg)

	msg, err = v.Struct(&email.SendRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Recipient is required; Subject is required; Summary is required", msg)
}

func TestStructRejectsNonStruct(t *testing.T) {
	_, err := validation.New().Struct("transcript")
	assert.Error(t, err)
}
