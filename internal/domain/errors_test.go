package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("creating task: %w", NewValidationError("title", MsgRequired))

	require.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"title": MsgRequired}, verr.Fields)
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields map[string]string
		want   string
	}{
		{
			name:   "single field",
			fields: map[string]string{"email": MsgRequired},
			want:   "validation error: email: is required",
		},
		{
			name: "fields in name order",
			fields: map[string]string{
				"title":    "too short",
				"deadline": "must be in the future",
			},
			want: "validation error: deadline: must be in the future; title: too short",
		},
		{
			name:   "no fields",
			fields: nil,
			want:   "validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, (&ValidationError{Fields: tt.fields}).Error())
		})
	}
}

func TestFieldErrors(t *testing.T) {
	t.Parallel()

	require.NoError(t, FieldErrors(nil))
	require.NoError(t, FieldErrors(map[string]string{}))

	err := FieldErrors(map[string]string{"priority": `invalid: "URGENT"`})
	require.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, `validation error: priority: invalid: "URGENT"`)
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrValidation, ErrConflict, ErrUnauthorized, ErrForbidden}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
