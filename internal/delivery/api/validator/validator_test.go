package validator

import (
	"testing"

	domainerrors "ecovis/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string  `json:"name" validate:"required,min=3,max=5"`
	Email    string  `json:"email" validate:"required,email"`
	Kind     string  `json:"kind" validate:"required,oneof=red green"`
	Score    int     `json:"score" validate:"min=0,max=100"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=4"`
	Internal int64   `json:"-"`
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	long := "toolong"

	tests := []struct {
		name       string
		input      sample
		wantFields map[string]string
	}{
		{
			name:  "valid input",
			input: sample{Name: "abcd", Email: "a@example.com", Kind: "red", Score: 50},
		},
		{
			name:  "missing required fields",
			input: sample{Score: 1},
			wantFields: map[string]string{
				"name":  "name is required",
				"email": "email is required",
				"kind":  "kind is required",
			},
		},
		{
			name:  "bounds and enums",
			input: sample{Name: "ab", Email: "nope", Kind: "blue", Score: 101, Nickname: &long},
			wantFields: map[string]string{
				"name":     "name must be at least 3 characters",
				"email":    "email must be a valid email address",
				"kind":     "kind must be one of red, green",
				"score":    "score must be at most 100",
				"nickname": "nickname must be at most 4 characters",
			},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&tt.input)
			if tt.wantFields == nil {
				require.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

			fields, ok := appErr.Details().([]domainerrors.FieldError)
			require.True(t, ok)

			got := make(map[string]string, len(fields))
			for _, fe := range fields {
				got[fe.Field] = fe.Message
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}
