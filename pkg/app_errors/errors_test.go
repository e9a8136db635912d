package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "go-gin-event-program/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("OrNil without fields", func(t *testing.T) {
		v := &apperrors.ValidationError{}
		assert.NoError(t, v.OrNil())
	})

	t.Run("Is ErrValidation through wrapping", func(t *testing.T) {
		v := &apperrors.ValidationError{}
		v.Add("name", "name is required")
		v.Add("startAt", "startAt is required")

		err := fmt.Errorf("create event: %w", v.OrNil())

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		var target *apperrors.ValidationError
		require.True(t, errors.As(err, &target))
		assert.Len(t, target.Fields, 2)
		assert.Contains(t, err.Error(), "name: name is required")
	})
}
