package validation_test

import (
	"testing"

	"recipe-viewer/core/validation"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Items  []string `json:"items" validate:"required"`
	Format string   `mapstructure:"format" validate:"oneof=json console"`
}

func TestValidator_Struct(t *testing.T) {
	v := validation.New()

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, v.Struct(sample{Items: []string{}, Format: "json"}))
	})

	t.Run("NamesFieldsByTag", func(t *testing.T) {
		err := v.Struct(sample{Format: "xml"})
		assert.ErrorContains(t, err, "validation failed")
		assert.ErrorContains(t, err, "sample.items")
		assert.ErrorContains(t, err, "required")
		assert.ErrorContains(t, err, "oneof=json console")
	})
}
