package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type hallPayload struct {
	Name       string `json:"name" validate:"required"`
	Rows       int    `json:"rows" validate:"required,gte=1"`
	SeatsInRow int    `json:"seats_in_row" validate:"required,gte=1"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(hallPayload{Name: "Blue", Rows: 10, SeatsInRow: 12}))

	errs := ValidateStruct(&hallPayload{Rows: 3})
	assert.Equal(t, map[string]string{
		"name":         "This field is required",
		"seats_in_row": "This field is required",
	}, errs)
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{
		"rows": "Minimum is 1",
		"name": "This field is required",
	})

	assert.Equal(t, "name: This field is required; rows: Minimum is 1", msg)
}
