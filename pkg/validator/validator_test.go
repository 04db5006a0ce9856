package validator

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name    string  `json:"name" binding:"required" msg:"Name is required!"`
	Amount  int     `json:"amount" binding:"min=1" msg:"amount cannot be less than 1"`
	Label   *string `json:"label" binding:"notblank"`
	Comment string  `form:"comment" binding:"required"`
}

func ptr(s string) *string { return &s }

func TestParseErrorUsesMessageTags(t *testing.T) {
	Register()

	err := binding.Validator.ValidateStruct(&sample{Label: ptr("   ")})

	assert.ElementsMatch(t, []string{
		"name : Name is required!",
		"amount : amount cannot be less than 1",
		"label : Field validation for 'label' failed on the 'notblank' tag",
		"comment : comment is required",
	}, ParseError(err, &sample{}))
}

func TestNotBlank(t *testing.T) {
	Register()

	assert.NoError(t, binding.Validator.ValidateStruct(&sample{
		Name: "n", Amount: 1, Label: ptr(" x "), Comment: "c",
	}))

	err := binding.Validator.ValidateStruct(&sample{Name: "n", Amount: 1, Comment: "c"})
	assert.Equal(t, []string{"label : Field validation for 'label' failed on the 'notblank' tag"}, ParseError(err, sample{}))
}

func TestParseErrorNonValidation(t *testing.T) {
	assert.Nil(t, ParseError(nil, nil))
	assert.Equal(t, []string{"request : unexpected EOF"}, ParseError(errors.New("unexpected EOF"), nil))
}
