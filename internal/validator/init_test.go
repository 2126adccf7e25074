package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkValidation(t *testing.T) {
	type sample struct {
		Mark string `validate:"required,mark"`
	}

	for _, ok := range []string{"X", "x", "O", "o"} {
		assert.NoError(t, GetValidator().Struct(sample{Mark: ok}), ok)
	}
	for _, bad := range []string{"", "Z", "XO"} {
		assert.Error(t, GetValidator().Struct(sample{Mark: bad}), bad)
	}
}
