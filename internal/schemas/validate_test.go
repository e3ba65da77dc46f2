package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile_AcceptsMinimalProfile(t *testing.T) {
	data := []byte(`{
		"experiences": [
			{"key": "alpha", "description": "alpha work", "relevance_keywords": ["billing"]}
		]
	}`)

	assert.NoError(t, ValidateProfile(data))
}

func TestValidateProfile_ReportsFieldPaths(t *testing.T) {
	data := []byte(`{
		"experiences": [
			{"key": "", "description": "alpha work", "relevance_keywords": []}
		]
	}`)

	err := ValidateProfile(data)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
	for _, fe := range ve.Errors {
		assert.NotEmpty(t, fe.Field)
		assert.NotEmpty(t, fe.Message)
	}
}

func TestValidateProfile_RejectsUnknownFields(t *testing.T) {
	data := []byte(`{
		"experiences": [
			{"key": "alpha", "description": "a", "relevance_keywords": ["x"], "surprise": true}
		]
	}`)

	assert.Error(t, ValidateProfile(data))
}

func TestValidateProfile_RejectsMalformedJSON(t *testing.T) {
	err := ValidateProfile([]byte(`{"experiences": [`))
	assert.Error(t, err)
}
