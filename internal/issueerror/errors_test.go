package issueerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		expected string
	}{
		{
			name:     "basic not found error",
			err:      &NotFoundError{Name: "QuotaExceeded"},
			expected: `issue "QuotaExceeded" is not registered`,
		},
		{
			name:     "empty name",
			err:      &NotFoundError{Name: ""},
			expected: `issue "" is not registered`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestConfigError(t *testing.T) {
	configErr := &ConfigError{
		Path: "settings/logging.yaml",
		Err:  errors.New("yaml: line 3: mapping values are not allowed"),
	}

	assert.Equal(t,
		"logging config settings/logging.yaml: yaml: line 3: mapping values are not allowed",
		configErr.Error())
}

func TestConfigError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	configErr := &ConfigError{
		Path: "logging.yaml",
		Err:  originalErr,
	}

	assert.Equal(t, originalErr, configErr.Unwrap())
	assert.True(t, errors.Is(configErr, originalErr))
}

func TestUnknownKindError(t *testing.T) {
	tests := []struct {
		name     string
		err      *UnknownKindError
		expected string
	}{
		{
			name:     "unknown handler",
			err:      &UnknownKindError{What: "handler", Kind: "syslog"},
			expected: `unknown handler kind: "syslog"`,
		},
		{
			name:     "unknown formatter",
			err:      &UnknownKindError{What: "formatter", Kind: "xml"},
			expected: `unknown formatter kind: "xml"`,
		},
		{
			name:     "unknown encoding",
			err:      &UnknownKindError{What: "encoding", Kind: "ebcdic"},
			expected: `unknown encoding kind: "ebcdic"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
