package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/issuelog/internal/registry"
)

func TestRegister(t *testing.T) {
	reg := registry.New()
	Register(reg)

	assert.Equal(t, 2, reg.Len())

	fallback, err := reg.Get(NameConfigFallback)
	require.NoError(t, err)
	assert.Equal(t, CodeConfigFallback, fallback.Code)
	assert.Equal(t, ErrConfigFallback, fallback.Issue)

	duplicate, err := reg.Get(NameDuplicateRegistration)
	require.NoError(t, err)
	assert.Equal(t, CodeDuplicateRegistration, duplicate.Code)
	assert.Equal(t, ErrDuplicateRegistration, duplicate.Issue)
}
