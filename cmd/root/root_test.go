package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RegistersFlags(t *testing.T) {
	Init()

	flag := Cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)

	assert.NotNil(t, Cmd.PersistentFlags().Lookup("log-dir"))
}

func TestCmd_Metadata(t *testing.T) {
	assert.Equal(t, "issuelog", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
}
