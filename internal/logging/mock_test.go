package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_CapturesEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Debug("d")
	mock.Info("i")
	mock.Warn("w")
	mock.Error("e")
	mock.Critical("c")

	entries := mock.GetEntries()
	require.Len(t, entries, 5)
	assert.Equal(t, "DEBUG", entries[0].Level)
	assert.Equal(t, "CRITICAL", entries[4].Level)
	assert.True(t, mock.HasEntry("WARN", "w"))
	assert.Len(t, mock.GetEntriesByLevel("ERROR"), 1)
}

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()
	cause := errors.New("boom")

	mock.
		WithError(cause).
		WithField("tenant", "acme").
		WithIssue("QuotaExceeded").
		Error("quota exceeded")

	entries := mock.GetEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, cause, entries[0].Error)
	assert.Equal(t, "QuotaExceeded", entries[0].Issue)
	require.Len(t, entries[0].Fields, 1)
	assert.Equal(t, "tenant", entries[0].Fields[0].Key)
}

func TestMockLogger_Clear(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("one")
	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}
