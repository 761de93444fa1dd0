package statemachine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTable = Table{
	"draft":     {"processed"},
	"processed": {"sent"},
}

func TestAttempt_AllowedTransition(t *testing.T) {
	assert.NoError(t, Attempt("payroll run", testTable, "draft", "processed"))
	assert.NoError(t, Attempt("payroll run", testTable, "processed", "sent"))
}

func TestAttempt_SkippingStateFails(t *testing.T) {
	err := Attempt("payroll run", testTable, "draft", "sent")
	require.Error(t, err)

	var invalid *InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "draft", invalid.Current)
	assert.Equal(t, "sent", invalid.Target)
	assert.Equal(t, []string{"processed"}, invalid.Allowed)
	assert.Contains(t, err.Error(), `allowed: processed`)
}

func TestAttempt_TerminalState(t *testing.T) {
	err := Attempt("payroll run", testTable, "sent", "draft")
	require.Error(t, err)

	var invalid *InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Empty(t, invalid.Allowed)
	assert.Contains(t, err.Error(), "terminal")
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(testTable, "draft", "processed"))
	assert.False(t, CanTransition(testTable, "sent", "processed"))
	assert.False(t, CanTransition(testTable, "unknown", "draft"))
}
