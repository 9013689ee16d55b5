package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	s := FormatAmount(1500.50)
	assert.Contains(t, s, "1,500.50")

	// Fractions round to cents.
	assert.Contains(t, FormatAmount(10.006), "10.01")
	assert.Contains(t, FormatAmount(0), "0.00")
}

func TestFormatBalanceNegative(t *testing.T) {
	s := FormatBalance(-250)
	assert.Contains(t, s, "250.00")
	// The positive path returns the plain formatted amount.
	assert.Equal(t, FormatAmount(100), FormatBalance(100))
}

func TestConfirm(t *testing.T) {
	var out strings.Builder

	assert.True(t, Confirm(strings.NewReader("y\n"), &out, "Proceed?"))
	assert.True(t, Confirm(strings.NewReader("YES\n"), &out, "Proceed?"))
	assert.False(t, Confirm(strings.NewReader("n\n"), &out, "Proceed?"))
	assert.False(t, Confirm(strings.NewReader("\n"), &out, "Proceed?"))
	assert.False(t, Confirm(strings.NewReader(""), &out, "Proceed?"))
	assert.Contains(t, out.String(), "[y/N]")
}

func TestConfirmPhrase(t *testing.T) {
	var out strings.Builder

	assert.True(t, ConfirmPhrase(strings.NewReader("DELETE\n"), &out, "Sure?", "DELETE"))
	assert.False(t, ConfirmPhrase(strings.NewReader("delete\n"), &out, "Sure?", "DELETE"))
	assert.False(t, ConfirmPhrase(strings.NewReader("\n"), &out, "Sure?", "DELETE"))
	assert.Contains(t, out.String(), `"DELETE"`)
}
