package parser

import (
	"testing"

	"github.com/paisatrack/paisa_tracker_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "rupee prefix with grouping and fraction", text: "Rs.1,234.56 debited from A/c XX1234", want: "1234.56"},
		{name: "inr prefix", text: "INR 500.00 spent on card", want: "500.00"},
		{name: "rupee sign", text: "₹250 withdrawn at ATM", want: "250"},
		{name: "lowercase marker", text: "rs 99.50 credited", want: "99.50"},
		{name: "bare number", text: "transaction of 1500 completed", want: "1500"},
		{name: "grouped thousands no fraction", text: "Rs. 12,00,000 is a lakh-grouped token", want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAmount(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestExtractAmount_NoAmount(t *testing.T) {
	for _, text := range []string{"", "See you at six", "no digits here at all"} {
		_, err := ExtractAmount(text)
		assert.ErrorIs(t, err, apperrors.ErrNoAmount, "text: %q", text)
	}
}

func TestExtractAmount_Deterministic(t *testing.T) {
	first, err := ExtractAmount("Rs.1,234.56 debited")
	require.NoError(t, err)
	second, err := ExtractAmount("Rs.1,234.56 debited")
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
