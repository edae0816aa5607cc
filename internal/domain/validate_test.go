package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	got, err := NormalizeText("reason", "  late payment \n", MaxDisputeReasonLen)
	require.NoError(t, err)
	assert.Equal(t, "late payment", got)

	_, err = NormalizeText("reason", "   ", MaxDisputeReasonLen)
	require.ErrorIs(t, err, ErrInputTooLong)

	_, err = NormalizeText("reason", strings.Repeat("a", MaxDisputeReasonLen+1), MaxDisputeReasonLen)
	require.ErrorIs(t, err, ErrInputTooLong)

	_, err = NormalizeText("reason", "\xc3\x28", MaxDisputeReasonLen)
	require.ErrorIs(t, err, ErrInvalidUtf8)

	// Multi-byte text is measured in bytes.
	_, err = NormalizeText("method", strings.Repeat("ж", 26), MaxPaymentMethodLen)
	require.ErrorIs(t, err, ErrInputTooLong)
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "USD", want: "USD"},
		{in: " EUR ", want: "EUR"},
		{in: "USDTETHERS", want: "USDTETHERS"},
		{in: "US", wantErr: ErrInvalidCurrencyCode},
		{in: "usd", wantErr: ErrInvalidCurrencyCode},
		{in: "US1", wantErr: ErrInvalidCurrencyCode},
		{in: "ABCDEFGHIJK", wantErr: ErrInputTooLong},
		{in: "\xff\xfe\xfd", wantErr: ErrInvalidUtf8},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeCurrency(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
