package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NormalizeText trims s and checks it is valid UTF-8, non-blank and at most
// max bytes long.
func NormalizeText(field, s string, max int) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%s: %w", field, ErrInvalidUtf8)
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("%s is empty: %w", field, ErrInputTooLong)
	}
	if len(trimmed) > max {
		return "", fmt.Errorf("%s longer than %d bytes: %w", field, max, ErrInputTooLong)
	}
	return trimmed, nil
}

// NormalizeCurrency validates an ISO-like currency code: 3 to 10 uppercase
// ASCII letters.
func NormalizeCurrency(code string) (string, error) {
	if !utf8.ValidString(code) {
		return "", fmt.Errorf("fiat currency: %w", ErrInvalidUtf8)
	}
	trimmed := strings.TrimSpace(code)
	if len(trimmed) > MaxFiatCurrencyLen {
		return "", fmt.Errorf("fiat currency longer than %d bytes: %w", MaxFiatCurrencyLen, ErrInputTooLong)
	}
	if len(trimmed) < MinFiatCurrencyLen {
		return "", fmt.Errorf("fiat currency %q: %w", trimmed, ErrInvalidCurrencyCode)
	}
	for i := 0; i < len(trimmed); i++ {
		if c := trimmed[i]; c < 'A' || c > 'Z' {
			return "", fmt.Errorf("fiat currency %q: %w", trimmed, ErrInvalidCurrencyCode)
		}
	}
	return trimmed, nil
}

func NormalizeEvidenceURL(raw string) (string, error) {
	return NormalizeText("evidence url", raw, MaxEvidenceURLLen)
}
