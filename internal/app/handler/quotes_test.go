package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuoteNumberFormat(t *testing.T) {
	number := generateQuoteNumber()

	assert.True(t, strings.HasPrefix(number, "QT-"))
	parts := strings.Split(number, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 8)
}

func TestGenerateQuoteNumberUnique(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		number := generateQuoteNumber()
		_, dup := seen[number]
		require.False(t, dup, "duplicate quote number: %s", number)
		seen[number] = struct{}{}
	}
}
