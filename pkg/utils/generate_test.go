package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFlightNumber(t *testing.T) {
	for i := 0; i < 20; i++ {
		number := GenerateFlightNumber()
		assert.True(t, strings.HasPrefix(number, "GQ-"), "got %s", number)
		assert.Len(t, number, 7)
	}
}

func TestGenerateBaggageTag(t *testing.T) {
	for i := 0; i < 20; i++ {
		tag := GenerateBaggageTag()
		require.Len(t, tag, 8)
		for _, c := range tag {
			assert.Contains(t, baggageTagAlphabet, string(c))
		}
	}
}

func TestGenerateTransactionID(t *testing.T) {
	id := GenerateTransactionID()

	parts := strings.Split(id, "-")
	require.Len(t, parts, 4)
	assert.Equal(t, "PAY", parts[0])
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 6)
	assert.Len(t, parts[3], 4)
}

func TestParseUUIDRejectsGarbage(t *testing.T) {
	_, err := ParseUUID("not-a-uuid")
	assert.Error(t, err)

	id := GenerateUUID()
	parsed, err := ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
