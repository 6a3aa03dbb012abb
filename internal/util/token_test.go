package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(token, "sess_"))
		assert.False(t, seen[token], "token collision: %s", token)
		seen[token] = true
	}
}

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText([]byte("  Jane Candidate\nSenior engineer  "), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Jane Candidate\nSenior engineer", text)
}

func TestExtractTextRejectsBinaryUnknownType(t *testing.T) {
	_, err := ExtractText([]byte{0xff, 0xfe, 0x00, 0x01}, "resume.bin")
	assert.Error(t, err)
}
