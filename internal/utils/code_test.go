package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmationCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := NewConfirmationCode()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(code, "TB"))
		// URL path safe: no separators, spaces or escapes needed.
		assert.NotContains(t, code, "/")
		assert.NotContains(t, code, " ")
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
