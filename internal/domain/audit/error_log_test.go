package audit

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorLog(t *testing.T) {
	t.Run("caps message and stack length", func(t *testing.T) {
		long := strings.Repeat("x", 500)

		entry := NewErrorLog(long, long, "createOrder", nil)

		assert.Len(t, entry.Message, TruncateLen)
		assert.Len(t, entry.Stack, TruncateLen)
		assert.Equal(t, "createOrder", entry.Info)
	})

	t.Run("short values pass through", func(t *testing.T) {
		entry := NewErrorLog("boom", "at main.go:1", "editOrder", nil)

		assert.Equal(t, "boom", entry.Message)
		assert.Equal(t, "at main.go:1", entry.Stack)
	})
}

func TestTruncateRuneBoundary(t *testing.T) {
	// 179 ASCII bytes followed by a two-byte rune straddling the cap
	s := strings.Repeat("a", 179) + "ção"
	require.Greater(t, len(s), TruncateLen)

	got := truncate(s)

	assert.True(t, utf8.ValidString(got), "truncated value must stay valid UTF-8")
	assert.LessOrEqual(t, len(got), TruncateLen)
	assert.Equal(t, strings.Repeat("a", 179), got)
}
