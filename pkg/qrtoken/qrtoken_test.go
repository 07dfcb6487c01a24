package qrtoken

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_ShapeAndCharset(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		tok := New()
		require.Len(t, tok, Length)
		require.True(t, Valid(tok), "token %q must be 32 lowercase hex chars", tok)
	}
}

func TestNew_NoImmediateCollisions(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		tok := New()
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token %q", tok)
		seen[tok] = struct{}{}
	}
}

func TestValid_RejectsWrongShapes(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"",
		"abc",
		"ABCDEF0123456789ABCDEF0123456789",  // uppercase
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",  // not hex
		"0123456789abcdef0123456789abcdef0", // 33 chars
	} {
		require.False(t, Valid(s), "%q must be rejected", s)
	}
}
