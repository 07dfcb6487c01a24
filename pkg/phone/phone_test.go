package phone

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_NationalSpanishNumber(t *testing.T) {
	t.Parallel()

	got, err := Normalize("912 345 678")
	require.NoError(t, err)
	require.Equal(t, "+34912345678", got)
}

func TestNormalize_AlreadyE164(t *testing.T) {
	t.Parallel()

	got, err := Normalize("+34612345678")
	require.NoError(t, err)
	require.Equal(t, "+34612345678", got)
	require.LessOrEqual(t, len(got), MaxLenE164)
}

func TestNormalize_EmptyPassesThrough(t *testing.T) {
	t.Parallel()

	got, err := Normalize("")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestNormalize_Garbage(t *testing.T) {
	t.Parallel()

	_, err := Normalize("not a phone")
	require.Error(t, err)
}
