package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprintToken(t *testing.T) {
	t.Parallel()
	a := FingerprintToken("code-1")
	require.Equal(t, a, FingerprintToken("code-1"))
	require.NotEqual(t, a, FingerprintToken("code-2"))
	require.NotContains(t, a, "code-1")
	require.Len(t, a, 43)
}

func TestRandomSecret(t *testing.T) {
	t.Parallel()
	a, b := RandomSecret(), RandomSecret()
	require.Len(t, a, 43)
	require.NotEqual(t, a, b)
}
