package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret1")
	WipeByteArray(b)
	for i := range b {
		require.Zero(t, b[i])
	}
}

func TestWipeByteArray_Empty(t *testing.T) {
	require.NotPanics(t, func() { WipeByteArray(nil) })
	require.NotPanics(t, func() { WipeByteArray([]byte{}) })
}
