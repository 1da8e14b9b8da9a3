package idutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := New("txn")
	require.True(t, strings.HasPrefix(id, "txn_"))

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := New("notif")
		require.False(t, seen[id])
		seen[id] = true
	}
}
