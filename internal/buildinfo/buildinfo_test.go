package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrint_DefaultsAndSet(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, "", "", "")
	require.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", buf.String())

	buf.Reset()
	Print(&buf, "v1", "2025-09-06", "deadbeef")
	require.Equal(t, "Build version: v1\nBuild date: 2025-09-06\nBuild commit: deadbeef\n", buf.String())
}
