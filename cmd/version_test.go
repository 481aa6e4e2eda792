package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)

	runVersion(versionCmd, nil)

	output := buf.String()
	assert.Contains(t, output, "Podcast Catalog API")
	assert.Contains(t, output, "Version:")
	assert.Contains(t, output, "Go Version:")
}

func TestVersionCommand_Short(t *testing.T) {
	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)
	require.NoError(t, versionCmd.Flags().Set("short", "true"))
	defer func() {
		_ = versionCmd.Flags().Set("short", "false")
	}()

	runVersion(versionCmd, nil)

	assert.Equal(t, "vdev\n", buf.String())
}
