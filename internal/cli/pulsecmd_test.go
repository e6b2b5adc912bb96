package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPulseCommandZero(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewPulseCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "timestamp    2024-05-10T06:45:41.888Z")
	assert.Contains(t, output, "pulse        0")
	assert.Contains(t, output, "micropulses  0")
}

func TestPulseCommandMillionJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"pulse", "1000000", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "1000000", data["pulse"])
	assert.Equal(t, "1000000000000", data["micro_pulses"])
	// One million pulses of (3+√5)s land a bit past 60 days 14 hours in.
	assert.Equal(t, "2024-07-09T21:13:29.865Z", data["timestamp"])
}

func TestPulseCommandNegativeIndex(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewPulseCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--", "-1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "pulse        -1")
}

func TestPulseCommandRejectsNonInteger(t *testing.T) {
	cmd := NewPulseCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"12.5"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
