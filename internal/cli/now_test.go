package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowCommandText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewNowCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Beat ")
	assert.Contains(t, output, "timestamp")
	assert.Contains(t, output, "micropulses")
}

func TestNowCommandJSONCarriesSession(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"now", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]any)
	session, ok := data["session"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, session)
}

func TestNowCommandRejectsArguments(t *testing.T) {
	cmd := NewNowCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
