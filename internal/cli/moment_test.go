package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMomentCommandGenesisText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewMomentCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"2024-05-10T06:45:41.888Z"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Beat 0/36, step 0/44: Solhara, day 1 of Aethon, week of Awakening Flame")
	assert.Contains(t, output, "timestamp    2024-05-10T06:45:41.888Z")
	assert.Contains(t, output, "pulse        0")
	assert.Contains(t, output, "2024-05-10 (solar day 0, Solhara)")
}

func TestMomentCommandGenesisJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"moment", "--format", "json", "2024-05-10T06:45:41.888Z"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0", data["micro_pulses"])
	assert.Equal(t, "0", data["pulse"])
	assert.Equal(t, float64(0), data["beat"])
	assert.Equal(t, "Solhara", data["weekday"])
	assert.Equal(t, "Root", data["chakra_day"])

	eternal, ok := data["eternal"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0", eternal["year_index"])
	assert.Equal(t, "Aethon", eternal["month"])
	assert.Equal(t, float64(1), eternal["day_of_month"])

	solar, ok := data["solar"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2024-05-10", solar["date"])
	assert.Equal(t, "0", solar["day_index"])
}

func TestMomentCommandEpochMsArgument(t *testing.T) {
	// A bare integer means epoch milliseconds, same instant as the ISO form.
	isoBuf := &bytes.Buffer{}
	isoCmd := NewMomentCommand(&RootOptions{Format: "text"})
	isoCmd.SetOut(isoBuf)
	isoCmd.SetArgs([]string{"2024-05-10T06:45:41.888Z"})
	require.NoError(t, isoCmd.Execute())

	msBuf := &bytes.Buffer{}
	msCmd := NewMomentCommand(&RootOptions{Format: "text"})
	msCmd.SetOut(msBuf)
	msCmd.SetArgs([]string{"1715323541888"})
	require.NoError(t, msCmd.Execute())

	assert.Equal(t, isoBuf.String(), msBuf.String())
}

func TestMomentCommandNegativeYear(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewMomentCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	// Leading '-' needs the flag terminator.
	cmd.SetArgs([]string{"--", "-0044-03-15T12:00:00Z"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "timestamp    -0044-03-15T12:00:00.000Z")
}

func TestMomentCommandInvalidInstant(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewMomentCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"2024-13-01T00:00:00Z"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "INVALID_TIMESTAMP")
}

func TestMomentCommandMissingArgument(t *testing.T) {
	cmd := NewMomentCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
