package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kairos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 31.7683, c.Observer.LatitudeDeg)
	assert.Equal(t, 35.2137, c.Observer.LongitudeDeg)
	assert.Equal(t, "text", c.Format)
	require.NoError(t, c.Validate())
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
observer:
  latitude_deg: 51.4779
  longitude_deg: -0.0015
sunrise_cache: /tmp/sunrise.db
format: json
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 51.4779, c.Observer.LatitudeDeg)
	assert.Equal(t, -0.0015, c.Observer.LongitudeDeg)
	assert.Equal(t, "/tmp/sunrise.db", c.SunriseCachePath)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, 51.4779, c.SolarObserver().LatitudeDeg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "format: json\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 31.7683, c.Observer.LatitudeDeg)
	assert.Equal(t, "json", c.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"latitude out of range", "observer:\n  latitude_deg: 91\n"},
		{"longitude out of range", "observer:\n  longitude_deg: -181\n"},
		{"bad format", "format: xml\n"},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
