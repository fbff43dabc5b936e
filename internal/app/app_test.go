package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simwire/simwire/internal/domain"
	"github.com/simwire/simwire/internal/register"
	"github.com/simwire/simwire/internal/simtime"
)

const model = `
object "Channel" "mersey" {
  Capacity = 40
}

object "Channel" "forth" {
  Capacity = 55
}

object "Channel" "spillway" {}

object "Storage" "Great_Lake" {
  EOL          = 123.4
  FSL          = 308.5
  Commissioned = "1971-05-12"
  Spill        = "spillway"
  Sources      = ["mersey", "forth"]
}

object "PowerStation" "poatina" {
  Inflow     = "mersey"
  Efficiency = 0.9
}
`

func writeModel(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.hcl"), []byte(content), 0o644))
	return dir
}

func runApp(t *testing.T, content, startTime string) (*App, error) {
	t.Helper()
	cfg, err := NewConfig(Config{
		ModelPath: writeModel(t, content),
		StartTime: startTime,
		LogFormat: "text",
		LogLevel:  "debug",
	})
	require.NoError(t, err)

	var logBuf bytes.Buffer
	a := NewApp(&logBuf, cfg)
	return a, a.Run(context.Background())
}

func TestRunWiresWholeModel(t *testing.T) {
	a, err := runApp(t, model, "2005-01-01")
	require.NoError(t, err)
	reg := a.Registry()

	lake, err := register.FindInstance[*domain.Storage](reg, "Great_Lake")
	require.NoError(t, err)
	assert.Equal(t, 123.4, lake.EOL)
	assert.True(t, lake.Commissioned.Equal(simtime.Date(1971, time.May, 12)))
	require.NotNil(t, lake.Spill)
	assert.Equal(t, "spillway", lake.Spill.Name())
	require.Len(t, lake.Sources, 2)

	station, err := register.FindInstance[*domain.PowerStation](reg, "poatina")
	require.NoError(t, err)
	assert.Equal(t, 0.9, station.Efficiency)
	assert.Same(t, lake.Sources[0], station.Inflow)

	// Initialise was dispatched at the configured start time.
	assert.True(t, lake.InitialisedAt().Equal(simtime.Date(2005, time.January, 1)))
}

func TestRunWithoutStartTimeSkipsInitialise(t *testing.T) {
	a, err := runApp(t, `object "Storage" "Gordon" {}`, "")
	require.NoError(t, err)

	s, err := register.FindInstance[*domain.Storage](a.Registry(), "Gordon")
	require.NoError(t, err)
	assert.True(t, s.InitialisedAt().Equal(simtime.Time{}))
}

func TestRunSurfacesAnnotatedErrors(t *testing.T) {
	_, err := runApp(t, `
object "Storage" "Gordon" {
  Depth = 12
}
`, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gordon")
	assert.Contains(t, err.Error(), "Depth")
	assert.Contains(t, err.Error(), "model.hcl")
}

func TestRunRejectsUnknownClass(t *testing.T) {
	_, err := runApp(t, `object "Volcano" "etna" {}`, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Volcano")
}

func TestNewConfigValidation(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err)

	_, err = NewConfig(Config{ModelPath: "m", StartTime: "never"})
	assert.Error(t, err)

	_, err = NewConfig(Config{ModelPath: "m", LogLevel: "verbose"})
	assert.Error(t, err)

	_, err = NewConfig(Config{ModelPath: "m", LogFormat: "xml"})
	assert.Error(t, err)

	cfg, err := NewConfig(Config{ModelPath: "m", StartTime: "2005-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "m", cfg.ModelPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}
