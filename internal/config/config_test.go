package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	assert.Error(t, err, "missing file is reported")

	// Defaults still come back usable.
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "GaN", cfg.Material)
	assert.Equal(t, 50.0, cfg.TempC)
	assert.Equal(t, 5.0, cfg.Vgs)
	assert.Equal(t, 2.0, cfg.Vth)
	assert.Equal(t, 100.0, cfg.VdsMax)
	assert.Equal(t, 200, cfg.Points)
	assert.Equal(t, 25.0, cfg.TempSweepFrom)
	assert.Equal(t, 300.0, cfg.TempSweepTo)
	assert.Equal(t, 80, cfg.TempSweepPoints)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	content := `[server]
Addr = :8080
OutputDir = charts

[simulation]
Material = SiC
Temperature = 125
Vgs = 6.5
Points = 400

[temperature_sweep]
To = 500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "charts", cfg.OutputDir)
	assert.Equal(t, "SiC", cfg.Material)
	assert.Equal(t, 125.0, cfg.TempC)
	assert.Equal(t, 6.5, cfg.Vgs)
	assert.Equal(t, 400, cfg.Points)
	assert.Equal(t, 500.0, cfg.TempSweepTo)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, 2.0, cfg.Vth)
	assert.Equal(t, 100.0, cfg.VdsMax)
	assert.Equal(t, 25.0, cfg.TempSweepFrom)
	assert.Equal(t, 80, cfg.TempSweepPoints)
}
