package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-mosfet/pkg/material"
	"github.com/edp1096/toy-mosfet/pkg/simulation"
)

func requirePNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, path)
	assert.Greater(t, info.Size(), int64(1000), "%s must hold a real chart", path)

	head := make([]byte, 8)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG\r\n\x1a\n", string(head))
}

func TestIVFamily(t *testing.T) {
	res, err := simulation.Run(simulation.DefaultConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "iv.png")
	curves := []IVCurve{
		{Label: "Vgs = 5 V", Vds: res.Vds, Id: res.DrainCurrent},
	}
	require.NoError(t, IVFamily(path, "GaN Output Characteristics", curves))
	requirePNG(t, path)
}

func TestTemperatureTrends(t *testing.T) {
	sweep, err := simulation.SweepTemperature(simulation.DefaultConfig(), 25, 300, 40)
	require.NoError(t, err)

	prefix := filepath.Join(t.TempDir(), "trend")
	require.NoError(t, TemperatureTrends(prefix, sweep))
	requirePNG(t, prefix+"_mobility.png")
	requirePNG(t, prefix+"_bandgap.png")
	requirePNG(t, prefix+"_breakdown.png")
}

func TestPowerCurve(t *testing.T) {
	res, err := simulation.Run(simulation.DefaultConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "power.png")
	require.NoError(t, PowerCurve(path, res.Vds, res.Power))
	requirePNG(t, path)
}

func TestSurfaceHeatmap(t *testing.T) {
	surf, err := simulation.CurrentSurface(simulation.DefaultConfig(), 10, 200, 20)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "surface.png")
	require.NoError(t, SurfaceHeatmap(path, surf))
	requirePNG(t, path)
}

func TestComparisonBars(t *testing.T) {
	rows, err := simulation.CompareMaterials(simulation.DefaultConfig().Op)
	require.NoError(t, err)

	names := make([]string, len(rows))
	base := make([]float64, len(rows))
	eff := make([]float64, len(rows))
	for i, r := range rows {
		names[i] = r.Name
		base[i] = r.Mobility
		eff[i] = r.EffectiveMobility
	}

	path := filepath.Join(t.TempDir(), "compare.png")
	require.NoError(t, ComparisonBars(path, "Mobility", "cm^2/V.s", names, base, eff))
	requirePNG(t, path)

	err = ComparisonBars(path, "Mobility", "cm^2/V.s", names[:1], base, eff)
	assert.Error(t, err, "mismatched lengths must be rejected")
}

func TestLayerDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layers.png")
	require.NoError(t, LayerDiagram(path, material.LayerStack("GaN")))
	requirePNG(t, path)
}
