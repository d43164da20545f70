package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-mosfet/pkg/simulation"
)

func TestTransliterate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"µ₀ = 2000 cm²/V·s", "u0 = 2000 cm2/V·s"},
		{"25 °C", "25  degC"},
		{"Eg₀ — 3.4 eV", "Eg0 - 3.4 eV"},
		{"“quoted” ‘text’", "\"quoted\" 'text'"},
		{"plain ascii", "plain ascii"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Transliterate(c.in))
	}
}

func TestWriteSummary(t *testing.T) {
	res, err := simulation.Run(simulation.DefaultConfig())
	require.NoError(t, err)
	sweep, err := simulation.SweepTemperature(simulation.DefaultConfig(), 25, 300, 40)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "summary.pdf")
	require.NoError(t, WriteSummary(path, res, sweep))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500), "summary must not be empty")

	head := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}
