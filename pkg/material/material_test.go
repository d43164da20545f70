package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	props, err := Lookup("GaN")
	require.NoError(t, err)
	assert.Equal(t, "GaN", props.Name)
	assert.Equal(t, 3.4, props.Bandgap)
	assert.Equal(t, 2000.0, props.Mobility)
	assert.Equal(t, 3.3, props.BreakdownField)
	assert.Equal(t, 1.3, props.ThermalConductivity)
}

func TestLookup_UnknownMaterial(t *testing.T) {
	_, err := Lookup("InP")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMaterial)
	assert.Contains(t, err.Error(), "InP")
}

func TestNames_InsertionOrder(t *testing.T) {
	assert.Equal(t, []string{"GaN", "AlGaN", "SiC", "GaAs", "Si"}, Names())
}

func TestAll_MatchesNamesOrder(t *testing.T) {
	all := All()
	names := Names()
	require.Len(t, all, len(names))
	for i, props := range all {
		assert.Equal(t, names[i], props.Name)
	}
}

func TestAll_StrictlyPositiveProperties(t *testing.T) {
	for _, props := range All() {
		assert.Greater(t, props.Bandgap, 0.0, props.Name)
		assert.Greater(t, props.Mobility, 0.0, props.Name)
		assert.Greater(t, props.BreakdownField, 0.0, props.Name)
		assert.Greater(t, props.ThermalConductivity, 0.0, props.Name)
	}
}

func TestCoefficients(t *testing.T) {
	tests := []struct {
		name     string
		exponent float64
		alpha    float64
		beta     float64
	}{
		{"GaN", 1.5, 9.09e-4, 830},
		{"AlGaN", 1.5, 9.09e-4, 830},
		{"SiC", 2.0, 3.0e-4, 700},
		{"GaAs", 1.7, 5.0e-4, 300}, // falls through to defaults
		{"Si", 1.7, 5.0e-4, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Coefficients(tt.name)
			assert.Equal(t, tt.exponent, c.Exponent)
			assert.Equal(t, tt.alpha, c.Alpha)
			assert.Equal(t, tt.beta, c.Beta)
		})
	}
}

func TestLayerStack(t *testing.T) {
	layers := LayerStack("SiC")
	require.Len(t, layers, 6)
	assert.Equal(t, "Gate Contact", layers[0].Name)
	assert.Equal(t, "SiC", layers[3].Material, "channel layer follows the selected material")
	for _, l := range layers {
		assert.Greater(t, l.Thickness, 0.0, l.Name)
	}
}
