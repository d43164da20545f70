package material

import (
	"errors"
	"fmt"
)

var ErrUnknownMaterial = errors.New("unknown material")

// Properties holds the reference room-temperature parameters of a
// semiconductor material. Values are fixed at catalog construction and
// never mutated afterwards.
type Properties struct {
	Name                string
	Bandgap             float64 // Nominal bandgap (eV)
	Mobility            float64 // Electron mobility (cm²/V·s)
	BreakdownField      float64 // Critical field (MV/cm)
	ThermalConductivity float64 // Thermal conductivity (W/cm·K)
	Description         string
}

// ThermalCoefficients drive the temperature models. Mobility follows
// (300/T)^Exponent, bandgap follows the Varshni relation with Alpha and Beta.
// Data-driven so a new material is a table row, not a new code path.
type ThermalCoefficients struct {
	Exponent float64 // Phonon scattering exponent
	Alpha    float64 // Varshni alpha (eV/K)
	Beta     float64 // Varshni beta (K)
}

var defaultCoefficients = ThermalCoefficients{Exponent: 1.7, Alpha: 5.0e-4, Beta: 300}

// catalogOrder is the insertion order of the catalog. Comparison results
// must come back in this order so comparison charts are reproducible.
var catalogOrder = []string{"GaN", "AlGaN", "SiC", "GaAs", "Si"}

var catalog = map[string]Properties{
	"GaN": {
		Name:                "GaN",
		Bandgap:             3.4,
		Mobility:            2000,
		BreakdownField:      3.3,
		ThermalConductivity: 1.3,
		Description:         "Wide bandgap semiconductor with high electron mobility",
	},
	"AlGaN": {
		Name:                "AlGaN",
		Bandgap:             4.0,
		Mobility:            1500,
		BreakdownField:      3.5,
		ThermalConductivity: 1.1,
		Description:         "Aluminum gallium nitride barrier layer",
	},
	"SiC": {
		Name:                "SiC",
		Bandgap:             3.26,
		Mobility:            900,
		BreakdownField:      3.5,
		ThermalConductivity: 4.9,
		Description:         "Silicon carbide substrate with excellent thermal conductivity",
	},
	"GaAs": {
		Name:                "GaAs",
		Bandgap:             1.42,
		Mobility:            8500,
		BreakdownField:      0.4,
		ThermalConductivity: 0.55,
		Description:         "Gallium arsenide with very high electron mobility",
	},
	"Si": {
		Name:                "Si",
		Bandgap:             1.12,
		Mobility:            1400,
		BreakdownField:      0.3,
		ThermalConductivity: 1.5,
		Description:         "Traditional silicon semiconductor material",
	},
}

var coefficients = map[string]ThermalCoefficients{
	"GaN":   {Exponent: 1.5, Alpha: 9.09e-4, Beta: 830},
	"AlGaN": {Exponent: 1.5, Alpha: 9.09e-4, Beta: 830},
	"SiC":   {Exponent: 2.0, Alpha: 3.0e-4, Beta: 700},
}

// Lookup returns the reference properties of a catalog material.
func Lookup(name string) (Properties, error) {
	props, ok := catalog[name]
	if !ok {
		return Properties{}, fmt.Errorf("%w: %s", ErrUnknownMaterial, name)
	}
	return props, nil
}

// Coefficients returns the thermal model coefficients for a material.
// Materials without a dedicated table entry use the generic defaults.
func Coefficients(name string) ThermalCoefficients {
	if c, ok := coefficients[name]; ok {
		return c
	}
	return defaultCoefficients
}

// Names returns the catalog material names in insertion order.
func Names() []string {
	names := make([]string, len(catalogOrder))
	copy(names, catalogOrder)
	return names
}

// All returns the properties of every catalog material in insertion order.
func All() []Properties {
	all := make([]Properties, 0, len(catalogOrder))
	for _, name := range catalogOrder {
		all = append(all, catalog[name])
	}
	return all
}
