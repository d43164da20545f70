package device

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBandgap  = errors.New("non-positive effective bandgap")
	ErrInvalidGeometry = errors.New("non-positive channel geometry")
)

// OperatingPoint is the bias and ambient condition of one evaluation.
// Recreated per evaluation, never shared.
type OperatingPoint struct {
	TempC float64 `json:"temperature_c"` // Lattice temperature (degC)
	Vgs   float64 `json:"vgs"`           // Gate-source voltage (V)
	Vth   float64 `json:"vth"`           // Threshold voltage (V)
}

// Geometry describes the channel of the device under evaluation.
type Geometry struct {
	L   float64 `json:"channel_length_m"`  // Channel length (m)
	W   float64 `json:"channel_width_m"`   // Channel width (m)
	Cox float64 `json:"oxide_capacitance"` // Oxide capacitance per unit area (F/m²)
}

const (
	DefaultVth = 2.0    // Threshold voltage (V)
	DefaultL   = 1e-6   // Channel length (m)
	DefaultW   = 100e-6 // Channel width (m)
	DefaultCox = 1.5e-6 // Oxide capacitance (F/m²)
)

// DefaultGeometry returns the reference device channel.
func DefaultGeometry() Geometry {
	return Geometry{L: DefaultL, W: DefaultW, Cox: DefaultCox}
}

// Validate rejects geometry that would divide by zero or flip the sign of
// the current model.
func (g Geometry) Validate() error {
	if g.L <= 0 {
		return fmt.Errorf("%w: L=%g m", ErrInvalidGeometry, g.L)
	}
	if g.W <= 0 {
		return fmt.Errorf("%w: W=%g m", ErrInvalidGeometry, g.W)
	}
	if g.Cox <= 0 {
		return fmt.Errorf("%w: Cox=%g F/m²", ErrInvalidGeometry, g.Cox)
	}
	return nil
}

// Operating regions of the square-law model.
const (
	CUTOFF     = 0 // Vgs below threshold
	LINEAR     = 1 // Vds below Vgs-Vth
	SATURATION = 2 // Vds at or above Vgs-Vth
)

// Region reports which branch of the current model applies at the bias point.
func Region(op OperatingPoint, vds float64) int {
	if op.Vgs < op.Vth {
		return CUTOFF
	}
	if vds < op.Vgs-op.Vth {
		return LINEAR
	}
	return SATURATION
}
