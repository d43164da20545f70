package thermal

import (
	"errors"
	"fmt"
	"math"

	"github.com/edp1096/toy-mosfet/internal/consts"
	"github.com/edp1096/toy-mosfet/pkg/material"
)

var ErrInvalidTemperature = errors.New("temperature at or below absolute zero")

// Kelvin converts a Celsius lattice temperature to Kelvin. Every model in
// this package requires the result to be positive.
func Kelvin(tempC float64) float64 {
	return tempC + consts.KELVIN
}

// Mobility computes the effective electron mobility at the given lattice
// temperature. Phonon scattering lowers mobility as temperature rises:
//
//	mu_eff = mu0 * (300/Tk)^n
//
// with the scattering exponent n taken from the material coefficient table.
// mu0 and the result are in cm²/V·s.
func Mobility(mu0, tempC float64, coeff material.ThermalCoefficients) (float64, error) {
	tk := Kelvin(tempC)
	if tk <= 0 {
		return 0, fmt.Errorf("%w: %g degC", ErrInvalidTemperature, tempC)
	}
	return mu0 * math.Pow(consts.REF_TEMPERATURE/tk, coeff.Exponent), nil
}

// Bandgap computes the effective bandgap at the given lattice temperature
// using the Varshni relation:
//
//	Eg(T) = Eg0 - alpha*Tk²/(Tk+beta)
//
// Monotonically decreasing in temperature. The result is not clamped at
// zero; consumers that cannot handle a non-positive bandgap reject it there.
func Bandgap(eg0, tempC float64, coeff material.ThermalCoefficients) (float64, error) {
	tk := Kelvin(tempC)
	if tk <= 0 {
		return 0, fmt.Errorf("%w: %g degC", ErrInvalidTemperature, tempC)
	}
	return eg0 - coeff.Alpha*tk*tk/(tk+coeff.Beta), nil
}

// SaturationVelocity computes the temperature-dependent saturation drift
// velocity in cm/s.
func SaturationVelocity(tempC float64) (float64, error) {
	tk := Kelvin(tempC)
	if tk <= 0 {
		return 0, fmt.Errorf("%w: %g degC", ErrInvalidTemperature, tempC)
	}
	return consts.VSAT_300K * math.Sqrt(consts.REF_TEMPERATURE/tk), nil
}
