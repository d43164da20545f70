package device

import (
	"fmt"
	"math"

	"github.com/edp1096/toy-mosfet/internal/consts"
	"github.com/edp1096/toy-mosfet/pkg/thermal"
)

// MobilityCm2ToM2 converts mobility from the catalog's cm²/V·s to the SI
// m²/V·s used by the current model: 1 cm² = 1e-4 m². With mobility in
// m²/V·s, Cox in F/m² and W/L dimensionless, beta comes out in A/V².
const MobilityCm2ToM2 = 1e-4

// BreakdownVoltage estimates the drain-source breakdown voltage from the
// effective bandgap and drift layer thickness:
//
//	BV = 350 * (Eg/3.4)^2.5 * (thickness/2e-6)
//
// normalized to the reference GaN device. thickness <= 0 selects the
// reference 2 um layer.
func BreakdownVoltage(egEff, thickness float64) (float64, error) {
	if egEff <= 0 {
		return 0, fmt.Errorf("%w: Eg=%g eV", ErrInvalidBandgap, egEff)
	}
	if thickness <= 0 {
		thickness = consts.REF_THICKNESS
	}
	bv := consts.REF_BREAKDOWN *
		math.Pow(egEff/consts.REF_BANDGAP, consts.BANDGAP_BV_EXP) *
		(thickness / consts.REF_THICKNESS)
	return bv, nil
}

// DrainCurrent evaluates the square-law current model at one drain bias.
//
// Transconductance parameter:
//
//	beta = mu_eff * Cox * (W/L)    [A/V², mobility converted to SI]
//
// Linear region below VdsSat = Vgs - Vth, saturation with channel length
// modulation above it. Thermal derating and a bandgap factor scale the
// result; below threshold the current is the fixed leakage floor. The
// result never drops below the 1e-12 A floor.
func DrainCurrent(muEff, egEff, vds float64, op OperatingPoint, geom Geometry) (float64, error) {
	if err := geom.Validate(); err != nil {
		return 0, err
	}
	if egEff <= 0 {
		return 0, fmt.Errorf("%w: Eg=%g eV", ErrInvalidBandgap, egEff)
	}

	if op.Vgs < op.Vth {
		return consts.LEAKAGE_FLOOR, nil
	}

	beta := muEff * MobilityCm2ToM2 * geom.Cox * (geom.W / geom.L)
	vov := op.Vgs - op.Vth

	var id float64
	if vds < vov {
		id = beta * (vov*vds - 0.5*vds*vds)
	} else {
		id = 0.5 * beta * vov * vov * (1 + consts.CLM_LAMBDA*vds)
	}

	thermalFactor := math.Exp(-(op.TempC - consts.ROOM_TEMP_C) / consts.THERMAL_DERATE)
	bandgapFactor := math.Sqrt(egEff / consts.REF_BANDGAP)
	id *= thermalFactor * bandgapFactor

	return math.Max(id, consts.LEAKAGE_FLOOR), nil
}

// DrainCurrentSweep evaluates the current model over a drain voltage sweep.
// The result has the same length and ordering as vds.
func DrainCurrentSweep(muEff, egEff float64, vds []float64, op OperatingPoint, geom Geometry) ([]float64, error) {
	ids := make([]float64, len(vds))
	for i, v := range vds {
		id, err := DrainCurrent(muEff, egEff, v, op, geom)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// LeakageCurrent is a simplified generation-recombination leakage estimate:
//
//	I_leak = area * 1e-8 * exp(-Eg/(2*k*Tk))
//
// Strictly positive, increasing with temperature, decreasing with bandgap.
func LeakageCurrent(egEff, tempC, area float64) (float64, error) {
	if egEff <= 0 {
		return 0, fmt.Errorf("%w: Eg=%g eV", ErrInvalidBandgap, egEff)
	}
	tk := thermal.Kelvin(tempC)
	if tk <= 0 {
		return 0, fmt.Errorf("%w: %g degC", thermal.ErrInvalidTemperature, tempC)
	}
	return area * consts.LEAKAGE_SCALE * math.Exp(-egEff/(2*consts.BOLTZMANN_EV*tk)), nil
}

// PowerDissipation is the elementwise product Id*Vds. Panics on mismatched
// lengths, which indicates a programming error in the caller.
func PowerDissipation(id, vds []float64) []float64 {
	if len(id) != len(vds) {
		panic(fmt.Sprintf("power dissipation: length mismatch %d != %d", len(id), len(vds)))
	}
	p := make([]float64, len(id))
	for i := range id {
		p[i] = id[i] * vds[i]
	}
	return p
}

// OnResistance estimates Ron from the first nonzero point of a Vds sweep.
// Returns 0 when the sweep is too short or carries no current there.
func OnResistance(id, vds []float64) float64 {
	if len(id) < 2 || len(vds) < 2 {
		return 0
	}
	if id[1] <= 0 {
		return 0
	}
	return vds[1] / id[1]
}

// Transconductance computes gm = dId/dVgs over a gate voltage sweep at a
// fixed drain bias, using central differences in the interior and one-sided
// differences at the ends. The result has the same length as vgs.
func Transconductance(muEff, egEff, vds float64, vgs []float64, op OperatingPoint, geom Geometry) ([]float64, error) {
	if len(vgs) < 2 {
		return nil, fmt.Errorf("transconductance: need at least 2 gate voltage points, got %d", len(vgs))
	}

	ids := make([]float64, len(vgs))
	for i, vg := range vgs {
		pt := op
		pt.Vgs = vg
		id, err := DrainCurrent(muEff, egEff, vds, pt, geom)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	gm := make([]float64, len(vgs))
	for i := range vgs {
		switch i {
		case 0:
			gm[i] = (ids[1] - ids[0]) / (vgs[1] - vgs[0])
		case len(vgs) - 1:
			gm[i] = (ids[i] - ids[i-1]) / (vgs[i] - vgs[i-1])
		default:
			gm[i] = (ids[i+1] - ids[i-1]) / (vgs[i+1] - vgs[i-1])
		}
	}
	return gm, nil
}

// CutoffFrequency is a rough transit-frequency estimate in Hz:
//
//	ft = mu_eff * Vgs / (2*pi*L²)
//
// with mobility in cm²/V·s and the channel length converted to cm.
func CutoffFrequency(muEff, vgs, channelLength float64) (float64, error) {
	if channelLength <= 0 {
		return 0, fmt.Errorf("%w: L=%g m", ErrInvalidGeometry, channelLength)
	}
	lcm := channelLength * 100
	return muEff * vgs / (2 * math.Pi * lcm * lcm), nil
}

// JunctionTemperature estimates the junction temperature rise over ambient
// through a lumped thermal resistance. rth <= 0 selects the reference
// 50 degC/W.
func JunctionTemperature(tempC, power, rth float64) float64 {
	if rth <= 0 {
		rth = consts.THERMAL_RES
	}
	return tempC + power*rth
}
