package simulation

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/edp1096/toy-mosfet/pkg/device"
	"github.com/edp1096/toy-mosfet/pkg/material"
	"github.com/edp1096/toy-mosfet/pkg/thermal"
)

// Config is the full input of one evaluation. It is passed by value; the
// session holds no mutable state between runs.
type Config struct {
	Material       string                `json:"material"`
	Op             device.OperatingPoint `json:"operating_point"`
	Geom           device.Geometry       `json:"geometry"`
	VdsMax         float64               `json:"vds_max"`         // Sweep upper bound (V)
	Points         int                   `json:"points"`          // Sweep point count
	DriftThickness float64               `json:"drift_thickness"` // Drift layer (m), 0 = reference
	LeakageArea    float64               `json:"leakage_area"`    // Junction area for leakage (m²)
}

// DefaultConfig is the reference starting point: GaN at 50 degC, Vgs 5 V,
// 100 V sweep over 200 points.
func DefaultConfig() Config {
	return Config{
		Material: "GaN",
		Op: device.OperatingPoint{
			TempC: 50,
			Vgs:   5,
			Vth:   device.DefaultVth,
		},
		Geom:        device.DefaultGeometry(),
		VdsMax:      100,
		Points:      200,
		LeakageArea: 1e-8,
	}
}

// Result is the derived electrical state of one evaluation. Recomputed
// fresh on every run; arrays are aligned with Vds.
type Result struct {
	Material material.Properties   `json:"material"`
	Op       device.OperatingPoint `json:"operating_point"`
	Geom     device.Geometry       `json:"geometry"`

	EffectiveMobility  float64 `json:"effective_mobility"`  // cm²/V·s
	EffectiveBandgap   float64 `json:"effective_bandgap"`   // eV
	BreakdownVoltage   float64 `json:"breakdown_voltage"`   // V
	LeakageCurrent     float64 `json:"leakage_current"`     // A
	SaturationVelocity float64 `json:"saturation_velocity"` // cm/s

	Vds          []float64 `json:"vds"`           // V
	DrainCurrent []float64 `json:"drain_current"` // A
	Power        []float64 `json:"power"`         // W

	MaxCurrent      float64 `json:"max_current"`      // A
	MaxPower        float64 `json:"max_power"`        // W
	OnResistance    float64 `json:"on_resistance"`    // Ohm
	CutoffFrequency float64 `json:"cutoff_frequency"` // Hz
	PowerFOM        float64 `json:"power_fom"`        // V²/Ohm
	JunctionTemp    float64 `json:"junction_temp"`    // degC at peak power
}

// Run performs one full evaluation: material lookup, temperature models,
// electrical model over the drain voltage sweep. Any sub-model failure
// propagates unchanged.
func Run(cfg Config) (*Result, error) {
	props, err := material.Lookup(cfg.Material)
	if err != nil {
		return nil, err
	}
	coeff := material.Coefficients(cfg.Material)

	muEff, err := thermal.Mobility(props.Mobility, cfg.Op.TempC, coeff)
	if err != nil {
		return nil, err
	}
	egEff, err := thermal.Bandgap(props.Bandgap, cfg.Op.TempC, coeff)
	if err != nil {
		return nil, err
	}
	vsat, err := thermal.SaturationVelocity(cfg.Op.TempC)
	if err != nil {
		return nil, err
	}

	bv, err := device.BreakdownVoltage(egEff, cfg.DriftThickness)
	if err != nil {
		return nil, err
	}
	leak, err := device.LeakageCurrent(egEff, cfg.Op.TempC, cfg.LeakageArea)
	if err != nil {
		return nil, err
	}

	vds := Linspace(0, cfg.VdsMax, cfg.Points)
	ids, err := device.DrainCurrentSweep(muEff, egEff, vds, cfg.Op, cfg.Geom)
	if err != nil {
		return nil, err
	}
	power := device.PowerDissipation(ids, vds)

	ft, err := device.CutoffFrequency(muEff, cfg.Op.Vgs, cfg.Geom.L)
	if err != nil {
		return nil, err
	}
	ron := device.OnResistance(ids, vds)
	fom := 0.0
	if ron > 0 {
		fom = bv * bv / ron
	}

	res := &Result{
		Material:           props,
		Op:                 cfg.Op,
		Geom:               cfg.Geom,
		EffectiveMobility:  muEff,
		EffectiveBandgap:   egEff,
		BreakdownVoltage:   bv,
		LeakageCurrent:     leak,
		SaturationVelocity: vsat,
		Vds:                vds,
		DrainCurrent:       ids,
		Power:              power,
		MaxCurrent:         floats.Max(ids),
		MaxPower:           floats.Max(power),
		OnResistance:       ron,
		CutoffFrequency:    ft,
		PowerFOM:           fom,
	}
	res.JunctionTemp = device.JunctionTemperature(cfg.Op.TempC, res.MaxPower, 0)
	return res, nil
}

// TransconductanceCurve evaluates gm over a gate voltage sweep at a fixed
// drain bias for the configured material and temperature.
func TransconductanceCurve(cfg Config, vds, vgsMax float64, points int) (vgs, gm []float64, err error) {
	props, err := material.Lookup(cfg.Material)
	if err != nil {
		return nil, nil, err
	}
	coeff := material.Coefficients(cfg.Material)

	muEff, err := thermal.Mobility(props.Mobility, cfg.Op.TempC, coeff)
	if err != nil {
		return nil, nil, err
	}
	egEff, err := thermal.Bandgap(props.Bandgap, cfg.Op.TempC, coeff)
	if err != nil {
		return nil, nil, err
	}

	vgs = Linspace(0, vgsMax, points)
	gm, err = device.Transconductance(muEff, egEff, vds, vgs, cfg.Op, cfg.Geom)
	if err != nil {
		return nil, nil, err
	}
	return vgs, gm, nil
}

// MaterialSummary is one row of a materials comparison.
type MaterialSummary struct {
	Name              string  `json:"name"`
	Bandgap           float64 `json:"bandgap"`            // eV, room temperature
	Mobility          float64 `json:"mobility"`           // cm²/V·s, room temperature
	EffectiveBandgap  float64 `json:"effective_bandgap"`  // eV at the operating point
	EffectiveMobility float64 `json:"effective_mobility"` // cm²/V·s at the operating point
	BreakdownVoltage  float64 `json:"breakdown_voltage"`  // V at the operating point
}

// CompareMaterials evaluates every catalog material at a shared operating
// point. Results come back in catalog insertion order so comparison charts
// are reproducible run to run.
func CompareMaterials(op device.OperatingPoint) ([]MaterialSummary, error) {
	summaries := make([]MaterialSummary, 0, len(material.Names()))
	for _, props := range material.All() {
		coeff := material.Coefficients(props.Name)

		muEff, err := thermal.Mobility(props.Mobility, op.TempC, coeff)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", props.Name, err)
		}
		egEff, err := thermal.Bandgap(props.Bandgap, op.TempC, coeff)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", props.Name, err)
		}
		bv, err := device.BreakdownVoltage(egEff, 0)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", props.Name, err)
		}

		summaries = append(summaries, MaterialSummary{
			Name:              props.Name,
			Bandgap:           props.Bandgap,
			Mobility:          props.Mobility,
			EffectiveBandgap:  egEff,
			EffectiveMobility: muEff,
			BreakdownVoltage:  bv,
		})
	}
	return summaries, nil
}

// TemperatureSweep carries the temperature dependence of the thermal models
// plus the summary extrema the report exporter embeds.
type TemperatureSweep struct {
	TempC     []float64 `json:"temperature_c"`
	Mobility  []float64 `json:"mobility"`  // cm²/V·s
	Bandgap   []float64 `json:"bandgap"`   // eV
	Breakdown []float64 `json:"breakdown"` // V

	MaxMobility  float64 `json:"max_mobility"`
	MinBandgap   float64 `json:"min_bandgap"`
	MaxBreakdown float64 `json:"max_breakdown"`
}

// SweepTemperature evaluates mobility, bandgap and breakdown voltage for the
// configured material from tempFrom to tempTo over the given number of points.
func SweepTemperature(cfg Config, tempFrom, tempTo float64, points int) (*TemperatureSweep, error) {
	props, err := material.Lookup(cfg.Material)
	if err != nil {
		return nil, err
	}
	coeff := material.Coefficients(cfg.Material)

	temps := Linspace(tempFrom, tempTo, points)
	sweep := &TemperatureSweep{
		TempC:     temps,
		Mobility:  make([]float64, len(temps)),
		Bandgap:   make([]float64, len(temps)),
		Breakdown: make([]float64, len(temps)),
	}

	for i, t := range temps {
		mu, err := thermal.Mobility(props.Mobility, t, coeff)
		if err != nil {
			return nil, err
		}
		eg, err := thermal.Bandgap(props.Bandgap, t, coeff)
		if err != nil {
			return nil, err
		}
		bv, err := device.BreakdownVoltage(eg, cfg.DriftThickness)
		if err != nil {
			return nil, err
		}
		sweep.Mobility[i] = mu
		sweep.Bandgap[i] = eg
		sweep.Breakdown[i] = bv
	}

	sweep.MaxMobility = floats.Max(sweep.Mobility)
	sweep.MinBandgap = floats.Min(sweep.Bandgap)
	sweep.MaxBreakdown = floats.Max(sweep.Breakdown)
	return sweep, nil
}

// Surface is a drain current grid over a (Vgs, Vds) mesh. Rows follow Vds,
// columns follow Vgs.
type Surface struct {
	Vgs []float64
	Vds []float64
	Id  *mat.Dense
}

// CurrentSurface evaluates the current model over a (Vgs, Vds) grid at the
// configured material and temperature.
func CurrentSurface(cfg Config, vgsMax, vdsMax float64, points int) (*Surface, error) {
	props, err := material.Lookup(cfg.Material)
	if err != nil {
		return nil, err
	}
	coeff := material.Coefficients(cfg.Material)

	muEff, err := thermal.Mobility(props.Mobility, cfg.Op.TempC, coeff)
	if err != nil {
		return nil, err
	}
	egEff, err := thermal.Bandgap(props.Bandgap, cfg.Op.TempC, coeff)
	if err != nil {
		return nil, err
	}

	vgs := Linspace(0, vgsMax, points)
	vds := Linspace(0, vdsMax, points)
	grid := mat.NewDense(len(vds), len(vgs), nil)

	for j, vg := range vgs {
		pt := cfg.Op
		pt.Vgs = vg
		for i, vd := range vds {
			id, err := device.DrainCurrent(muEff, egEff, vd, pt, cfg.Geom)
			if err != nil {
				return nil, err
			}
			grid.Set(i, j, id)
		}
	}

	return &Surface{Vgs: vgs, Vds: vds, Id: grid}, nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n < 2 collapses to a single start point.
func Linspace(start, stop float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}
