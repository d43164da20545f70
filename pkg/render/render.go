// Package render draws simulation outputs as PNG charts. It only consumes
// numeric arrays produced by the simulation package; no physics lives here.
package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/edp1096/toy-mosfet/pkg/material"
	"github.com/edp1096/toy-mosfet/pkg/simulation"
)

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// IVCurve is one labeled current-voltage trace.
type IVCurve struct {
	Label string
	Vds   []float64 // V
	Id    []float64 // A
}

func makeXYs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// scale returns y multiplied elementwise by factor, for unit changes on
// the plot axis only.
func scale(y []float64, factor float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = v * factor
	}
	return out
}

// IVFamily renders a family of I-V curves, currents in mA.
func IVFamily(path, title string, curves []IVCurve) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Drain-Source Voltage Vds (V)"
	p.Y.Label.Text = "Drain Current Id (mA)"

	for i, c := range curves {
		line, err := plotter.NewLine(makeXYs(c.Vds, scale(c.Id, 1e3)))
		if err != nil {
			return fmt.Errorf("building I-V trace %q: %w", c.Label, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(c.Label, line)
	}
	p.Legend.Top = true

	return p.Save(chartWidth, chartHeight, path)
}

// LineChart renders a single x-y trace.
func LineChart(path, title, xLabel, yLabel string, x, y []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	line, err := plotter.NewLine(makeXYs(x, y))
	if err != nil {
		return fmt.Errorf("building trace for %q: %w", title, err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)

	return p.Save(chartWidth, chartHeight, path)
}

// TemperatureTrends renders the mobility, bandgap and breakdown voltage
// temperature dependence as three charts under the given path prefix.
func TemperatureTrends(prefix string, sweep *simulation.TemperatureSweep) error {
	if err := LineChart(prefix+"_mobility.png", "Electron Mobility vs Temperature",
		"Temperature (degC)", "Mobility (cm^2/V.s)", sweep.TempC, sweep.Mobility); err != nil {
		return err
	}
	if err := LineChart(prefix+"_bandgap.png", "Bandgap vs Temperature (Varshni)",
		"Temperature (degC)", "Bandgap (eV)", sweep.TempC, sweep.Bandgap); err != nil {
		return err
	}
	return LineChart(prefix+"_breakdown.png", "Estimated Breakdown Voltage vs Temperature",
		"Temperature (degC)", "Breakdown Voltage (V)", sweep.TempC, sweep.Breakdown)
}

// PowerCurve renders power dissipation over the drain voltage sweep, in mW.
func PowerCurve(path string, vds, power []float64) error {
	return LineChart(path, "Power Dissipation vs Vds",
		"Drain-Source Voltage Vds (V)", "Power (mW)", vds, scale(power, 1e3))
}

// surfaceGrid adapts a simulation.Surface to the plotter grid interface.
type surfaceGrid struct {
	s *simulation.Surface
}

func (g surfaceGrid) Dims() (c, r int)   { return len(g.s.Vgs), len(g.s.Vds) }
func (g surfaceGrid) Z(c, r int) float64 { return g.s.Id.At(r, c) }
func (g surfaceGrid) X(c int) float64    { return g.s.Vgs[c] }
func (g surfaceGrid) Y(r int) float64    { return g.s.Vds[r] }

// SurfaceHeatmap renders the drain current surface over the (Vgs, Vds) grid.
func SurfaceHeatmap(path string, surface *simulation.Surface) error {
	p := plot.New()
	p.Title.Text = "Drain Current Surface"
	p.X.Label.Text = "Gate-Source Voltage Vgs (V)"
	p.Y.Label.Text = "Drain-Source Voltage Vds (V)"

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(surfaceGrid{surface}, pal)
	p.Add(hm)

	return p.Save(chartWidth, chartHeight, path)
}

// ComparisonBars renders base-vs-effective grouped bars per material in
// catalog order.
func ComparisonBars(path, title, unit string, names []string, base, effective []float64) error {
	if len(names) != len(base) || len(names) != len(effective) {
		return fmt.Errorf("comparison bars: mismatched lengths %d/%d/%d",
			len(names), len(base), len(effective))
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = unit

	w := vg.Points(18)

	baseBars, err := plotter.NewBarChart(plotter.Values(base), w)
	if err != nil {
		return fmt.Errorf("building base bars: %w", err)
	}
	baseBars.Color = plotutil.Color(0)
	baseBars.Offset = -w / 2

	effBars, err := plotter.NewBarChart(plotter.Values(effective), w)
	if err != nil {
		return fmt.Errorf("building effective bars: %w", err)
	}
	effBars.Color = plotutil.Color(1)
	effBars.Offset = w / 2

	p.Add(baseBars, effBars)
	p.Legend.Add("base", baseBars)
	p.Legend.Add("effective", effBars)
	p.Legend.Top = true
	p.NominalX(names...)

	return p.Save(chartWidth, chartHeight, path)
}

// LayerDiagram renders the device cross section as horizontal thickness
// bars, top layer first.
func LayerDiagram(path string, layers []material.Layer) error {
	p := plot.New()
	p.Title.Text = "Device Layer Structure"
	p.X.Label.Text = "Thickness (um)"

	names := make([]string, len(layers))
	thicknesses := make(plotter.Values, len(layers))
	for i, l := range layers {
		// Reverse so the top layer lands at the top of the chart.
		j := len(layers) - 1 - i
		names[j] = fmt.Sprintf("%s (%s)", l.Name, l.Material)
		thicknesses[j] = l.Thickness
	}

	bars, err := plotter.NewBarChart(thicknesses, vg.Points(14))
	if err != nil {
		return fmt.Errorf("building layer bars: %w", err)
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(2)
	p.Add(bars)
	p.NominalY(names...)

	return p.Save(chartWidth, chartHeight, path)
}
