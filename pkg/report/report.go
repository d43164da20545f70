// Package report writes a one-page PDF summary of a simulation run. It
// consumes only scalar summary values; all text passes through an ASCII
// transliteration so the document never depends on the reader's encoding.
package report

import (
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/edp1096/toy-mosfet/pkg/simulation"
	"github.com/edp1096/toy-mosfet/pkg/util"
)

// transliterations maps typography and unit symbols common in device
// physics text to a portable ASCII subset.
var transliterations = strings.NewReplacer(
	"µ", "u", "μ", "u", // micro sign, Greek mu
	"°", " deg",
	"×", "x",
	"÷", "/",
	"²", "2", "³", "3",
	"₀", "0", "₁", "1", "₂", "2", "₃", "3", "₄", "4",
	"₅", "5", "₆", "6", "₇", "7", "₈", "8", "₉", "9",
	"•", "-", "–", "-", "—", "-",
	"“", "\"", "”", "\"",
	"‘", "'", "’", "'",
)

// Transliterate rewrites special symbols to their ASCII equivalents.
func Transliterate(text string) string {
	return transliterations.Replace(text)
}

// WriteSummary writes the fixed-format one-page summary for a run and its
// temperature sweep to the given path.
func WriteSummary(path string, res *simulation.Result, sweep *simulation.TemperatureSweep) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, Transliterate(fmt.Sprintf("%s MOSFET Simulation Summary", res.Material.Name)),
		"", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	lines := []string{
		fmt.Sprintf("Material: %s (%s)", res.Material.Name, res.Material.Description),
		fmt.Sprintf("Base mobility µ₀: %.0f cm²/V·s", res.Material.Mobility),
		fmt.Sprintf("Base bandgap Eg₀: %.3f eV", res.Material.Bandgap),
		fmt.Sprintf("Operating point: Vgs %.2f V, Vth %.2f V, %s",
			res.Op.Vgs, res.Op.Vth, util.FormatCelsius(res.Op.TempC)),
		fmt.Sprintf("Channel: L %.2f µm, W %.2f µm", res.Geom.L*1e6, res.Geom.W*1e6),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 8, Transliterate(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Computed Metrics:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	metrics := []string{
		fmt.Sprintf("- Maximum mobility (over T): %.2f cm²/V·s", sweep.MaxMobility),
		fmt.Sprintf("- Minimum bandgap (over T): %.4f eV", sweep.MinBandgap),
		fmt.Sprintf("- Maximum estimated breakdown voltage: %.2f V", sweep.MaxBreakdown),
		fmt.Sprintf("- Peak drain current: %s", util.FormatValueFactor(res.MaxCurrent, "A")),
		fmt.Sprintf("- Peak power dissipation: %s", util.FormatValueFactor(res.MaxPower, "W")),
		fmt.Sprintf("- On-resistance: %s", util.FormatValueFactor(res.OnResistance, "Ohm")),
		fmt.Sprintf("- Leakage current: %s", util.FormatValueFactor(res.LeakageCurrent, "A")),
		fmt.Sprintf("- Cutoff frequency estimate: %s", util.FormatFrequency(res.CutoffFrequency)),
	}
	for _, line := range metrics {
		pdf.CellFormat(0, 8, Transliterate(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 10)
	notes := Transliterate(
		"Notes: values come from closed-form teaching models normalized to a " +
			"reference GaN device. Curves are qualitatively correct, not " +
			"experimentally calibrated.")
	pdf.MultiCell(0, 6, notes, "", "L", false)

	return pdf.OutputFileAndClose(path)
}
