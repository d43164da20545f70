package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/edp1096/toy-mosfet/internal/config"
	"github.com/edp1096/toy-mosfet/internal/server"
	"github.com/edp1096/toy-mosfet/pkg/material"
	"github.com/edp1096/toy-mosfet/pkg/render"
	"github.com/edp1096/toy-mosfet/pkg/report"
	"github.com/edp1096/toy-mosfet/pkg/simulation"
	"github.com/edp1096/toy-mosfet/pkg/util"
)

var log = logrus.New()

func printResult(res *simulation.Result) {
	fmt.Println("\nEvaluation Results:")
	fmt.Println("===================")
	fmt.Printf("Material:            %s\n", res.Material.Name)
	fmt.Printf("Temperature:         %s\n", util.FormatCelsius(res.Op.TempC))
	fmt.Printf("Effective mobility:  %.1f cm^2/V.s\n", res.EffectiveMobility)
	fmt.Printf("Effective bandgap:   %.3f eV\n", res.EffectiveBandgap)
	fmt.Printf("Breakdown voltage:   %s\n", util.FormatValueFactor(res.BreakdownVoltage, "V"))
	fmt.Printf("Leakage current:     %s\n", util.FormatValueFactor(res.LeakageCurrent, "A"))
	fmt.Printf("Saturation velocity: %.2e cm/s\n", res.SaturationVelocity)
	fmt.Printf("Peak drain current:  %s\n", util.FormatValueFactor(res.MaxCurrent, "A"))
	fmt.Printf("Peak power:          %s\n", util.FormatValueFactor(res.MaxPower, "W"))
	fmt.Printf("On-resistance:       %s\n", util.FormatValueFactor(res.OnResistance, "Ohm"))
	fmt.Printf("Cutoff frequency:    %s\n", util.FormatFrequency(res.CutoffFrequency))
	fmt.Printf("Junction temp (est): %s\n", util.FormatCelsius(res.JunctionTemp))
}

func printComparison(summaries []simulation.MaterialSummary) {
	fmt.Println("\nMaterial Comparison:")
	fmt.Println("====================")
	fmt.Printf("%-8s %10s %12s %12s %14s %12s\n",
		"Material", "Eg (eV)", "Eg eff (eV)", "u0 (cm2/Vs)", "u eff (cm2/Vs)", "BV (V)")
	for _, s := range summaries {
		fmt.Printf("%-8s %10.2f %12.3f %12.0f %14.1f %12.1f\n",
			s.Name, s.Bandgap, s.EffectiveBandgap, s.Mobility, s.EffectiveMobility, s.BreakdownVoltage)
	}
}

// ivFamily picks the gate curve family around the selected bias: {3..7} V
// when Vgs is at least 5 V, {1..5} V otherwise.
func ivFamily(cfg simulation.Config) ([]render.IVCurve, error) {
	gates := []float64{1, 2, 3, 4, 5}
	if cfg.Op.Vgs >= 5 {
		gates = []float64{3, 4, 5, 6, 7}
	}

	curves := make([]render.IVCurve, 0, len(gates))
	for _, vg := range gates {
		c := cfg
		c.Op.Vgs = vg
		res, err := simulation.Run(c)
		if err != nil {
			return nil, err
		}
		curves = append(curves, render.IVCurve{
			Label: fmt.Sprintf("Vgs = %g V", vg),
			Vds:   res.Vds,
			Id:    res.DrainCurrent,
		})
	}
	return curves, nil
}

func renderCharts(cfg simulation.Config, rc config.Config, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	res, err := simulation.Run(cfg)
	if err != nil {
		return err
	}

	curves, err := ivFamily(cfg)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("I-V Characteristics - %s (T = %g degC)", cfg.Material, cfg.Op.TempC)
	if err := render.IVFamily(filepath.Join(outDir, "iv.png"), title, curves); err != nil {
		return err
	}

	sweep, err := simulation.SweepTemperature(cfg, rc.TempSweepFrom, rc.TempSweepTo, rc.TempSweepPoints)
	if err != nil {
		return err
	}
	if err := render.TemperatureTrends(filepath.Join(outDir, "trend"), sweep); err != nil {
		return err
	}
	if err := render.LineChart(filepath.Join(outDir, "bv_vs_bandgap.png"),
		"Breakdown Voltage vs Bandgap", "Bandgap (eV)", "Breakdown Voltage (V)",
		sweep.Bandgap, sweep.Breakdown); err != nil {
		return err
	}

	if err := render.PowerCurve(filepath.Join(outDir, "power.png"), res.Vds, res.Power); err != nil {
		return err
	}

	vgsAxis, gm, err := simulation.TransconductanceCurve(cfg, 10, 10, 100)
	if err != nil {
		return err
	}
	if err := render.LineChart(filepath.Join(outDir, "gm.png"),
		fmt.Sprintf("Transconductance - %s (Vds = 10 V)", cfg.Material),
		"Gate-Source Voltage Vgs (V)", "Transconductance gm (S)", vgsAxis, gm); err != nil {
		return err
	}

	surface, err := simulation.CurrentSurface(cfg, 10, 200, 40)
	if err != nil {
		return err
	}
	if err := render.SurfaceHeatmap(filepath.Join(outDir, "surface.png"), surface); err != nil {
		return err
	}

	summaries, err := simulation.CompareMaterials(cfg.Op)
	if err != nil {
		return err
	}
	names := make([]string, len(summaries))
	baseMu := make([]float64, len(summaries))
	effMu := make([]float64, len(summaries))
	baseEg := make([]float64, len(summaries))
	effEg := make([]float64, len(summaries))
	for i, s := range summaries {
		names[i] = s.Name
		baseMu[i], effMu[i] = s.Mobility, s.EffectiveMobility
		baseEg[i], effEg[i] = s.Bandgap, s.EffectiveBandgap
	}
	if err := render.ComparisonBars(filepath.Join(outDir, "compare_mobility.png"),
		"Mobility Comparison (Base vs Effective)", "Mobility (cm^2/V.s)", names, baseMu, effMu); err != nil {
		return err
	}
	if err := render.ComparisonBars(filepath.Join(outDir, "compare_bandgap.png"),
		"Bandgap Comparison (Base vs Effective)", "Bandgap (eV)", names, baseEg, effEg); err != nil {
		return err
	}

	return render.LayerDiagram(filepath.Join(outDir, "layers.png"), material.LayerStack(cfg.Material))
}

func main() {
	configPath := flag.String("config", "conf/config.ini", "configuration file")
	materialName := flag.String("material", "", "channel material (GaN, AlGaN, SiC, GaAs, Si)")
	tempC := flag.Float64("temp", -1000, "lattice temperature (degC)")
	vgs := flag.Float64("vgs", -1, "gate-source voltage (V)")
	vdsMax := flag.Float64("vdsmax", -1, "drain voltage sweep upper bound (V)")
	points := flag.Int("points", 0, "drain voltage sweep point count")
	outDir := flag.String("out", "", "output directory for charts and reports")

	serve := flag.Bool("serve", false, "run the interactive websocket service")
	charts := flag.Bool("charts", false, "render charts to the output directory")
	pdf := flag.Bool("report", false, "write the PDF summary to the output directory")
	compare := flag.Bool("compare", false, "print the materials comparison table")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	rc, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Warn("config file not loaded, using defaults")
	}

	cfg := simulation.DefaultConfig()
	cfg.Material = rc.Material
	cfg.Op.TempC = rc.TempC
	cfg.Op.Vgs = rc.Vgs
	cfg.Op.Vth = rc.Vth
	cfg.VdsMax = rc.VdsMax
	cfg.Points = rc.Points

	// Flags override file values.
	if *materialName != "" {
		cfg.Material = *materialName
	}
	if *tempC > -1000 {
		cfg.Op.TempC = *tempC
	}
	if *vgs >= 0 {
		cfg.Op.Vgs = *vgs
	}
	if *vdsMax > 0 {
		cfg.VdsMax = *vdsMax
	}
	if *points > 0 {
		cfg.Points = *points
	}
	dir := rc.OutputDir
	if *outDir != "" {
		dir = *outDir
	}

	switch {
	case *serve:
		if err := server.New(rc.Addr, log).Serve(); err != nil {
			log.WithError(err).Fatal("server stopped")
		}

	case *charts:
		if err := renderCharts(cfg, rc, dir); err != nil {
			log.WithError(err).Fatal("rendering charts")
		}
		log.WithField("dir", dir).Info("charts written")

	case *pdf:
		res, err := simulation.Run(cfg)
		if err != nil {
			log.WithError(err).Fatal("evaluation failed")
		}
		sweep, err := simulation.SweepTemperature(cfg, rc.TempSweepFrom, rc.TempSweepTo, rc.TempSweepPoints)
		if err != nil {
			log.WithError(err).Fatal("temperature sweep failed")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.WithError(err).Fatal("creating output directory")
		}
		path := filepath.Join(dir, "summary.pdf")
		if err := report.WriteSummary(path, res, sweep); err != nil {
			log.WithError(err).Fatal("writing summary")
		}
		log.WithField("path", path).Info("summary written")

	case *compare:
		summaries, err := simulation.CompareMaterials(cfg.Op)
		if err != nil {
			log.WithError(err).Fatal("comparison failed")
		}
		printComparison(summaries)

	default:
		res, err := simulation.Run(cfg)
		if err != nil {
			log.WithError(err).Fatal("evaluation failed")
		}
		printResult(res)
	}
}
