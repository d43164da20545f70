package config

import (
	"gopkg.in/ini.v1"
)

// Config carries the runtime defaults of the CLI and the interactive
// service. Flags override anything loaded from file.
type Config struct {
	Addr      string // Websocket listen address
	OutputDir string // Chart and report output directory

	Material string
	TempC    float64
	Vgs      float64
	Vth      float64
	VdsMax   float64
	Points   int

	TempSweepFrom   float64
	TempSweepTo     float64
	TempSweepPoints int
}

// Load reads an INI file, falling back to built-in defaults for missing
// keys. A missing or unreadable file yields the full defaults.
func Load(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return fromFile(ini.Empty()), err
	}
	return fromFile(file), nil
}

func fromFile(file *ini.File) Config {
	server := file.Section("server")
	sim := file.Section("simulation")
	sweep := file.Section("temperature_sweep")

	return Config{
		Addr:      server.Key("Addr").MustString(":9000"),
		OutputDir: server.Key("OutputDir").MustString("out"),

		Material: sim.Key("Material").MustString("GaN"),
		TempC:    sim.Key("Temperature").MustFloat64(50),
		Vgs:      sim.Key("Vgs").MustFloat64(5.0),
		Vth:      sim.Key("Vth").MustFloat64(2.0),
		VdsMax:   sim.Key("VdsMax").MustFloat64(100),
		Points:   sim.Key("Points").MustInt(200),

		TempSweepFrom:   sweep.Key("From").MustFloat64(25),
		TempSweepTo:     sweep.Key("To").MustFloat64(300),
		TempSweepPoints: sweep.Key("Points").MustInt(80),
	}
}
