package material

// Layer is one slab of the device cross section, top to bottom.
type Layer struct {
	Name      string
	Material  string  // Catalog name or contact metal stack
	Thickness float64 // um
}

// LayerStack returns the cross section of the reference device with the
// given channel material. Thicknesses are fixed; only the channel layer
// varies with the selected material.
func LayerStack(channel string) []Layer {
	return []Layer{
		{Name: "Gate Contact", Material: "Ni/Au", Thickness: 0.3},
		{Name: "Gate Oxide", Material: "Al2O3", Thickness: 0.02},
		{Name: "Barrier Layer", Material: "AlGaN", Thickness: 0.025},
		{Name: "Channel Layer", Material: channel, Thickness: 0.1},
		{Name: "Buffer Layer", Material: "GaN", Thickness: 2.0},
		{Name: "Substrate", Material: "SiC", Thickness: 1.0},
	}
}
