package consts

const (
	CHARGE       = 1.6021918e-19 // Elementary charge (C)
	BOLTZMANN    = 1.3806226e-23 // Boltzmann constant (J/K)
	BOLTZMANN_EV = 8.617e-5      // Boltzmann constant (eV/K)
	KELVIN       = 273.15        // Kelvin temperature (K)
)

// Model reference points. The breakdown and drain current models are
// normalized to GaN at 300 K: 3.4 eV nominal bandgap, 350 V breakdown
// at a 2 um drift layer.
const (
	REF_TEMPERATURE = 300.0  // Reference lattice temperature (K)
	REF_BANDGAP     = 3.4    // GaN nominal bandgap (eV)
	REF_BREAKDOWN   = 350.0  // Breakdown voltage of reference GaN device (V)
	REF_THICKNESS   = 2e-6   // Reference drift layer thickness (m)
	BANDGAP_BV_EXP  = 2.5    // Empirical bandgap-breakdown power law exponent
	ROOM_TEMP_C     = 25.0   // Ambient reference temperature (degC)
	THERMAL_DERATE  = 150.0  // Drain current thermal derating scale (degC)
	CLM_LAMBDA      = 0.02   // Channel length modulation coefficient (1/V)
	LEAKAGE_FLOOR   = 1e-12  // Subthreshold leakage floor (A)
	LEAKAGE_SCALE   = 1e-8   // Generation-recombination leakage prefactor (A/m²)
	VSAT_300K       = 2.5e7  // Saturation velocity at 300 K (cm/s)
	THERMAL_RES     = 50.0   // Junction-to-ambient thermal resistance (degC/W)
)
