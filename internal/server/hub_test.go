package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-mosfet/pkg/device"
	"github.com/edp1096/toy-mosfet/pkg/material"
	"github.com/edp1096/toy-mosfet/pkg/simulation"
)

func TestHandle_Run(t *testing.T) {
	cfg := simulation.DefaultConfig()
	reply := handle(Msg{Type: "run", Config: &cfg})

	assert.Equal(t, "result", reply.Type)
	assert.Empty(t, reply.Error)
	require.NotNil(t, reply.Result)
	assert.Equal(t, "GaN", reply.Result.Material.Name)
	assert.Len(t, reply.Result.Vds, cfg.Points)
}

func TestHandle_RunMissingConfig(t *testing.T) {
	reply := handle(Msg{Type: "run"})
	assert.Equal(t, "result", reply.Type)
	assert.NotEmpty(t, reply.Error)
	assert.Nil(t, reply.Result)
}

func TestHandle_RunBadMaterial(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Material = "InP"
	reply := handle(Msg{Type: "run", Config: &cfg})
	assert.NotEmpty(t, reply.Error)
	assert.Nil(t, reply.Result)
}

func TestHandle_Compare(t *testing.T) {
	op := device.OperatingPoint{TempC: 50, Vgs: 5, Vth: 2}
	reply := handle(Msg{Type: "compare", Op: &op})

	assert.Equal(t, "comparison", reply.Type)
	assert.Empty(t, reply.Error)
	assert.Len(t, reply.Comparison, len(material.Names()))

	reply = handle(Msg{Type: "compare"})
	assert.NotEmpty(t, reply.Error)
}

func TestHandle_Sweep(t *testing.T) {
	cfg := simulation.DefaultConfig()
	reply := handle(Msg{Type: "sweep", Config: &cfg, From: 25, To: 300, Points: 50})

	assert.Equal(t, "sweep", reply.Type)
	require.NotNil(t, reply.Sweep)
	assert.Len(t, reply.Sweep.TempC, 50)

	// Zero points selects the default 80-point 25..300 range.
	reply = handle(Msg{Type: "sweep", Config: &cfg})
	require.NotNil(t, reply.Sweep)
	assert.Len(t, reply.Sweep.TempC, 80)
	assert.Equal(t, 25.0, reply.Sweep.TempC[0])
}

func TestHandle_Materials(t *testing.T) {
	reply := handle(Msg{Type: "materials"})
	assert.Equal(t, "materials", reply.Type)
	assert.Len(t, reply.Materials, len(material.Names()))
}

func TestHandle_Layers(t *testing.T) {
	reply := handle(Msg{Type: "layers"})
	assert.Equal(t, "layers", reply.Type)
	require.Len(t, reply.Layers, 6)
	assert.Equal(t, "GaN", reply.Layers[3].Material, "default channel is GaN")

	cfg := simulation.DefaultConfig()
	cfg.Material = "SiC"
	reply = handle(Msg{Type: "layers", Config: &cfg})
	assert.Equal(t, "SiC", reply.Layers[3].Material)
}

func TestHandle_UnknownType(t *testing.T) {
	reply := handle(Msg{Type: "bogus"})
	assert.Equal(t, "error", reply.Type)
	assert.NotEmpty(t, reply.Error)
}
