package server

import (
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/edp1096/toy-mosfet/pkg/device"
	"github.com/edp1096/toy-mosfet/pkg/material"
	"github.com/edp1096/toy-mosfet/pkg/simulation"
)

// Msg is a request from the UI. Type selects the operation; the payload
// fields are filled per type.
type Msg struct {
	Type   string                 `json:"type"`
	Config *simulation.Config     `json:"config,omitempty"`
	Op     *device.OperatingPoint `json:"operating_point,omitempty"`
	From   float64                `json:"from,omitempty"`
	To     float64                `json:"to,omitempty"`
	Points int                    `json:"points,omitempty"`
}

// Reply carries one response back to the UI. Exactly one payload field is
// set on success; Error is set on failure.
type Reply struct {
	Type       string                       `json:"type"`
	Error      string                       `json:"error,omitempty"`
	Result     *simulation.Result           `json:"result,omitempty"`
	Comparison []simulation.MaterialSummary `json:"comparison,omitempty"`
	Materials  []material.Properties        `json:"materials,omitempty"`
	Layers     []material.Layer             `json:"layers,omitempty"`
	Sweep      *simulation.TemperatureSweep `json:"sweep,omitempty"`
}

// Hub serves one websocket client: every parameter change message reruns
// the evaluation and pushes the full derived state back.
type Hub struct {
	conn  *websocket.Conn
	log   *logrus.Logger
	msg   chan Msg
	reply chan Reply
	done  chan struct{}
}

func NewHub(conn *websocket.Conn, log *logrus.Logger) *Hub {
	return &Hub{
		conn:  conn,
		log:   log,
		msg:   make(chan Msg, 10),
		reply: make(chan Reply, 10),
		done:  make(chan struct{}),
	}
}

// handle dispatches one request to the simulation core. Pure with respect
// to the hub: no connection state is touched, so it is directly testable.
func handle(msg Msg) Reply {
	switch msg.Type {
	case "run":
		if msg.Config == nil {
			return Reply{Type: "result", Error: "run: missing config"}
		}
		res, err := simulation.Run(*msg.Config)
		if err != nil {
			return Reply{Type: "result", Error: err.Error()}
		}
		return Reply{Type: "result", Result: res}

	case "compare":
		if msg.Op == nil {
			return Reply{Type: "comparison", Error: "compare: missing operating point"}
		}
		summaries, err := simulation.CompareMaterials(*msg.Op)
		if err != nil {
			return Reply{Type: "comparison", Error: err.Error()}
		}
		return Reply{Type: "comparison", Comparison: summaries}

	case "sweep":
		if msg.Config == nil {
			return Reply{Type: "sweep", Error: "sweep: missing config"}
		}
		from, to, points := msg.From, msg.To, msg.Points
		if points == 0 {
			from, to, points = 25, 300, 80
		}
		sweep, err := simulation.SweepTemperature(*msg.Config, from, to, points)
		if err != nil {
			return Reply{Type: "sweep", Error: err.Error()}
		}
		return Reply{Type: "sweep", Sweep: sweep}

	case "materials":
		return Reply{Type: "materials", Materials: material.All()}

	case "layers":
		channel := "GaN"
		if msg.Config != nil && msg.Config.Material != "" {
			channel = msg.Config.Material
		}
		return Reply{Type: "layers", Layers: material.LayerStack(channel)}

	default:
		return Reply{Type: "error", Error: "no such message type: " + msg.Type}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			h.reply <- handle(msg)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				h.log.WithError(err).Warn("writing reply")
			}
		case <-h.done:
			return
		}
	}
}
