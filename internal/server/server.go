// Package server exposes the simulation core to an interactive UI over a
// websocket. Each parameter-change message triggers a fresh evaluation and
// the full derived state is pushed back; the core itself stays pure.
package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	log      *logrus.Logger
}

func New(addr string, log *logrus.Logger) *Server {
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// serveWs handles one websocket client with its own hub.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Error("websocket upgrade")
		return
	}
	defer conn.Close()

	s.log.WithField("remote", conn.RemoteAddr().String()).Info("client connected")

	hub := NewHub(conn, s.log)
	defer close(hub.done)
	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var msg Msg
		if err := conn.ReadJSON(&msg); err != nil {
			s.log.WithError(err).Info("client disconnected")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	s.log.WithField("addr", s.addr).Info("serving")
	return http.ListenAndServe(s.addr, mux)
}
