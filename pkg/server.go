package structhash

import (
	"fmt"
	"log"
	"net/http"
	"net/http/pprof"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	index      *Index
	httpServer *http.Server
}

func NewServer(dataFile string, host string, port int) *Server {
	index, handler := newServerInternal(dataFile)

	httpServer := &http.Server{Addr: fmt.Sprintf("%s:%d", host, port), Handler: handler}

	return &Server{
		index:      index,
		httpServer: httpServer,
	}
}

func newServerInternal(dataFile string) (*Index, http.Handler) {
	// open index
	index, err := NewIndex(dataFile)
	if err != nil {
		log.Fatalln("failed to open index:", err)
	}
	log.Printf("opened data file: %s\n", dataFile)

	// set up HTTP server
	mux := http.NewServeMux()

	// Serve metrics.
	mux.Handle(
		"/metrics",
		promhttp.HandlerFor(index.metrics.registry, promhttp.HandlerOpts{}),
	)

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	// Serve WebSocket endpoint for statement traffic.
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(_ *http.Request) bool { return true }, // TODO: security... only do this in dev mode (...)
	}
	mux.HandleFunc("/ws", func(resp http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(resp, req, nil)
		if err != nil {
			log.Println(err)
			return
		}
		index.addConnection(conn)
	})

	return index, mux
}

func (s *Server) ListenAndServe() error {
	log.Println("serving HTTP at", fmt.Sprintf("http://%s/", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

func (s *Server) Close() error {
	log.Println("closing storage layer...")
	if err := s.index.Close(); err != nil {
		return err
	}
	log.Println("closing http server...")
	if err := s.httpServer.Close(); err != nil {
		return err
	}
	log.Println("bye!")
	return nil
}
