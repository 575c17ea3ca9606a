package langserver

import (
	"net/http"

	"github.com/gorilla/websocket"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
	"go.uber.org/zap"

	"github.com/javelin-dev/javelin/config"
	"github.com/javelin-dev/javelin/errors"
	"github.com/javelin-dev/javelin/logger"
)

const serverName = "Javelin Language Server"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// LSP clients connect from editor processes, not browsers
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server runs the language server over stdio or WebSocket.
type Server struct {
	handler *Handler
	log     *zap.SugaredLogger
}

func NewServer(cfg *config.Config) *Server {
	return &Server{
		handler: NewHandler(cfg),
		log:     logger.Named("langserver"),
	}
}

func (s *Server) protocolHandler() *protocol.Handler {
	return &protocol.Handler{
		Initialize:             s.handler.Initialize,
		Initialized:            s.handler.Initialized,
		Shutdown:               s.handler.Shutdown,
		TextDocumentDidOpen:    s.handler.TextDocumentDidOpen,
		TextDocumentDidChange:  s.handler.TextDocumentDidChange,
		TextDocumentDidClose:   s.handler.TextDocumentDidClose,
		TextDocumentCodeAction: s.handler.TextDocumentCodeAction,
	}
}

// RunStdio serves a single client over stdin/stdout. Blocks until the client
// disconnects.
func (s *Server) RunStdio() error {
	s.log.Infow("serving LSP over stdio")
	glspServer := glspserver.NewServer(s.protocolHandler(), serverName, false)
	if err := glspServer.RunStdio(); err != nil {
		return errors.Wrap(err, "stdio language server")
	}
	return nil
}

// ListenWebSocket serves LSP clients over WebSocket at addr. Each connection
// gets its own handler and document cache.
func (s *Server) ListenWebSocket(addr string, cfg *config.Config) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.log.Infow("WebSocket connection request", "remote", r.RemoteAddr)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.log.Errorw("WebSocket upgrade failed", "error", err)
			return
		}

		perClient := &Server{handler: NewHandler(cfg), log: s.log}
		glspServer := glspserver.NewServer(perClient.protocolHandler(), serverName, false)

		// blocks until the connection closes
		glspServer.ServeWebSocket(conn)
		s.log.Infow("WebSocket connection closed", "remote", r.RemoteAddr)
	})

	s.log.Infow("serving LSP over WebSocket", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		return errors.Wrapf(err, "websocket language server on %s", addr)
	}
	return nil
}
