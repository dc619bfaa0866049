package server

import (
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/remindl/remindl/common"
	"github.com/remindl/remindl/pkg/logger"
)

// Server manages framed-JSON connections from CLI clients over a unix
// socket (or named pipe), dispatching incoming requests to registered
// handlers. An optional JSON-RPC bridge serves the same methods over
// HTTP and WebSocket.
type Server struct {
	log      logger.Logger
	handler  map[common.UpdateType]HandlerFunc
	port     int
	rpc      *RPCServer
	listener net.Listener
	mu       sync.Mutex
}

// NewServer creates a Server. The port is the TCP fallback used when
// the local socket transport is unavailable.
func NewServer(l logger.Logger, port int) *Server {
	return &Server{
		log:     l,
		handler: make(map[common.UpdateType]HandlerFunc),
		port:    port,
	}
}

// RegisterHandler associates a handler function with a method. When a
// request with the given method is received, the handler is invoked.
func (s *Server) RegisterHandler(method common.UpdateType, handler HandlerFunc) {
	s.handler[method] = handler
}

// AttachRPC installs the optional JSON-RPC bridge, started alongside
// the socket listener.
func (s *Server) AttachRPC(rs *RPCServer) {
	s.rpc = rs
}

// Start begins listening for incoming connections and blocks until
// Shutdown is called. Each connection is handled in its own goroutine.
func (s *Server) Start() error {
	if s.rpc != nil {
		go func() {
			if err := s.rpc.Serve(); err != nil {
				s.log.Error("rpc bridge: %v", err)
			}
		}()
	}

	l, err := s.createListener()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()

	for {
		conn, err := l.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.listener == nil
			s.mu.Unlock()
			if closed {
				return nil // clean shutdown
			}
			s.log.Error("accept: %v", err)
			continue
		}
		if !peerAllowed(conn) {
			s.log.Warning("rejecting connection from foreign uid")
			conn.Close()
			continue
		}
		go s.handleConnection(conn)
	}
}

// Shutdown stops the server by closing the listener, the RPC bridge
// and removing the socket file.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			s.log.Error("closing listener: %v", err)
		}
		s.listener = nil
	}
	s.mu.Unlock()

	if s.rpc != nil {
		s.rpc.Close()
	}

	if err := cleanupSocket(); err != nil {
		s.log.Error("removing socket file: %v", err)
	}
	return nil
}

func (s *Server) handleConnection(conn net.Conn) {
	sconn := NewSyncConn(conn)
	defer conn.Close()
	for {
		buf, err := sconn.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			s.log.Error("reading: %v", err)
			break
		}
		err = s.handlerWrapper(sconn, buf)
		if err != nil {
			s.log.Error("handling: %v", err)
			break
		}
	}
}

func (s *Server) handlerWrapper(sconn *SyncConn, b []byte) error {
	req, err := ParseRequest(b)
	if err != nil {
		return fmt.Errorf("error parsing request: %s", err.Error())
	}
	rHandler, ok := s.handler[req.Method]
	if !ok {
		err = sconn.Write(CreateError("unknown method: " + string(req.Method)))
		if err != nil {
			return fmt.Errorf("error writing response: %s", err.Error())
		}
		return nil
	}
	utype, msg, err := rHandler(sconn, req.Message)
	if err != nil {
		err = sconn.Write(InitError(err))
		if err != nil {
			return fmt.Errorf("error writing response: %s", err.Error())
		}
		return nil
	}
	err = sconn.Write(MakeResult(utype, msg))
	if err != nil {
		return fmt.Errorf("error writing response: %s", err.Error())
	}
	return nil
}
