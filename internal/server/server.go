package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"hashcash/internal/config"
	"hashcash/internal/interfaces"
)

// Server serves CREATE and VERIFY requests over TCP.
type Server struct {
	config      *config.Config
	service     interfaces.HashcashService
	metrics     interfaces.MetricsCollector
	ipControl   interfaces.RateLimiter
	logger      interfaces.Logger
	listener    net.Listener
	ready       chan struct{}
	connections sync.Map
	shutdown    chan struct{}
	stopOnce    sync.Once
	stopErr     error

	connectionCount   atomic.Int32
	activeConnections sync.WaitGroup
}

func NewServer(
	cfg *config.Config,
	service interfaces.HashcashService,
	metrics interfaces.MetricsCollector,
	ipControl interfaces.RateLimiter,
	logger interfaces.Logger,
) *Server {
	return &Server{
		config:    cfg,
		service:   service,
		metrics:   metrics,
		ipControl: ipControl,
		logger:    logger,
		ready:     make(chan struct{}),
		shutdown:  make(chan struct{}),
	}
}

// Start listens and serves until ctx is cancelled, then stops gracefully.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		close(s.ready)
		return fmt.Errorf("failed to start server: %w", err)
	}
	s.listener = listener
	close(s.ready)
	s.logger.Info("Server started on %s", s.listener.Addr())

	go s.acceptConnections(ctx)

	<-ctx.Done()
	s.logger.Info("Initiating graceful shutdown...")
	return s.Stop()
}

// Addr blocks until Start has tried to listen. It returns nil if listening
// failed.
func (s *Server) Addr() net.Addr {
	<-s.ready
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop closes the listener and waits for open connections up to the
// shutdown timeout. It is safe to call more than once.
func (s *Server) Stop() error {
	s.stopOnce.Do(func() {
		close(s.shutdown)

		if s.listener != nil {
			s.stopErr = s.listener.Close()
		}

		done := make(chan struct{})
		go func() {
			s.activeConnections.Wait()
			close(done)
		}()

		select {
		case <-done:
			s.logger.Info("All connections closed gracefully")
		case <-time.After(s.config.ShutdownTimeout):
			s.logger.Info("Shutdown timeout exceeded, closing %d connections", s.connectionCount.Load())
			s.connections.Range(func(_, v interface{}) bool {
				v.(net.Conn).Close()
				return true
			})
		}
	})
	return s.stopErr
}

func (s *Server) acceptConnections(ctx context.Context) {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.shutdown:
				return
			default:
				if errors.Is(err, net.ErrClosed) {
					return
				}
				s.logger.Error("Accept failed: %v", err)
				time.Sleep(100 * time.Millisecond)
				continue
			}
		}

		if s.connectionCount.Load() >= int32(s.config.MaxConnections) {
			s.metrics.IncRejectedConnections()
			conn.Close()
			continue
		}

		s.connectionCount.Add(1)
		s.activeConnections.Add(1)
		go func(conn net.Conn) {
			defer func() {
				s.connectionCount.Add(-1)
				s.activeConnections.Done()
			}()
			s.handleConnection(ctx, conn)
		}(conn)
	}
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	s.metrics.IncTotalConnections()

	ip := remoteIP(conn)
	if !s.ipControl.IsAllowed(ip) {
		s.metrics.IncRejectedConnections()
		s.logger.Info("Connection rejected from %s (rate limit/blacklist)", ip)
		return
	}

	s.metrics.IncActiveConnections()
	defer s.metrics.DecActiveConnections()

	id := uuid.NewString()
	s.connections.Store(id, conn)
	defer s.connections.Delete(id)

	h := &protocolHandler{
		id:      id,
		conn:    conn,
		reader:  bufio.NewReaderSize(conn, s.config.MaxMessageSize),
		service: s.service,
		metrics: s.metrics,
		logger:  s.logger,
		config:  s.config,
	}
	s.logger.Debug("[%s] connection from %s", id, ip)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.shutdown:
			return
		default:
		}

		conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		line, err := h.readLine()
		if err != nil {
			if errors.Is(err, bufio.ErrBufferFull) {
				conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
				h.write(h.fail(fmt.Errorf("message exceeds %d bytes", s.config.MaxMessageSize)))
			} else if !errors.Is(err, io.EOF) {
				s.logger.Debug("[%s] read: %v", id, err)
			}
			return
		}

		resp := h.handle(line)

		conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		if err := h.write(resp); err != nil {
			s.logger.Error("[%s] write: %v", id, err)
			return
		}
	}
}

func remoteIP(conn net.Conn) string {
	addr := conn.RemoteAddr()
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
