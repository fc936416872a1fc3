// Package grpcsrv owns the gRPC listeners: construction, logging
// interceptors, and lifecycle.
package grpcsrv

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"
)

// Server is one named gRPC listener.
type Server struct {
	name string
	addr string
	srv  *grpc.Server
	log  *slog.Logger
}

func New(name, addr string, log *slog.Logger) *Server {
	logger := log.With("server", name)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(interceptorLogger(logger)),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(interceptorLogger(logger)),
		),
	)
	return &Server{name: name, addr: addr, srv: srv, log: logger}
}

// GRPC exposes the underlying server for service registration.
func (s *Server) GRPC() *grpc.Server { return s.srv }

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("grpc: listen %s: %w", s.addr, err)
	}
	s.log.Info("grpc server starting", "addr", lis.Addr().String())
	go func() {
		if err := s.srv.Serve(lis); err != nil {
			s.log.Error("grpc server stopped", "error", err)
		}
	}()
	return nil
}

// Stop drains in-flight RPCs, forcing the long-lived push streams down
// when the context expires.
func (s *Server) Stop(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.srv.Stop()
	}
	s.log.Info("grpc server stopped")
}

func interceptorLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
