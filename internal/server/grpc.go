package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-tin-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-tin-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
)

type grpcServer struct {
	address  string
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(handler.UnaryInterceptor),
		grpc.ConnectionTimeout(cfg.RequestTimeout),
	)
	srv.RegisterService(&myGRPC.ServiceDesc, handler)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  srv,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}
	g.listener = lis
	return nil
}

func (g *grpcServer) addr() string {
	if g.listener == nil {
		return g.address
	}
	return g.listener.Addr().String()
}

func (g *grpcServer) RunServer(ctx context.Context) error {
	if g.listener == nil {
		if err := g.listen(); err != nil {
			return err
		}
	}

	g.logger.Info().Str("address", g.addr()).Msg("launching gRPC server")
	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("gRPC server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight calls and falls back to a hard stop when ctx
// expires first.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server shutdown: %w", ctx.Err())
	}
}
