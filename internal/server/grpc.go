package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	myGRPC "github.com/MKhiriev/go-bookmarks/internal/handler/grpc"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		server:  s,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server Listen: %w", err)
	}

	return g.serve(listener)
}

func (g *grpcServer) serve(listener net.Listener) error {
	if err := g.server.Serve(listener); err != nil {
		if err == grpc.ErrServerStopped {
			return errServerClosed
		}
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return errServerClosed
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
