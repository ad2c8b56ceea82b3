package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/oggyb/noor-names/internal/config"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// NewGRPCServer builds a gRPC server with request logging and registers all provided services
func NewGRPCServer(logger *slog.Logger, registrars ...Registrar) *grpc.Server {
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(logger)))

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}

	// No reflection: the names services are declared without protobuf file
	// descriptors, so grpcurl could list them but never describe or call them.

	return grpcServer
}

// StartGRPCServer boots a gRPC server on the configured address and blocks until ctx is done or Serve fails.
func StartGRPCServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	grpcServer := NewGRPCServer(logger, registrars...)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	return grpcServer.Serve(lis)
}

func loggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		attrs := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
		if err != nil {
			logger.Warn("rpc failed", append(attrs, "err", err)...)
		} else {
			logger.Debug("rpc served", attrs...)
		}
		return resp, err
	}
}
