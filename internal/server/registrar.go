package server

import "google.golang.org/grpc"

// Registrar attaches one API service to the gRPC server.
// Each service package under internal/service exposes one.
type Registrar interface {
	Register(s *grpc.Server)
}
