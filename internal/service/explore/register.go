package explore

import (
	"google.golang.org/grpc"

	"github.com/oggyb/noor-names/internal/app"
	pb "github.com/oggyb/noor-names/internal/proto/names"
)

// Registrar ties the Catalog service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Catalog service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Catalog service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewExploreService(r.appCtx)
	pb.RegisterCatalogServiceServer(s, service)
}
