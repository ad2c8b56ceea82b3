package account

import (
	"google.golang.org/grpc"

	"github.com/oggyb/noor-names/internal/app"
	pb "github.com/oggyb/noor-names/internal/proto/names"
)

// Registrar ties the Account service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterAccountServiceServer(s, NewAccountService(r.appCtx))
}
