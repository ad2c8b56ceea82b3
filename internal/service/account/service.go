package account

import (
	"context"
	"time"

	"github.com/oggyb/noor-names/internal/app"
	svcErr "github.com/oggyb/noor-names/internal/errors"
	pb "github.com/oggyb/noor-names/internal/proto/names"
	"github.com/oggyb/noor-names/internal/service/bearer"
)

// Service implements the Account gRPC API over auth.Service.
type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedAccountServiceServer
}

func NewAccountService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// SignUp registers an account that must be confirmed before signing in.
// The confirmation token is only echoed back in development; elsewhere it
// is expected to travel out of band.
func (s *Service) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	res, err := s.appCtx.Auth.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.SignUpResponse{PendingConfirmation: res.PendingConfirmation}
	if s.appCtx.Config.App.ENV == "development" {
		resp.ConfirmationToken = res.ConfirmationToken
	}
	return resp, nil
}

func (s *Service) ConfirmSignUp(ctx context.Context, req *pb.ConfirmSignUpRequest) (*pb.ConfirmSignUpResponse, error) {
	if req.Token == "" {
		return nil, svcErr.InvalidArgument("token is required")
	}
	if err := s.appCtx.Auth.Confirm(ctx, req.Token); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ConfirmSignUpResponse{}, nil
}

// SignIn opens a session. Its favorites are loaded before the call returns.
func (s *Service) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	sess, err := s.appCtx.Auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		s.appCtx.Logger.Debug("SignIn rejected", "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.SignInResponse{
		Token: sess.Token,
		User: &pb.Profile{
			ID:        sess.Identity.ID,
			Email:     sess.Identity.Email,
			CreatedAt: sess.Identity.CreatedAt.UTC().Format(time.RFC3339),
		},
	}, nil
}

// SignOut ends the caller's session and drops its favorites cache.
func (s *Service) SignOut(ctx context.Context, _ *pb.SignOutRequest) (*pb.SignOutResponse, error) {
	token := bearer.Token(ctx)
	if token == "" {
		return &pb.SignOutResponse{}, nil
	}
	if err := s.appCtx.Auth.SignOut(ctx, token); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SignOutResponse{}, nil
}

func (s *Service) Profile(ctx context.Context, _ *pb.ProfileRequest) (*pb.Profile, error) {
	_, identity, err := bearer.Resolve(ctx, s.appCtx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Profile{
		ID:        identity.ID,
		Email:     identity.Email,
		CreatedAt: identity.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}
