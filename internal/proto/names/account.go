package names

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpResponse carries the confirmation token only in development builds.
type SignUpResponse struct {
	PendingConfirmation bool   `json:"pending_confirmation"`
	ConfirmationToken   string `json:"confirmation_token,omitempty"`
}

type ConfirmSignUpRequest struct {
	Token string `json:"token"`
}

type ConfirmSignUpResponse struct{}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token string   `json:"token"`
	User  *Profile `json:"user"`
}

type SignOutRequest struct{}

type SignOutResponse struct{}

type ProfileRequest struct{}

type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

const (
	AccountService_SignUp_FullMethodName        = "/names.v1.AccountService/SignUp"
	AccountService_ConfirmSignUp_FullMethodName = "/names.v1.AccountService/ConfirmSignUp"
	AccountService_SignIn_FullMethodName        = "/names.v1.AccountService/SignIn"
	AccountService_SignOut_FullMethodName       = "/names.v1.AccountService/SignOut"
	AccountService_Profile_FullMethodName       = "/names.v1.AccountService/Profile"
)

type AccountServiceServer interface {
	SignUp(context.Context, *SignUpRequest) (*SignUpResponse, error)
	ConfirmSignUp(context.Context, *ConfirmSignUpRequest) (*ConfirmSignUpResponse, error)
	SignIn(context.Context, *SignInRequest) (*SignInResponse, error)
	SignOut(context.Context, *SignOutRequest) (*SignOutResponse, error)
	Profile(context.Context, *ProfileRequest) (*Profile, error)
}

type UnimplementedAccountServiceServer struct{}

func (UnimplementedAccountServiceServer) SignUp(context.Context, *SignUpRequest) (*SignUpResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SignUp not implemented")
}
func (UnimplementedAccountServiceServer) ConfirmSignUp(context.Context, *ConfirmSignUpRequest) (*ConfirmSignUpResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmSignUp not implemented")
}
func (UnimplementedAccountServiceServer) SignIn(context.Context, *SignInRequest) (*SignInResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SignIn not implemented")
}
func (UnimplementedAccountServiceServer) SignOut(context.Context, *SignOutRequest) (*SignOutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SignOut not implemented")
}
func (UnimplementedAccountServiceServer) Profile(context.Context, *ProfileRequest) (*Profile, error) {
	return nil, status.Error(codes.Unimplemented, "method Profile not implemented")
}

var AccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "names.v1.AccountService",
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SignUp", Handler: unary(AccountService_SignUp_FullMethodName, AccountServiceServer.SignUp)},
		{MethodName: "ConfirmSignUp", Handler: unary(AccountService_ConfirmSignUp_FullMethodName, AccountServiceServer.ConfirmSignUp)},
		{MethodName: "SignIn", Handler: unary(AccountService_SignIn_FullMethodName, AccountServiceServer.SignIn)},
		{MethodName: "SignOut", Handler: unary(AccountService_SignOut_FullMethodName, AccountServiceServer.SignOut)},
		{MethodName: "Profile", Handler: unary(AccountService_Profile_FullMethodName, AccountServiceServer.Profile)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountService_ServiceDesc, srv)
}

type AccountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountServiceClient(cc grpc.ClientConnInterface) *AccountServiceClient {
	return &AccountServiceClient{cc: cc}
}

func (c *AccountServiceClient) SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*SignUpResponse, error) {
	return invoke[SignUpRequest, SignUpResponse](ctx, c.cc, AccountService_SignUp_FullMethodName, in, opts...)
}

func (c *AccountServiceClient) ConfirmSignUp(ctx context.Context, in *ConfirmSignUpRequest, opts ...grpc.CallOption) (*ConfirmSignUpResponse, error) {
	return invoke[ConfirmSignUpRequest, ConfirmSignUpResponse](ctx, c.cc, AccountService_ConfirmSignUp_FullMethodName, in, opts...)
}

func (c *AccountServiceClient) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*SignInResponse, error) {
	return invoke[SignInRequest, SignInResponse](ctx, c.cc, AccountService_SignIn_FullMethodName, in, opts...)
}

func (c *AccountServiceClient) SignOut(ctx context.Context, in *SignOutRequest, opts ...grpc.CallOption) (*SignOutResponse, error) {
	return invoke[SignOutRequest, SignOutResponse](ctx, c.cc, AccountService_SignOut_FullMethodName, in, opts...)
}

func (c *AccountServiceClient) Profile(ctx context.Context, in *ProfileRequest, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[ProfileRequest, Profile](ctx, c.cc, AccountService_Profile_FullMethodName, in, opts...)
}
