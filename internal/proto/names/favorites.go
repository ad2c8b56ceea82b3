package names

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ListFavoritesRequest struct{}

type ListFavoritesResponse struct {
	Names []*Name `json:"names"`
	// State is the synchronizer state: anonymous, loading or ready.
	State string `json:"state"`
}

// ToggleFavoriteRequest names a catalog record by its identity.
type ToggleFavoriteRequest struct {
	EnglishName string `json:"english_name"`
	Gender      string `json:"gender"`
}

type ToggleFavoriteResponse struct {
	Favorite bool `json:"favorite"`
}

type IsFavoriteRequest struct {
	EnglishName string `json:"english_name"`
}

type IsFavoriteResponse struct {
	Favorite bool `json:"favorite"`
}

type ExportFavoritesRequest struct{}

type ExportFavoritesResponse struct {
	Text string `json:"text"`
}

type CountFavoritesRequest struct {
	EnglishName string `json:"english_name"`
}

type CountFavoritesResponse struct {
	Count uint64 `json:"count"`
}

const (
	FavoritesService_ListFavorites_FullMethodName   = "/names.v1.FavoritesService/ListFavorites"
	FavoritesService_ToggleFavorite_FullMethodName  = "/names.v1.FavoritesService/ToggleFavorite"
	FavoritesService_IsFavorite_FullMethodName      = "/names.v1.FavoritesService/IsFavorite"
	FavoritesService_ExportFavorites_FullMethodName = "/names.v1.FavoritesService/ExportFavorites"
	FavoritesService_CountFavorites_FullMethodName  = "/names.v1.FavoritesService/CountFavorites"
)

type FavoritesServiceServer interface {
	ListFavorites(context.Context, *ListFavoritesRequest) (*ListFavoritesResponse, error)
	ToggleFavorite(context.Context, *ToggleFavoriteRequest) (*ToggleFavoriteResponse, error)
	IsFavorite(context.Context, *IsFavoriteRequest) (*IsFavoriteResponse, error)
	ExportFavorites(context.Context, *ExportFavoritesRequest) (*ExportFavoritesResponse, error)
	CountFavorites(context.Context, *CountFavoritesRequest) (*CountFavoritesResponse, error)
}

type UnimplementedFavoritesServiceServer struct{}

func (UnimplementedFavoritesServiceServer) ListFavorites(context.Context, *ListFavoritesRequest) (*ListFavoritesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFavorites not implemented")
}
func (UnimplementedFavoritesServiceServer) ToggleFavorite(context.Context, *ToggleFavoriteRequest) (*ToggleFavoriteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleFavorite not implemented")
}
func (UnimplementedFavoritesServiceServer) IsFavorite(context.Context, *IsFavoriteRequest) (*IsFavoriteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IsFavorite not implemented")
}
func (UnimplementedFavoritesServiceServer) ExportFavorites(context.Context, *ExportFavoritesRequest) (*ExportFavoritesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportFavorites not implemented")
}
func (UnimplementedFavoritesServiceServer) CountFavorites(context.Context, *CountFavoritesRequest) (*CountFavoritesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CountFavorites not implemented")
}

var FavoritesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "names.v1.FavoritesService",
	HandlerType: (*FavoritesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListFavorites", Handler: unary(FavoritesService_ListFavorites_FullMethodName, FavoritesServiceServer.ListFavorites)},
		{MethodName: "ToggleFavorite", Handler: unary(FavoritesService_ToggleFavorite_FullMethodName, FavoritesServiceServer.ToggleFavorite)},
		{MethodName: "IsFavorite", Handler: unary(FavoritesService_IsFavorite_FullMethodName, FavoritesServiceServer.IsFavorite)},
		{MethodName: "ExportFavorites", Handler: unary(FavoritesService_ExportFavorites_FullMethodName, FavoritesServiceServer.ExportFavorites)},
		{MethodName: "CountFavorites", Handler: unary(FavoritesService_CountFavorites_FullMethodName, FavoritesServiceServer.CountFavorites)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterFavoritesServiceServer(s grpc.ServiceRegistrar, srv FavoritesServiceServer) {
	s.RegisterService(&FavoritesService_ServiceDesc, srv)
}

type FavoritesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFavoritesServiceClient(cc grpc.ClientConnInterface) *FavoritesServiceClient {
	return &FavoritesServiceClient{cc: cc}
}

func (c *FavoritesServiceClient) ListFavorites(ctx context.Context, in *ListFavoritesRequest, opts ...grpc.CallOption) (*ListFavoritesResponse, error) {
	return invoke[ListFavoritesRequest, ListFavoritesResponse](ctx, c.cc, FavoritesService_ListFavorites_FullMethodName, in, opts...)
}

func (c *FavoritesServiceClient) ToggleFavorite(ctx context.Context, in *ToggleFavoriteRequest, opts ...grpc.CallOption) (*ToggleFavoriteResponse, error) {
	return invoke[ToggleFavoriteRequest, ToggleFavoriteResponse](ctx, c.cc, FavoritesService_ToggleFavorite_FullMethodName, in, opts...)
}

func (c *FavoritesServiceClient) IsFavorite(ctx context.Context, in *IsFavoriteRequest, opts ...grpc.CallOption) (*IsFavoriteResponse, error) {
	return invoke[IsFavoriteRequest, IsFavoriteResponse](ctx, c.cc, FavoritesService_IsFavorite_FullMethodName, in, opts...)
}

func (c *FavoritesServiceClient) ExportFavorites(ctx context.Context, in *ExportFavoritesRequest, opts ...grpc.CallOption) (*ExportFavoritesResponse, error) {
	return invoke[ExportFavoritesRequest, ExportFavoritesResponse](ctx, c.cc, FavoritesService_ExportFavorites_FullMethodName, in, opts...)
}

func (c *FavoritesServiceClient) CountFavorites(ctx context.Context, in *CountFavoritesRequest, opts ...grpc.CallOption) (*CountFavoritesResponse, error) {
	return invoke[CountFavoritesRequest, CountFavoritesResponse](ctx, c.cc, FavoritesService_CountFavorites_FullMethodName, in, opts...)
}
