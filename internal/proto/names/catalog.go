package names

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Name is a catalog record on the wire. Favorite is only set for signed-in callers.
type Name struct {
	EnglishName string  `json:"english_name"`
	ArabicName  string  `json:"arabic_name"`
	Meaning     string  `json:"meaning"`
	Gender      string  `json:"gender"`
	Popularity  float64 `json:"popularity"`
	Favorite    bool    `json:"favorite,omitempty"`
}

type BrowseRequest struct {
	Gender    string `json:"gender,omitempty"`
	Letter    string `json:"letter,omitempty"`
	Order     string `json:"order,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type BrowseResponse struct {
	Names         []*Name `json:"names"`
	Total         int     `json:"total"`
	NextPageToken string  `json:"next_page_token,omitempty"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type SearchResponse struct {
	Names []*Name `json:"names"`
}

type TrendingRequest struct {
	Count int32 `json:"count,omitempty"`
	Seed  int64 `json:"seed,omitempty"`
}

type TrendingResponse struct {
	Names []*Name `json:"names"`
}

type AlphabetRequest struct{}

type AlphabetResponse struct {
	Letters []string `json:"letters"`
}

const (
	CatalogService_Browse_FullMethodName   = "/names.v1.CatalogService/Browse"
	CatalogService_Search_FullMethodName   = "/names.v1.CatalogService/Search"
	CatalogService_Trending_FullMethodName = "/names.v1.CatalogService/Trending"
	CatalogService_Alphabet_FullMethodName = "/names.v1.CatalogService/Alphabet"
)

type CatalogServiceServer interface {
	Browse(context.Context, *BrowseRequest) (*BrowseResponse, error)
	Search(context.Context, *SearchRequest) (*SearchResponse, error)
	Trending(context.Context, *TrendingRequest) (*TrendingResponse, error)
	Alphabet(context.Context, *AlphabetRequest) (*AlphabetResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded to stay forward compatible.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) Browse(context.Context, *BrowseRequest) (*BrowseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Browse not implemented")
}
func (UnimplementedCatalogServiceServer) Search(context.Context, *SearchRequest) (*SearchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Search not implemented")
}
func (UnimplementedCatalogServiceServer) Trending(context.Context, *TrendingRequest) (*TrendingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Trending not implemented")
}
func (UnimplementedCatalogServiceServer) Alphabet(context.Context, *AlphabetRequest) (*AlphabetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Alphabet not implemented")
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "names.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Browse", Handler: unary(CatalogService_Browse_FullMethodName, CatalogServiceServer.Browse)},
		{MethodName: "Search", Handler: unary(CatalogService_Search_FullMethodName, CatalogServiceServer.Search)},
		{MethodName: "Trending", Handler: unary(CatalogService_Trending_FullMethodName, CatalogServiceServer.Trending)},
		{MethodName: "Alphabet", Handler: unary(CatalogService_Alphabet_FullMethodName, CatalogServiceServer.Alphabet)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

type CatalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) *CatalogServiceClient {
	return &CatalogServiceClient{cc: cc}
}

func (c *CatalogServiceClient) Browse(ctx context.Context, in *BrowseRequest, opts ...grpc.CallOption) (*BrowseResponse, error) {
	return invoke[BrowseRequest, BrowseResponse](ctx, c.cc, CatalogService_Browse_FullMethodName, in, opts...)
}

func (c *CatalogServiceClient) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	return invoke[SearchRequest, SearchResponse](ctx, c.cc, CatalogService_Search_FullMethodName, in, opts...)
}

func (c *CatalogServiceClient) Trending(ctx context.Context, in *TrendingRequest, opts ...grpc.CallOption) (*TrendingResponse, error) {
	return invoke[TrendingRequest, TrendingResponse](ctx, c.cc, CatalogService_Trending_FullMethodName, in, opts...)
}

func (c *CatalogServiceClient) Alphabet(ctx context.Context, in *AlphabetRequest, opts ...grpc.CallOption) (*AlphabetResponse, error) {
	return invoke[AlphabetRequest, AlphabetResponse](ctx, c.cc, CatalogService_Alphabet_FullMethodName, in, opts...)
}
