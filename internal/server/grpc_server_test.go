package server

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/noor-names/internal/logger"
	pb "github.com/oggyb/noor-names/internal/proto/names"
)

type catalogRegistrar struct{}

func (catalogRegistrar) Register(s *grpc.Server) {
	pb.RegisterCatalogServiceServer(s, pb.UnimplementedCatalogServiceServer{})
}

func TestNewGRPCServer_RegistersOnlyGivenServices(t *testing.T) {
	srv := NewGRPCServer(logger.Discard(), catalogRegistrar{})
	t.Cleanup(srv.Stop)

	info := srv.GetServiceInfo()
	require.Contains(t, info, "names.v1.CatalogService")
	assert.Len(t, info, 1, "reflection must not be registered")
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.Config{Level: "debug", Format: logger.FormatJSON})
	intercept := loggingInterceptor(log)
	info := &grpc.UnaryServerInfo{FullMethod: "/names.v1.CatalogService/Search"}

	resp, err := intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Contains(t, buf.String(), `"msg":"rpc served"`)
	assert.Contains(t, buf.String(), `"code":"OK"`)

	buf.Reset()
	_, err = intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "nope")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"code":"NotFound"`)
}
