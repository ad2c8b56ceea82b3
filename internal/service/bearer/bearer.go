// Package bearer reads the session token from incoming gRPC metadata.
package bearer

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/metadata"

	"github.com/oggyb/noor-names/internal/app"
	"github.com/oggyb/noor-names/internal/auth"
)

const header = "authorization"

// Token returns the bearer token of the call, or "" when there is none.
func Token(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get(header) {
		if after, found := strings.CutPrefix(v, "Bearer "); found {
			return strings.TrimSpace(after)
		}
	}
	return ""
}

// Resolve looks up the caller's session. A missing or expired token yields
// ("", nil, auth.ErrNoSession) and drops whatever the registry still holds
// for it; infrastructure failures are returned as is.
func Resolve(ctx context.Context, appCtx *app.AppContext) (string, *auth.Identity, error) {
	token := Token(ctx)
	identity, err := appCtx.Auth.Current(ctx, token)
	if errors.Is(err, auth.ErrNoSession) && token != "" {
		appCtx.Sessions.Forget(ctx, token)
	}
	if err != nil {
		return "", nil, err
	}
	return token, identity, nil
}

// Outgoing attaches a token to an outgoing client context.
func Outgoing(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, header, "Bearer "+token)
}
