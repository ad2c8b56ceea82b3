// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/noor-names/internal/auth"
	"github.com/oggyb/noor-names/internal/catalog"
	"github.com/oggyb/noor-names/internal/favorites"
	"github.com/oggyb/noor-names/internal/utils/pagination"
)

// Map converts domain/repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, favorites.ErrAuthenticationRequired),
		errors.Is(err, auth.ErrNoSession):
		return status.Error(codes.Unauthenticated, "authentication required")

	case errors.Is(err, auth.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())

	case errors.Is(err, auth.ErrValidationFailed),
		errors.Is(err, catalog.ErrValidationFailed),
		errors.Is(err, pagination.ErrInvalidToken):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, auth.ErrNotConfirmed),
		errors.Is(err, auth.ErrInvalidToken):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, auth.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, favorites.ErrRemoteCallFailed):
		return status.Error(codes.Unavailable, err.Error())

	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// NotFound creates a gRPC NotFound error.
func NotFound(msg string) error {
	return status.Error(codes.NotFound, msg)
}
