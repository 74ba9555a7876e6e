package testingx

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/openstatushq/openstatus-go/api/openstatus/health/v1/healthv1connect"
)

// HeaderAPIKey is the header the hosted API authenticates with.
const HeaderAPIKey = "x-openstatus-key"

// RequireAPIKey rejects calls whose x-openstatus-key header is not one of
// keys, the way the hosted API does. Health checks pass without a key.
func RequireAPIKey(keys ...string) connect.UnaryInterceptorFunc {
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().Procedure == healthv1connect.HealthServiceCheckProcedure {
				return next(ctx, req)
			}
			key := req.Header().Get(HeaderAPIKey)
			if key == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("missing api key"))
			}
			if _, ok := allowed[key]; !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid api key"))
			}
			return next(ctx, req)
		}
	}
}

// RecoveryInterceptor turns a handler panic into connect.CodeInternal so a
// faulty test handler fails the call instead of the server.
func RecoveryInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (res connect.AnyResponse, err error) {
			defer func() {
				if r := recover(); r != nil {
					res, err = nil, connect.NewError(connect.CodeInternal, fmt.Errorf("panic in %s: %v", req.Spec().Procedure, r))
				}
			}()
			return next(ctx, req)
		}
	}
}
