package clientx

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/openstatushq/openstatus-go/core/identity"
	"github.com/openstatushq/openstatus-go/core/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// HeaderRequestID carries the request ID of an outbound call.
const HeaderRequestID = "X-Request-Id"

const headerUserAgent = "User-Agent"

const instrumentationName = "github.com/openstatushq/openstatus-go/clientx"

// LoggingInterceptor logs every outbound call with its procedure, duration
// and result code. Headers and payloads are never logged.
func LoggingInterceptor(logger log.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = log.Nop()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			startTime := time.Now()
			procedure := req.Spec().Procedure

			fields := []any{log.Str("procedure", procedure)}
			if id, ok := identity.RequestIDFrom(ctx); ok {
				fields = append(fields, log.Str("request_id", id))
			}

			logger.Debug("rpc started", fields...)

			resp, err := next(ctx, req)

			fields = append(fields, log.Dur("duration", time.Since(startTime)), log.Str("code", codeOf(err)))
			if err != nil {
				logger.Error(err, "rpc failed", fields...)
			} else {
				logger.Info("rpc completed", fields...)
			}

			return resp, err
		}
	}
}

// RequestIDInterceptor sends HeaderRequestID on every call. The ID comes from
// the request header when set per call, then from the context, and is
// generated otherwise. The chosen ID is stored in the context passed on.
// A UserAgent in the context's identity.RequestMeta replaces the default
// User-Agent unless the call sets one itself.
func RequestIDInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if meta, ok := identity.MetaFrom(ctx); ok && meta.UserAgent != "" && req.Header().Get(headerUserAgent) == "" {
				req.Header().Set(headerUserAgent, meta.UserAgent)
			}
			id := req.Header().Get(HeaderRequestID)
			if id == "" {
				id, _ = identity.RequestIDFrom(ctx)
			}
			if id == "" {
				id = uuid.NewString()
			}
			req.Header().Set(HeaderRequestID, id)
			return next(identity.WithRequestID(ctx, id), req)
		}
	}
}

// TracingInterceptor wraps every call in a client span and injects the span
// context into the request headers with propagator. A nil provider or
// propagator falls back to a no-op.
func TracingInterceptor(provider trace.TracerProvider, propagator propagation.TextMapPropagator) connect.UnaryInterceptorFunc {
	if provider == nil {
		provider = noop.NewTracerProvider()
	}
	if propagator == nil {
		propagator = propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	}
	tracer := provider.Tracer(instrumentationName)

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			service, method := splitProcedure(req.Spec().Procedure)

			ctx, span := tracer.Start(ctx, service+"/"+method,
				trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(
					attribute.String("rpc.system", "connect_rpc"),
					attribute.String("rpc.service", service),
					attribute.String("rpc.method", method),
				),
			)
			defer span.End()

			propagator.Inject(ctx, propagation.HeaderCarrier(req.Header()))

			resp, err := next(ctx, req)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				span.SetAttributes(attribute.String("rpc.connect_rpc.error_code", codeOf(err)))
			}
			return resp, err
		}
	}
}

// codeOf returns the Connect code name of err, "ok" for nil.
func codeOf(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}
