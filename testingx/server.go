package testingx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/openstatushq/openstatus-go/codecx"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// BasePath is the path prefix the Server mounts procedures under, mirroring
// the hosted API.
const BasePath = "/rpc"

// Call is one request received by a Server.
type Call struct {
	Procedure string
	Proto     string
	Header    http.Header
}

// Server is an in-process Connect server speaking HTTP/1.1 and h2c. It
// records the headers of every request it receives.
type Server struct {
	t   testing.TB
	mux *http.ServeMux
	srv *httptest.Server

	interceptors []connect.Interceptor

	mu    sync.Mutex
	calls []Call
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerInterceptors runs interceptors, outermost first, around every
// handler registered afterwards.
func WithServerInterceptors(interceptors ...connect.Interceptor) ServerOption {
	return func(s *Server) {
		s.interceptors = append(s.interceptors, interceptors...)
	}
}

// NewServer starts a Server that is closed when the test ends. Handler
// panics are reported as connect.CodeInternal.
func NewServer(t testing.TB, opts ...ServerOption) *Server {
	t.Helper()
	s := &Server{t: t, mux: http.NewServeMux()}
	s.interceptors = []connect.Interceptor{RecoveryInterceptor()}
	for _, opt := range opts {
		opt(s)
	}
	s.srv = httptest.NewUnstartedServer(h2c.NewHandler(http.HandlerFunc(s.serveHTTP), &http2.Server{}))
	s.srv.Start()
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the base URL clients should be configured with.
func (s *Server) URL() string {
	return s.srv.URL + BasePath
}

// Close stops accepting connections. Clients that have not connected yet
// fail with connect.CodeUnavailable; established h2c connections are
// hijacked and outlive Close.
func (s *Server) Close() {
	s.srv.Close()
}

// Calls returns the recorded requests in arrival order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// LastCall returns the most recent request and fails the test if none.
func (s *Server) LastCall() Call {
	s.t.Helper()
	calls := s.Calls()
	if len(calls) == 0 {
		s.t.Fatalf("no calls recorded")
	}
	return calls[len(calls)-1]
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Procedure: strings.TrimPrefix(r.URL.Path, BasePath),
		Proto:     r.Proto,
		Header:    r.Header.Clone(),
	})
	s.mu.Unlock()
	s.mux.ServeHTTP(w, r)
}

// Handle registers fn for procedure using the SDK's JSON codec.
func Handle[Req, Res any](s *Server, procedure string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error)) {
	handler := connect.NewUnaryHandler(procedure, fn,
		connect.WithCodec(codecx.JSON),
		connect.WithInterceptors(s.interceptors...),
	)
	s.mux.Handle(BasePath+procedure, http.StripPrefix(BasePath, handler))
}

// Respond registers a handler that always returns res.
func Respond[Req, Res any](s *Server, procedure string, res *Res) {
	Handle(s, procedure, func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error) {
		return connect.NewResponse(res), nil
	})
}

// Fail registers a handler that always fails with code.
func Fail[Req, Res any](s *Server, procedure string, code connect.Code, msg string) {
	Handle(s, procedure, func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error) {
		return nil, connect.NewError(code, errors.New(msg))
	})
}
