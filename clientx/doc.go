// Package clientx provides the Connect transport and client interceptors
// used by the OpenStatus SDK.
//
// # Overview
//
// A Transport resolves the API base URL once, builds an HTTP/2 capable
// client (h2c for plain http URLs) and carries an ordered interceptor
// chain. Every service client of a façade is bound to the same Transport
// through NewConnectClient, so they share connections and interceptors.
//
// # Features
//
//   - Base URL precedence: explicit option, OPENSTATUS_API_URL, DefaultBaseURL
//   - HTTP/2 by default, HTTP/1.1 on request
//   - AuthInterceptor injecting x-openstatus-key
//   - Request ID, tracing, metrics and logging interceptors
//
// The SDK never retries. Use core/errors.IsRetryable to decide at the call
// site.
//
// # Usage
//
//	t := clientx.NewTransport(clientx.TransportOptions{
//		BaseURL:      "http://localhost:3000/rpc",
//		Interceptors: []connect.Interceptor{clientx.AuthInterceptor(key)},
//	})
//	health := clientx.NewConnectClient(t, healthv1connect.NewHealthServiceClient)
//
// # Layer
//
// clientx depends on codecx, configx and core. The root openstatus package
// builds on it.
package clientx
