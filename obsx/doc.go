// Package obsx provides a Prometheus-backed OpenTelemetry meter provider.
//
// # Overview
//
// The client's metrics interceptor records through any metric.MeterProvider.
// obsx builds one whose reader is a Prometheus exporter on a private
// registry, so values can be scraped over HTTP or written out as text when a
// short-lived process such as the CLI exits. Setting Options.OTLPEndpoint
// adds an OTLP/gRPC push reader alongside it, and NewTracerProvider builds
// the matching span exporter for openstatus.WithTracerProvider.
//
// # Usage
//
//	provider, err := obsx.NewProvider(ctx, obsx.Options{
//		ServiceName:    "openstatus-cli",
//		ServiceVersion: version,
//	})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	client := openstatus.NewClient(openstatus.WithMeterProvider(provider.MeterProvider()))
//	// ... calls ...
//	_ = provider.WriteText(os.Stderr)
package obsx
