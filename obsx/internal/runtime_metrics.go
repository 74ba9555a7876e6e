package internal

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel/metric"
)

const runtimeScope = "github.com/openstatushq/openstatus-go/obsx/runtime"

// runtimeGauge reads one value from a MemStats snapshot taken once per
// collection.
type runtimeGauge struct {
	name, unit, help string
	read             func(*runtime.MemStats) int64
}

var runtimeGauges = []runtimeGauge{
	{"process_runtime_go_goroutines", "{goroutine}", "Goroutines that currently exist.",
		func(*runtime.MemStats) int64 { return int64(runtime.NumGoroutine()) }},
	{"process_runtime_go_memory_heap_bytes", "By", "Bytes of allocated heap objects.",
		func(m *runtime.MemStats) int64 { return int64(m.HeapAlloc) }},
	{"process_runtime_go_memory_stack_bytes", "By", "Bytes in stack spans.",
		func(m *runtime.MemStats) int64 { return int64(m.StackInuse) }},
	{"process_runtime_go_gc_count", "{gc}", "Completed GC cycles.",
		func(m *runtime.MemStats) int64 { return int64(m.NumGC) }},
	{"process_runtime_go_gc_pause_ns", "ns", "Cumulative stop-the-world GC pause.",
		func(m *runtime.MemStats) int64 { return int64(m.PauseTotalNs) }},
}

// EnableRuntimeMetrics registers observable gauges for the Go runtime on
// provider. Values are read on collection, so a short-lived CLI pays
// nothing until it dumps its metrics.
func EnableRuntimeMetrics(_ context.Context, provider metric.MeterProvider) error {
	meter := provider.Meter(runtimeScope)

	instruments := make([]metric.Int64ObservableGauge, len(runtimeGauges))
	observables := make([]metric.Observable, len(runtimeGauges))
	for i, g := range runtimeGauges {
		gauge, err := meter.Int64ObservableGauge(g.name,
			metric.WithDescription(g.help),
			metric.WithUnit(g.unit),
		)
		if err != nil {
			return err
		}
		instruments[i], observables[i] = gauge, gauge
	}

	_, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		for i, g := range runtimeGauges {
			o.ObserveInt64(instruments[i], g.read(&ms))
		}
		return nil
	}, observables...)
	return err
}
