// Package otel reserves the observer slot for an OpenTelemetry exporter.
// Until one lands it ships a no-op workgroup.Observer, so callers can wire
// the seam today and swap in span events (spawn, cancel, join, error, panic)
// later.
package otel
