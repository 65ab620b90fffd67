// Package telemetry configures the OpenTelemetry tracer provider and
// propagators for the gateway process.
package telemetry
