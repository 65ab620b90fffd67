// Package metrics defines the Prometheus collectors recorded by the gateway:
// outbound backend calls, reconciliation outcomes and inbound HTTP requests.
//
// A nil *Recorder is valid and records nothing, so components can be built
// without metrics in tests.
package metrics
