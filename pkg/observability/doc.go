// Package observability defines the contract between emitting components and
// their observers. It carries no dependencies of its own: concrete observers
// (such as the Prometheus-backed one in pkg/metrics) implement the Observer
// interface, and components notify it without knowing what sits behind it.
package observability
