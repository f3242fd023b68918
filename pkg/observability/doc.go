/*
Package observability exposes Prometheus metrics for Turing machine runs.

Metrics are collected through domain.LifecycleHooks, so any engine that accepts
hooks can be instrumented without knowing about Prometheus.
*/
package observability
