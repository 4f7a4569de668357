/*
Package observability turns machine lifecycle hooks into Prometheus metrics.

Metrics are collected in-process and can be exported as a node_exporter
textfile at the end of a session; no HTTP listener is started.
*/
package observability
