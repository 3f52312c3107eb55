// Package tracing wires OpenTelemetry into jdkx. NewProvider builds a tracer
// provider from Config (no-op when disabled, otherwise exporting to a JSONL
// file, stdout or an OTLP collector), and Executor records each
// operation.Descriptor run as a span.
package tracing
