// Package telemetry wraps structured logging (zerolog) and a Prometheus
// metrics registry mirroring the Statistics Ledger, the ambient observability
// stack spec §1/§6 assume but do not define (SPEC_FULL.md's AMBIENT STACK).
package telemetry
