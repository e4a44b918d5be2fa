// SPDX-License-Identifier: MIT

// Package metrics exposes prometheus counters for dump and hook activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DumpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dbg_dumps_total",
		Help: "Total number of debug dumps emitted, by renderer",
	}, []string{"renderer"})

	DumpsSuppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dbg_dumps_suppressed_total",
		Help: "Total number of dump calls suppressed by the enablement predicate",
	})

	HookCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dbg_hook_calls_total",
		Help: "Total number of hook invocations, by phase",
	}, []string{"phase"})
)

// IncDump records an emitted dump for the given renderer mode.
func IncDump(renderer string) {
	if renderer == "" {
		renderer = "unknown"
	}
	DumpsTotal.WithLabelValues(renderer).Inc()
}

// IncSuppressed records a dump call that the predicate filtered out.
func IncSuppressed() {
	DumpsSuppressedTotal.Inc()
}

// AddHookCalls records n hook invocations for the given phase.
func AddHookCalls(phase string, n int) {
	if n <= 0 {
		return
	}
	HookCallsTotal.WithLabelValues(phase).Add(float64(n))
}
