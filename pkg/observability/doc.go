/*
Package observability exposes search progress as Prometheus metrics.

Metrics are fed through search.Hooks, so any engine can be instrumented without
changes to the search core:

	m := observability.NewMetrics(prometheus.NewRegistry())
	eng := search.New[toggle.State, domain.Move](
		search.WithHooks(observability.SearchHooks[toggle.State](m)),
	)
*/
package observability
