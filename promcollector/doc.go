// Package promcollector exports annostore operation metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	st := annostore.New(schema, annostore.WithMetricsCollector(promcollector.New(reg)))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package promcollector
