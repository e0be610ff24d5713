package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all gift tracker metrics
const namespace = "gift_tracker"

// Registry is the Prometheus registry served on /metrics
var Registry = prometheus.NewRegistry()

// AppInfo exposes the build version as a label, always set to 1
var AppInfo = promauto.With(Registry).NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "app_info",
		Help:      "Application version information (always set to 1, version info in labels)",
	},
	[]string{"version", "environment"},
)

// Init registers the Go runtime and process collectors and records the version
func Init(version, environment string) {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	AppInfo.WithLabelValues(version, environment).Set(1)
}
