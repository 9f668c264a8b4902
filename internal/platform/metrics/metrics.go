package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry propio para no mezclar con el default global (tests crean varios routers).
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// HealthChecks cuenta chequeos completados por resultado.
	HealthChecks = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "passaro",
		Name:      "health_checks_total",
		Help:      "Completed health questionnaires by resulting status.",
	}, []string{"status"})

	// LockedActions cuenta intentos de usar funcionalidades premium sin acceso.
	LockedActions = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "passaro",
		Name:      "locked_actions_total",
		Help:      "Attempts to use a premium capability without access.",
	}, []string{"capability"})

	// SnapshotWrites cuenta escrituras al store clave-valor.
	SnapshotWrites = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "passaro",
		Name:      "snapshot_writes_total",
		Help:      "Key-value snapshot writes by key and outcome.",
	}, []string{"key", "outcome"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler expone /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
