// Package metrics defines the custom Prometheus metrics for the NovaFin
// finance API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register against the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "novafin"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TransactionsRecordedTotal counts newly recorded transactions.
// Label:
//   - tipo: "ingreso" or "gasto"
var TransactionsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_recorded_total",
		Help:      "Total number of transactions recorded, by type.",
	},
	[]string{"tipo"},
)

// TransactionsDeletedTotal counts transactions removed by their owner.
var TransactionsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_deleted_total",
		Help:      "Total number of transactions deleted.",
	},
)
