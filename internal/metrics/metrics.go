// Package metrics holds the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Import command outcomes.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// ImportsTotal counts processed price list import commands by outcome.
	ImportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_pricelist_imports_total",
		Help: "Processed price list import commands by outcome.",
	}, []string{"status"})

	// ImportedGoods counts goods stored by successful imports.
	ImportedGoods = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_pricelist_imported_goods_total",
		Help: "Goods stored by successful price list imports.",
	})

	// OrdersPlaced counts successfully placed orders.
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Successfully placed orders.",
	})
)
