// Package metrics exposes the service's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SalesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salespark_sales_created_total",
		Help: "Sales created, by initial status.",
	}, []string{"status"})

	SalesModerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salespark_sales_moderated_total",
		Help: "Moderation decisions, by outcome.",
	}, []string{"decision"})

	SaleViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salespark_sale_views_total",
		Help: "View counter increments received.",
	})

	SaleFavorites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salespark_sale_favorites_total",
		Help: "Favorite counter adjustments, by direction.",
	}, []string{"op"})
)
