package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Number of orders committed successfully",
		},
	)
	OrdersFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_failed_total",
			Help: "Number of failed order creations",
		},
		[]string{"reason"}, // invalid_request|client_not_found|product_not_found|unavailable|insufficient_stock|tx
	)
	OrderStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_changes_total",
			Help: "Number of order status transitions",
		},
		[]string{"status"},
	)
	StockOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_operations_total",
			Help: "Stock ledger operations",
		},
		[]string{"op"}, // decrement|increment
	)
)

var (
	NotificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_notifications_sent_total",
			Help: "Number of post-commit order notifications delivered",
		},
	)
	NotificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_notifications_failed_total",
			Help: "Number of post-commit order notifications failed (non-fatal)",
		},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		OrdersCreated, OrdersFailed, OrderStatusChanges, StockOps,
		NotificationsSent, NotificationsFailed,
		CacheOps, CacheSize,
	)
}
