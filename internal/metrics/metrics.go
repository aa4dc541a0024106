package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campuscart_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campuscart_orders_cancelled_total",
		Help: "Total number of orders cancelled by a buyer or seller.",
	})

	DeliveriesClaimedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campuscart_deliveries_claimed_total",
		Help: "Total number of deliveries successfully claimed by riders.",
	})

	DeliveryClaimConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campuscart_delivery_claim_conflicts_total",
		Help: "Total number of delivery claims lost to another rider.",
	})

	BorrowRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campuscart_borrow_requests_total",
		Help: "Total number of borrow requests successfully created.",
	})

	BorrowOverlapConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campuscart_borrow_overlap_conflicts_total",
		Help: "Total number of borrow requests rejected for date overlap.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campuscart_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ItemCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campuscart_item_cache_items",
		Help: "Current number of items in the availability cache.",
	})
)
