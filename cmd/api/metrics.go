package main

import "expvar"

// counters exposed on /v1/debug/vars
var (
	ordersCreated       = expvar.NewInt("orders_created")
	ordersRejected      = expvar.NewInt("orders_rejected")
	ordersFailed        = expvar.NewInt("orders_failed")
	paymentsVerified    = expvar.NewInt("payments_verified")
	paymentsRejected    = expvar.NewInt("payments_rejected")
	notificationsFailed = expvar.NewInt("notifications_failed")
	bookingsInvalid     = expvar.NewInt("bookings_invalid")
)
