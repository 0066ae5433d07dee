package handlers

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the transaction API, health and metrics endpoints.
// Paths are matched with or without a trailing slash.
func RegisterRoutes(e *echo.Echo, transactions *TransactionHandler, health *HealthCheckHandler, gatherer prometheus.Gatherer) {
	e.Pre(echomiddleware.RemoveTrailingSlash())

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")

	api.GET("/transactions", transactions.ListTransactions)
	api.POST("/transactions", transactions.CreateTransaction)
	api.GET("/transactions/:id", transactions.GetTransaction)
	api.PUT("/transactions/:id", transactions.UpdateTransaction)
	api.DELETE("/transactions/:id", transactions.DeleteTransaction)

	api.GET("/types/:type", transactions.ListByType)
	api.GET("/sum/:id", transactions.GetSum)
}
